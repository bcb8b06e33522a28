// Package middleware provides request logging, tracing, rate limiting and
// operator authentication for the HTTP server.
package middleware

import (
	"context"
	"strings"

	"portfolio/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// OperatorLocal is the Fiber locals key holding the authenticated operator name.
const OperatorLocal = "operator"

// AdminRole is the only role a token may carry to reach the admin surface.
const AdminRole = "admin"

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AdminRequired enforces a valid operator token on admin routes.
func AdminRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized(c, "Authorization header required")
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return unauthorized(c, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return unauthorized(c, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthorized(c, "Invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return unauthorized(c, "Invalid token structure - missing subject")
	}

	if role, _ := claims["role"].(string); role != AdminRole {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin access required",
			"code":  "FORBIDDEN",
		})
	}

	c.Locals(OperatorLocal, subject)
	c.SetUserContext(context.WithValue(c.UserContext(), OperatorKey, subject))
	return c.Next()
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": msg,
		"code":  "UNAUTHORIZED",
	})
}
