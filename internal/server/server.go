// Package server contains the HTTP handlers of the public site and the
// operator's admin API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"portfolio/internal/bootstrap"
	"portfolio/internal/config"
	"portfolio/internal/markdown"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/notifications"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// contactWindow is the window of the per-IP contact rate limit.
const contactWindow = time.Minute

var (
	promOnce sync.Once
	promMW   *fiberprometheus.FiberPrometheus
)

// httpMetrics returns the process-wide HTTP metrics middleware. The collectors
// live in the default registry and can only be registered once.
func httpMetrics() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMW = fiberprometheus.New("portfolio-api")
	})
	return promMW
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	portfolio *service.PortfolioService
	blog      *service.BlogService
	contact   *service.ContactService
	admin     *service.AdminService
}

// NewServer connects the runtime dependencies described by cfg and builds a Server.
func NewServer(cfg *config.Config) (*Server, error) {
	db, redisClient, err := bootstrap.InitRuntime(cfg, bootstrap.Options{})
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db, redisClient, bootstrap.NewNotifier(cfg))
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, notifier notifications.Notifier) (*Server, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	middleware.InitMiddleware(cfg)

	repos := service.Repositories{
		Site:     repository.NewSiteRepository(db),
		Skills:   repository.NewSkillRepository(db),
		Projects: repository.NewProjectRepository(db),
		Profile:  repository.NewProfileRepository(db),
		Posts:    repository.NewPostRepository(db),
		Tags:     repository.NewTagRepository(db),
		Contact:  repository.NewContactRepository(db),
	}
	renderer := markdown.NewRenderer()

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: httpMetrics(),
		portfolio:      service.NewPortfolioService(repos),
		blog:           service.NewBlogService(repos, renderer),
		contact:        service.NewContactService(repos.Contact, notifier, cfg.ContactSubjectPrefix),
		admin:          service.NewAdminService(repos, cfg, renderer),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	// Tracing first so the trace id is in locals when the context is built.
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected responses still carry the headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Public site
	app.Get("/", s.Home)
	app.Get("/blog", s.BlogList)
	app.Get("/blog/:slug", s.BlogDetail)
	app.Get("/projects", s.Projects)
	app.Get("/project/:slug", s.ProjectDetail)
	app.Get("/skills", s.Skills)

	limit := s.config.ContactRateLimit
	if limit <= 0 {
		limit = 5
	}
	app.Post("/contact", middleware.RateLimit(s.redis, limit, contactWindow, "contact"), s.SubmitContact)

	// Operator API
	app.Post("/admin/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "admin_login"), s.AdminLogin)
	admin := app.Group("/admin", middleware.AdminRequired)

	admin.Get("/site-settings", s.GetSiteSettings)
	admin.Post("/site-settings", s.CreateSiteSettings)
	admin.Put("/site-settings", s.UpdateSiteSettings)
	admin.Delete("/site-settings", s.DeleteSiteSettings)

	admin.Get("/about", s.GetAbout)
	admin.Put("/about", s.UpdateAbout)

	skills := admin.Group("/skills")
	skills.Get("/", s.ListSkills)
	skills.Post("/", s.CreateSkill)
	// Specific routes before the generic /:id routes
	skills.Post("/reset-levels", s.ResetSkillLevels)
	skills.Get("/:id", s.GetSkill)
	skills.Put("/:id", s.UpdateSkill)
	skills.Delete("/:id", s.DeleteSkill)

	projects := admin.Group("/projects")
	projects.Get("/", s.ListProjects)
	projects.Post("/", s.CreateProject)
	projects.Post("/:id/images", s.AddProjectImage)
	projects.Delete("/:id/images/:imageId", s.DeleteProjectImage)
	projects.Get("/:id", s.GetProject)
	projects.Put("/:id", s.UpdateProject)
	projects.Delete("/:id", s.DeleteProject)

	education := admin.Group("/education")
	education.Get("/", s.ListEducation)
	education.Post("/", s.CreateEducation)
	education.Get("/:id", s.GetEducation)
	education.Put("/:id", s.UpdateEducation)
	education.Delete("/:id", s.DeleteEducation)

	certifications := admin.Group("/certifications")
	certifications.Get("/", s.ListCertifications)
	certifications.Post("/", s.CreateCertification)
	certifications.Get("/:id", s.GetCertification)
	certifications.Put("/:id", s.UpdateCertification)
	certifications.Delete("/:id", s.DeleteCertification)

	extracurriculars := admin.Group("/extracurriculars")
	extracurriculars.Get("/", s.ListExtracurriculars)
	extracurriculars.Post("/", s.CreateExtracurricular)
	extracurriculars.Get("/:id", s.GetExtracurricular)
	extracurriculars.Put("/:id", s.UpdateExtracurricular)
	extracurriculars.Delete("/:id", s.DeleteExtracurricular)

	tags := admin.Group("/tags")
	tags.Get("/", s.ListTags)
	tags.Post("/", s.CreateTag)
	tags.Get("/:id", s.GetTag)
	tags.Put("/:id", s.UpdateTag)
	tags.Delete("/:id", s.DeleteTag)

	posts := admin.Group("/posts")
	posts.Get("/", s.ListPosts)
	posts.Post("/", s.CreatePost)
	posts.Get("/slug/:slug", s.PreviewPost)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	messages := admin.Group("/messages")
	messages.Get("/", s.ListMessages)
	messages.Post("/mark-read", s.MarkMessagesRead)
	messages.Post("/mark-unread", s.MarkMessagesUnread)
	messages.Get("/:id", s.GetMessage)
	messages.Delete("/:id", s.DeleteMessage)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis only backs the
// contact rate limit, so its absence does not make the site unready.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// newApp builds the Fiber app with middleware and routes.
func (s *Server) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Portfolio API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err.Error())
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start starts the server
func (s *Server) Start() error {
	s.app = s.newApp()
	log.Printf("Server starting on port %s...", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
