package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	testSecret   = "server-test-secret-at-least-32-chars"
	testOperator = "muwemi"
	testPassword = "hydraulics-rule"
)

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	notifier *testutil.NotifierStub
	cfg      *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &config.Config{
		Env:                  "test",
		JWTSecret:            testSecret,
		AdminUsername:        testOperator,
		AdminPasswordHash:    string(hash),
		ContactSubjectPrefix: "Portfolio Contact",
		DefaultPostAuthor:    "Muwemi Ndovie",
		ContactRateLimit:     5,
	}
	db := testutil.NewTestDB(t)
	notifier := &testutil.NotifierStub{}

	srv, err := NewServerWithDeps(cfg, db, nil, notifier)
	require.NoError(t, err)
	return &testEnv{app: srv.newApp(), db: db, notifier: notifier, cfg: cfg}
}

// operatorToken signs a token the way the login endpoint does.
func operatorToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  testOperator,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
