package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devconnect/internal/auth"
	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a Server on an in-memory sqlite DB with no Redis,
// wired to a Fiber app with the real route table.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.Models()...))

	cfg := &config.Config{
		Port:          "5000",
		JWTSecret:     "test-secret-key-12345678901234567890",
		TokenTTLHours: 1,
		Env:           "test",
	}

	codec, err := auth.NewCodec(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		codec:       codec,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
	s.accountService = service.NewAccountService(userRepo, profileRepo, postRepo, codec)
	s.profileService = service.NewProfileService(profileRepo, userRepo)
	s.postService = service.NewPostService(postRepo, commentRepo, userRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// doJSON issues a request with an optional JSON body and auth token, and
// decodes the response body into a generic map or slice.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, raw
}

func decodeMap(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func decodeSlice(t *testing.T, raw []byte) []interface{} {
	t.Helper()
	var body []interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/api/users", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	token, _ := decodeMap(t, raw)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createProfile creates a minimal profile for the token's user.
func createProfile(t *testing.T, app *fiber.App, token string) map[string]interface{} {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/api/profile", token, map[string]string{
		"status": "Developer",
		"skills": "Go, SQL",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	return decodeMap(t, raw)
}
