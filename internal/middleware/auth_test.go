package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devconnect/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRequired(t *testing.T) {
	codec, err := auth.NewCodec("test-secret-key-12345678901234567890", time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/test", AuthRequired(codec), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": AuthenticatedUserID(c)})
	})

	validToken, err := codec.Issue(123)
	require.NoError(t, err)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
		expectedMsg    string
		expectedUserID uint
	}{
		{
			name:           "Happy Path",
			token:          validToken,
			expectedStatus: http.StatusOK,
			expectedUserID: 123,
		},
		{
			name:           "Missing Header",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "No token, authorization denied",
		},
		{
			name:           "Malformed Token",
			token:          "malformed.token.here",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Token is not valid",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, float64(tt.expectedUserID), body["userID"])
			} else {
				assert.Equal(t, tt.expectedMsg, body["msg"])
			}
		})
	}
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	shortLived, err := auth.NewCodec("test-secret-key-12345678901234567890", time.Millisecond)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/test", AuthRequired(shortLived), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	token, err := shortLived.Issue(123)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(TokenHeader, token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
