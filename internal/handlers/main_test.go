package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/cafeshop/internal/config"
	"github.com/example/cafeshop/internal/database"
	"github.com/example/cafeshop/internal/routes"
)

const (
	testAdminEmail    = "admin@cafe.test"
	testAdminPassword = "admin-pass"
)

// newTestApp wires the full route table over an in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		AppPort:       "0",
		JWTSecret:     "test-secret",
		TokenExpires:  24 * time.Hour,
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
	}

	app := fiber.New()
	routes.Register(app, db, cfg)
	return app
}

// doJSON performs a request with an optional JSON body and bearer token and
// decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
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

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "" {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

func signup(t *testing.T, app *fiber.App, name, email, phone, password string) {
	t.Helper()
	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": name, "email": email, "phone": phone, "password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status)
}

func signin(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/signin", map[string]string{
		"email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
