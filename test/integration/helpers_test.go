package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"ai-helper-be/internal/bootstrap"
	"ai-helper-be/internal/config"
	"ai-helper-be/internal/server"
	"ai-helper-be/pkg/database"

	"github.com/gofiber/fiber/v2"
)

const sessionCookieName = "ai-helper-session"

var emailCounter int64

// uniqueEmail avoids collisions between tests sharing the in-memory database.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, atomic.AddInt64(&emailCounter, 1))
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			ClientURL:          "http://localhost:5173",
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Session: config.SessionConfig{
			CookieName: sessionCookieName,
			TTLHours:   1,
		},
		Usage: config.UsageConfig{
			PeriodDays:    30,
			RequestsLimit: 500,
			TokensLimit:   250000,
		},
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	return server.New(cfg, container).GetApp()
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload interface{}, sessionToken string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionToken})
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func sessionTokenFrom(t *testing.T, resp *http.Response) string {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("expected a session cookie in the response")
	return ""
}

// registerUser signs up a fresh account and returns its session token.
func registerUser(t *testing.T, app *fiber.App, emailPrefix string) string {
	t.Helper()

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    uniqueEmail(emailPrefix),
		"password": "password123",
		"name":     "Test User",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d", resp.StatusCode)
	}
	return sessionTokenFrom(t, resp)
}
