package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/database"
	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps an httptest server backed by the real router and a
// real Postgres test database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to the test database (DATABASE_URL), migrates
// the schema and starts the full router under httptest.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	// Tests hammer the auth endpoints from one address; lift the ceiling.
	cfg.RateLimit.AuthPerMinute = 100000
	cfg.RateLimit.AuthBurst = 100000

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router, err := app.SetupRouter(db, cfg)
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}

	return &TestServer{
		Server: httptest.NewServer(router),
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables truncates every table between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec("TRUNCATE TABLE users, jobs, applications, refresh_tokens RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest performs an HTTP request against the test server, JSON
// encoding body when present, and returns the response plus its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}
