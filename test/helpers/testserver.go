package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"workhubb_backend/internal/app"
	"workhubb_backend/internal/config"
	"workhubb_backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestServer runs the full HTTP surface against a private in-memory
// database, so integration tests need no external services.
type TestServer struct {
	Server  *httptest.Server
	DB      *gorm.DB
	uploads string
}

func NewTestServer(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	uploads, err := os.MkdirTemp("", "workhubb-uploads-*")
	if err != nil {
		t.Fatalf("failed to create upload dir: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = uploads
	cfg.Storage.BaseURL = "/files"
	cfg.Upload.MaxSize = 5 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/"}

	// cache=shared keeps every pooled connection on the one database.
	db, err := gorm.Open(sqlite.Open("file:workhubb_test?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:  server,
		DB:      db,
		uploads: uploads,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
	os.RemoveAll(ts.uploads)
}

// ClearTables wipes all rows so each test starts from an empty store.
func (ts *TestServer) ClearTables() {
	for _, table := range []string{"applications", "experiences", "jobs", "users"} {
		ts.DB.Exec("DELETE FROM " + table)
	}
}

// SendRequest issues a JSON request against the test server and returns
// the response together with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

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
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
