// Package testutil wires an in-memory database and a fully routed engine
// for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeverse-africa/whingan-core/internal/database"
	"github.com/codeverse-africa/whingan-core/internal/middleware"
	"github.com/codeverse-africa/whingan-core/internal/modules/auth"
	"github.com/codeverse-africa/whingan-core/internal/modules/job"
	"github.com/codeverse-africa/whingan-core/internal/modules/journal"
	"github.com/codeverse-africa/whingan-core/internal/modules/news"
	"github.com/codeverse-africa/whingan-core/internal/modules/scholarship"
	"github.com/codeverse-africa/whingan-core/internal/modules/tribute"
	"github.com/codeverse-africa/whingan-core/internal/modules/user"
	jwtpkg "github.com/codeverse-africa/whingan-core/internal/pkg/jwt"
	"github.com/codeverse-africa/whingan-core/internal/pkg/mail"
	"github.com/codeverse-africa/whingan-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testFrontendURL = "http://localhost:5173"

// NewDB opens a fresh in-memory SQLite database with all tables migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// NewRouter builds a gin engine with every API route registered against db.
// Redis-backed middleware is disabled; mail is a silent no-op sender.
func NewRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	jwtpkg.SetSecret("test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) { response.NotFound(c, "Route not found") })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	authMW := middleware.Auth()
	mailer := mail.New(mail.Config{})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(nil))

	userSvc := user.NewService(db)
	auth.NewHandler(auth.NewService(db, mailer, testFrontendURL, nil)).RegisterRoutes(api)
	news.NewHandler(news.NewService(db)).RegisterRoutes(api, authMW)
	journal.NewHandler(journal.NewService(db)).RegisterRoutes(api, authMW)
	tribute.NewHandler(tribute.NewService(db)).RegisterRoutes(api, authMW)
	job.NewHandler(job.NewService(db)).RegisterRoutes(api, authMW)
	scholarship.NewHandler(scholarship.NewService(db, mailer, nil)).RegisterRoutes(api)
	user.NewHandler(userSvc).RegisterRoutes(api, authMW)

	return r
}

// DoJSON performs a JSON request against the router. A non-empty token is
// sent as a bearer Authorization header.
func DoJSON(t *testing.T, r http.Handler, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response recorder body into dest.
func Decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// UserToken signs a portal-user token for test requests.
func UserToken(t *testing.T, userID, email string) string {
	t.Helper()
	jwtpkg.SetSecret("test-secret")
	token, err := jwtpkg.Sign(userID, email, "", jwtpkg.DefaultTTL)
	require.NoError(t, err)
	return token
}

// AdminToken signs a dashboard-admin token for test requests.
func AdminToken(t *testing.T, adminID, username string) string {
	t.Helper()
	jwtpkg.SetSecret("test-secret")
	token, err := jwtpkg.Sign(adminID, "", username, jwtpkg.DefaultTTL)
	require.NoError(t, err)
	return token
}
