package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/straye-as/sales-dashboard/internal/auth"
	"github.com/straye-as/sales-dashboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthProbes(t *testing.T) {
	h := testutil.NewAPIRouter(t, testutil.SetupTestDB(t), testutil.TestConfig())

	w := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	for _, path := range []string{"/health/db", "/health/ready"} {
		t.Run(path, func(t *testing.T) {
			w := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "healthy", body["status"])
		})
	}

	w = serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouter_Swagger(t *testing.T) {
	cfg := testutil.TestConfig()
	h := testutil.NewAPIRouter(t, testutil.SetupTestDB(t), cfg)
	w := serve(h, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code, "swagger is off unless enabled")

	cfg.Server.EnableSwagger = true
	h = testutil.NewAPIRouter(t, testutil.SetupTestDB(t), cfg)
	w = serve(h, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Swagger  string                 `json:"swagger"`
		BasePath string                 `json:"basePath"`
		Paths    map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api", doc.BasePath)
	for _, path := range []string{"/leads", "/lead_activities", "/general_expenses", "/calendar_events", "/expenditure_report", "/firebase_config"} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestRouter_AuthProtectsAPI(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.Auth.Enabled = true
	cfg.Auth.JWTSecret = testutil.TestSecret
	h := testutil.NewAPIRouter(t, testutil.SetupTestDB(t), cfg)

	w := serve(h, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(h, httptest.NewRequest(http.MethodGet, "/api/firebase_config", nil))
	assert.Equal(t, http.StatusOK, w.Code, "bootstrap config is public")

	token, _, err := auth.NewTokenManager(&cfg.Auth).Issue("dashboard")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = serve(h, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRouter_SecurityHeadersAndRequestID(t *testing.T) {
	h := testutil.NewAPIRouter(t, testutil.SetupTestDB(t), testutil.TestConfig())

	w := serve(h, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
