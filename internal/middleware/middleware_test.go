package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"rentfolio/internal/config"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/logger"
	"rentfolio/internal/metrics"
	"rentfolio/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func doRequest(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object in response")
	}
	code, _ := errObj["code"].(string)
	return code
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func TestPipelineAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
		wantErrorCode string
	}{
		{"valid_api_key", "secret-pipeline-key", "secret-pipeline-key", http.StatusOK, ""},
		{"invalid_api_key", "secret-pipeline-key", "wrong-key", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"missing_api_key", "secret-pipeline-key", "", http.StatusUnauthorized, "INVALID_API_KEY"},
		{"empty_configured_key", "", "any-key", http.StatusServiceUnavailable, "PIPELINE_NOT_CONFIGURED"},
		{"partial_match_rejected", "secret-pipeline-key", "secret-pipeline", http.StatusUnauthorized, "INVALID_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/test", PipelineAuthMiddleware(tt.configuredKey), okHandler)

			headers := map[string]string{}
			if tt.requestKey != "" {
				headers["X-API-Key"] = tt.requestKey
			}
			rec := doRequest(r, http.MethodPost, "/test", headers)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantErrorCode != "" {
				if code := errorCode(t, rec); code != tt.wantErrorCode {
					t.Errorf("error code = %q, want %q", code, tt.wantErrorCode)
				}
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.Defaults()
	user := &models.User{Base: models.Base{ID: models.NewID()}, Email: "owner@example.com"}
	token, expiresAt, err := GenerateAccessToken(user, cfg)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expected expiry in the future, got %v", expiresAt)
	}

	other := config.Defaults()
	other.JWTSecret = "a-different-secret"
	forged, _, err := GenerateAccessToken(user, other)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	t.Run("valid_token", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := parseBody(t, rec)["user_id"]; got != user.ID {
			t.Errorf("user_id = %v, want %s", got, user.ID)
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/me", nil)
		if rec.Code != http.StatusUnauthorized || errorCode(t, rec) != "UNAUTHORIZED" {
			t.Errorf("expected 401 UNAUTHORIZED, got %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("wrong_secret", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + forged})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong_scheme", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/me", map[string]string{"Authorization": "Basic " + token})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	clock := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }
	m := metrics.New()

	r := gin.New()
	r.POST("/login", RateLimit(limiter, m), okHandler)

	for i := 0; i < 2; i++ {
		if rec := doRequest(r, http.MethodPost, "/login", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	rec := doRequest(r, http.MethodPost, "/login", nil)
	if rec.Code != http.StatusTooManyRequests || errorCode(t, rec) != "RATE_LIMITED" {
		t.Fatalf("expected 429 RATE_LIMITED, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
	if got := testutil.ToFloat64(m.RateLimitedTotal); got != 1 {
		t.Errorf("rate limited counter = %v, want 1", got)
	}

	clock = clock.Add(time.Second)
	if rec := doRequest(r, http.MethodPost, "/login", nil); rec.Code != http.StatusOK {
		t.Errorf("after refill: status = %d, want 200", rec.Code)
	}
}

func TestIPRateLimiterEvictsIdleClients(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	clock := time.Now()
	limiter.now = func() time.Time { return clock }

	limiter.Allow("10.0.0.1")
	clock = clock.Add(idleLimiterTTL + time.Second)
	limiter.Allow("10.0.0.2")

	if _, ok := limiter.clients["10.0.0.1"]; ok {
		t.Error("expected idle client to be evicted")
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrTenantNotFound) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("database exploded")) })

	rec := doRequest(r, http.MethodGet, "/app", nil)
	if rec.Code != http.StatusNotFound || errorCode(t, rec) != "TENANT_NOT_FOUND" {
		t.Errorf("expected 404 TENANT_NOT_FOUND, got %d %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(r, http.MethodGet, "/boom", nil)
	if rec.Code != http.StatusInternalServerError || errorCode(t, rec) != "INTERNAL_ERROR" {
		t.Errorf("expected 500 INTERNAL_ERROR, got %d", rec.Code)
	}
}

func TestRequestLoggingAndMetrics(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(RequestLogging(), Metrics(m))
	r.GET("/items/:id", okHandler)

	rec := doRequest(r, http.MethodGet, "/items/42", map[string]string{"X-Request-ID": "req-1"})
	if rec.Header().Get("X-Request-ID") != "req-1" {
		t.Errorf("expected request ID to be echoed, got %q", rec.Header().Get("X-Request-ID"))
	}

	doRequest(r, http.MethodGet, "/nowhere", nil)

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/items/:id", "200")); got != 1 {
		t.Errorf("route counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched counter = %v, want 1", got)
	}
}
