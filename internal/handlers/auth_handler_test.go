package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"rentfolio/internal/config"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/logger"
	"rentfolio/internal/middleware"
	"rentfolio/internal/models"
	"rentfolio/internal/services"
	"rentfolio/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	registerFn    func(email, password, firstName, lastName string) (*models.User, error)
	loginFn       func(email, password string) (*models.User, error)
	getUserByIDFn func(id string) (*models.User, error)
}

func (m *mockUserService) Register(email, password, firstName, lastName string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(email, password, firstName, lastName)
	}
	return &models.User{}, nil
}

func (m *mockUserService) Login(email, password string) (*models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

const testUserID = "0190a3d2-7c4e-7b1a-9f00-000000000001"

func setupAuthRouter(handler *AuthHandler, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/auth/me", middleware.AuthMiddleware(cfg), handler.Me)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	cfg := config.Defaults()

	t.Run("returns 201 with token", func(t *testing.T) {
		svc := &mockUserService{
			registerFn: func(email, _, firstName, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email, FirstName: firstName}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc, cfg), cfg)

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"owner@example.com","password":"password123","first_name":"Olive"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if token, _ := result["token"].(string); token == "" {
			t.Error("expected a token")
		}
		user := result["user"].(map[string]interface{})
		if user["email"] != "owner@example.com" {
			t.Errorf("expected email owner@example.com, got %v", user["email"])
		}
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, cfg), cfg)

		rec := doRequest(r, "POST", "/auth/register", `{"email":"owner@example.com","password":"short"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		svc := &mockUserService{
			registerFn: func(_, _, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc, cfg), cfg)

		rec := doRequest(r, "POST", "/auth/register", `{"email":"owner@example.com","password":"password123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	cfg := config.Defaults()

	t.Run("token works on /auth/me", func(t *testing.T) {
		user := &models.User{Base: models.Base{ID: testUserID}, Email: "owner@example.com"}
		svc := &mockUserService{
			loginFn:       func(_, _ string) (*models.User, error) { return user, nil },
			getUserByIDFn: func(id string) (*models.User, error) { return user, nil },
		}
		r := setupAuthRouter(NewAuthHandler(svc, cfg), cfg)

		rec := doRequest(r, "POST", "/auth/login", `{"email":"owner@example.com","password":"password123"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		token := parseJSON(t, rec)["token"].(string)

		req := httptest.NewRequest("GET", "/auth/me", http.NoBody)
		req.Header.Set("Authorization", "Bearer "+token)
		me := httptest.NewRecorder()
		r.ServeHTTP(me, req)

		if me.Code != http.StatusOK {
			t.Fatalf("expected 200 from /auth/me, got %d: %s", me.Code, me.Body.String())
		}
		if parseJSON(t, me)["id"] != testUserID {
			t.Errorf("expected user %s", testUserID)
		}
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		svc := &mockUserService{
			loginFn: func(_, _ string) (*models.User, error) { return nil, apperrors.ErrInvalidCredentials },
		}
		r := setupAuthRouter(NewAuthHandler(svc, cfg), cfg)

		rec := doRequest(r, "POST", "/auth/login", `{"email":"owner@example.com","password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 400 on invalid email", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, cfg), cfg)

		rec := doRequest(r, "POST", "/auth/login", `{"email":"not-an-email","password":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("me without token returns 401", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, cfg), cfg)

		rec := doRequest(r, "GET", "/auth/me", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}
