package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gramseva/gramseva-backend/models"
	"github.com/gramseva/gramseva-backend/services"
)

type stubAuthService struct {
	registerFn func(req *models.RegisterUserRequest) (*models.AuthResponse, error)
	loginFn    func(req *models.LoginRequest) (*models.AuthResponse, error)
}

func (s *stubAuthService) Register(_ context.Context, req *models.RegisterUserRequest) (*models.AuthResponse, error) {
	return s.registerFn(req)
}

func (s *stubAuthService) Login(_ context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	return s.loginFn(req)
}

func newAuthRouter(t *testing.T, svc services.AuthenticationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAuthenticationHandler(svc)
	r := gin.New()
	r.POST("/api/users/register", h.Register)
	r.POST("/api/users/login", h.Login)
	return r
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(*models.LoginRequest) (*models.AuthResponse, error) {
			return nil, services.ErrInvalidCredentials
		},
	}
	r := newAuthRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(`{"email":"a@b.c","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	// The message must not reveal whether the email exists.
	if !strings.Contains(w.Body.String(), "invalid email or password") {
		t.Errorf("body = %s, want generic credential error", w.Body.String())
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(*models.LoginRequest) (*models.AuthResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	r := newAuthRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(*models.RegisterUserRequest) (*models.AuthResponse, error) {
			return nil, services.ErrEmailTaken
		},
	}
	r := newAuthRouter(t, svc)

	payload := `{
		"name":"Ravi","email":"ravi@example.com","password":"secret1","phone":"9999999999",
		"ruralBodyId":"2b7f5a1e-0000-4000-8000-000000000001",
		"dob":"1990-01-01T00:00:00Z","gender":"male","occupation":"farmer",
		"maritalStatus":"married","parentName":"Mohan","householdHead":"Mohan",
		"address":"Village Road","landmark":"Near temple","aadhaar":"123412341234"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "already exists") {
		t.Errorf("body = %s, want duplicate-email error", w.Body.String())
	}
}

func TestRegister_Success(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(req *models.RegisterUserRequest) (*models.AuthResponse, error) {
			return &models.AuthResponse{Name: req.Name, Email: req.Email, Role: "user", Token: "signed"}, nil
		},
	}
	r := newAuthRouter(t, svc)

	payload := `{
		"name":"Ravi","email":"ravi@example.com","password":"secret1","phone":"9999999999",
		"ruralBodyId":"2b7f5a1e-0000-4000-8000-000000000001",
		"dob":"1990-01-01T00:00:00Z","gender":"male","occupation":"farmer",
		"maritalStatus":"married","parentName":"Mohan","householdHead":"Mohan",
		"address":"Village Road","landmark":"Near temple","aadhaar":"123412341234"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"token":"signed"`) {
		t.Errorf("body = %s, want issued token", w.Body.String())
	}
}
