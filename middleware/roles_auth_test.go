package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gramseva/gramseva-backend/constants"
	"github.com/gramseva/gramseva-backend/utils"
)

func newRoleRouter(t *testing.T, claims *utils.JWTClaims, allowed ...constants.RoleEnum) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set("userClaims", claims)
		}
		c.Next()
	})
	r.GET("/guarded", RoleAuthorization(allowed...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRoleAuthorization_AllowsListedRole(t *testing.T) {
	claims := &utils.JWTClaims{UserID: "u", RuralBodyID: "r", Role: "admin"}
	r := newRoleRouter(t, claims, constants.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRoleAuthorization_RejectsOtherRole(t *testing.T) {
	claims := &utils.JWTClaims{UserID: "u", RuralBodyID: "r", Role: "user"}
	r := newRoleRouter(t, claims, constants.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestRoleAuthorization_MissingClaims(t *testing.T) {
	r := newRoleRouter(t, nil, constants.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
