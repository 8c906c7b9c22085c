package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func protectedRouter(t *testing.T, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestProtectMissingHeader(t *testing.T) {
	r := protectedRouter(t, Protect())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not authorized") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestProtectMalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(t, Protect())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestProtectMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	r := protectedRouter(t, Protect())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func setRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("admin_role", role)
		c.Next()
	}
}

func TestAuthorizeAllowsMatchingRole(t *testing.T) {
	r := protectedRouter(t, setRole("admin"), Authorize("admin", "superadmin"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorizeRejectsWrongRole(t *testing.T) {
	r := protectedRouter(t, setRole("admin"), Authorize("superadmin"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestAuthorizeRejectsUnresolvedPrincipal(t *testing.T) {
	r := protectedRouter(t, Authorize("admin"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthorizeUserRole(t *testing.T) {
	setUser := func(c *gin.Context) {
		c.Set("user_id", "64f1b2a3c4d5e6f7a8b9c0d1")
		c.Next()
	}

	r := protectedRouter(t, setUser, Authorize("user"))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for user role, got %d", rec.Code)
	}

	r = protectedRouter(t, setUser, Authorize("admin"))
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for user on admin route, got %d", rec.Code)
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	r := protectedRouter(t, setRole("admin"), RequireSuperAdmin())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for admin, got %d", rec.Code)
	}

	r = protectedRouter(t, setRole("superadmin"), RequireSuperAdmin())
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for superadmin, got %d", rec.Code)
	}
}
