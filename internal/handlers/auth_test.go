package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/jeevanM12/Embiodary/internal/models"
	"github.com/jeevanM12/Embiodary/internal/store"
)

const testSecret = "test-secret"

func newAuthRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", Login(st, testSecret, time.Hour))
	r.POST("/auth/logout", Logout(st))
	return r
}

func TestLoginAdminIssuesToken(t *testing.T) {
	st := store.New(zap.NewNop())
	r := newAuthRouter(st)

	w := performJSON(t, r, "POST", "/auth/login", gin.H{"role": "ADMIN"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Role != models.RoleAdmin {
		t.Fatalf("expected ADMIN identity, got %q", resp.User.Role)
	}

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != "ADMIN" || claims["sub"] != "admin1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginEmployeeInvalidCode(t *testing.T) {
	st := store.New(zap.NewNop())
	st.Seed()
	r := newAuthRouter(st)

	w := performJSON(t, r, "POST", "/auth/login", gin.H{"role": "EMPLOYEE", "employeeCode": "999999"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if _, ok := st.CurrentUser(); ok {
		t.Fatal("failed login must not set the session user")
	}
}

func TestLoginUnknownRole(t *testing.T) {
	st := store.New(zap.NewNop())
	r := newAuthRouter(st)

	w := performJSON(t, r, "POST", "/auth/login", gin.H{"role": "SUPERUSER"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	st := store.New(zap.NewNop())
	st.Login(models.RoleCustomer, "")
	r := newAuthRouter(st)

	w := performJSON(t, r, "POST", "/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, ok := st.CurrentUser(); ok {
		t.Fatal("logout must clear the session user")
	}
}
