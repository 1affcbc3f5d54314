package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/config"
)

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

// The secret comparison runs before anything touches the database, so the
// rejection paths are testable without one.
func TestRegisterAdminSecretGate(t *testing.T) {
	t.Run("disabled when unset", func(t *testing.T) {
		h := &AuthHandler{Cfg: config.Config{AdminSecret: ""}}
		rec := postJSON(t, h.RegisterAdmin, "/v1/auth/register-admin",
			`{"name":"A","email":"a@b.co","password":"longenough","secretKey":""}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 with no secret configured, got %d", rec.Code)
		}
	})
	t.Run("wrong secret", func(t *testing.T) {
		h := &AuthHandler{Cfg: config.Config{AdminSecret: "real-secret"}}
		rec := postJSON(t, h.RegisterAdmin, "/v1/auth/register-admin",
			`{"name":"A","email":"a@b.co","password":"longenough","secretKey":"guess"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 with wrong secret, got %d", rec.Code)
		}
	})
	t.Run("right secret but bad payload", func(t *testing.T) {
		h := &AuthHandler{Cfg: config.Config{AdminSecret: "real-secret"}}
		rec := postJSON(t, h.RegisterAdmin, "/v1/auth/register-admin",
			`{"name":"A","email":"not-an-email","password":"longenough","secretKey":"real-secret"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for invalid email, got %d", rec.Code)
		}
	})
}

func TestRegisterValidation(t *testing.T) {
	h := &AuthHandler{Cfg: config.Config{}}
	tests := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","email":"a@b.co","password":"longenough"}`},
		{"bad email", `{"name":"A","email":"nope","password":"longenough"}`},
		{"short password", `{"name":"A","email":"a@b.co","password":"short"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, "/v1/auth/register", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}
