package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/model"
)

func runGate(t *testing.T, gate echo.MiddlewareFunc, user *model.User) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user", *user)
	}
	h := gate(func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *model.User
		want int
	}{
		{"no user in context", nil, http.StatusForbidden},
		{"regular user", &model.User{ID: 1, Role: model.RoleUser}, http.StatusForbidden},
		{"admin", &model.User{ID: 2, Role: model.RoleAdmin}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runGate(t, RequireAdmin(), tt.user)
			if rec.Code != tt.want {
				t.Fatalf("got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireUserType(t *testing.T) {
	tests := []struct {
		name string
		gate string
		user *model.User
		want int
	}{
		{"no user in context", model.UserTypeCompany, nil, http.StatusForbidden},
		{"no type claimed yet", model.UserTypeCompany, &model.User{ID: 1, Role: model.RoleUser}, http.StatusForbidden},
		{"wrong type", model.UserTypeCompany, &model.User{ID: 1, Role: model.RoleUser, UserType: strPtr(model.UserTypeEmployee)}, http.StatusForbidden},
		{"matching company", model.UserTypeCompany, &model.User{ID: 1, Role: model.RoleUser, UserType: strPtr(model.UserTypeCompany)}, http.StatusOK},
		{"matching employee", model.UserTypeEmployee, &model.User{ID: 2, Role: model.RoleUser, UserType: strPtr(model.UserTypeEmployee)}, http.StatusOK},
		// Admin role does not stand in for a profile type: the gates are
		// separate predicates.
		{"admin without type", model.UserTypeCompany, &model.User{ID: 3, Role: model.RoleAdmin}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runGate(t, RequireUserType(tt.gate), tt.user)
			if rec.Code != tt.want {
				t.Fatalf("got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
