package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/model"
	"github.com/vitaltrack/wellness-platform/internal/utils"
)

const testSecret = "unit-test-secret"

func strPtr(s string) *string { return &s }

func okHandler(c echo.Context) error {
	u, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "user missing"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": u.ID})
}

func lookupFixed(u model.User) UserLookup {
	return func(ctx context.Context, id uint64) (model.User, error) {
		if id != u.ID {
			return model.User{}, errors.New("no such user")
		}
		return u, nil
	}
}

func runSession(t *testing.T, lookup UserLookup, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := SessionAuth(testSecret, lookup)(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestSessionAuthMissingToken(t *testing.T) {
	rec := runSession(t, lookupFixed(model.User{ID: 1}), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAuthCookie(t *testing.T) {
	u := model.User{ID: 42, Role: model.RoleUser}
	tok, err := utils.NewSessionToken(testSecret, u.ID, 1)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	rec := runSession(t, lookupFixed(u), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok.Token})
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestSessionAuthBearer(t *testing.T) {
	u := model.User{ID: 7, Role: model.RoleUser}
	tok, err := utils.NewSessionToken(testSecret, u.ID, 1)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	rec := runSession(t, lookupFixed(u), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok.Token)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestSessionAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewSessionToken("some-other-secret", 42, 1)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	rec := runSession(t, lookupFixed(model.User{ID: 42}), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok.Token})
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAuthDeletedUser(t *testing.T) {
	// Token is valid but the lookup no longer finds the user.
	tok, err := utils.NewSessionToken(testSecret, 99, 1)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	lookup := func(ctx context.Context, id uint64) (model.User, error) {
		return model.User{}, errors.New("user deleted")
	}
	rec := runSession(t, lookup, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok.Token})
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAuthGarbageToken(t *testing.T) {
	rec := runSession(t, lookupFixed(model.User{ID: 1}), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not.a.jwt"})
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
