package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestValidateRatings(t *testing.T) {
	tests := []struct {
		name string
		req  surveyReq
		want bool
	}{
		{"all minimum", surveyReq{MoodLevel: 1, StressLevel: 1, FatigueLevel: 1, WorkSatisfaction: 1}, true},
		{"all maximum", surveyReq{MoodLevel: 5, StressLevel: 5, FatigueLevel: 5, WorkSatisfaction: 5}, true},
		{"mixed valid", surveyReq{MoodLevel: 3, StressLevel: 2, FatigueLevel: 4, WorkSatisfaction: 5}, true},
		{"mood zero", surveyReq{MoodLevel: 0, StressLevel: 3, FatigueLevel: 3, WorkSatisfaction: 3}, false},
		{"stress above max", surveyReq{MoodLevel: 3, StressLevel: 6, FatigueLevel: 3, WorkSatisfaction: 3}, false},
		{"fatigue negative", surveyReq{MoodLevel: 3, StressLevel: 3, FatigueLevel: -1, WorkSatisfaction: 3}, false},
		{"satisfaction missing", surveyReq{MoodLevel: 3, StressLevel: 3, FatigueLevel: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateRatings(tt.req); got != tt.want {
				t.Errorf("validateRatings(%+v) = %v, want %v", tt.req, got, tt.want)
			}
		})
	}
}

func queryCtx(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseDateParam(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		d, ok := parseDateParam(queryCtx("/v1/company/wellness-stats"), "start_date")
		if !ok || d != nil {
			t.Fatalf("absent param: d=%v ok=%v", d, ok)
		}
	})
	t.Run("valid", func(t *testing.T) {
		d, ok := parseDateParam(queryCtx("/v1/company/wellness-stats?start_date=2026-01-15"), "start_date")
		if !ok || d == nil {
			t.Fatalf("valid param rejected: d=%v ok=%v", d, ok)
		}
		want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		if !d.Equal(want) {
			t.Errorf("parsed %v, want %v", d, want)
		}
	})
	t.Run("malformed", func(t *testing.T) {
		if _, ok := parseDateParam(queryCtx("/v1/company/wellness-stats?end_date=15/01/2026"), "end_date"); ok {
			t.Error("malformed date accepted")
		}
	})
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "user+tag@sub.domain.org"}
	for _, s := range valid {
		if !validEmail(s) {
			t.Errorf("validEmail(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "plainaddress", "@no-local.com", "spaces in@mail.com"}
	for _, s := range invalid {
		if validEmail(s) {
			t.Errorf("validEmail(%q) = true, want false", s)
		}
	}
}

func TestIDParam(t *testing.T) {
	e := echo.New()
	newCtx := func(raw string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(raw)
		return c
	}

	if id, ok := idParam(newCtx("42")); !ok || id != 42 {
		t.Errorf("idParam(42) = %d, %v", id, ok)
	}
	for _, raw := range []string{"0", "-1", "abc", ""} {
		if _, ok := idParam(newCtx(raw)); ok {
			t.Errorf("idParam(%q) accepted", raw)
		}
	}
}
