package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vitaltrack/wellness-platform/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Add("X-Multi", "a")
	hdr.Add("X-Multi", "b")
	body := []byte(`{"plans":[]}`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatal("decodePayload reported failure")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", gotHdr.Get("Content-Type"))
	}
	if vals := gotHdr.Values("X-Multi"); len(vals) != 2 || vals[0] != "a" || vals[1] != "b" {
		t.Errorf("X-Multi = %v", vals)
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestPayloadEmptyBody(t *testing.T) {
	payload, err := encodePayload(http.StatusOK, http.Header{}, nil)
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}
	status, _, body, ok := decodePayload(payload)
	if !ok || status != http.StatusOK || len(body) != 0 {
		t.Fatalf("got status=%d body=%q ok=%v", status, body, ok)
	}
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}, []byte("short"), {0, 0, 0, 200, 0, 0, 0, 255}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("decodePayload(%v) accepted garbage", bs)
		}
	}
}

func cacheCtx(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(req.URL.Path)
	return c
}

func TestCacheKeyStrategies(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, cacheCtx(http.MethodGet, "/v1/plans"))
	b := cacheKeyFrom(cfg, cacheCtx(http.MethodGet, "/v1/plans"))
	if a != b {
		t.Errorf("same request produced different keys: %q vs %q", a, b)
	}

	q := cacheKeyFrom(cfg, cacheCtx(http.MethodGet, "/v1/plans?active=1"))
	if q == a {
		t.Error("route_query strategy ignored the query string")
	}

	routeOnly := config.CacheConfig{Prefix: "cache", KeyStrategy: "route"}
	r1 := cacheKeyFrom(routeOnly, cacheCtx(http.MethodGet, "/v1/plans"))
	r2 := cacheKeyFrom(routeOnly, cacheCtx(http.MethodGet, "/v1/plans?active=1"))
	if r1 != r2 {
		t.Error("route strategy keyed on the query string")
	}

	other := cacheKeyFrom(cfg, cacheCtx(http.MethodGet, "/v1/contents"))
	if other == a {
		t.Error("different routes collided")
	}
}

func TestCacheDisabledPassesThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)
	c := cacheCtx(http.MethodGet, "/v1/plans")
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil || !called {
		t.Fatalf("disabled cache should pass through (err=%v called=%v)", err, called)
	}
}
