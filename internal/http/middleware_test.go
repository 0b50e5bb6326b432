package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInquiryRateLimit(t *testing.T) {
	app := appWith(failingStore{err: errSecret}, 3)

	for i := 0; i < 4; i++ {
		code, _ := do(t, app, "POST", "/api/inquiries", `{"name":`)
		if i < 3 && code == http.StatusTooManyRequests {
			t.Fatalf("hit rate limit too early at %d", i)
		}
		if i == 3 && code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after limit, got %d", code)
		}
	}

	// listing is not limited
	for i := 0; i < 5; i++ {
		if code, _ := do(t, app, "GET", "/api/brands", ""); code != http.StatusOK {
			t.Fatalf("brands limited at %d: %d", i, code)
		}
	}
}

func TestRateLimitHitIsLogged(t *testing.T) {
	app := appWith(nil, 1)
	entries := captureLogs(t, func() {
		do(t, app, "POST", "/api/inquiries", `{}`)
		do(t, app, "POST", "/api/inquiries", `{}`)
	})
	e, ok := hasAction(entries, "rate.inquiry.hit")
	if !ok || e.Level != "warn" {
		t.Fatalf("rate.inquiry.hit not logged at warn: %+v", entries)
	}
}

func TestCORSOpenPolicy(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("OPTIONS", "/api/inquiries", nil)
	req.Header.Set("Origin", "https://chiragbattery.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Anything")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin: %q", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Fatalf("allow-methods: %q", got)
	}
	if got := strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers")); !strings.Contains(got, "x-anything") {
		t.Fatalf("allow-headers: %q", got)
	}

	req = httptest.NewRequest("OPTIONS", "/api/products", nil)
	req.Header.Set("Origin", "https://chiragbattery.example")
	req.Header.Set("Access-Control-Request-Method", "PURGE")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); got != "PURGE" {
		t.Fatalf("requested method not allowed: %q", got)
	}

	req = httptest.NewRequest("GET", "/api/brands", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("simple request allow-origin: %q", got)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Fatal("request id header missing")
	}
}

func TestBodySizeLimit(t *testing.T) {
	app, _ := newTestApp(t)

	oversize := bytes.Repeat([]byte("A"), (1<<20)+10)
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(oversize))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	// Fiber returns an error instead of a response when body too large; treat that as pass
	if err != nil {
		if strings.Contains(err.Error(), "body size exceeds") || strings.Contains(err.Error(), "too large") {
			return
		}
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for oversize, got %d", resp.StatusCode)
	}
}

func TestAuditAndValidationLogs(t *testing.T) {
	app, _ := newTestApp(t)
	entries := captureLogs(t, func() {
		do(t, app, "POST", "/api/products", `{"name":"Exide Eezy","brand":"Exide","type":"car-battery"}`)
		do(t, app, "POST", "/api/products", `{"name":"","brand":"Duracell","type":"car-battery"}`)
	})

	e, ok := hasAction(entries, "products.create")
	if !ok || e.Level != "audit" || e.Fields["id"] == "" {
		t.Fatalf("products.create audit missing: %+v", entries)
	}
	e, ok = hasAction(entries, "validation.fail")
	if !ok || e.Level != "warn" {
		t.Fatalf("validation.fail missing: %+v", entries)
	}
	fields := e.Fields["fields"].([]any)
	if len(fields) != 2 {
		t.Fatalf("validation.fail fields: %v", fields)
	}
}

func TestStoreFailureIsLogged(t *testing.T) {
	app := appWith(failingStore{err: errSecret}, 10)
	entries := captureLogs(t, func() {
		do(t, app, "GET", "/api/products", "")
	})
	e, ok := hasAction(entries, "products.list.fail")
	if !ok || e.Level != "error" || !strings.Contains(e.Err, "connection refused") {
		t.Fatalf("store failure not logged with cause: %+v", entries)
	}
}
