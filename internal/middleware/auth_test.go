package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestBasicAuth_Authorize(t *testing.T) {
	auth := NewBasicAuth("admin", "s3cret")

	tests := []struct {
		name   string
		header string
		allow  bool
	}{
		{"valid credentials", basicHeader("admin", "s3cret"), true},
		{"missing header", "", false},
		{"wrong scheme", "Bearer abc123", false},
		{"lowercase scheme", "basic " + base64.StdEncoding.EncodeToString([]byte("admin:s3cret")), false},
		{"malformed base64", "Basic not-base64!!!", false},
		{"no colon in payload", "Basic " + base64.StdEncoding.EncodeToString([]byte("admins3cret")), false},
		{"wrong username", basicHeader("root", "s3cret"), false},
		{"wrong password", basicHeader("admin", "secret"), false},
		{"case-sensitive username", basicHeader("Admin", "s3cret"), false},
		{"case-sensitive password", basicHeader("admin", "S3cret"), false},
		{"scheme only", "Basic", false},
		{"empty credentials", basicHeader("", ""), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := auth.Authorize(tc.header); got != tc.allow {
				t.Errorf("Authorize(%q) = %v, expected %v", tc.header, got, tc.allow)
			}
		})
	}
}

func TestBasicAuth_PasswordMayContainColon(t *testing.T) {
	auth := NewBasicAuth("admin", "pass:with:colons")

	if !auth.Authorize(basicHeader("admin", "pass:with:colons")) {
		t.Error("Expected allow for password containing colons")
	}
}

func TestBasicAuth_Check(t *testing.T) {
	auth := NewBasicAuth("admin", "s3cret")

	if !auth.Check("admin", "s3cret") {
		t.Error("Expected exact match to pass")
	}
	if auth.Check("admin", "") || auth.Check("", "s3cret") {
		t.Error("Expected empty part to fail")
	}
}

func TestBasicAuth_MiddlewareDenies(t *testing.T) {
	auth := NewBasicAuth("admin", "s3cret")

	called := false
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if called {
		t.Error("Expected next handler to be skipped")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rr.Code)
	}
	if got := rr.Header().Get("WWW-Authenticate"); got != `Basic realm="AI Assistant Admin"` {
		t.Errorf("Expected Basic challenge header, got %q", got)
	}
	if rr.Body.String() != "Unauthorized." {
		t.Errorf("Expected plain Unauthorized. body, got %q", rr.Body.String())
	}
}

func TestBasicAuth_MiddlewarePassesThrough(t *testing.T) {
	auth := NewBasicAuth("admin", "s3cret")

	called := false
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("Authorization", basicHeader("admin", "s3cret"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !called {
		t.Error("Expected next handler to run")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rr.Code)
	}
}
