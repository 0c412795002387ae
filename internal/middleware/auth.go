package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
)

// BasicAuth guards the admin surface with HTTP Basic credentials compared
// against two deployment-level secrets.
type BasicAuth struct {
	username string
	password string
}

func NewBasicAuth(username, password string) *BasicAuth {
	return &BasicAuth{username: username, password: password}
}

// Check compares a username/password pair against the reference secrets.
// Constant-time on both parts; case-sensitive exact match.
func (b *BasicAuth) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(b.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(b.password)) == 1
	return userOK && passOK
}

// Authorize reports whether an Authorization header value carries exactly
// the expected credentials. Missing header, wrong scheme, malformed base64
// and mismatched parts are all a deny; nothing here has side effects.
func (b *BasicAuth) Authorize(header string) bool {
	if header == "" {
		return false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Basic" {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	creds := strings.SplitN(string(decoded), ":", 2)
	if len(creds) != 2 {
		return false
	}

	return b.Check(creds[0], creds[1])
}

// Middleware short-circuits unauthenticated requests with a 401 carrying
// the Basic challenge, so browsers hitting a gated path get a login box.
func (b *BasicAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !b.Authorize(r.Header.Get("Authorization")) {
			w.Header().Set("WWW-Authenticate", `Basic realm="AI Assistant Admin"`)
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized."))
			return
		}

		next.ServeHTTP(w, r)
	})
}
