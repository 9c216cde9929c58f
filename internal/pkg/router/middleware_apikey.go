package router

import (
	"context"
	"net/http"
	"strings"
)

// HeaderAPIKey carries the caller's credential on protected endpoints.
const HeaderAPIKey = "X-API-Key"

// KeyAuthorizer reports whether the presented key grants access. An
// implementation must answer false on any lookup failure, never error out.
type KeyAuthorizer interface {
	Authorize(ctx context.Context, key string) bool
}

// MiddlewareAPIKey guards an endpoint with an exact-match credential check.
// A missing, malformed, or unknown key yields the same unauthorized response.
func MiddlewareAPIKey(gate KeyAuthorizer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(HeaderAPIKey))
			if key == "" || !gate.Authorize(r.Context(), key) {
				writeJSON(w, errorResponse{Message: "Unauthorized: Invalid or missing API Key"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
