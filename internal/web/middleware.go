package web

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

const identityHeader = "X-Identity"

// WithIdentity lifts the signed-in identity the auth front door attaches
// to each request. The engine never authenticates on its own; an absent
// header simply means an anonymous caller.
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity := strings.TrimSpace(r.Header.Get(identityHeader)); identity != "" {
			r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
		}
		next.ServeHTTP(w, r)
	})
}

func IdentityFrom(ctx context.Context) string {
	if v, ok := ctx.Value(identityKey).(string); ok {
		return v
	}
	return ""
}
