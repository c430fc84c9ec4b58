package auth

import (
	"context"
	"net/http"

	"github.com/hsm-gustavo/smart-pantry/internal/api/respond"
)

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware verifies the bearer token and stores the caller's
// Identity in the request context. Requests without a valid token never
// reach next.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "Missing or malformed authorization header")
			return
		}

		id, err := h.service.Introspect(r.Context(), token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *id)))
	})
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext returns the identity set by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok && id.UserID != ""
}
