package middleware

import (
	"context"
	"net/http"
	"strings"

	"talento/internal/domain/identity"
)

type ctxKey string

const ctxKeyUser ctxKey = "session_user"

// SessionUser is the authenticated caller as carried through the
// request context.
type SessionUser struct {
	AccountID  int64
	Username   string
	NationalID string
	Role       string
}

// Auth parses a Bearer token when one is present. Requests without a
// valid token pass through anonymous; the rbac layer decides access.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := identity.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, SessionUser{
				AccountID:  claims.AccountID,
				Username:   claims.Username,
				NationalID: claims.NationalID,
				Role:       claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (SessionUser, bool) {
	user, ok := ctx.Value(ctxKeyUser).(SessionUser)
	return user, ok
}
