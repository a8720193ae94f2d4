package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/priyanshu599/backendRantease/internal/app"
	"github.com/priyanshu599/backendRantease/internal/domain"
)

// Identity is the caller's resolved identity, carried explicitly through
// the request context. Token issuance lives outside this service.
type Identity struct {
	UserID string
	Role   domain.Role
}

type identityKey struct{}

// IdentityFrom returns the identity placed by RequireAuth.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// WithIdentity injects an identity directly; used by tests.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// RequireAuth verifies the Bearer token and resolves {userId, role} into
// the request context. HMAC only, per the token issuer.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == r.Header.Get("Authorization") {
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
				return
			}

			claims := jwt.MapClaims{}
			tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !tok.Valid {
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
				return
			}

			sub, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			if sub == "" || !domain.Role(role).Valid() {
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "malformed claims")
				return
			}

			id := Identity{UserID: sub, Role: domain.Role(role)}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole gates a route on the caller's role via the authorization
// guard. Must run after RequireAuth.
func RequireRole(required domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "no identity")
				return
			}
			if !app.Allow(id.Role, required) {
				writeProblem(w, http.StatusForbidden, "Forbidden", "requires "+string(required)+" role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
