package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"car-advisor/internal/domain/entities"
	Iservices "car-advisor/internal/domain/interfaces/services"
)

type contextKey string

const principalContextKey contextKey = "principal"

// PrincipalFromContext retrieves the verified identity stored by RequireAuth.
func PrincipalFromContext(ctx context.Context) (*entities.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(*entities.Principal)
	return principal, ok
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified principal on the request context.
func RequireAuth(tokens Iservices.ITokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing token")
				return
			}

			principal, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
