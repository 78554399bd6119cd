package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"app/internal/auth"

	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

// PrincipalContextKey holds the authenticated principal's id (hex string).
const PrincipalContextKey = contextKey("principalId")

// TokenHeader is the request header carrying the signed session token.
const TokenHeader = "token"

// RequireUser gates a route on a valid user-realm token.
func RequireUser(secret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return requireRealm(auth.RealmUser, []byte(secret), logger)
}

// RequireAdmin gates a route on a valid admin-realm token.
func RequireAdmin(secret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return requireRealm(auth.RealmAdmin, []byte(secret), logger)
}

func requireRealm(realm auth.Realm, secret []byte, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get(TokenHeader)
			if tokenString == "" {
				unauthorized(w, "Token not found")
				return
			}

			principalID, err := auth.ParseToken(tokenString, realm, secret)
			if err != nil {
				logger.Debug().Err(err).Str("realm", string(realm)).Msg("Token verification failed")
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalContextKey, principalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
