package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bobbygriffin/neuroflow/token"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserID extracts the authenticated user's id from the request context.
// It is only present on requests that passed JWTAuth.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// JWTAuth validates the bearer token and rejects the request before any
// handler or query runs. The identity placed in the context is the only
// source of user_id downstream; it is never read from client input.
func JWTAuth(secret []byte, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header required")
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid authorization header format")
				return
			}

			userID, err := token.Parse(secret, parts[1])
			if err != nil {
				logger.Warn("invalid token", "error", err)
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
