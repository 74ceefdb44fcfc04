package middlewares

//go:generate mockgen -destination=middlewares_mock.go -package=middlewares . Tokener

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-expense-manager/internal/jwt"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that validates the bearer session token
// and stores its claims in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Errorw("authorization failed", "err", err)
				deny(w, http.StatusUnauthorized, "Unauthorized user, no token")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.FromContext(ctx).Errorw("authorization failed", "err", err)
				deny(w, http.StatusUnauthorized, "Unauthorized user")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

// RequireRole rejects requests whose token was not issued for role.
// It must run after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := jwt.ClaimsFromContext(r.Context())
			if claims == nil {
				deny(w, http.StatusUnauthorized, "Unauthorized user")
				return
			}
			if claims.Role != role {
				logger.FromContext(r.Context()).Warnw("role mismatch", "public_id", claims.PublicID, "role", claims.Role, "required", role)
				deny(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "failed",
		"message": message,
	})
}
