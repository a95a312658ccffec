package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/readleaf/readleaf-server/internal/jwt"
	"github.com/readleaf/readleaf-server/internal/logger"
)

// Tokener defines the minimal token interface needed by the middlewares.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type contextKey struct{}

var claimsKey = contextKey{}

// GetClaimsFromContext retrieves the decoded token claims attached by
// AuthMiddleware. Returns nil if the request was not authenticated.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

type authError struct {
	Message string `json:"message"`
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authError{Message: message})
}

// AuthMiddleware returns a middleware that requires a valid bearer token and
// attaches its decoded claims to the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Access token is missing")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				if errors.Is(err, jwt.ErrTokenExpired) {
					writeAuthError(w, http.StatusForbidden, "Token has expired")
				} else {
					writeAuthError(w, http.StatusForbidden, "Token is invalid")
				}
				return
			}

			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenCheckMiddleware returns a middleware that verifies the bearer token
// without attaching anything to the request. Unlike AuthMiddleware, a
// verification failure that is neither an expired nor an invalid token is
// reported as an internal error; clients observe this asymmetry.
func TokenCheckMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Access token is missing or invalid.")
				return
			}

			if _, err := tokener.GetClaims(ctx, tokenString); err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					writeAuthError(w, http.StatusForbidden, "Token has expired.")
				case errors.Is(err, jwt.ErrTokenInvalid):
					writeAuthError(w, http.StatusForbidden, "Token is invalid.")
				default:
					writeAuthError(w, http.StatusInternalServerError, "An error occurred while validating the token.")
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
