package middleware

import (
	"errors"
	"net/http"
	"strings"

	"album-shop/internal/data/entity"
	"album-shop/internal/errs"
	"album-shop/internal/usecase"
	"album-shop/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token (signature, expiry, revocation)
// through the identity service and stores the subject in the request
// context. Every protected route sits behind this.
func Authenticate(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawToken, ok := bearerToken(r)
			if !ok {
				utils.ResponseUnauthorized(w, "Missing or malformed authorization header. Use: Bearer <token>")
				return
			}

			subject, err := auth.Authorize(r.Context(), rawToken, "")
			if err != nil {
				if !errors.Is(err, errs.ErrUnauthorized) {
					logger.Error("Failed to authorize request", zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
					return
				}
				utils.ResponseUnauthorized(w, "Invalid, expired or revoked token")
				return
			}

			ctx := utils.SetAuthContext(r.Context(), subject, "")
			ctx = utils.SetTokenContext(ctx, rawToken)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin re-runs the authorization gate with the admin role required. Must
// be chained after Authenticate, which stashes the raw token in the context.
func Admin(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawToken, ok := utils.GetTokenFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			subject, err := auth.Authorize(r.Context(), rawToken, entity.RoleAdmin)
			switch {
			case err == nil:
			case errors.Is(err, errs.ErrForbidden):
				logger.Warn("Non-admin access attempt",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			case errors.Is(err, errs.ErrUnauthorized):
				utils.ResponseUnauthorized(w, "Invalid, expired or revoked token")
				return
			default:
				logger.Error("Admin check failed", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetAuthContext(r.Context(), subject, string(entity.RoleAdmin))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
