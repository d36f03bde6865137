package middleware

import (
	"net/http"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// Permission decides whether a caller may use a route. A nil identity is an
// anonymous caller.
type Permission func(identity *utils.Identity) bool

func AllowAny(*utils.Identity) bool { return true }

func IsAdmin(identity *utils.Identity) bool {
	return identity != nil && identity.IsSuperuser
}

func IsCriticOrAdmin(identity *utils.Identity) bool {
	return identity != nil && (identity.IsCritic || identity.IsSuperuser)
}

// Require rejects callers the permission denies: anonymous callers get 401,
// authenticated ones 403.
func Require(perm Permission, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentity(r.Context())
			if perm(identity) {
				next.ServeHTTP(w, r)
				return
			}

			if !ok {
				utils.ResponseUnauthorized(w, utils.DetailNotAuthenticated)
				return
			}

			logger.Warn("Permission denied",
				zap.String("user_id", identity.UserID.String()),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, utils.DetailPermissionDenied)
		})
	}
}
