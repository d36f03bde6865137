package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentityProvider resolves the user a token was issued for.
type IdentityProvider interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// TokenParser validates raw bearer tokens.
type TokenParser interface {
	Parse(raw string, want utils.TokenType) (*utils.TokenClaims, error)
}

// Authenticate attaches the caller identity when an Authorization header is
// present. Requests without one continue anonymously; a header that does
// not carry a valid access token is rejected with 401.
func Authenticate(tokens TokenParser, users IdentityProvider, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) == 0 || !strings.EqualFold(parts[0], "Bearer") {
				// other schemes are not ours to judge
				next.ServeHTTP(w, r)
				return
			}
			if len(parts) != 2 {
				utils.ResponseUnauthorized(w, "Authorization header must contain two space-delimited values")
				return
			}

			claims, err := tokens.Parse(parts[1], utils.AccessToken)
			if err != nil {
				logger.Debug("Rejected bearer token", zap.Error(err))
				utils.ResponseUnauthorized(w, utils.DetailTokenNotValid)
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil && !errors.Is(err, utils.ErrNotFound) {
				logger.Error("Failed to load token user",
					zap.Stringer("user_id", claims.UserID),
					zap.Error(err))
				utils.ResponseInternalError(w)
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, utils.DetailUserNotFound)
				return
			}
			if !user.IsActive {
				utils.ResponseUnauthorized(w, utils.DetailUserInactive)
				return
			}

			ctx := utils.SetIdentity(r.Context(), &utils.Identity{
				UserID:      user.ID,
				Username:    user.Username,
				IsCritic:    user.IsCritic,
				IsSuperuser: user.IsSuperuser,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
