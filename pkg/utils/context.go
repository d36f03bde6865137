package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const IdentityKey contextKey = "identity"

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID      uuid.UUID
	Username    string
	IsCritic    bool
	IsSuperuser bool
}

func SetIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentity returns the caller, or false for anonymous requests.
func GetIdentity(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return identity.UserID, true
}
