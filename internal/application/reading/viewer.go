package reading

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/domain/shared"
)

// resolveViewer turns an optional caller ID into a user record. A nil
// ID and an ID that no longer resolves are both treated as anonymous;
// store failures propagate.
func resolveViewer(ctx context.Context, users identity.UserRepository, viewerID *uuid.UUID) (*identity.User, error) {
	if viewerID == nil {
		return nil, nil
	}

	user, err := users.FindByID(ctx, *viewerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
