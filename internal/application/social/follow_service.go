package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/social"
)

// FollowService handles following/unfollowing products. Both
// operations are idempotent; existence of the row is the whole state.
type FollowService struct {
	follows  social.FollowRepository
	products novel.ProductRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(follows social.FollowRepository, products novel.ProductRepository) *FollowService {
	return &FollowService{
		follows:  follows,
		products: products,
	}
}

// Follow marks the user as following the product
func (s *FollowService) Follow(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	exists, err := s.follows.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.follows.Save(ctx, social.NewFollow(userID, productID))
}

// Unfollow removes the follow marker if present
func (s *FollowService) Unfollow(ctx context.Context, userID, productID uuid.UUID) error {
	return s.follows.Delete(ctx, userID, productID)
}
