package social

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
	"github.com/novelhub/backend/internal/domain/social"
)

// RatingService handles rating submission. A user holds at most one
// rating per product; repeat submissions update the existing score so
// the average never double-counts a reader.
type RatingService struct {
	ratings  social.RatingRepository
	products novel.ProductRepository
}

// NewRatingService creates a new RatingService
func NewRatingService(ratings social.RatingRepository, products novel.ProductRepository) *RatingService {
	return &RatingService{
		ratings:  ratings,
		products: products,
	}
}

// Rate records or updates the user's score for a product
func (s *RatingService) Rate(ctx context.Context, productID, userID uuid.UUID, score int) (*social.Rating, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	existing, err := s.ratings.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		rating, err := social.NewRating(productID, userID, score)
		if err != nil {
			return nil, err
		}
		if err := s.ratings.Save(ctx, rating); err != nil {
			return nil, err
		}
		return rating, nil
	}

	if err := existing.UpdateScore(score); err != nil {
		return nil, err
	}
	if err := s.ratings.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
