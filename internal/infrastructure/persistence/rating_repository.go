package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/shared"
	"github.com/novelhub/backend/internal/domain/social"
	"gorm.io/gorm"
)

// GormRatingRepository implements social.RatingRepository using GORM
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GormRatingRepository
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// FindByProduct returns all ratings for a product
func (r *GormRatingRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]social.Rating, error) {
	var ratings []social.Rating
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// FindByUserAndProduct finds the single rating a user gave a product
func (r *GormRatingRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*social.Rating, error) {
	var rating social.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// Save creates or updates a rating
func (r *GormRatingRepository) Save(ctx context.Context, rating *social.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}
