package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/social"
	"gorm.io/gorm"
)

// GormFollowRepository implements social.FollowRepository using GORM
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Exists reports whether the user follows the product
func (r *GormFollowRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&social.Follow{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates a follow marker
func (r *GormFollowRepository) Save(ctx context.Context, follow *social.Follow) error {
	return r.db.WithContext(ctx).Save(follow).Error
}

// Delete removes a follow marker
func (r *GormFollowRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&social.Follow{}).Error
}
