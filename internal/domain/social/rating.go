package social

import (
	"time"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/shared"
)

// Rating score bounds
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a reader's score for a product. At most one rating per
// (user, product) pair exists; ratings are updated in place.
type Rating struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_product_user,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_product_user,priority:2"`
	Score     int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}

// NewRating creates a rating for a product
func NewRating(productID, userID uuid.UUID, score int) (*Rating, error) {
	if err := validateScore(score); err != nil {
		return nil, err
	}

	return &Rating{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		UserID:     userID,
		Score:      score,
	}, nil
}

// UpdateScore replaces the rating's score
func (r *Rating) UpdateScore(score int) error {
	if err := validateScore(score); err != nil {
		return err
	}

	r.Score = score
	r.UpdatedAt = time.Now()
	return nil
}

func validateScore(score int) error {
	if score < MinRatingScore || score > MaxRatingScore {
		return shared.NewDomainError("INVALID_SCORE", "Rating score must be between 1 and 5")
	}
	return nil
}
