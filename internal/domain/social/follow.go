package social

import (
	"time"

	"github.com/google/uuid"
)

// Follow marks a user as following a product. Existence of the row is
// the whole state; there is nothing else to it.
type Follow struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// NewFollow creates a follow marker
func NewFollow(userID, productID uuid.UUID) *Follow {
	return &Follow{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
}
