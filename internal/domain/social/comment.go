package social

import (
	"strings"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/shared"
)

// MaxCommentLength is the upper bound for comment content
const MaxCommentLength = 1000

// Comment is a reader comment on a product. Replies reference their
// parent through ParentID; there are no cyclic navigation properties.
type Comment struct {
	shared.BaseEntity
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Content   string     `gorm:"type:varchar(1000);not null"`

	Replies []Comment `gorm:"foreignKey:ParentID"`
}

// TableName returns the table name for GORM
func (Comment) TableName() string {
	return "comments"
}

// NewComment creates a top-level comment on a product
func NewComment(productID, userID uuid.UUID, content string) (*Comment, error) {
	if err := ValidateCommentContent(content); err != nil {
		return nil, err
	}

	return &Comment{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		UserID:     userID,
		Content:    strings.TrimSpace(content),
	}, nil
}

// NewReply creates a reply to an existing comment on the same product
func NewReply(parent *Comment, userID uuid.UUID, content string) (*Comment, error) {
	reply, err := NewComment(parent.ProductID, userID, content)
	if err != nil {
		return nil, err
	}

	parentID := parent.ID
	reply.ParentID = &parentID
	return reply, nil
}

// ValidateCommentContent enforces the non-empty, bounded-length rule
// shared by product and chapter comments
func ValidateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_COMMENT", "Comment content is required")
	}
	if len(content) > MaxCommentLength {
		return shared.NewDomainError("INVALID_COMMENT", "Comment content cannot exceed 1000 characters")
	}
	return nil
}
