package social

import (
	"strings"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/shared"
)

// ChapterComment is a reader comment attached to a single chapter
type ChapterComment struct {
	shared.BaseEntity
	ChapterID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:varchar(1000);not null"`
}

// TableName returns the table name for GORM
func (ChapterComment) TableName() string {
	return "chapter_comments"
}

// NewChapterComment creates a comment on a chapter
func NewChapterComment(chapterID, userID uuid.UUID, content string) (*ChapterComment, error) {
	if err := ValidateCommentContent(content); err != nil {
		return nil, err
	}

	return &ChapterComment{
		BaseEntity: shared.NewBaseEntity(),
		ChapterID:  chapterID,
		UserID:     userID,
		Content:    strings.TrimSpace(content),
	}, nil
}
