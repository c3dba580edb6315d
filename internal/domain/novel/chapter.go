package novel

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/shared"
)

// Chapter is a titled, ordered unit of content belonging to a product.
// The body either lives inline in Content or in an external file
// referenced by FilePath; relations are plain foreign keys, there is
// no back-pointer to the owning product.
type Chapter struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Number    int       `gorm:"not null;default:0"`
	IsPremium bool      `gorm:"not null;default:false"`
	Content   string    `gorm:"type:text"`
	FilePath  string    `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Chapter) TableName() string {
	return "chapters"
}

// NewChapter creates a new chapter for a product
func NewChapter(productID uuid.UUID, title string, number int, premium bool) (*Chapter, error) {
	if err := validateChapterTitle(title); err != nil {
		return nil, err
	}
	if number < 0 {
		return nil, shared.NewDomainError("INVALID_CHAPTER_NUMBER", "Chapter number cannot be negative")
	}

	return &Chapter{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Title:      strings.TrimSpace(title),
		Number:     number,
		IsPremium:  premium,
	}, nil
}

// SetContent stores the chapter body inline
func (c *Chapter) SetContent(body string) {
	c.Content = body
	c.UpdatedAt = time.Now()
}

// SetFilePath points the chapter body at an externally stored file
func (c *Chapter) SetFilePath(path string) {
	c.FilePath = path
	c.UpdatedAt = time.Now()
}

// HasExternalContent reports whether the body lives in the file store
func (c *Chapter) HasExternalContent() bool {
	return c.FilePath != ""
}

func validateChapterTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Chapter title cannot be empty")
	}
	if len(title) > 100 {
		return shared.NewDomainError("INVALID_TITLE", "Chapter title cannot exceed 100 characters")
	}
	return nil
}
