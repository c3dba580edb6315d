package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormChapterRepository implements novel.ChapterRepository using GORM
type GormChapterRepository struct {
	db *gorm.DB
}

// NewGormChapterRepository creates a new GormChapterRepository
func NewGormChapterRepository(db *gorm.DB) *GormChapterRepository {
	return &GormChapterRepository{db: db}
}

// FindByID finds a chapter by its ID
func (r *GormChapterRepository) FindByID(ctx context.Context, id uuid.UUID) (*novel.Chapter, error) {
	var chapter novel.Chapter
	if err := r.db.WithContext(ctx).First(&chapter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &chapter, nil
}

// FindByProduct finds all chapters of a product ordered by number
func (r *GormChapterRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]novel.Chapter, error) {
	var chapters []novel.Chapter
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("number ASC").
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

// Save creates or updates a chapter
func (r *GormChapterRepository) Save(ctx context.Context, chapter *novel.Chapter) error {
	return r.db.WithContext(ctx).Save(chapter).Error
}

// Delete deletes a chapter
func (r *GormChapterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&novel.Chapter{}, "id = ?", id).Error
}
