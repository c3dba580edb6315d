package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/shared"
	"github.com/novelhub/backend/internal/domain/social"
	"gorm.io/gorm"
)

// GormCommentRepository implements social.CommentRepository using GORM
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByID finds a comment by its ID
func (r *GormCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*social.Comment, error) {
	var comment social.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// FindPageByProduct returns one page of top-level comments ordered by
// creation time descending, replies loaded, plus the total count.
// Pages beyond the end yield an empty slice.
func (r *GormCommentRepository) FindPageByProduct(
	ctx context.Context,
	productID uuid.UUID,
	page, pageSize int,
) ([]social.Comment, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	base := r.db.WithContext(ctx).
		Model(&social.Comment{}).
		Where("product_id = ? AND parent_id IS NULL", productID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []social.Comment
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND parent_id IS NULL", productID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Save creates or updates a comment
func (r *GormCommentRepository) Save(ctx context.Context, comment *social.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete deletes a comment
func (r *GormCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&social.Comment{}, "id = ?", id).Error
}

// GormChapterCommentRepository implements social.ChapterCommentRepository
type GormChapterCommentRepository struct {
	db *gorm.DB
}

// NewGormChapterCommentRepository creates a new GormChapterCommentRepository
func NewGormChapterCommentRepository(db *gorm.DB) *GormChapterCommentRepository {
	return &GormChapterCommentRepository{db: db}
}

// FindByChapter returns all comments of a chapter, newest first
func (r *GormChapterCommentRepository) FindByChapter(ctx context.Context, chapterID uuid.UUID) ([]social.ChapterComment, error) {
	var comments []social.ChapterComment
	err := r.db.WithContext(ctx).
		Where("chapter_id = ?", chapterID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Save creates or updates a chapter comment
func (r *GormChapterCommentRepository) Save(ctx context.Context, comment *social.ChapterComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}
