package social

import (
	"context"

	"github.com/google/uuid"
)

// CommentRepository defines the interface for product comment persistence
type CommentRepository interface {
	// FindByID finds a comment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// FindPageByProduct returns one page of top-level comments for a
	// product ordered by creation time descending, with replies
	// loaded, plus the total number of top-level comments.
	// Out-of-range pages yield an empty slice, not an error.
	FindPageByProduct(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]Comment, int64, error)

	// Save creates or updates a comment
	Save(ctx context.Context, comment *Comment) error

	// Delete deletes a comment
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChapterCommentRepository defines the interface for chapter comment persistence
type ChapterCommentRepository interface {
	// FindByChapter returns all comments of a chapter ordered by
	// creation time descending
	FindByChapter(ctx context.Context, chapterID uuid.UUID) ([]ChapterComment, error)

	// Save creates or updates a chapter comment
	Save(ctx context.Context, comment *ChapterComment) error
}

// RatingRepository defines the interface for rating persistence
type RatingRepository interface {
	// FindByProduct returns all ratings for a product
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Rating, error)

	// FindByUserAndProduct finds the single rating a user gave a
	// product, or shared.ErrNotFound
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*Rating, error)

	// Save creates or updates a rating
	Save(ctx context.Context, rating *Rating) error
}

// FollowRepository defines the interface for follow persistence
type FollowRepository interface {
	// Exists reports whether the user follows the product
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// Save creates a follow marker
	Save(ctx context.Context, follow *Follow) error

	// Delete removes a follow marker
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
