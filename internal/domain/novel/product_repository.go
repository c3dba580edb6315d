package novel

import (
	"context"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID without loading relations
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindDetailsByID finds a product with categories and chapters
	// eagerly loaded, chapters ordered by number
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// Search finds products matching a free-text term on name or
	// description, optionally restricted to the given categories
	Search(ctx context.Context, term string, categoryIDs []uuid.UUID, filter shared.Filter) ([]Product, int64, error)

	// FindRelated returns up to limit other products in randomized
	// order, excluding the given ID
	FindRelated(ctx context.Context, excludeID uuid.UUID, limit int) ([]Product, error)

	// IncrementViewCount atomically bumps the product's view counter
	// by one inside the store
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChapterRepository defines the interface for chapter persistence
type ChapterRepository interface {
	// FindByID finds a chapter by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Chapter, error)

	// FindByProduct finds all chapters of a product ordered by number
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Chapter, error)

	// Save creates or updates a chapter
	Save(ctx context.Context, chapter *Chapter) error

	// Delete deletes a chapter
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll returns all categories ordered by name
	FindAll(ctx context.Context) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error
}
