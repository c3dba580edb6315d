package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements novel.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID without loading relations
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*novel.Product, error) {
	var product novel.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindDetailsByID finds a product with categories and chapters
// eagerly loaded. Visibility filtering is not done here; the
// entitlement gate decides per request what the caller may see.
func (r *GormProductRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*novel.Product, error) {
	var product novel.Product
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Chapters", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Search finds products matching a free-text term on name or
// description, optionally restricted to the given categories
func (r *GormProductRepository) Search(
	ctx context.Context,
	term string,
	categoryIDs []uuid.UUID,
	filter shared.Filter,
) ([]novel.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&novel.Product{})

	if term = strings.TrimSpace(term); term != "" {
		pattern := "%" + term + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	if len(categoryIDs) > 0 {
		query = query.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Where("pc.category_id IN ?", categoryIDs).
			Distinct()
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var products []novel.Product
	if err := query.Preload("Categories").Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// FindRelated returns up to limit other products in randomized order.
// The ordering is intentionally non-deterministic and recomputed on
// every call.
func (r *GormProductRepository) FindRelated(ctx context.Context, excludeID uuid.UUID, limit int) ([]novel.Product, error) {
	var products []novel.Product
	err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("RANDOM()").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// IncrementViewCount bumps the view counter with a single relative
// UPDATE so concurrent viewers never lose increments to a
// read-modify-write race at the application layer.
func (r *GormProductRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&novel.Product{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *novel.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&novel.Product{}, "id = ?", id).Error
}
