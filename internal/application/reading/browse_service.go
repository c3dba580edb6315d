package reading

import (
	"context"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
)

// BrowseService serves the catalog browse/search surface: product
// listings filtered by free text and categories, plus the category
// list itself.
type BrowseService struct {
	products   novel.ProductRepository
	categories novel.CategoryRepository
}

// NewBrowseService creates a new BrowseService
func NewBrowseService(products novel.ProductRepository, categories novel.CategoryRepository) *BrowseService {
	return &BrowseService{
		products:   products,
		categories: categories,
	}
}

// Search lists products matching the term and category filters
func (s *BrowseService) Search(
	ctx context.Context,
	term string,
	categoryIDs []uuid.UUID,
	filter shared.Filter,
) (shared.Paginated[ProductSummary], error) {
	products, total, err := s.products.Search(ctx, term, categoryIDs, filter)
	if err != nil {
		return shared.Paginated[ProductSummary]{}, err
	}

	return shared.NewPaginated(toProductSummaries(products), total, filter.Page, filter.PageSize), nil
}

// Categories returns all categories for the browse view
func (s *BrowseService) Categories(ctx context.Context) ([]CategoryView, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{ID: c.ID, Name: c.Name})
	}
	return views, nil
}
