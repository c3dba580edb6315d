package reading

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
	"github.com/novelhub/backend/internal/domain/social"
	"go.uber.org/zap"
)

// Comment pagination defaults and the related-products cap
const (
	DefaultCommentPage     = 1
	DefaultCommentPageSize = 5
	relatedProductsLimit   = 5
)

// DetailsService assembles the product details view: entitlement-gated
// chapter list, average rating, follow status, paged comments, related
// titles. Every derived value is recomputed per request.
type DetailsService struct {
	products novel.ProductRepository
	comments social.CommentRepository
	ratings  social.RatingRepository
	follows  social.FollowRepository
	users    identity.UserRepository
	logger   *zap.Logger
}

// NewDetailsService creates a new DetailsService
func NewDetailsService(
	products novel.ProductRepository,
	comments social.CommentRepository,
	ratings social.RatingRepository,
	follows social.FollowRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *DetailsService {
	return &DetailsService{
		products: products,
		comments: comments,
		ratings:  ratings,
		follows:  follows,
		users:    users,
		logger:   logger,
	}
}

// Details fetches a product and composes the full details view model.
// viewerID is nil for anonymous callers. commentPage/commentPageSize
// fall back to the defaults when not positive; out-of-range pages
// return an empty comment page rather than an error.
func (s *DetailsService) Details(
	ctx context.Context,
	productID uuid.UUID,
	viewerID *uuid.UUID,
	commentPage, commentPageSize int,
) (*ProductDetailsView, error) {
	product, err := s.products.FindDetailsByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Every successful detail fetch counts as a view. A failing
	// counter write must not take the page down.
	if err := s.products.IncrementViewCount(ctx, productID); err != nil {
		s.logger.Warn("failed to increment view count",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
	} else {
		product.ViewCount++
	}

	viewer, err := resolveViewer(ctx, s.users, viewerID)
	if err != nil {
		return nil, err
	}

	view := &ProductDetailsView{
		Product: toProductView(product),
		Viewer:  toViewerSummary(viewer),
	}

	if CanListChapters(product, viewer) {
		view.Chapters = toChapterSummaries(product.Chapters)
	} else {
		view.ChaptersLocked = true
		view.LockedMessage = ChapterListLockedMessage
	}

	view.AverageRating, err = s.averageRating(ctx, productID)
	if err != nil {
		return nil, err
	}

	if viewer != nil {
		view.IsFollowed, err = s.follows.Exists(ctx, viewer.ID, productID)
		if err != nil {
			return nil, err
		}

		view.ViewerRating, err = s.viewerRating(ctx, viewer.ID, productID)
		if err != nil {
			return nil, err
		}
	}

	view.Comments, err = s.commentPage(ctx, productID, commentPage, commentPageSize)
	if err != nil {
		return nil, err
	}

	related, err := s.products.FindRelated(ctx, productID, relatedProductsLimit)
	if err != nil {
		return nil, err
	}
	view.Related = toProductSummaries(related)

	return view, nil
}

// averageRating is the arithmetic mean over all scores, 0 when there
// are none. No caching anywhere.
func (s *DetailsService) averageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	ratings, err := s.ratings.FindByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}

	var sum int
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings)), nil
}

func (s *DetailsService) viewerRating(ctx context.Context, userID, productID uuid.UUID) (*RatingView, error) {
	rating, err := s.ratings.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &RatingView{Score: rating.Score}, nil
}

func (s *DetailsService) commentPage(ctx context.Context, productID uuid.UUID, page, pageSize int) (CommentPage, error) {
	if page < 1 {
		page = DefaultCommentPage
	}
	if pageSize < 1 {
		pageSize = DefaultCommentPageSize
	}

	comments, total, err := s.comments.FindPageByProduct(ctx, productID, page, pageSize)
	if err != nil {
		return CommentPage{}, err
	}

	return CommentPage{
		Items:      toCommentViews(comments),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: shared.TotalPages(total, pageSize),
	}, nil
}
