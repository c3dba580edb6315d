package social

import (
	"context"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/social"
)

// CommentService handles comment submission on products and chapters.
// Comments are append-only from the reader's perspective.
type CommentService struct {
	comments        social.CommentRepository
	chapterComments social.ChapterCommentRepository
	products        novel.ProductRepository
	chapters        novel.ChapterRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(
	comments social.CommentRepository,
	chapterComments social.ChapterCommentRepository,
	products novel.ProductRepository,
	chapters novel.ChapterRepository,
) *CommentService {
	return &CommentService{
		comments:        comments,
		chapterComments: chapterComments,
		products:        products,
		chapters:        chapters,
	}
}

// AddComment posts a top-level comment on a product
func (s *CommentService) AddComment(ctx context.Context, productID, userID uuid.UUID, content string) (*social.Comment, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	comment, err := social.NewComment(productID, userID, content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Reply posts a reply to an existing product comment
func (s *CommentService) Reply(ctx context.Context, parentID, userID uuid.UUID, content string) (*social.Comment, error) {
	parent, err := s.comments.FindByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	reply, err := social.NewReply(parent, userID, content)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Save(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// AddChapterComment posts a comment on a chapter
func (s *CommentService) AddChapterComment(ctx context.Context, chapterID, userID uuid.UUID, content string) (*social.ChapterComment, error) {
	if _, err := s.chapters.FindByID(ctx, chapterID); err != nil {
		return nil, err
	}

	comment, err := social.NewChapterComment(chapterID, userID, content)
	if err != nil {
		return nil, err
	}

	if err := s.chapterComments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
