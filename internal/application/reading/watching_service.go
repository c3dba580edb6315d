package reading

import (
	"context"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
	"github.com/novelhub/backend/internal/domain/social"
	"go.uber.org/zap"
)

// WatchingService handles single-chapter reads: lookup, entitlement,
// content resolution from the external store, chapter comments.
type WatchingService struct {
	chapters        novel.ChapterRepository
	chapterComments social.ChapterCommentRepository
	users           identity.UserRepository
	content         ChapterContentStore
	logger          *zap.Logger
}

// NewWatchingService creates a new WatchingService
func NewWatchingService(
	chapters novel.ChapterRepository,
	chapterComments social.ChapterCommentRepository,
	users identity.UserRepository,
	content ChapterContentStore,
	logger *zap.Logger,
) *WatchingService {
	return &WatchingService{
		chapters:        chapters,
		chapterComments: chapterComments,
		users:           users,
		content:         content,
		logger:          logger,
	}
}

// Watch resolves a chapter for reading. The order is fixed: lookup,
// caller resolution, entitlement, then content. A denied caller never
// causes a content read, and a missing chapter is reported before any
// entitlement decision.
func (s *WatchingService) Watch(ctx context.Context, chapterID uuid.UUID, viewerID *uuid.UUID) (*ChapterReadView, error) {
	chapter, err := s.chapters.FindByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	viewer, err := resolveViewer(ctx, s.users, viewerID)
	if err != nil {
		return nil, err
	}

	if !CanReadChapter(chapter, viewer) {
		return nil, shared.ErrVipRequired
	}

	content, err := s.resolveContent(ctx, chapter)
	if err != nil {
		return nil, err
	}

	comments, err := s.chapterComments.FindByChapter(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	return &ChapterReadView{
		Chapter:  toChapterSummary(chapter),
		Content:  content,
		Comments: toChapterCommentViews(comments),
	}, nil
}

// resolveContent returns the chapter body. A file reference that does
// not resolve is a content-unavailable condition; no reference at all
// just means the inline body (possibly empty) is everything there is.
func (s *WatchingService) resolveContent(ctx context.Context, chapter *novel.Chapter) (string, error) {
	if !chapter.HasExternalContent() {
		return chapter.Content, nil
	}

	exists, err := s.content.Exists(ctx, chapter.FilePath)
	if err != nil {
		return "", err
	}
	if !exists {
		s.logger.Warn("chapter references missing content file",
			zap.String("chapter_id", chapter.ID.String()),
			zap.String("file_path", chapter.FilePath),
		)
		return "", shared.ErrContentUnavailable
	}

	return s.content.Read(ctx, chapter.FilePath)
}
