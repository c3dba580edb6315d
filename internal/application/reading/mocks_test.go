package reading

import (
	"context"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
	"github.com/novelhub/backend/internal/domain/social"
	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mocks
// ============================================================================

// MockProductRepository is a mock implementation of novel.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*novel.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*novel.Product), args.Error(1)
}

func (m *MockProductRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*novel.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*novel.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, term string, categoryIDs []uuid.UUID, filter shared.Filter) ([]novel.Product, int64, error) {
	args := m.Called(ctx, term, categoryIDs, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]novel.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindRelated(ctx context.Context, excludeID uuid.UUID, limit int) ([]novel.Product, error) {
	args := m.Called(ctx, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]novel.Product), args.Error(1)
}

func (m *MockProductRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Save(ctx context.Context, product *novel.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChapterRepository is a mock implementation of novel.ChapterRepository
type MockChapterRepository struct {
	mock.Mock
}

func (m *MockChapterRepository) FindByID(ctx context.Context, id uuid.UUID) (*novel.Chapter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*novel.Chapter), args.Error(1)
}

func (m *MockChapterRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]novel.Chapter, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]novel.Chapter), args.Error(1)
}

func (m *MockChapterRepository) Save(ctx context.Context, chapter *novel.Chapter) error {
	args := m.Called(ctx, chapter)
	return args.Error(0)
}

func (m *MockChapterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of social.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*social.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindPageByProduct(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]social.Comment, int64, error) {
	args := m.Called(ctx, productID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]social.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Save(ctx context.Context, comment *social.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChapterCommentRepository is a mock implementation of social.ChapterCommentRepository
type MockChapterCommentRepository struct {
	mock.Mock
}

func (m *MockChapterCommentRepository) FindByChapter(ctx context.Context, chapterID uuid.UUID) ([]social.ChapterComment, error) {
	args := m.Called(ctx, chapterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.ChapterComment), args.Error(1)
}

func (m *MockChapterCommentRepository) Save(ctx context.Context, comment *social.ChapterComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// MockRatingRepository is a mock implementation of social.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]social.Rating, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*social.Rating, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Rating), args.Error(1)
}

func (m *MockRatingRepository) Save(ctx context.Context, rating *social.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

// MockFollowRepository is a mock implementation of social.FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Save(ctx context.Context, follow *social.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// fakeContentStore is an in-memory ChapterContentStore
type fakeContentStore struct {
	files map[string]string
	err   error
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{files: make(map[string]string)}
}

func (s *fakeContentStore) Read(ctx context.Context, path string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.files[path], nil
}

func (s *fakeContentStore) Exists(ctx context.Context, path string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.files[path]
	return ok, nil
}
