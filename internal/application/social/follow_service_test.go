package social

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/novel"
	"github.com/novelhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type followFixture struct {
	follows  *MockFollowRepository
	products *MockProductRepository
	service  *FollowService
}

func newFollowFixture() *followFixture {
	f := &followFixture{
		follows:  new(MockFollowRepository),
		products: new(MockProductRepository),
	}
	f.service = NewFollowService(f.follows, f.products)
	return f
}

func TestFollow(t *testing.T) {
	f := newFollowFixture()
	product, _ := novel.NewProduct("A Title", "", false)
	userID := uuid.New()

	f.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	f.follows.On("Exists", mock.Anything, userID, product.ID).Return(false, nil)
	f.follows.On("Save", mock.Anything, mock.AnythingOfType("*social.Follow")).Return(nil)

	err := f.service.Follow(context.Background(), userID, product.ID)

	assert.NoError(t, err)
	f.follows.AssertExpectations(t)
}

func TestFollowIsIdempotent(t *testing.T) {
	f := newFollowFixture()
	product, _ := novel.NewProduct("A Title", "", false)
	userID := uuid.New()

	f.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	f.follows.On("Exists", mock.Anything, userID, product.ID).Return(true, nil)

	err := f.service.Follow(context.Background(), userID, product.ID)

	assert.NoError(t, err)
	f.follows.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFollowProductNotFound(t *testing.T) {
	f := newFollowFixture()
	productID := uuid.New()

	f.products.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

	err := f.service.Follow(context.Background(), uuid.New(), productID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUnfollow(t *testing.T) {
	f := newFollowFixture()
	userID := uuid.New()
	productID := uuid.New()

	f.follows.On("Delete", mock.Anything, userID, productID).Return(nil)

	err := f.service.Unfollow(context.Background(), userID, productID)

	assert.NoError(t, err)
	f.follows.AssertExpectations(t)
}
