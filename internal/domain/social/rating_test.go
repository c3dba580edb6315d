package social

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	productID := uuid.New()
	userID := uuid.New()

	t.Run("creates rating within bounds", func(t *testing.T) {
		for score := MinRatingScore; score <= MaxRatingScore; score++ {
			rating, err := NewRating(productID, userID, score)

			require.NoError(t, err)
			assert.Equal(t, score, rating.Score)
		}
	})

	t.Run("rejects scores out of bounds", func(t *testing.T) {
		for _, score := range []int{0, 6, -1, 100} {
			rating, err := NewRating(productID, userID, score)

			assert.Nil(t, rating)
			assert.Error(t, err)
		}
	})
}

func TestRatingUpdateScore(t *testing.T) {
	rating, err := NewRating(uuid.New(), uuid.New(), 2)
	require.NoError(t, err)

	t.Run("updates valid score", func(t *testing.T) {
		err := rating.UpdateScore(5)

		require.NoError(t, err)
		assert.Equal(t, 5, rating.Score)
	})

	t.Run("keeps old score on invalid update", func(t *testing.T) {
		err := rating.UpdateScore(0)

		assert.Error(t, err)
		assert.Equal(t, 5, rating.Score)
	})
}

func TestNewFollow(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	follow := NewFollow(userID, productID)

	assert.Equal(t, userID, follow.UserID)
	assert.Equal(t, productID, follow.ProductID)
	assert.False(t, follow.CreatedAt.IsZero())
}
