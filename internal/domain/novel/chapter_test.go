package novel

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChapter(t *testing.T) {
	productID := uuid.New()

	t.Run("creates chapter successfully", func(t *testing.T) {
		chapter, err := NewChapter(productID, "Chapter 1", 1, true)

		require.NoError(t, err)
		assert.Equal(t, productID, chapter.ProductID)
		assert.Equal(t, "Chapter 1", chapter.Title)
		assert.Equal(t, 1, chapter.Number)
		assert.True(t, chapter.IsPremium)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		chapter, err := NewChapter(productID, "   ", 1, false)

		assert.Nil(t, chapter)
		assert.Error(t, err)
	})

	t.Run("fails with overlong title", func(t *testing.T) {
		chapter, err := NewChapter(productID, strings.Repeat("a", 101), 1, false)

		assert.Nil(t, chapter)
		assert.Error(t, err)
	})

	t.Run("fails with negative number", func(t *testing.T) {
		chapter, err := NewChapter(productID, "Chapter -1", -1, false)

		assert.Nil(t, chapter)
		assert.Error(t, err)
	})
}

func TestChapterContentLocation(t *testing.T) {
	chapter, err := NewChapter(uuid.New(), "Chapter 1", 1, false)
	require.NoError(t, err)

	assert.False(t, chapter.HasExternalContent())

	chapter.SetContent("inline body")
	assert.Equal(t, "inline body", chapter.Content)
	assert.False(t, chapter.HasExternalContent())

	chapter.SetFilePath("chapters/ch1.txt")
	assert.True(t, chapter.HasExternalContent())
}
