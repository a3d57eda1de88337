package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerOpenClose(t *testing.T) {
	b := NewBrowser(fixture(), DefaultPageSize)

	_, ok := b.Selected()
	assert.False(t, ok)

	require.True(t, b.Open(9))
	item, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, 9, item.ID)
	assert.Equal(t, 9, b.Position())

	b.Close()
	_, ok = b.Selected()
	assert.False(t, ok)
}

func TestViewerOpenOutsideFilter(t *testing.T) {
	b := NewBrowser(fixture(), DefaultPageSize)
	require.NoError(t, b.SetCategory("Evening"))

	assert.False(t, b.Open(1)) // Wedding
	assert.False(t, b.Open(999))
	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestViewerWrapsWithinFilteredList(t *testing.T) {
	b := NewBrowser(fixture(), DefaultPageSize)
	require.NoError(t, b.SetCategory("Evening"))
	filtered := b.Filtered()
	first, last := filtered[0].ID, filtered[len(filtered)-1].ID

	require.True(t, b.Open(last))
	require.True(t, b.ViewerNext())
	item, _ := b.Selected()
	assert.Equal(t, first, item.ID)

	require.True(t, b.ViewerPrev())
	item, _ = b.Selected()
	assert.Equal(t, last, item.ID)

	require.True(t, b.ViewerPrev())
	item, _ = b.Selected()
	assert.Equal(t, filtered[len(filtered)-2].ID, item.ID)
	assert.Equal(t, "Evening", item.Category)
}

func TestViewerNeighbors(t *testing.T) {
	b := NewBrowser(fixture(), DefaultPageSize)
	_, _, ok := b.Neighbors()
	assert.False(t, ok)

	require.True(t, b.Open(1))
	prev, next, ok := b.Neighbors()
	require.True(t, ok)
	assert.Equal(t, 40, prev)
	assert.Equal(t, 2, next)
}

func TestViewerNavigationWithoutSelection(t *testing.T) {
	b := NewBrowser(fixture(), DefaultPageSize)
	assert.False(t, b.ViewerNext())
	assert.False(t, b.ViewerPrev())
}
