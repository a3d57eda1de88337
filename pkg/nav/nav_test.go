package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCount(s *Spy) (n int, id string) {
	for _, item := range s.Items() {
		if item.Active {
			n++
			id = item.ID
		}
	}
	return n, id
}

func TestSpyStartsAtHome(t *testing.T) {
	s := NewSpy()
	n, id := activeCount(s)
	assert.Equal(t, 1, n)
	assert.Equal(t, "home", id)
}

func TestSpyObserveActivatesExactlyOne(t *testing.T) {
	for _, sec := range Sections {
		t.Run(sec.ID, func(t *testing.T) {
			s := NewSpy()
			s.Observe(Entry{ID: sec.ID, Ratio: 0.5, Intersecting: true})
			n, id := activeCount(s)
			assert.Equal(t, 1, n)
			assert.Equal(t, sec.ID, id)
			assert.Equal(t, sec.ID, s.Active())
		})
	}
}

func TestSpyObserveIgnoresWeakOrUnknownCrossings(t *testing.T) {
	s := NewSpy()
	assert.False(t, s.Observe(Entry{ID: "gallery", Ratio: 0.1, Intersecting: true}))
	assert.False(t, s.Observe(Entry{ID: "gallery", Ratio: 0.9, Intersecting: false}))
	assert.False(t, s.Observe(Entry{ID: "footer", Ratio: 1, Intersecting: true}))
	assert.Equal(t, "home", s.Active())

	assert.True(t, s.Observe(Entry{ID: "about", Ratio: Threshold, Intersecting: true}))
	assert.False(t, s.Observe(Entry{ID: "about", Ratio: 1, Intersecting: true}))
}

func TestItemsHrefs(t *testing.T) {
	items := NewSpy().Items()
	require.Len(t, items, 4)
	assert.Equal(t, "#gallery", items[1].Href)
	assert.Equal(t, "Collection", items[1].Label)
}
