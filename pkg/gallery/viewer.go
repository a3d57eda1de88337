package gallery

import "glamhaven/pkg/models"

// Open selects the item with the given id for the full-screen viewer.
// Ids outside the filtered list are ignored.
func (b *Browser) Open(id int) bool {
	if indexOf(b.Filtered(), id) < 0 {
		return false
	}
	b.selected = id
	return true
}

// Close clears the viewer selection
func (b *Browser) Close() {
	b.selected = 0
}

// Selected returns the selected item, if any
func (b *Browser) Selected() (models.GalleryItem, bool) {
	if b.selected == 0 {
		return models.GalleryItem{}, false
	}
	filtered := b.Filtered()
	i := indexOf(filtered, b.selected)
	if i < 0 {
		return models.GalleryItem{}, false
	}
	return filtered[i], true
}

// ViewerNext selects the next item of the filtered list, wrapping to the first
func (b *Browser) ViewerNext() bool { return b.step(1) }

// ViewerPrev selects the previous item of the filtered list, wrapping to the last
func (b *Browser) ViewerPrev() bool { return b.step(-1) }

// Neighbors returns the ids before and after the selection without moving it
func (b *Browser) Neighbors() (prev, next int, ok bool) {
	filtered := b.Filtered()
	i := indexOf(filtered, b.selected)
	if b.selected == 0 || i < 0 {
		return 0, 0, false
	}
	n := len(filtered)
	return filtered[(i-1+n)%n].ID, filtered[(i+1)%n].ID, true
}

// Position returns the 1-based index of the selection within the filtered list
func (b *Browser) Position() int {
	return indexOf(b.Filtered(), b.selected) + 1
}

func (b *Browser) step(delta int) bool {
	if b.selected == 0 {
		return false
	}
	filtered := b.Filtered()
	i := indexOf(filtered, b.selected)
	if i < 0 {
		return false
	}
	n := len(filtered)
	b.selected = filtered[(i+delta+n)%n].ID
	return true
}

func indexOf(items []models.GalleryItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
