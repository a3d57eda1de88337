// Package gallery holds the browsing state of the dress gallery: category
// filter, fixed-size pagination and the full-screen viewer.
//
// A Browser is not safe for concurrent use. Handlers build one per request.
package gallery

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"glamhaven/pkg/models"
)

// All is the wildcard category
const All = "all"

// DefaultPageSize is the number of cards shown per page
const DefaultPageSize = 8

const (
	staggerStep  = 50 * time.Millisecond
	staggerLimit = 500 * time.Millisecond
	eagerCards   = 4
)

// ErrUnknownCategory is returned when a category is neither the wildcard nor a catalog label
var ErrUnknownCategory = errors.New("unknown category")

// Direction of a swipe gesture
type Direction int

const (
	SwipeLeft Direction = iota
	SwipeRight
)

// Browser is the gallery browsing state
type Browser struct {
	items      []models.GalleryItem
	categories []string
	pageSize   int

	category   string
	page       int
	selected   int
	generation int
}

// NewBrowser creates a browser over items showing the first page of all categories
func NewBrowser(items []models.GalleryItem, pageSize int) *Browser {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Browser{
		items:      items,
		categories: uniqueCategories(items),
		pageSize:   pageSize,
		category:   All,
		page:       1,
	}
}

func uniqueCategories(items []models.GalleryItem) []string {
	seen := make(map[string]bool)
	out := []string{All}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// Categories returns the wildcard followed by the catalog labels in first-appearance order
func (b *Browser) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// CategoryCounts returns each category with the number of items it selects
func (b *Browser) CategoryCounts() []models.Category {
	counts := make(map[string]int)
	for _, item := range b.items {
		counts[item.Category]++
	}
	out := make([]models.Category, 0, len(b.categories))
	for _, c := range b.categories {
		n := counts[c]
		if c == All {
			n = len(b.items)
		}
		out = append(out, models.Category{Name: c, Label: Label(c), Count: n})
	}
	return out
}

// HasCategory reports whether c is the wildcard or a catalog label
func (b *Browser) HasCategory(c string) bool {
	for _, known := range b.categories {
		if known == c {
			return true
		}
	}
	return false
}

// Category returns the active category
func (b *Browser) Category() string { return b.category }

// Page returns the current 1-based page
func (b *Browser) Page() int { return b.page }

// PageSize returns the number of items per page
func (b *Browser) PageSize() int { return b.pageSize }

// Generation counts category and page changes. Each one replays the card
// entrance animation.
func (b *Browser) Generation() int { return b.generation }

// Clone returns an independent copy of the browsing state. The catalog is shared.
func (b *Browser) Clone() *Browser {
	c := *b
	return &c
}

// Filtered returns the items of the active category
func (b *Browser) Filtered() []models.GalleryItem {
	if b.category == All {
		return b.items
	}
	out := make([]models.GalleryItem, 0, len(b.items))
	for _, item := range b.items {
		if item.Category == b.category {
			out = append(out, item)
		}
	}
	return out
}

// TotalPages returns ceil(filtered / pageSize)
func (b *Browser) TotalPages() int {
	n := len(b.Filtered())
	return (n + b.pageSize - 1) / b.pageSize
}

// Visible returns the items on the current page
func (b *Browser) Visible() []models.GalleryItem {
	filtered := b.Filtered()
	start := (b.page - 1) * b.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + b.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// SetCategory switches the filter, resets to the first page and replays the entrance animation
func (b *Browser) SetCategory(c string) error {
	if c == "" {
		c = All
	}
	if !b.HasCategory(c) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	b.category = c
	b.page = 1
	b.generation++
	return nil
}

// ChangePage moves to page p. Requests for the current page or outside
// [1, TotalPages] are ignored and report false.
func (b *Browser) ChangePage(p int) bool {
	if p == b.page {
		return false
	}
	if p < 1 || p > b.TotalPages() {
		return false
	}
	b.page = p
	b.generation++
	return true
}

// Next moves to the following page
func (b *Browser) Next() bool { return b.ChangePage(b.page + 1) }

// Prev moves to the preceding page
func (b *Browser) Prev() bool { return b.ChangePage(b.page - 1) }

// Swipe maps a horizontal gesture to a page change: left is next, right is previous
func (b *Browser) Swipe(d Direction) bool {
	switch d {
	case SwipeLeft:
		return b.Next()
	case SwipeRight:
		return b.Prev()
	}
	return false
}

// Key maps arrow keys to a page change. Other keys are ignored.
func (b *Browser) Key(key string) bool {
	switch key {
	case "ArrowRight":
		return b.Next()
	case "ArrowLeft":
		return b.Prev()
	}
	return false
}

// Label returns the display label of a category
func Label(c string) string {
	return cases.Title(language.English).String(c)
}

// AnimationDelay is the staggered entrance delay of the card at index
func AnimationDelay(index int) time.Duration {
	d := time.Duration(index) * staggerStep
	if d > staggerLimit {
		return staggerLimit
	}
	return d
}

// LoadingStrategy returns "eager" for the first cards of a page and "lazy" for the rest
func LoadingStrategy(index int) string {
	if index < eagerCards {
		return "eager"
	}
	return "lazy"
}
