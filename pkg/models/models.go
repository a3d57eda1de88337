package models

import (
	"html/template"
	"time"
)

// GalleryItem represents a single dress in the catalog
type GalleryItem struct {
	ID       int    `json:"id" yaml:"id"`
	Image    string `json:"image" yaml:"image"`
	Alt      string `json:"alt" yaml:"alt"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Brand    string `json:"brand" yaml:"brand"`
}

// Category represents a gallery filter with the number of items it selects
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// CategoryLink is a category filter button
type CategoryLink struct {
	Category
	Href   string
	Active bool
}

// NavSection represents an anchored section of the page
type NavSection struct {
	ID    string
	Label string
}

// NavItem is a view model for a navigation link
type NavItem struct {
	Href   string
	ID     string
	Label  string
	Active bool
}

// HeroWord is a word shown by the hero cycler
type HeroWord struct {
	Text      string
	Color     string
	Direction string
}

// HeroSlot is a hero word with its transition classes. Class is the state in
// the current frame; Enter and Exit are applied by the page as the cycle turns.
type HeroSlot struct {
	Word   HeroWord
	Class  string
	Enter  string
	Exit   string
	Active bool
}

// ContactEntry holds the contact form fields. It is never persisted.
type ContactEntry struct {
	Name    string
	Phone   string
	Date    string
	Message string
}

// Vital is a single page-timing metric reported by a browser
type Vital struct {
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	ID         string    `json:"id"`
	Page       string    `json:"page,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Pagination contains pagination information for the gallery grid
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PerPage     int   `json:"perPage"`
	Total       int   `json:"total"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
	PrevPage    int   `json:"prevPage"`
	NextPage    int   `json:"nextPage"`
	Pages       []int `json:"pages"`
}

// Card is a gallery item prepared for rendering
type Card struct {
	Item    GalleryItem
	Src     string
	SrcSet  string
	Loading string
	DelayMs int64
	Href    string
}

// PageLink is a direct page-number button
type PageLink struct {
	Page    int
	Href    string
	Current bool
}

// Viewer is the full-screen image viewer state
type Viewer struct {
	Item      GalleryItem
	Src       string
	PrevHref  string
	NextHref  string
	CloseHref string
	Position  int
	Total     int
}

// Inputs holds the gallery links reached by swipe gestures and arrow keys.
// An empty link means the input does nothing on this page.
type Inputs struct {
	SwipeLeft  string
	SwipeRight string
	ArrowLeft  string
	ArrowRight string
}

// Resource is a preload or preconnect hint
type Resource struct {
	Href string
	Rel  string
	As   string
	Type string
}

// Index represents the main page data
type Index struct {
	Meta            any
	Title           string
	JSONLD          template.JS
	Nav             []NavItem
	ActiveSection   string
	SpyThreshold    float64
	SpyRootMargin   string
	HeaderOffset    int
	HeroWords       []HeroSlot
	HeroIndex       int
	HeroIntervalMs  int64
	Categories      []CategoryLink
	ActiveCategory  string
	Cards           []Card
	Pagination      Pagination
	PageLinks       []PageLink
	PrevHref        string
	NextHref        string
	FloatingLinks   []PageLink
	ShowFloating    bool
	Inputs          Inputs
	Generation      int
	Viewer          *Viewer
	About           template.HTML
	BusinessName    string
	WhatsAppNumber  string
	WhatsAppLink    string
	Preconnect      []Resource
	Preload         []Resource
	CurrentYear     int
	VitalsEndpoint  string
	HeroImage       string
	FontsStylesheet string
}

// Dashboard represents the vitals dashboard page data
type Dashboard struct {
	BusinessName string
	Vitals       []Vital
}
