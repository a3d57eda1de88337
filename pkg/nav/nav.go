package nav

import "glamhaven/pkg/models"

// Sections is the page navigation definition, in page order
var Sections = []models.NavSection{
	{ID: "home", Label: "Home"},
	{ID: "gallery", Label: "Collection"},
	{ID: "about", Label: "About"},
	{ID: "contact", Label: "Contact"},
}

const (
	// Threshold is the visible fraction a section must cross to become active
	Threshold = 0.3
	// RootMargin shrinks the observed viewport so sections nearing the top win
	RootMargin = "-100px 0px -50% 0px"
	// HeaderOffset is the fixed header height the page subtracts when it
	// scrolls to a section
	HeaderOffset = 80
)

// Entry is a visibility crossing reported for a section element
type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

// Spy tracks the single active navigation section
type Spy struct {
	sections []models.NavSection
	active   string
}

// NewSpy creates a spy over Sections with the first section active
func NewSpy() *Spy {
	return &Spy{sections: Sections, active: Sections[0].ID}
}

// Active returns the id of the active section
func (s *Spy) Active() string { return s.active }

// Lookup returns the section with the given id
func (s *Spy) Lookup(id string) (models.NavSection, bool) {
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return models.NavSection{}, false
}

// Observe applies a visibility crossing. A known section that comes into view
// past the threshold becomes the active one. Reports whether the active section changed.
func (s *Spy) Observe(e Entry) bool {
	if !e.Intersecting || e.Ratio < Threshold {
		return false
	}
	if _, ok := s.Lookup(e.ID); !ok {
		return false
	}
	if s.active == e.ID {
		return false
	}
	s.active = e.ID
	return true
}

// Items renders the navigation links with exactly one active
func (s *Spy) Items() []models.NavItem {
	items := make([]models.NavItem, 0, len(s.sections))
	for _, sec := range s.sections {
		items = append(items, models.NavItem{
			Href:   "#" + sec.ID,
			ID:     sec.ID,
			Label:  sec.Label,
			Active: sec.ID == s.active,
		})
	}
	return items
}
