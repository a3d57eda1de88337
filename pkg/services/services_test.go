package services

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glamhaven/pkg/config"
	"glamhaven/pkg/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		BusinessName:   "GlamHaven",
		WhatsAppNumber: "96170123456",
		CatalogSource:  config.SourceBuiltin,
		PageSize:       8,
		ContentDir:     t.TempDir(),
	}
}

func TestDuplicateKeepsIDsUnique(t *testing.T) {
	base := BaseCatalog()
	items := Duplicate(base, DuplicationFactor)
	require.Len(t, items, len(base)*DuplicationFactor)

	ids := make(map[int]bool)
	for i, item := range items {
		assert.False(t, ids[item.ID], "duplicate id %d", item.ID)
		ids[item.ID] = true

		orig := base[i%len(base)]
		assert.Equal(t, orig.ID+len(base)*(i/len(base)), item.ID)
		assert.Equal(t, orig.Title, item.Title)
		assert.Equal(t, orig.Category, item.Category)
		assert.Equal(t, orig.Brand, item.Brand)
		assert.Equal(t, orig.Image, item.Image)
	}
}

func TestDuplicateSparseCatalogIDs(t *testing.T) {
	doc := `
items:
  - id: 10
    image: a
    category: Evening
  - id: 2
    image: b
    category: Wedding
  - image: c
    category: Party
`
	base, err := ParseCatalog([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 2, 11}, []int{base[0].ID, base[1].ID, base[2].ID})

	items := Duplicate(base, DuplicationFactor)
	ids := make(map[int]bool)
	for _, item := range items {
		assert.Positive(t, item.ID)
		assert.False(t, ids[item.ID], "duplicate id %d", item.ID)
		ids[item.ID] = true
	}
	assert.Len(t, ids, len(base)*DuplicationFactor)
}

func TestServiceCatalog(t *testing.T) {
	s := New(testConfig(t))

	items := s.GetItemsInternal()
	assert.Len(t, items, 40)

	categories := s.GetCategoriesInternal()
	require.Len(t, categories, 6)
	assert.Equal(t, "Wedding", categories[0].Name)
	assert.Equal(t, "Evening", categories[1].Name)
	assert.Equal(t, 15, categories[1].Count)

	item, err := s.GetItemInternal(17)
	require.NoError(t, err)
	assert.Equal(t, "Bridal Elegance", item.Title)

	_, err = s.GetItemInternal(41)
	assert.Error(t, err)
}

func TestServiceCachesCatalog(t *testing.T) {
	calls := 0
	s := New(testConfig(t)).WithLoader(func(context.Context) ([]models.GalleryItem, error) {
		calls++
		return BaseCatalog()[:2], nil
	})

	assert.Len(t, s.GetItemsInternal(), 10)
	assert.Len(t, s.GetItemsInternal(), 10)
	assert.Equal(t, 1, calls)
}

func TestServiceFallsBackToBuiltin(t *testing.T) {
	s := New(testConfig(t)).WithLoader(func(context.Context) ([]models.GalleryItem, error) {
		return nil, errors.New("bucket unreachable")
	})
	assert.Len(t, s.GetItemsInternal(), 40)
}

func TestParseCatalog(t *testing.T) {
	doc := `
items:
  - image: https://images.unsplash.com/photo-1
    title: Ivory Gown
    category: Wedding
    brand: Vera Wang
  - id: 10
    image: https://images.pexels.com/photos/2.jpeg
    alt: Red satin dress
    title: Scarlet
    category: Evening
    brand: Dior
`
	items, err := ParseCatalog([]byte(doc))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 11, items[0].ID, "numbered after the largest explicit id")
	assert.Equal(t, "Ivory Gown", items[0].Alt)
	assert.Equal(t, 10, items[1].ID)
	assert.Equal(t, "Red satin dress", items[1].Alt)
}

func TestParseCatalogErrors(t *testing.T) {
	_, err := ParseCatalog([]byte("items: []"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = ParseCatalog([]byte("items:\n  - id: 1\n    image: a\n    category: x\n  - id: 1\n    image: b\n    category: y\n"))
	assert.ErrorContains(t, err, "duplicate item id 1")

	_, err = ParseCatalog([]byte("items:\n  - id: -8\n    image: a\n    category: x\n"))
	assert.ErrorContains(t, err, "must be positive")

	_, err = ParseCatalog([]byte("items:\n  - title: No image\n"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("items: ["))
	assert.Error(t, err)
}

func TestFileCatalogRoundTrip(t *testing.T) {
	data, err := MarshalCatalog(BaseCatalog())
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(file, data, 0o600))

	items, err := LoadFileCatalog(file)
	require.NoError(t, err)
	assert.Equal(t, BaseCatalog(), items)

	_, err = LoadFileCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestItemFromObjectName(t *testing.T) {
	item, ok := ItemFromObjectName("Evening/Elie_Saab/Gala_Elegance.JPG")
	require.True(t, ok)
	assert.Equal(t, "Evening", item.Category)
	assert.Equal(t, "Elie Saab", item.Brand)
	assert.Equal(t, "Gala Elegance", item.Title)
	assert.Equal(t, "Gala Elegance by Elie Saab", item.Alt)

	for _, name := range []string{
		"Evening/Dior/",
		"Evening/readme.txt",
		"Evening/Dior/notes.txt",
		"a/b/c/d.jpg",
	} {
		_, ok := ItemFromObjectName(name)
		assert.False(t, ok, name)
	}
}

func TestNumberItemsNaturalOrder(t *testing.T) {
	items := numberItems([]models.GalleryItem{
		{Title: "Gown 10", Category: "Evening"},
		{Title: "Gown 2", Category: "Evening"},
		{Title: "Veil", Category: "Bridal"},
	})
	assert.Equal(t, "Veil", items[0].Title)
	assert.Equal(t, "Gown 2", items[1].Title)
	assert.Equal(t, "Gown 10", items[2].Title)
	assert.Equal(t, 3, items[2].ID)
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, naturalLess("Gown 2", "Gown 10"))
	assert.False(t, naturalLess("Gown 10", "Gown 2"))
	assert.True(t, naturalLess("Gown 007", "Gown 8"))
	assert.True(t, naturalLess("Gown", "Gown 1"))
	assert.True(t, naturalLess("Cocktail", "Evening"))
	assert.False(t, naturalLess("Veil", "Veil"))
}

func TestOptimizeImageURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://images.unsplash.com/photo-1?q=80", "https://images.unsplash.com/photo-1?q=80&w=800&q=75&fm=webp&fit=crop"},
		{"https://images.pexels.com/photos/1.jpeg", "https://images.pexels.com/photos/1.jpeg?w=800&cs=srgb&q=75"},
		{"https://cdn.pixabay.com/photo/1.jpg", "https://cdn.pixabay.com/photo/1.jpg?w=800&q=75"},
		{"https://img.freepik.com/free-photo/1.jpg?t=1", "https://img.freepik.com/free-photo/1.jpg?t=1&w=800&q=75"},
		{"https://example.com/dress.jpg", "https://example.com/dress.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OptimizeImageURL(tt.url, 800, 75, FormatWebP))
	}
	assert.Contains(t, OptimizeImageURL("https://images.unsplash.com/p", 100, 50, FormatAuto), "fm=webp")
	assert.Contains(t, OptimizeImageURL("https://images.unsplash.com/p", 100, 50, FormatAVIF), "fm=avif")
}

func TestGalleryImageURL(t *testing.T) {
	assert.Equal(t,
		"https://images.unsplash.com/photo-1?q=80&w=1887&w=800&q=75&fm=webp",
		GalleryImageURL("https://images.unsplash.com/photo-1?q=80&w=1887"))
	assert.Equal(t,
		"https://images.pexels.com/photos/1.jpeg?cs=srgb&w=800&q=75",
		GalleryImageURL("https://images.pexels.com/photos/1.jpeg"))
	assert.Equal(t, "https://cdn.pixabay.com/photo/1.jpg", GalleryImageURL("https://cdn.pixabay.com/photo/1.jpg"))
}

func TestSrcSetAndSizes(t *testing.T) {
	set := SrcSet("https://images.pexels.com/p.jpeg", []int{320, 640}, 80, FormatWebP)
	assert.Equal(t, "https://images.pexels.com/p.jpeg?w=320&cs=srgb&q=80 320w, https://images.pexels.com/p.jpeg?w=640&cs=srgb&q=80 640w", set)
	assert.Len(t, strings.Split(SrcSet("https://x.test/a.jpg", nil, 80, FormatWebP), ", "), len(DefaultSrcSetWidths))

	assert.True(t, strings.HasSuffix(ResponsiveSizes(""), "100vw"))
	assert.Equal(t, "https://images.pexels.com/p.jpeg?w=20&cs=srgb&q=20", Placeholder("https://images.pexels.com/p.jpeg"))
}

func TestContactDeepLink(t *testing.T) {
	s := New(testConfig(t))
	link := s.ContactLinkInternal(models.ContactEntry{
		Name:    "Jane",
		Phone:   "+961 70 000 000",
		Date:    "2024-06-01",
		Message: "Looking for a gown",
	})

	require.True(t, strings.HasPrefix(link, "https://wa.me/96170123456?text="))
	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Jane")
	assert.Contains(t, text, "Looking for a gown")
	assert.Contains(t, text, "2024-06-01")
	assert.Equal(t, "Hello GlamHaven! My name is Jane. Looking for a gown Preferred date: 2024-06-01", text)
	assert.NotContains(t, link, "+")
}

func TestContactDeepLinkEscapesQueryCharacters(t *testing.T) {
	link := ContactDeepLink("961", "Size 6 & 8 = fine? 100%+")
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Size 6 & 8 = fine? 100%+", u.Query().Get("text"))
	assert.Equal(t, "https://wa.me/961", ContactDeepLink("961", ""))
}

func TestCleanContactEntry(t *testing.T) {
	e := CleanContactEntry(models.ContactEntry{
		Name:    "  <b>Jane</b> O'Neil ",
		Message: "<script>alert(1)</script>Hi & thanks",
	})
	assert.Equal(t, "Jane O'Neil", e.Name)
	assert.Equal(t, "Hi & thanks", e.Message)
}

func TestRecordVital(t *testing.T) {
	s := New(testConfig(t))

	v, err := s.RecordVitalInternal(models.Vital{Name: "lcp", Value: 1234.5})
	require.NoError(t, err)
	assert.Equal(t, "LCP", v.Name)
	assert.NotEmpty(t, v.ID)
	assert.False(t, v.ReceivedAt.IsZero())

	_, err = s.RecordVitalInternal(models.Vital{Name: "CLS", Value: 0.02, ID: "v1"})
	require.NoError(t, err)
	_, err = s.RecordVitalInternal(models.Vital{Name: "LCP", Value: 900})
	require.NoError(t, err)

	vitals := s.GetVitalsInternal()
	require.Len(t, vitals, 2)
	assert.Equal(t, "CLS", vitals[0].Name)
	assert.Equal(t, "v1", vitals[0].ID)
	assert.Equal(t, float64(900), vitals[1].Value)
}

func TestRecordVitalRejects(t *testing.T) {
	s := New(testConfig(t))
	_, err := s.RecordVitalInternal(models.Vital{Name: "FPS", Value: 60})
	assert.ErrorIs(t, err, ErrUnknownVital)
	_, err = s.RecordVitalInternal(models.Vital{Name: "LCP", Value: -1})
	assert.ErrorIs(t, err, ErrInvalidVitalValue)
	assert.Empty(t, s.GetVitalsInternal())
}

func TestPreloadResources(t *testing.T) {
	items := Duplicate(BaseCatalog(), DuplicationFactor)
	res := PreloadResources(items, 4)
	// hero + 4 distinct cards + texture + fonts
	require.Len(t, res, 7)
	assert.Equal(t, "style", res[6].As)
	assert.Equal(t, HeroImage, res[0].Href)
	assert.Equal(t, GalleryImageURL(items[0].Image), res[1].Href)

	// duplicated cards are preloaded once
	assert.Len(t, PreloadResources(Duplicate(BaseCatalog()[:1], 5), 4), 4)
}

func TestLinkHeader(t *testing.T) {
	h := LinkHeader([]models.Resource{
		{Href: "/static/a.webp", Rel: "preload", As: "image"},
		{Href: "/static/f.woff2", Rel: "preload", As: "font", Type: "font/woff2"},
		{Href: "https://images.pexels.com", Rel: "preconnect"},
	})
	assert.Equal(t, `</static/a.webp>; rel=preload; as=image, </static/f.woff2>; rel=preload; as=font; type="font/woff2"; crossorigin, <https://images.pexels.com>; rel=preconnect; crossorigin`, h)
	assert.Len(t, PreconnectHints(), len(PreconnectDomains))
}

func TestAboutContent(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg)
	assert.Contains(t, s.About(), "<p>GlamHaven was founded")

	require.NoError(t, os.WriteFile(filepath.Join(cfg.ContentDir, "about.md"), []byte("## Our Story\n\nRent *luxury*."), 0o600))
	s = New(cfg)
	assert.Contains(t, s.About(), "<h2>Our Story</h2>")
	assert.Contains(t, s.About(), "<em>luxury</em>")
}
