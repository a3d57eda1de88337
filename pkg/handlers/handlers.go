package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/eknkc/pug"

	"glamhaven/pkg/gallery"
	"glamhaven/pkg/hero"
	"glamhaven/pkg/models"
	"glamhaven/pkg/nav"
	"glamhaven/pkg/seo"
	"glamhaven/pkg/services"
)

// preloadCards is how many gallery images are preloaded with the page
const preloadCards = 4

// heroEpoch anchors the hero cycle so every instance shows the same word at the same time
var heroEpoch = time.Unix(0, 0)

// now is replaced in tests
var now = time.Now

// render compiles a pug view and executes it with data
func render(w http.ResponseWriter, view string, data any) {
	cfg := services.SiteConfig()
	tmpl, err := pug.CompileFile(filepath.Join(cfg.ViewsDir, view), pug.Options{})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		slog.Error("Template error", "view", view, "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("Template execution error", "view", view, "error", err)
	}
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to write JSON response", "error", err)
	}
}

// browserFromQuery replays the gallery state described by the query string on
// a fresh browser: category first, then the page, then the viewer selection.
// Invalid values are ignored, leaving the state as it was before them.
func browserFromQuery(q url.Values) *gallery.Browser {
	cfg := services.SiteConfig()
	b := gallery.NewBrowser(services.GetItems(), cfg.PageSize)

	if c := q.Get("category"); c != "" {
		if err := b.SetCategory(c); err != nil {
			slog.Debug("Ignoring category", "error", err)
		}
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil {
		b.ChangePage(p)
	}
	if id, err := strconv.Atoi(q.Get("view")); err == nil {
		b.Open(id)
	}
	return b
}

// hasGalleryState reports whether the request targets the gallery section
func hasGalleryState(q url.Values) bool {
	return q.Has("category") || q.Has("page") || q.Has("view")
}

// galleryHref links to a gallery state. Zero page or view are omitted.
func galleryHref(category string, page, view int) string {
	v := url.Values{}
	if category != "" && category != gallery.All {
		v.Set("category", category)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if view > 0 {
		v.Set("view", strconv.Itoa(view))
	}
	if len(v) == 0 {
		return "/#gallery"
	}
	return "/?" + v.Encode() + "#gallery"
}

// inputs resolves where each swipe gesture and arrow key leads by applying it
// to a copy of the browser. Inputs the browser rejects get no link.
func inputs(b *gallery.Browser) models.Inputs {
	target := func(apply func(*gallery.Browser) bool) string {
		c := b.Clone()
		if !apply(c) {
			return ""
		}
		return galleryHref(c.Category(), c.Page(), 0)
	}
	return models.Inputs{
		SwipeLeft:  target(func(c *gallery.Browser) bool { return c.Swipe(gallery.SwipeLeft) }),
		SwipeRight: target(func(c *gallery.Browser) bool { return c.Swipe(gallery.SwipeRight) }),
		ArrowLeft:  target(func(c *gallery.Browser) bool { return c.Key("ArrowLeft") }),
		ArrowRight: target(func(c *gallery.Browser) bool { return c.Key("ArrowRight") }),
	}
}

// buildIndex assembles the page view model
func buildIndex(r *http.Request) models.Index {
	cfg := services.SiteConfig()
	q := r.URL.Query()
	b := browserFromQuery(q)

	spy := nav.NewSpy()
	if hasGalleryState(q) {
		spy.Observe(nav.Entry{ID: "gallery", Ratio: 1, Intersecting: true})
	}

	meta := seo.Home(cfg.BusinessName, cfg.SiteURL)
	data := models.Index{
		Meta:            meta,
		Title:           meta.Title,
		JSONLD:          template.JS(seo.JSON(seo.ClothingStore(cfg.BusinessName, cfg.SiteURL, cfg.WhatsAppNumber))),
		Nav:             spy.Items(),
		ActiveSection:   spy.Active(),
		SpyThreshold:    nav.Threshold,
		SpyRootMargin:   nav.RootMargin,
		HeaderOffset:    nav.HeaderOffset,
		HeroIntervalMs:  hero.Interval.Milliseconds(),
		ActiveCategory:  b.Category(),
		Pagination:      b.Pagination(),
		ShowFloating:    b.ShowFloatingPagination(),
		Inputs:          inputs(b),
		Generation:      b.Generation(),
		About:           template.HTML(services.About()),
		BusinessName:    cfg.BusinessName,
		WhatsAppNumber:  cfg.WhatsAppNumber,
		WhatsAppLink:    services.DirectContactLink(),
		Preconnect:      services.PreconnectHints(),
		Preload:         services.PreloadResources(services.GetItems(), preloadCards),
		CurrentYear:     now().Year(),
		VitalsEndpoint:  "/api/vitals",
		HeroImage:       services.HeroImage,
		FontsStylesheet: services.FontsStylesheet,
	}

	cycler := hero.NewCycler(hero.Words, hero.Interval)
	data.HeroIndex = cycler.IndexAt(heroEpoch, now())
	data.HeroWords = hero.Slots(hero.Words, data.HeroIndex)

	for _, c := range b.CategoryCounts() {
		data.Categories = append(data.Categories, models.CategoryLink{
			Category: c,
			Href:     galleryHref(c.Name, 1, 0),
			Active:   c.Name == b.Category(),
		})
	}

	for i, item := range b.Visible() {
		data.Cards = append(data.Cards, models.Card{
			Item:    item,
			Src:     services.GalleryImageURL(item.Image),
			SrcSet:  services.SrcSet(item.Image, []int{320, 640, 800}, 75, services.FormatWebP),
			Loading: gallery.LoadingStrategy(i),
			DelayMs: gallery.AnimationDelay(i).Milliseconds(),
			Href:    galleryHref(b.Category(), b.Page(), item.ID),
		})
	}

	p := data.Pagination
	for _, n := range p.Pages {
		data.PageLinks = append(data.PageLinks, models.PageLink{
			Page:    n,
			Href:    galleryHref(b.Category(), n, 0),
			Current: n == p.CurrentPage,
		})
	}
	if data.ShowFloating {
		for _, n := range b.PageWindow(gallery.WindowSize) {
			data.FloatingLinks = append(data.FloatingLinks, models.PageLink{
				Page:    n,
				Href:    galleryHref(b.Category(), n, 0),
				Current: n == p.CurrentPage,
			})
		}
	}
	if p.HasPrevious {
		data.PrevHref = galleryHref(b.Category(), p.PrevPage, 0)
	}
	if p.HasNext {
		data.NextHref = galleryHref(b.Category(), p.NextPage, 0)
	}

	if item, ok := b.Selected(); ok {
		prev, next, _ := b.Neighbors()
		data.Viewer = &models.Viewer{
			Item:      item,
			Src:       services.OptimizeImageURL(item.Image, 1600, 85, services.FormatWebP),
			PrevHref:  galleryHref(b.Category(), b.Page(), prev),
			NextHref:  galleryHref(b.Category(), b.Page(), next),
			CloseHref: galleryHref(b.Category(), b.Page(), 0),
			Position:  b.Position(),
			Total:     p.Total,
		}
	}

	return data
}

// HomeHandler renders the single-page site
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Generating Home", "query", r.URL.RawQuery)
	render(w, "index.pug", buildIndex(r))
}

// galleryFeed is the JSON shape of a gallery page
type galleryFeed struct {
	Category   string               `json:"category"`
	Categories []models.Category    `json:"categories"`
	Pagination models.Pagination    `json:"pagination"`
	Items      []models.GalleryItem `json:"items"`
}

// FeedHandler returns the gallery page described by the query as JSON
func FeedHandler(w http.ResponseWriter, r *http.Request) {
	b := browserFromQuery(r.URL.Query())
	items := b.Visible()
	if items == nil {
		items = []models.GalleryItem{}
	}
	writeJSON(w, http.StatusOK, galleryFeed{
		Category:   b.Category(),
		Categories: b.CategoryCounts(),
		Pagination: b.Pagination(),
		Items:      items,
	})
}

// HealthHandler reports liveness
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
