package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"glamhaven/pkg/models"
)

const vitalsTTL = 30 * time.Minute

// Metric names accepted from the vitals beacon
var knownVitals = map[string]bool{
	"TTFB": true,
	"FCP":  true,
	"LCP":  true,
	"FID":  true,
	"CLS":  true,
	"INP":  true,
}

// ErrUnknownVital is returned for metric names the beacon does not report
var ErrUnknownVital = errors.New("unknown vital")

// ErrInvalidVitalValue is returned for negative or non-finite values
var ErrInvalidVitalValue = errors.New("invalid vital value")

// PreconnectDomains are the third-party origins the page fetches from
var PreconnectDomains = []string{
	"images.unsplash.com",
	"plus.unsplash.com",
	"images.pexels.com",
	"img.freepik.com",
	"cdn.pixabay.com",
	"fonts.googleapis.com",
	"fonts.gstatic.com",
}

// HeroImage is the background of the hero section
const HeroImage = "https://images.unsplash.com/photo-1671159593449-61b5ba964fab?q=80&w=2070&auto=format&fit=crop&ixlib=rb-4.0.3"

const paperTexture = "/static/images/paper-texture.svg"

// FontsStylesheet loads the display and body typefaces
const FontsStylesheet = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600&family=Playfair+Display:wght@400;500;600;700&display=swap"

// PreconnectHints returns preconnect hints for every third-party origin
func PreconnectHints() []models.Resource {
	hints := make([]models.Resource, 0, len(PreconnectDomains))
	for _, d := range PreconnectDomains {
		hints = append(hints, models.Resource{Href: "https://" + d, Rel: "preconnect"})
	}
	return hints
}

// PreloadResources returns the critical images and fonts to preload: the hero
// image, the first gallery cards of the catalog, the texture and the font stylesheet.
func PreloadResources(items []models.GalleryItem, cards int) []models.Resource {
	res := []models.Resource{{Href: HeroImage, Rel: "preload", As: "image"}}
	seen := map[string]bool{HeroImage: true}
	for i := 0; i < len(items) && i < cards; i++ {
		src := GalleryImageURL(items[i].Image)
		if seen[src] {
			continue
		}
		seen[src] = true
		res = append(res, models.Resource{Href: src, Rel: "preload", As: "image"})
	}
	res = append(res,
		models.Resource{Href: paperTexture, Rel: "preload", As: "image"},
		models.Resource{Href: FontsStylesheet, Rel: "preload", As: "style"},
	)
	return res
}

// LinkHeader formats resources as an HTTP Link header value
func LinkHeader(resources []models.Resource) string {
	parts := make([]string, 0, len(resources))
	for _, r := range resources {
		p := fmt.Sprintf("<%s>; rel=%s", r.Href, r.Rel)
		if r.As != "" {
			p += "; as=" + r.As
		}
		if r.Type != "" {
			p += fmt.Sprintf("; type=%q", r.Type)
		}
		if r.As == "font" || r.Rel == "preconnect" {
			p += "; crossorigin"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

// RecordVital stores a browser metric in its transient slot
func RecordVital(v models.Vital) (models.Vital, error) {
	return defaultService.RecordVitalInternal(v)
}

// GetVitals returns the latest value of every reported metric
func GetVitals() []models.Vital {
	return defaultService.GetVitalsInternal()
}

// RecordVitalInternal validates v and keeps it as the latest value for its name
func (s *Service) RecordVitalInternal(v models.Vital) (models.Vital, error) {
	v.Name = strings.ToUpper(strings.TrimSpace(v.Name))
	if !knownVitals[v.Name] {
		return models.Vital{}, fmt.Errorf("%w: %q", ErrUnknownVital, v.Name)
	}
	if v.Value < 0 || math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
		return models.Vital{}, fmt.Errorf("%w: %v", ErrInvalidVitalValue, v.Value)
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.ReceivedAt.IsZero() {
		v.ReceivedAt = time.Now()
	}

	s.vitalsCache.Set(v.Name, v, cache.DefaultExpiration)
	slog.Info("Performance Metric", "name", v.Name, "value", v.Value, "id", v.ID, "page", v.Page)
	return v, nil
}

// GetVitalsInternal returns the latest value of every reported metric, sorted by name
func (s *Service) GetVitalsInternal() []models.Vital {
	items := s.vitalsCache.Items()
	vitals := make([]models.Vital, 0, len(items))
	for _, item := range items {
		if v, ok := item.Object.(models.Vital); ok {
			vitals = append(vitals, v)
		}
	}
	sort.Slice(vitals, func(i, j int) bool {
		return vitals[i].Name < vitals[j].Name
	})
	return vitals
}
