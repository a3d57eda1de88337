package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"glamhaven/pkg/config"
	"glamhaven/pkg/models"
)

// DuplicationFactor is how many times the base catalog is repeated to fill the gallery
const DuplicationFactor = 5

const itemsCacheKey = "items"

// CatalogLoader returns the base catalog
type CatalogLoader func(ctx context.Context) ([]models.GalleryItem, error)

// Service serves the catalog, contact links, page content and vitals
type Service struct {
	config      *config.Config
	load        CatalogLoader
	itemCache   *cache.Cache
	vitalsCache *cache.Cache
	about       string
	mu          sync.RWMutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// InitService initializes the service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = New(cfg)
	})
}

// Default returns the service created by InitService
func Default() *Service {
	return defaultService
}

// New creates a service whose catalog source follows cfg.CatalogSource
func New(cfg *config.Config) *Service {
	s := &Service{
		config:      cfg,
		itemCache:   cache.New(5*time.Minute, 10*time.Minute),
		vitalsCache: cache.New(vitalsTTL, 2*vitalsTTL),
	}
	switch cfg.CatalogSource {
	case config.SourceFile:
		s.load = func(context.Context) ([]models.GalleryItem, error) {
			return LoadFileCatalog(cfg.CatalogFile)
		}
	case config.SourceGCS:
		s.load = func(ctx context.Context) ([]models.GalleryItem, error) {
			return LoadBucketCatalog(ctx, cfg.BucketName)
		}
	default:
		s.load = func(context.Context) ([]models.GalleryItem, error) {
			return BaseCatalog(), nil
		}
	}
	s.about = loadAbout(cfg.ContentDir)
	return s
}

// WithLoader replaces the catalog source and clears the cache
func (s *Service) WithLoader(load CatalogLoader) *Service {
	s.mu.Lock()
	s.load = load
	s.itemCache.Flush()
	s.mu.Unlock()
	return s
}

// Config returns the configuration the service was built with
func (s *Service) Config() *config.Config {
	return s.config
}

// SiteConfig returns the configuration of the default service
func SiteConfig() *config.Config {
	return defaultService.config
}

// GetItems returns the duplicated gallery catalog
func GetItems() []models.GalleryItem {
	return defaultService.GetItemsInternal()
}

// GetCategories returns the catalog categories with item counts
func GetCategories() []models.Category {
	return defaultService.GetCategoriesInternal()
}

// GetItem returns a gallery item by id
func GetItem(id int) (models.GalleryItem, error) {
	return defaultService.GetItemInternal(id)
}

// FlushCatalog drops the cached catalog so the next read reloads it
func FlushCatalog() {
	defaultService.itemCache.Flush()
}

// GetItemsInternal returns the duplicated gallery catalog, loading it on a cache miss
func (s *Service) GetItemsInternal() []models.GalleryItem {
	s.mu.RLock()
	if cached, found := s.itemCache.Get(itemsCacheKey); found {
		s.mu.RUnlock()
		slog.Debug("Using Cached Catalog")
		return cached.([]models.GalleryItem)
	}
	load := s.load
	s.mu.RUnlock()

	slog.Info("Loading Catalog", "source", s.config.CatalogSource)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	base, err := load(ctx)
	if err != nil || len(base) == 0 {
		slog.Warn("Catalog source unavailable, using built-in catalog", "source", s.config.CatalogSource, "error", err)
		base = BaseCatalog()
	}
	items := Duplicate(base, DuplicationFactor)

	s.mu.Lock()
	s.itemCache.Set(itemsCacheKey, items, cache.DefaultExpiration)
	s.mu.Unlock()

	return items
}

// GetCategoriesInternal returns the categories in first-appearance order with item counts
func (s *Service) GetCategoriesInternal() []models.Category {
	items := s.GetItemsInternal()
	index := make(map[string]int)
	var categories []models.Category

	for _, item := range items {
		if i, exists := index[item.Category]; exists {
			categories[i].Count++
			continue
		}
		index[item.Category] = len(categories)
		categories = append(categories, models.Category{
			Name:  item.Category,
			Label: item.Category,
			Count: 1,
		})
	}

	return categories
}

// GetItemInternal returns a gallery item by id
func (s *Service) GetItemInternal(id int) (models.GalleryItem, error) {
	for _, item := range s.GetItemsInternal() {
		if item.ID == id {
			return item, nil
		}
	}
	return models.GalleryItem{}, fmt.Errorf("item not found: %d", id)
}

// Duplicate repeats base times times. Copy i offsets every id by the largest
// base id times i, so positive unique base ids stay unique across the result.
func Duplicate(base []models.GalleryItem, times int) []models.GalleryItem {
	span := 0
	for _, item := range base {
		span = max(span, item.ID)
	}
	out := make([]models.GalleryItem, 0, len(base)*times)
	for i := 0; i < times; i++ {
		for _, item := range base {
			item.ID += span * i
			out = append(out, item)
		}
	}
	return out
}
