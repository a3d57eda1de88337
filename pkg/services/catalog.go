package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"gopkg.in/yaml.v3"

	"glamhaven/pkg/models"
)

// BaseCatalog returns the built-in dress catalog
func BaseCatalog() []models.GalleryItem {
	return []models.GalleryItem{
		{
			ID:       1,
			Image:    "https://images.unsplash.com/photo-1596783074918-c84cb06531ca?q=80&w=1887&auto=format&fit=crop&ixlib=rb-4.0.3",
			Alt:      "Elegant white wedding dress",
			Title:    "Bridal Elegance",
			Category: "Wedding",
			Brand:    "Valentino",
		},
		{
			ID:       2,
			Image:    "https://images.pexels.com/photos/1755428/pexels-photo-1755428.jpeg",
			Alt:      "Glamorous evening gown",
			Title:    "Evening Glamour",
			Category: "Evening",
			Brand:    "Dior",
		},
		{
			ID:       3,
			Image:    "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?q=80&w=1887&auto=format&fit=crop&ixlib=rb-4.0.3",
			Alt:      "Stylish cocktail dress",
			Title:    "Modern Chic",
			Category: "Cocktail",
			Brand:    "Chanel",
		},
		{
			ID:       4,
			Image:    "https://images.pexels.com/photos/985635/pexels-photo-985635.jpeg",
			Alt:      "Vibrant party dress",
			Title:    "Party Glamour",
			Category: "Party",
			Brand:    "Versace",
		},
		{
			ID:       5,
			Image:    "https://images.unsplash.com/photo-1618932260643-eee4a2f652a6?q=80&w=1780&auto=format&fit=crop&ixlib=rb-4.0.3",
			Alt:      "Elegant summer dress",
			Title:    "Summer Collection",
			Category: "Casual",
			Brand:    "Gucci",
		},
		{
			ID:       6,
			Image:    "https://images.pexels.com/photos/1926769/pexels-photo-1926769.jpeg",
			Alt:      "Luxurious gala dress",
			Title:    "Gala Elegance",
			Category: "Evening",
			Brand:    "Elie Saab",
		},
		{
			ID:       7,
			Image:    "https://images.unsplash.com/photo-1566174053879-31528523f8ae?q=80&w=1889&auto=format&fit=crop&ixlib=rb-4.0.3",
			Alt:      "Vintage inspired dress",
			Title:    "Vintage Charm",
			Category: "Special",
			Brand:    "Prada",
		},
		{
			ID:       8,
			Image:    "https://images.pexels.com/photos/1375736/pexels-photo-1375736.jpeg",
			Alt:      "Sequined evening gown",
			Title:    "Golden Sequin Gown",
			Category: "Evening",
			Brand:    "Zuhair Murad",
		},
	}
}

// catalogFile is the YAML layout of a file catalog
type catalogFile struct {
	Items []models.GalleryItem `yaml:"items"`
}

// ErrEmptyCatalog is returned when a catalog source yields no items
var ErrEmptyCatalog = errors.New("catalog is empty")

// LoadFileCatalog reads a YAML catalog
func LoadFileCatalog(file string) ([]models.GalleryItem, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog document. Explicit ids must be positive
// and unique; items without one are numbered upward from the largest explicit id.
func ParseCatalog(data []byte) ([]models.GalleryItem, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[int]bool)
	maxID := 0
	for i, item := range doc.Items {
		if item.ID == 0 {
			continue
		}
		if item.ID < 0 {
			return nil, fmt.Errorf("item %d: id %d must be positive", i+1, item.ID)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate item id %d", item.ID)
		}
		seen[item.ID] = true
		maxID = max(maxID, item.ID)
	}

	for i := range doc.Items {
		item := &doc.Items[i]
		if item.ID == 0 {
			maxID++
			item.ID = maxID
		}
		if item.Image == "" || item.Category == "" {
			return nil, fmt.Errorf("item %d: image and category are required", item.ID)
		}
		if item.Alt == "" {
			item.Alt = item.Title
		}
	}
	return doc.Items, nil
}

// MarshalCatalog encodes items in the YAML catalog layout
func MarshalCatalog(items []models.GalleryItem) ([]byte, error) {
	return yaml.Marshal(catalogFile{Items: items})
}

// LoadBucketCatalog builds the catalog from images stored as
// <category>/<brand>/<title>.<ext> in a Cloud Storage bucket.
func LoadBucketCatalog(ctx context.Context, bucketName string) ([]models.GalleryItem, error) {
	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer storageClient.Close()

	bucket := storageClient.Bucket(bucketName)
	it := bucket.Objects(ctx, nil)

	var items []models.GalleryItem
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}

		item, ok := ItemFromObjectName(obj.Name)
		if !ok {
			continue
		}

		// Create a Signed 24-Hour URL
		signedURL, err := bucket.SignedURL(obj.Name, &storage.SignedURLOptions{
			Expires: time.Now().Add(24 * time.Hour),
			Method:  "GET",
		})
		if err != nil {
			slog.Warn("Error creating signed URL", "object", obj.Name, "error", err)
			continue
		}
		item.Image = signedURL
		items = append(items, item)
	}

	return numberItems(items), nil
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// ItemFromObjectName parses <category>/<brand>/<title>.<ext>. Underscores in
// the title and brand become spaces.
func ItemFromObjectName(name string) (models.GalleryItem, bool) {
	parts := strings.Split(name, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return models.GalleryItem{}, false
	}

	ext := strings.ToLower(path.Ext(parts[2]))
	isImage := false
	for _, e := range imageExtensions {
		if ext == e {
			isImage = true
			break
		}
	}
	if !isImage {
		return models.GalleryItem{}, false
	}

	title := strings.ReplaceAll(strings.TrimSuffix(parts[2], path.Ext(parts[2])), "_", " ")
	brand := strings.ReplaceAll(parts[1], "_", " ")
	return models.GalleryItem{
		Alt:      fmt.Sprintf("%s by %s", title, brand),
		Title:    title,
		Category: parts[0],
		Brand:    brand,
	}, true
}

// numberItems sorts items by category then title and assigns ids from 1
func numberItems(items []models.GalleryItem) []models.GalleryItem {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return naturalLess(items[i].Category, items[j].Category)
		}
		return naturalLess(items[i].Title, items[j].Title)
	})
	for i := range items {
		items[i].ID = i + 1
	}
	return items
}

// naturalLess orders strings so that digit runs compare by value: "Gown 2"
// sorts before "Gown 10". Other runs compare bytewise.
func naturalLess(a, b string) bool {
	ca, cb := chunks(a), chunks(b)
	for k := 0; k < len(ca) && k < len(cb); k++ {
		x, y := ca[k], cb[k]
		if isDigits(x) && isDigits(y) {
			nx := strings.TrimLeft(x, "0")
			ny := strings.TrimLeft(y, "0")
			if len(nx) != len(ny) {
				return len(nx) < len(ny)
			}
			if nx != ny {
				return nx < ny
			}
			continue
		}
		if x != y {
			return x < y
		}
	}
	return len(ca) < len(cb)
}

// chunks splits s into alternating runs of digits and non-digits
func chunks(s string) []string {
	var out []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[start]) {
			out = append(out, s[start:i])
			start = i
		}
	}
	return out
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isDigits(s string) bool { return s != "" && isDigit(s[0]) }
