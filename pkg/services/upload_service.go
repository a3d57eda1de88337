package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	_ "golang.org/x/image/webp"

	"glamhaven/pkg/models"
)

// colorDifferenceThreshold is the minimum difference between color components
// for two pixels to count as different (absorbs compression artifacts)
const colorDifferenceThreshold = 256

// ErrSolidColor is returned for images that are a single flat color
var ErrSolidColor = errors.New("image appears to be a solid color")

// ProgressCallback receives one call per processed file
type ProgressCallback func(name string, done, total int)

// UploadResult summarizes an upload run
type UploadResult struct {
	Uploaded int
	Skipped  []string
}

// ObjectName is the bucket object name the catalog parses back into item
func ObjectName(item models.GalleryItem, ext string) string {
	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	}
	return path.Join(safe(item.Category), safe(item.Brand), safe(item.Title)+strings.ToLower(ext))
}

// ValidateImage decodes an image and rejects blank ones. It returns the
// detected format.
func ValidateImage(r io.Reader) (string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	stepX := max(bounds.Dx()/10, 1)
	stepY := max(bounds.Dy()/10, 1)

	r1, g1, b1, a1 := img.At(bounds.Min.X, bounds.Min.Y).RGBA()

	differentPixels := 0
	totalSamples := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			totalSamples++
			r2, g2, b2, a2 := img.At(x, y).RGBA()
			if differs(r1, r2) || differs(g1, g2) || differs(b1, b2) || differs(a1, a2) {
				differentPixels++
			}
		}
	}

	if totalSamples > 0 && float64(differentPixels)/float64(totalSamples) < 0.01 {
		return format, fmt.Errorf("%w (only %d/%d sampled pixels differ)", ErrSolidColor, differentPixels, totalSamples)
	}
	return format, nil
}

func differs(a, b uint32) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d > colorDifferenceThreshold
}

// contentType maps an image extension to its MIME type
func contentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// CollectImages walks dir for files laid out as <category>/<brand>/<title>.<ext>
// and returns their slash-separated relative paths. Other files are skipped.
func CollectImages(dir string) (images, skipped []string, err error) {
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if _, ok := ItemFromObjectName(rel); !ok {
			skipped = append(skipped, rel)
			return nil
		}
		images = append(images, rel)
		return nil
	})
	return images, skipped, err
}

// UploadImages validates every catalog image under dir and uploads it to the
// bucket under the same relative name. The cached catalog is flushed when
// anything was uploaded.
func UploadImages(ctx context.Context, bucketName, dir string, progressCb ProgressCallback) (UploadResult, error) {
	images, skipped, err := CollectImages(dir)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	result := UploadResult{Skipped: skipped}
	if len(images) == 0 {
		return result, nil
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer storageClient.Close()
	bucket := storageClient.Bucket(bucketName)

	for i, name := range images {
		src := filepath.Join(dir, filepath.FromSlash(name))
		if err := validateFile(src); err != nil {
			slog.Warn("Skipping image", "file", name, "error", err)
			result.Skipped = append(result.Skipped, name)
		} else if err := uploadFile(ctx, bucket, src, name); err != nil {
			return result, fmt.Errorf("failed to upload %s: %w", name, err)
		} else {
			result.Uploaded++
		}
		if progressCb != nil {
			progressCb(name, i+1, len(images))
		}
	}

	if result.Uploaded > 0 && defaultService != nil {
		FlushCatalog()
	}
	return result, nil
}

func validateFile(src string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = ValidateImage(f)
	return err
}

func uploadFile(ctx context.Context, bucket *storage.BucketHandle, src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	writer := bucket.Object(strings.TrimPrefix(dst, "/")).NewWriter(ctx)
	writer.ContentType = contentType(path.Ext(dst))
	writer.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(writer, f); err != nil {
		_ = writer.Close()
		return fmt.Errorf("Writer.Write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %w", err)
	}
	return nil
}
