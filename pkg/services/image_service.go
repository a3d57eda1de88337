package services

import (
	"fmt"
	"strings"
)

// Image formats accepted by OptimizeImageURL
const (
	FormatWebP = "webp"
	FormatAVIF = "avif"
	FormatAuto = "auto"
)

// DefaultSrcSetWidths are the widths emitted in srcset attributes
var DefaultSrcSetWidths = []int{320, 640, 768, 1024, 1280, 1536, 1920}

// OptimizeImageURL appends the width, quality and format parameters each
// image host understands. URLs from unknown hosts are returned unchanged.
func OptimizeImageURL(url string, width, quality int, format string) string {
	sep := querySep(url)

	switch {
	case strings.Contains(url, "unsplash.com"):
		if format == FormatAuto || format == "" {
			format = FormatWebP
		}
		return fmt.Sprintf("%s%sw=%d&q=%d&fm=%s&fit=crop", url, sep, width, quality, format)
	case strings.Contains(url, "pexels.com"):
		return fmt.Sprintf("%s%sw=%d&cs=srgb&q=%d", url, sep, width, quality)
	case strings.Contains(url, "pixabay.com"), strings.Contains(url, "freepik.com"):
		return fmt.Sprintf("%s%sw=%d&q=%d", url, sep, width, quality)
	}
	return url
}

// GalleryImageURL is the card-sized variant used by the gallery grid. Only the
// two hosts the catalog is drawn from are resized; other URLs are kept as is.
func GalleryImageURL(url string) string {
	switch {
	case strings.Contains(url, "unsplash.com"):
		return url + querySep(url) + "w=800&q=75&fm=webp"
	case strings.Contains(url, "pexels.com"):
		return url + querySep(url) + "cs=srgb&w=800&q=75"
	}
	return url
}

func querySep(url string) string {
	if strings.Contains(url, "?") {
		return "&"
	}
	return "?"
}

// SrcSet builds a srcset attribute value over widths
func SrcSet(url string, widths []int, quality int, format string) string {
	if len(widths) == 0 {
		widths = DefaultSrcSetWidths
	}
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		parts = append(parts, fmt.Sprintf("%s %dw", OptimizeImageURL(url, w, quality, format), w))
	}
	return strings.Join(parts, ", ")
}

// ResponsiveSizes returns a sizes attribute value ending in defaultSize
func ResponsiveSizes(defaultSize string) string {
	if defaultSize == "" {
		defaultSize = "100vw"
	}
	return "(max-width: 640px) 100vw, (max-width: 768px) 80vw, (max-width: 1024px) 60vw, " + defaultSize
}

// Placeholder returns a tiny low-quality variant for blur-up loading
func Placeholder(url string) string {
	return OptimizeImageURL(url, 20, 20, FormatWebP)
}
