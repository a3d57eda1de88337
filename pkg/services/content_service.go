package services

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
)

const fallbackAbout = `GlamHaven was founded by mother-daughter duo Ghada and Emma with a vision to bring luxury fashion to Lebanese women.
We believe that every special occasion deserves the perfect dress, without the commitment of ownership.

Our curated collection features designer pieces imported directly from the USA, selected for their timeless elegance and exceptional quality.
Each dress in our inventory is meticulously maintained to ensure it arrives in perfect condition for your event.
`

// About returns the rendered about section
func About() string {
	return defaultService.About()
}

// About returns the rendered about section
func (s *Service) About() string {
	return s.about
}

// RenderMarkdown converts markdown to HTML
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadAbout(dir string) string {
	src := []byte(fallbackAbout)
	if dir != "" {
		file := filepath.Join(dir, "about.md")
		if data, err := os.ReadFile(file); err == nil {
			src = data
		} else if !os.IsNotExist(err) {
			slog.Warn("Failed to read about content", "file", file, "error", err)
		}
	}

	html, err := RenderMarkdown(src)
	if err != nil {
		slog.Warn("Failed to render about content", "error", err)
		return ""
	}
	return html
}
