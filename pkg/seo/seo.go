package seo

import (
	"encoding/json"
	"fmt"
)

type OpenGraph struct {
	Type     string
	Locale   string
	URL      string
	SiteName string
	Image    string
	ImageAlt string
}

type Twitter struct {
	Card    string
	Site    string
	Creator string
}

// Meta is the head metadata of a page
type Meta struct {
	Title       string
	Description string
	Canonical   string
	ThemeColor  string
	OG          OpenGraph
	Twitter     Twitter
}

// Home builds the metadata of the landing page
func Home(business, siteURL string) Meta {
	title := fmt.Sprintf("%s - Lebanese Dress Rental Gallery", business)
	return Meta{
		Title:       title,
		Description: "Find your perfect dress for any occasion at our premium Lebanese dress rental service, managed by Ghada and Emma.",
		Canonical:   siteURL + "/",
		ThemeColor:  "#0C0C0C",
		OG: OpenGraph{
			Type:     "website",
			Locale:   "en_US",
			URL:      siteURL + "/",
			SiteName: business,
			Image:    siteURL + "/static/og-image.jpg",
			ImageAlt: title,
		},
		Twitter: Twitter{
			Card:    "summary_large_image",
			Site:    "@glamhaven",
			Creator: "@glamhaven",
		},
	}
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// ClothingStore returns a schema.org ClothingStore for the business
func ClothingStore(name, url, whatsApp string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "ClothingStore",
		"name":     name,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": "Beirut",
			"addressCountry":  "LB",
		},
		"openingHours": "Mo-Sa 10:00-19:00",
	}
	if url != "" {
		m["url"] = url
	}
	if whatsApp != "" {
		m["telephone"] = "+" + whatsApp
	}
	return m
}
