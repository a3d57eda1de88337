package services

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"glamhaven/pkg/models"
)

const messagingBaseURL = "https://wa.me/"

var strictPolicy = bluemonday.StrictPolicy()

// CleanContactEntry strips markup and surrounding whitespace from every field.
// The result is plain text: entities produced by the sanitizer are decoded again.
func CleanContactEntry(e models.ContactEntry) models.ContactEntry {
	clean := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
	}
	return models.ContactEntry{
		Name:    clean(e.Name),
		Phone:   clean(e.Phone),
		Date:    clean(e.Date),
		Message: clean(e.Message),
	}
}

// BuildContactMessage assembles the prefilled message text
func BuildContactMessage(business string, e models.ContactEntry) string {
	return fmt.Sprintf("Hello %s! My name is %s. %s Preferred date: %s", business, e.Name, e.Message, e.Date)
}

// ContactDeepLink returns the messaging deep link for phone with text prefilled.
// Spaces are encoded as %20 so the link matches what browsers produce.
func ContactDeepLink(phone, text string) string {
	link := messagingBaseURL + phone
	if text == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ContactLink builds the deep link for a submitted contact form
func ContactLink(e models.ContactEntry) string {
	return defaultService.ContactLinkInternal(e)
}

// DirectContactLink is the deep link without a prefilled message
func DirectContactLink() string {
	return ContactDeepLink(defaultService.config.WhatsAppNumber, "")
}

// ContactLinkInternal builds the deep link for a submitted contact form
func (s *Service) ContactLinkInternal(e models.ContactEntry) string {
	e = CleanContactEntry(e)
	return ContactDeepLink(s.config.WhatsAppNumber, BuildContactMessage(s.config.BusinessName, e))
}
