package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"glamhaven/pkg/models"
	"glamhaven/pkg/services"
)

// ContactHandler turns a contact form submission into a redirect to the
// messaging deep link. Nothing is stored; the browser opens the link in the
// tab the form targets.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	entry := models.ContactEntry{
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Date:    r.PostFormValue("date"),
		Message: r.PostFormValue("message"),
	}
	if strings.TrimSpace(entry.Name) == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	link := services.ContactLink(entry)
	slog.Info("Contact request handed off", "date", entry.Date)
	http.Redirect(w, r, link, http.StatusSeeOther)
}
