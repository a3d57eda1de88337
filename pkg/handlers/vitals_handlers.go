package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"glamhaven/pkg/models"
	"glamhaven/pkg/services"
)

// maxBeaconBytes bounds the body of a vitals beacon
const maxBeaconBytes = 4 << 10

// VitalsHandler records a page-timing metric sent by the browser beacon
func VitalsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
		ID    string  `json:"id"`
		Page  string  `json:"page"`
	}

	// sendBeacon posts text/plain, so the content type is not checked
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBeaconBytes)).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	v, err := services.RecordVital(models.Vital{
		Name:  req.Name,
		Value: req.Value,
		ID:    req.ID,
		Page:  req.Page,
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownVital) || errors.Is(err, services.ErrInvalidVitalValue) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("Error recording vital", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusAccepted, v)
}

// DashboardHandler renders the latest vitals
func DashboardHandler(w http.ResponseWriter, _ *http.Request) {
	slog.Debug("Generating Vitals Dashboard")
	render(w, "vitals.pug", models.Dashboard{
		BusinessName: services.SiteConfig().BusinessName,
		Vitals:       services.GetVitals(),
	})
}

// DashboardJSONHandler returns the latest vitals as JSON
func DashboardJSONHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, services.GetVitals())
}
