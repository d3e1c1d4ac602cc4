// Package supportapi serves the fixed self-care and crisis content.
package supportapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capycare/capycare/backend/internal/support"
	"github.com/capycare/capycare/backend/pkg/utils"
)

// Handler serves the support routes.
type Handler struct{}

// New creates the support handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the support endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/support/tips", h.handleTips)
	r.Get("/support/crisis", h.handleCrisis)
}

func (h *Handler) handleTips(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"html": support.TipsHTML})
}

func (h *Handler) handleCrisis(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"lead":      support.CheckInLead,
		"html":      support.CrisisResourcesHTML,
		"resources": support.CrisisResources(),
	})
}
