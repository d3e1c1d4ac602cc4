// Package moodapi exposes the mood history and trend endpoints.
package moodapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/capycare/capycare/backend/internal/analysis/classify"
	"github.com/capycare/capycare/backend/internal/middleware"
	"github.com/capycare/capycare/backend/internal/model/mood"
	"github.com/capycare/capycare/backend/internal/moodlog"
	"github.com/capycare/capycare/backend/pkg/utils"
)

// Handler serves the mood routes.
type Handler struct {
	moods *moodlog.Log
}

// New creates the mood handler.
func New(moods *moodlog.Log) *Handler {
	return &Handler{moods: moods}
}

// RegisterRoutes mounts the mood endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/moods", h.handleList)
	r.Post("/moods", h.handleAdd)
	r.Get("/moods/stats", h.handleStats)
	r.Get("/moods/trend", h.handleTrend)
}

type addPayload struct {
	Mood string `json:"mood"`
	Text string `json:"text"`
}

// handleAdd records a mood directly. An explicit mood value wins; when
// only free text is supplied the keyword classifier takes a guess.
func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload addPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, ok := mood.Parse(payload.Mood)
	if !ok || !m.IsTracked() {
		if m, ok = classify.FromText(payload.Text); !ok {
			utils.RespondError(w, http.StatusBadRequest, "mood could not be determined")
			return
		}
	}

	userID := middleware.UserID(r.Context())
	entry, err := h.moods.Add(userID, m)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to record mood")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	utils.RespondJSON(w, http.StatusOK, h.moods.Entries(userID))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	utils.RespondJSON(w, http.StatusOK, h.moods.Stats(userID))
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	days := moodlog.TrendDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			utils.RespondError(w, http.StatusBadRequest, "days must be between 1 and 365")
			return
		}
		days = parsed
	}

	utils.RespondJSON(w, http.StatusOK, h.moods.Trend(userID, days))
}
