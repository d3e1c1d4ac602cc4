// Package sessionapi exposes session CRUD over HTTP.
package sessionapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capycare/capycare/backend/internal/controller"
	"github.com/capycare/capycare/backend/internal/middleware"
	"github.com/capycare/capycare/backend/internal/session"
	"github.com/capycare/capycare/backend/pkg/utils"
)

// Handler serves the session routes.
type Handler struct {
	sessions *session.Repository
	ctrl     *controller.Controller
}

// New creates the session handler.
func New(sessions *session.Repository, ctrl *controller.Controller) *Handler {
	return &Handler{sessions: sessions, ctrl: ctrl}
}

// RegisterRoutes mounts the session endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions", h.handleList)
	r.Post("/sessions", h.handleCreate)
	r.Get("/sessions/current", h.handleCurrent)
	r.Post("/sessions/{sessionID}/activate", h.handleActivate)
	r.Delete("/sessions/{sessionID}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	utils.RespondJSON(w, http.StatusOK, h.sessions.List(userID))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	s, err := h.ctrl.CreateSession(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, s)
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	s, err := h.ctrl.CurrentSession(userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to resolve current session")
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.sessions.SwitchCurrent(userID, sessionID, nil); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to switch session")
		return
	}

	s, err := h.sessions.Get(userID, sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	utils.RespondJSON(w, http.StatusOK, s)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	successor, err := h.sessions.Delete(userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrLastSession):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrSessionNotFound):
			utils.RespondError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to delete session")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"current": successor})
}
