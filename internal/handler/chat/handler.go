// Package chat exposes the conversation turn over HTTP: a plain POST,
// an SSE stream with a pending indicator, and a websocket loop.
package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capycare/capycare/backend/internal/controller"
	"github.com/capycare/capycare/backend/internal/middleware"
	"github.com/capycare/capycare/backend/internal/session"
	"github.com/capycare/capycare/backend/pkg/utils"
)

// Handler serves the chat routes.
type Handler struct {
	ctrl *controller.Controller
}

// New creates the chat handler.
func New(ctrl *controller.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleTurn)
	r.Get("/chat/stream", h.handleStream)
	r.Get("/chat/ws", h.handleWebsocket)
}

type turnPayload struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var payload turnPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.UserID(r.Context())
	result, err := h.ctrl.HandleUserInput(r.Context(), userID, payload.SessionID, payload.Message)
	if err != nil {
		respondTurnError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

// handleStream runs one turn and streams its events: pending first,
// then each appended message, then a terminal end event carrying the
// final state. The pending indicator is removed exactly once by the
// end event regardless of outcome.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	message := r.URL.Query().Get("message")
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}
	sessionID := r.URL.Query().Get("sessionId")
	userID := middleware.UserID(r.Context())

	utils.SetupSSEHeaders(w)

	emit := func(ev controller.Event) {
		utils.SendSSEEvent(w, flusher, ev.Type, ev)
	}

	result, err := h.ctrl.HandleTurn(r.Context(), userID, sessionID, message, emit)
	if err != nil {
		utils.SendSSEEvent(w, flusher, "error", map[string]string{"error": err.Error()})
		return
	}

	utils.SendSSEEvent(w, flusher, "end", map[string]any{
		"sessionId": result.Session.ID,
		"mood":      result.Mood,
		"crisis":    result.Crisis,
	})
}

func respondTurnError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, controller.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
	}
}
