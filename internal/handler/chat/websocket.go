package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/capycare/capycare/backend/internal/controller"
	"github.com/capycare/capycare/backend/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser front-end may be served from any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsInbound struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type wsOutbound struct {
	controller.Event
	Error string `json:"error,omitempty"`
}

// handleWebsocket runs the turn loop over a websocket: each inbound
// message triggers one turn whose events stream back on the same
// connection. Turns per session stay serialized in the controller, so
// rapid double-submission cannot reorder the transcript.
func (h *Handler) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[chat-ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	userID := middleware.UserID(r.Context())
	ctx := r.Context()

	for {
		var inbound wsInbound
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[chat-ws] read failed: %v", err)
			}
			return
		}

		emit := func(ev controller.Event) {
			if err := conn.WriteJSON(wsOutbound{Event: ev}); err != nil {
				log.Printf("[chat-ws] write failed: %v", err)
			}
		}

		result, err := h.ctrl.HandleTurn(ctx, userID, inbound.SessionID, inbound.Message, emit)
		if err != nil {
			msg := "failed to process message"
			if errors.Is(err, controller.ErrEmptyMessage) {
				msg = err.Error()
			}
			_ = conn.WriteJSON(wsOutbound{Event: controller.Event{Type: "error"}, Error: msg})
			continue
		}

		_ = conn.WriteJSON(wsOutbound{Event: controller.Event{Type: "end", Mood: result.Mood}})
	}
}
