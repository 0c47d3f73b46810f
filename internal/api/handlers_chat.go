package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/lionetto/portfolio-server/internal/api/respond"
	"github.com/lionetto/portfolio-server/internal/assistant"
	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/services"
)

// ChatHandler exposes the assistant over HTTP. Each browser tab starts one
// session and relays its turns through it.
type ChatHandler struct {
	content  *services.ContentService
	sessions *assistant.Sessions
}

func NewChatHandler(content *services.ContentService, sessions *assistant.Sessions) *ChatHandler {
	return &ChatHandler{content: content, sessions: sessions}
}

// StartSession POST /api/chat/sessions
func (h *ChatHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	doc, err := h.content.Get(r.Context())
	if err != nil {
		// The assistant still answers from the bundled default document when
		// the store is unreadable; visitors never see a broken widget.
		doc = model.DefaultSiteContent()
	}
	sess := h.sessions.Start(doc)
	respond.WriteJSON(w, http.StatusCreated, map[string]string{
		"sessionId": sess.ID,
		"greeting":  sess.Greeting,
	})
}

// SendMessage POST /api/chat/sessions/{id}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessions.Get(mux.Vars(r)["id"])
	if !ok {
		respond.WriteNotFound(w, "Chat session not found")
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		respond.WriteBadRequest(w, "Message is required")
		return
	}

	reply := sess.Send(r.Context(), msg)
	respond.WriteJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
