package assistant

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lionetto/portfolio-server/internal/model"
)

// FallbackReply is shown when the external model cannot be reached or the
// call fails outright. An in-character apology, never a raw error.
const FallbackReply = "Sembra che ci sia un problema di connessione. Assicurati che l'API Key sia configurata."

// Sessions is the in-memory registry of active assistant conversations. A
// session lives for one chat-widget lifetime and is never persisted.
type Sessions struct {
	mu  sync.Mutex
	gen Generator
	all map[string]*Session
}

func NewSessions(gen Generator) *Sessions {
	return &Sessions{gen: gen, all: make(map[string]*Session)}
}

// Start creates a session whose system prompt is derived from doc.
func (r *Sessions) Start(doc *model.SiteContent) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		Greeting: Greeting(doc),
		system:   BuildSystemPrompt(doc),
		gen:      r.gen,
	}
	s.history = append(s.history, model.ChatMessage{Role: model.RoleModel, Text: s.Greeting})

	r.mu.Lock()
	r.all[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get looks up an active session by id.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.all[id]
	return s, ok
}

// Session is one assistant conversation.
type Session struct {
	ID       string
	Greeting string

	system string
	gen    Generator

	mu      sync.Mutex
	history []model.ChatMessage
}

// Send relays one user message and returns the reply text. The turn always
// resolves: any failure talking to the model yields FallbackReply, appended
// to the transcript after the user's message.
func (s *Session) Send(ctx context.Context, userText string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, model.ChatMessage{Role: model.RoleUser, Text: userText})

	reply, err := s.gen.Generate(ctx, s.system, s.history)
	if err != nil {
		reply = FallbackReply
	}
	s.history = append(s.history, model.ChatMessage{Role: model.RoleModel, Text: reply})
	return reply
}

// History returns a copy of the transcript, greeting included.
func (s *Session) History() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage(nil), s.history...)
}
