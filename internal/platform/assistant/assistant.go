// Package assistant implements the practice chat assistant: a deterministic
// scripted responder behind a conversational surface. Replies are chosen by
// first-match keyword containment over a fixed, ordered rule list; the
// simulated response latency is a UX affordance only and is modeled as a
// cancellable scheduled reply owned by the session.
package assistant

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medichat/medichat/internal/platform/schedule"
)

// Rule maps a set of trigger keywords to a canned reply. Rules are evaluated
// in order; the first rule with any matching keyword wins.
type Rule struct {
	Keywords []string
	Reply    string
}

// DefaultRules returns the practice assistant's script. Appointment keywords
// are checked before patient/record keywords, which precede lab/test
// keywords.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"appointment"},
			Reply:    "I can help with appointments. You have 5 appointments scheduled for today. Would you like to see the details?",
		},
		{
			Keywords: []string{"patient", "record"},
			Reply:    "I can help you find patient records. Would you like to search by name, ID, or date of visit?",
		},
		{
			Keywords: []string{"lab", "test"},
			Reply:    "You have 8 new lab results waiting for review. Would you like me to summarize them for you?",
		},
	}
}

const defaultReply = "I'm here to help with your medical practice needs. You can ask about patient records, appointments, lab results, or medication information."

const greeting = "Hello, Dr. Carter! How can I assist you today?"

// Responder maps free-text input to a scripted reply.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder creates a Responder with the default script.
func NewResponder() *Responder {
	return &Responder{rules: DefaultRules(), fallback: defaultReply}
}

// Respond returns the reply for the given input. Matching is case-insensitive
// containment in fixed priority order, falling back to the default reply.
func (r *Responder) Respond(input string) string {
	lowered := strings.ToLower(input)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Reply
			}
		}
	}
	return r.fallback
}

// Message is one entry in the conversation transcript.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"` // "user" or "assistant"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session owns one conversation transcript and the pending reply timer. A new
// user message supersedes any pending reply; Close releases the timer so no
// reply lands on a torn-down session.
type Session struct {
	mu        sync.Mutex
	responder *Responder
	delay     time.Duration
	messages  []Message
	pending   *schedule.Handle
	closed    bool
}

// NewSession creates a Session seeded with the assistant's greeting. delay is
// the simulated response latency; zero delivers replies synchronously.
func NewSession(r *Responder, delay time.Duration) *Session {
	s := &Session{responder: r, delay: delay}
	s.messages = []Message{{
		ID:        uuid.New().String(),
		Sender:    "assistant",
		Text:      greeting,
		Timestamp: time.Now().UTC(),
	}}
	return s
}

// Send appends the user's message to the transcript and schedules the
// assistant's reply. A pending reply from a previous Send is cancelled.
func (s *Session) Send(text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, fmt.Errorf("message text is required")
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Message{}, fmt.Errorf("session is closed")
	}
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	msg := Message{
		ID:        uuid.New().String(),
		Sender:    "user",
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	s.messages = append(s.messages, msg)
	reply := s.responder.Respond(text)
	delay := s.delay
	s.mu.Unlock()

	handle := schedule.After(delay, func() {
		s.deliver(reply)
	})

	s.mu.Lock()
	if delay > 0 && !s.closed {
		s.pending = handle
	}
	s.mu.Unlock()

	return msg, nil
}

func (s *Session) deliver(reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = nil
	s.messages = append(s.messages, Message{
		ID:        uuid.New().String(),
		Sender:    "assistant",
		Text:      reply,
		Timestamp: time.Now().UTC(),
	})
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close cancels any pending reply. Further Sends fail.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
}

// Handler exposes the chat session over HTTP.
type Handler struct {
	session *Session
}

// NewHandler creates a chat Handler.
func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// RegisterRoutes registers the chat routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/chat/messages", h.Transcript)
	g.POST("/chat/messages", h.Send)
}

type sendRequest struct {
	Text string `json:"text"`
}

// Send handles POST /chat/messages. The reply arrives in the transcript
// after the simulated latency.
func (h *Handler) Send(c echo.Context) error {
	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	msg, err := h.session.Send(req.Text)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusAccepted, msg)
}

// Transcript handles GET /chat/messages.
func (h *Handler) Transcript(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session.Messages())
}
