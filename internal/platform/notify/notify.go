// Package notify provides the fire-and-forget notification channel consumed
// by the dashboard's toast surface. Domain services emit an event for every
// mutation and validation failure; the events carry no data contract beyond
// title, description and severity.
package notify

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Severity classifies an event for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Event is a single user-visible notification.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier is the capability injected into domain services.
type Notifier interface {
	Notify(Event)
}

// Noop discards every event. Used in tests and wherever the notification
// surface is absent.
type Noop struct{}

func (Noop) Notify(Event) {}

// Info builds an informational event.
func Info(title, description string) Event {
	return Event{Title: title, Description: description, Severity: SeverityInfo}
}

// Success builds a success event.
func Success(title, description string) Event {
	return Event{Title: title, Description: description, Severity: SeveritySuccess}
}

// Error builds an error event.
func Error(title, description string) Event {
	return Event{Title: title, Description: description, Severity: SeverityError}
}

const defaultMaxEvents = 200

// Center is the in-memory Notifier implementation. It records events
// newest-first, bounded to a maximum count.
type Center struct {
	mu     sync.Mutex
	events []Event
	max    int
}

// NewCenter creates a Center with the default retention bound.
func NewCenter() *Center {
	return &Center{max: defaultMaxEvents}
}

// Notify records the event, assigning its id and timestamp.
func (c *Center) Notify(ev Event) {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	if ev.Severity == "" {
		ev.Severity = SeverityInfo
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]Event, 0, len(c.events)+1)
	next = append(next, ev)
	next = append(next, c.events...)
	if len(next) > c.max {
		next = next[:c.max]
	}
	c.events = next
}

// Events returns a copy of the recorded events, newest-first.
func (c *Center) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Stats returns event counts grouped by severity.
func (c *Center) Stats() map[Severity]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := map[Severity]int{
		SeverityInfo:    0,
		SeveritySuccess: 0,
		SeverityError:   0,
	}
	for _, ev := range c.events {
		stats[ev.Severity]++
	}
	return stats
}

// Handler exposes the notification feed over HTTP.
type Handler struct {
	center *Center
}

// NewHandler creates a notification Handler.
func NewHandler(center *Center) *Handler {
	return &Handler{center: center}
}

// RegisterRoutes registers the notification routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.List)
	g.GET("/notifications/stats", h.Stats)
}

// List handles GET /notifications.
func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.center.Events())
}

// Stats handles GET /notifications/stats.
func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.center.Stats())
}
