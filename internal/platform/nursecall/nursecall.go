// Package nursecall implements the call-nurse channel: a single-slot request
// that notifies the practice and automatically resets after a countdown. The
// dispatch itself is simulated; only the request lifecycle is real.
package nursecall

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/platform/schedule"
)

// ErrAlreadyRequested is returned when a call is made while one is active.
var ErrAlreadyRequested = errors.New("a nurse has already been called")

// Dispatcher owns the nurse-call state and its auto-reset timer.
type Dispatcher struct {
	mu         sync.Mutex
	active     bool
	calledAt   time.Time
	resetAfter time.Duration
	pending    *schedule.Handle
	notifier   notify.Notifier
	logger     zerolog.Logger
}

// NewDispatcher creates a Dispatcher that resets resetAfter after each call.
func NewDispatcher(n notify.Notifier, resetAfter time.Duration, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		resetAfter: resetAfter,
		notifier:   n,
		logger:     logger,
	}
}

// Call requests a nurse. While a request is active further calls are
// rejected; the request clears itself after the configured countdown.
func (d *Dispatcher) Call() error {
	d.mu.Lock()
	if d.active {
		d.mu.Unlock()
		return ErrAlreadyRequested
	}
	d.active = true
	d.calledAt = time.Now().UTC()
	resetAfter := d.resetAfter
	d.mu.Unlock()

	d.notifier.Notify(notify.Success(
		"Nurse Called",
		"A nurse has been notified and will be with you shortly.",
	))
	d.logger.Info().Dur("reset_after", resetAfter).Msg("nurse call requested")

	handle := schedule.After(resetAfter, d.reset)

	d.mu.Lock()
	if d.active {
		d.pending = handle
	}
	d.mu.Unlock()
	return nil
}

func (d *Dispatcher) reset() {
	d.mu.Lock()
	d.active = false
	d.pending = nil
	d.mu.Unlock()
	d.logger.Info().Msg("nurse call reset")
}

// Active reports whether a nurse request is in flight.
func (d *Dispatcher) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Close cancels the pending auto-reset. The owning server calls this on
// shutdown.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
	d.active = false
}

// Handler exposes the nurse-call channel over HTTP.
type Handler struct {
	dispatcher *Dispatcher
}

// NewHandler creates a nurse-call Handler.
func NewHandler(d *Dispatcher) *Handler {
	return &Handler{dispatcher: d}
}

// RegisterRoutes registers the nurse-call routes on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/nurse-call", h.Call)
	g.GET("/nurse-call", h.Status)
}

// Call handles POST /nurse-call.
func (h *Handler) Call(c echo.Context) error {
	if err := h.dispatcher.Call(); err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return c.JSON(http.StatusAccepted, map[string]any{"active": true})
}

// Status handles GET /nurse-call.
func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"active": h.dispatcher.Active()})
}
