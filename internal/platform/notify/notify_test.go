package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestCenter_RecordsNewestFirst(t *testing.T) {
	c := NewCenter()
	c.Notify(Info("first", "a"))
	c.Notify(Success("second", "b"))

	events := c.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Title != "second" {
		t.Errorf("expected newest event first, got %q", events[0].Title)
	}
	if events[0].ID == "" || events[0].CreatedAt.IsZero() {
		t.Error("expected id and timestamp to be assigned")
	}
}

func TestCenter_Stats(t *testing.T) {
	c := NewCenter()
	c.Notify(Info("a", ""))
	c.Notify(Error("b", ""))
	c.Notify(Error("c", ""))

	stats := c.Stats()
	if stats[SeverityInfo] != 1 {
		t.Errorf("expected 1 info, got %d", stats[SeverityInfo])
	}
	if stats[SeverityError] != 2 {
		t.Errorf("expected 2 errors, got %d", stats[SeverityError])
	}
	if stats[SeveritySuccess] != 0 {
		t.Errorf("expected success bucket reported as 0, got %d", stats[SeveritySuccess])
	}
}

func TestCenter_RetentionBound(t *testing.T) {
	c := &Center{max: 3}
	for i := 0; i < 5; i++ {
		c.Notify(Info("ev", ""))
	}
	if len(c.Events()) != 3 {
		t.Errorf("expected retention bound of 3, got %d", len(c.Events()))
	}
}

func TestHandler_List(t *testing.T) {
	center := NewCenter()
	center.Notify(Success("Task added", "Review lab results"))
	h := NewHandler(center)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var events []Event
	json.Unmarshal(rec.Body.Bytes(), &events)
	if len(events) != 1 || events[0].Title != "Task added" {
		t.Errorf("unexpected events payload: %+v", events)
	}
}
