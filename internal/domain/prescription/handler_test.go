package prescription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/platform/speech"
)

func newTestHandler(rec speech.Recognizer) (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc, rec), echo.New()
}

// -- REST Handler Tests --

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler(&speech.Scripted{})
	body := `{"patient_id":"p3","patient_name":"Michael Williams","medicines":[{"id":"m4","name":"Metformin","dosage":"1000mg"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_Create_NoMedicines(t *testing.T) {
	h, e := newTestHandler(&speech.Scripted{})
	body := `{"patient_id":"p3","patient_name":"Michael Williams"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err == nil {
		t.Error("expected error")
	}
}

func TestHandler_Send(t *testing.T) {
	h, e := newTestHandler(&speech.Scripted{})
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("rx2")
	if err := h.Send(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var got Prescription
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.Status != StatusSent {
		t.Errorf("expected sent, got %s", got.Status)
	}
}

func TestHandler_Dictate_AppendsTranscript(t *testing.T) {
	h, e := newTestHandler(&speech.Scripted{Phrases: []string{"Continue current", "dosage."}})
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("rx2")
	if err := h.Dictate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Prescription
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.HasSuffix(got.Notes, "Continue current dosage.") {
		t.Errorf("expected transcript appended, got %q", got.Notes)
	}
}

func TestHandler_Dictate_Unavailable(t *testing.T) {
	h, e := newTestHandler(speech.NewUnavailable(notify.Noop{}))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("rx1")
	err := h.Dictate(c)
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %v", err)
	}
}
