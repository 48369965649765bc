package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medichat/medichat/internal/domain/appointment"
	"github.com/medichat/medichat/internal/domain/medicine"
	"github.com/medichat/medichat/internal/domain/patient"
	"github.com/medichat/medichat/internal/domain/prescription"
	"github.com/medichat/medichat/internal/domain/record"
	"github.com/medichat/medichat/internal/domain/task"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

func TestHandler_Stats_CombinesAllDomains(t *testing.T) {
	n := notify.Noop{}
	h := NewHandler(
		patient.NewService(store.New(patient.Seed()...), n),
		appointment.NewService(store.New(appointment.Seed()...), n),
		record.NewService(store.New(record.Seed()...), n),
		task.NewService(store.New(task.Seed()...), n),
		prescription.NewService(store.New(prescription.Seed()...), n),
		medicine.NewService(store.New(medicine.Seed()...), n),
	)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Stats(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.Patients.Total != 4 {
		t.Errorf("expected 4 patients, got %d", got.Patients.Total)
	}
	if got.Appointments.Total != 6 {
		t.Errorf("expected 6 appointments, got %d", got.Appointments.Total)
	}
	if got.Records.Total != 7 {
		t.Errorf("expected 7 records, got %d", got.Records.Total)
	}
	if got.Tasks.Total != 5 || got.Tasks.PercentComplete != 20 {
		t.Errorf("unexpected task stats: %+v", got.Tasks)
	}
	if got.Prescriptions.Total != 2 {
		t.Errorf("expected 2 prescriptions, got %d", got.Prescriptions.Total)
	}
	if got.Medicines.Total != 8 {
		t.Errorf("expected 8 medicines, got %d", got.Medicines.Total)
	}
}
