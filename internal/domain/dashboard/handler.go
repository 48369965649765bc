// Package dashboard exposes the combined summary surface backing the
// dashboard's overview cards. All figures come from the unfiltered stores.
package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medichat/medichat/internal/domain/appointment"
	"github.com/medichat/medichat/internal/domain/medicine"
	"github.com/medichat/medichat/internal/domain/patient"
	"github.com/medichat/medichat/internal/domain/prescription"
	"github.com/medichat/medichat/internal/domain/record"
	"github.com/medichat/medichat/internal/domain/task"
)

// Stats bundles every domain summary into one payload.
type Stats struct {
	Patients      patient.Stats      `json:"patients"`
	Appointments  appointment.Stats  `json:"appointments"`
	Records       record.Stats       `json:"records"`
	Tasks         task.Stats         `json:"tasks"`
	Prescriptions prescription.Stats `json:"prescriptions"`
	Medicines     medicine.Stats     `json:"medicines"`
}

type Handler struct {
	patients      *patient.Service
	appointments  *appointment.Service
	records       *record.Service
	tasks         *task.Service
	prescriptions *prescription.Service
	medicines     *medicine.Service
}

func NewHandler(
	patients *patient.Service,
	appointments *appointment.Service,
	records *record.Service,
	tasks *task.Service,
	prescriptions *prescription.Service,
	medicines *medicine.Service,
) *Handler {
	return &Handler{
		patients:      patients,
		appointments:  appointments,
		records:       records,
		tasks:         tasks,
		prescriptions: prescriptions,
		medicines:     medicines,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", h.Stats)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, Stats{
		Patients:      h.patients.Stats(),
		Appointments:  h.appointments.Stats(),
		Records:       h.records.Stats(),
		Tasks:         h.tasks.Stats(),
		Prescriptions: h.prescriptions.Stats(),
		Medicines:     h.medicines.Stats(),
	})
}
