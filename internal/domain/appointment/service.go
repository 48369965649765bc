package appointment

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/medichat/medichat/internal/filter"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

type Service struct {
	appointments *store.Store[Appointment]
	notifier     notify.Notifier
}

func NewService(appointments *store.Store[Appointment], notifier notify.Notifier) *Service {
	return &Service{appointments: appointments, notifier: notifier}
}

// List returns the filtered calendar view. The date dimension matches one
// day exactly; a day without appointments yields an empty result.
func (s *Service) List(f Filters) []Appointment {
	return filter.Apply(s.appointments.Snapshot(),
		filter.Search(f.Search,
			func(a Appointment) string { return a.PatientName },
			func(a Appointment) string { return a.Type },
		),
		filter.Enum(f.Status, func(a Appointment) string { return a.Status }),
		func(a Appointment) bool { return f.Date == "" || a.Date == f.Date },
	)
}

// Get returns the appointment with the given id.
func (s *Service) Get(id string) (Appointment, bool) {
	return s.appointments.Get(id)
}

// Add books a new appointment.
func (s *Service) Add(a Appointment) (Appointment, error) {
	if a.PatientName == "" {
		s.notifier.Notify(notify.Error("Error", "Patient name is required"))
		return Appointment{}, fmt.Errorf("patient_name is required")
	}
	if a.Date == "" {
		s.notifier.Notify(notify.Error("Error", "Appointment date is required"))
		return Appointment{}, fmt.Errorf("date is required")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatuses[a.Status] {
		return Appointment{}, fmt.Errorf("invalid status: %s", a.Status)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if err := s.appointments.Prepend(a); err != nil {
		return Appointment{}, err
	}
	s.notifier.Notify(notify.Success("Appointment added", a.PatientName+" on "+a.Date))
	return a, nil
}

// SetStatus moves the appointment with the given id to the given status; a
// lookup miss is a silent no-op.
func (s *Service) SetStatus(id, status string) (bool, error) {
	if !validStatuses[status] {
		return false, fmt.Errorf("invalid status: %s", status)
	}
	changed := s.appointments.Update(id, func(a Appointment) Appointment {
		a.Status = status
		return a
	})
	if changed {
		s.notifier.Notify(notify.Info("Appointment updated", "Status changed to "+status))
	}
	return changed, nil
}

// Cancel marks the appointment cancelled; a miss is a silent no-op.
func (s *Service) Cancel(id string) bool {
	changed, _ := s.SetStatus(id, StatusCancelled)
	return changed
}

// Stats summarizes the unfiltered store.
func (s *Service) Stats() Stats {
	st := Stats{ByDate: map[string]int{}}
	for _, a := range s.appointments.Snapshot() {
		st.Total++
		st.ByDate[a.Date]++
		switch a.Status {
		case StatusScheduled:
			st.Scheduled++
		case StatusInProgress:
			st.InProgress++
		case StatusCompleted:
			st.Completed++
		case StatusCancelled:
			st.Cancelled++
		}
	}
	return st
}
