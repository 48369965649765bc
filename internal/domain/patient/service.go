package patient

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/medichat/medichat/internal/filter"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

type Service struct {
	patients *store.Store[Patient]
	notifier notify.Notifier
}

func NewService(patients *store.Store[Patient], notifier notify.Notifier) *Service {
	return &Service{patients: patients, notifier: notifier}
}

// List returns the filtered patient view, preserving store order. Search
// covers name, email and phone.
func (s *Service) List(f Filters) []Patient {
	return filter.Apply(s.patients.Snapshot(),
		filter.Search(f.Search,
			func(p Patient) string { return p.Name },
			func(p Patient) string { return p.Email },
			func(p Patient) string { return p.Phone },
		),
		filter.Enum(f.Status, func(p Patient) string { return p.Status }),
	)
}

// Get returns the patient with the given id.
func (s *Service) Get(id string) (Patient, bool) {
	return s.patients.Get(id)
}

// Add registers a new patient at the front of the store.
func (s *Service) Add(p Patient) (Patient, error) {
	if p.Name == "" {
		s.notifier.Notify(notify.Error("Error", "Patient name is required"))
		return Patient{}, fmt.Errorf("name is required")
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if !validStatuses[p.Status] {
		return Patient{}, fmt.Errorf("invalid status: %s", p.Status)
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := s.patients.Prepend(p); err != nil {
		return Patient{}, err
	}
	s.notifier.Notify(notify.Success("Patient added", p.Name))
	return p, nil
}

// Stats summarizes the unfiltered store.
func (s *Service) Stats() Stats {
	var st Stats
	for _, p := range s.patients.Snapshot() {
		st.Total++
		switch p.Status {
		case StatusActive:
			st.Active++
		case StatusInactive:
			st.Inactive++
		}
	}
	return st
}
