package prescription

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medichat/medichat/internal/filter"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

type Service struct {
	prescriptions *store.Store[Prescription]
	notifier      notify.Notifier
}

func NewService(prescriptions *store.Store[Prescription], notifier notify.Notifier) *Service {
	return &Service{prescriptions: prescriptions, notifier: notifier}
}

// List returns the filtered prescription view. Search covers the patient
// name only.
func (s *Service) List(f Filters) []Prescription {
	return filter.Apply(s.prescriptions.Snapshot(),
		filter.Search(f.Search, func(p Prescription) string { return p.PatientName }),
		filter.Enum(f.Status, func(p Prescription) string { return p.Status }),
	)
}

// Get returns the prescription with the given id.
func (s *Service) Get(id string) (Prescription, bool) {
	return s.prescriptions.Get(id)
}

// Add creates a new prescription at the front of the store. A patient and at
// least one medicine line are required; rejected adds mutate nothing and
// emit a validation notification.
func (s *Service) Add(p Prescription) (Prescription, error) {
	if p.PatientID == "" && p.PatientName == "" {
		s.notifier.Notify(notify.Error("Patient Required", "Please select a patient for this prescription"))
		return Prescription{}, fmt.Errorf("patient is required")
	}
	if len(p.Medicines) == 0 {
		s.notifier.Notify(notify.Error("Medicines Required", "Please add at least one medicine to the prescription"))
		return Prescription{}, fmt.Errorf("at least one medicine is required")
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if !validStatuses[p.Status] {
		return Prescription{}, fmt.Errorf("invalid status: %s", p.Status)
	}
	if p.Date == "" {
		p.Date = time.Now().Format("2006-01-02")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := s.prescriptions.Prepend(p); err != nil {
		return Prescription{}, err
	}
	s.notifier.Notify(notify.Success("Prescription Saved",
		fmt.Sprintf("Prescription saved for %s", p.PatientName)))
	return p, nil
}

// Send marks the prescription as sent to the pharmacy. A lookup miss is a
// silent no-op.
func (s *Service) Send(id string) (Prescription, bool) {
	changed := s.prescriptions.Update(id, func(p Prescription) Prescription {
		p.Status = StatusSent
		return p
	})
	if !changed {
		return Prescription{}, false
	}
	s.notifier.Notify(notify.Success("Prescription Sent", "Prescription has been sent to the pharmacy"))
	p, _ := s.prescriptions.Get(id)
	return p, true
}

// AppendNotes appends dictated or typed text to the prescription's notes,
// separated by a single space. A lookup miss is a silent no-op.
func (s *Service) AppendNotes(id, text string) (Prescription, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.prescriptions.Get(id)
	}
	changed := s.prescriptions.Update(id, func(p Prescription) Prescription {
		if p.Notes == "" {
			p.Notes = text
		} else {
			p.Notes = p.Notes + " " + text
		}
		return p
	})
	if !changed {
		return Prescription{}, false
	}
	p, _ := s.prescriptions.Get(id)
	return p, true
}

// Stats summarizes the unfiltered store by lifecycle state.
func (s *Service) Stats() Stats {
	var st Stats
	for _, p := range s.prescriptions.Snapshot() {
		st.Total++
		switch p.Status {
		case StatusDraft:
			st.Draft++
		case StatusSent:
			st.Sent++
		case StatusCompleted:
			st.Completed++
		}
	}
	return st
}
