package record

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/medichat/medichat/internal/filter"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

type Service struct {
	records  *store.Store[Record]
	notifier notify.Notifier
}

func NewService(records *store.Store[Record], notifier notify.Notifier) *Service {
	return &Service{records: records, notifier: notifier}
}

// List returns the filtered records view. Search covers patient name,
// patient id and record type.
func (s *Service) List(f Filters) []Record {
	return filter.Apply(s.records.Snapshot(),
		filter.Search(f.Search,
			func(r Record) string { return r.PatientName },
			func(r Record) string { return r.PatientID },
			func(r Record) string { return r.RecordType },
		),
		filter.Enum(f.Status, func(r Record) string { return r.Status }),
	)
}

// Get returns the record with the given id.
func (s *Service) Get(id string) (Record, bool) {
	return s.records.Get(id)
}

// Add files a new record at the front of the store.
func (s *Service) Add(r Record) (Record, error) {
	if r.PatientName == "" {
		s.notifier.Notify(notify.Error("Error", "Patient name is required"))
		return Record{}, fmt.Errorf("patient_name is required")
	}
	if r.RecordType == "" {
		s.notifier.Notify(notify.Error("Error", "Record type is required"))
		return Record{}, fmt.Errorf("record_type is required")
	}
	if r.Status == "" {
		r.Status = StatusDraft
	}
	if !validStatuses[r.Status] {
		return Record{}, fmt.Errorf("invalid status: %s", r.Status)
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if err := s.records.Prepend(r); err != nil {
		return Record{}, err
	}
	s.notifier.Notify(notify.Success("Record created", r.RecordType+" for "+r.PatientName))
	return r, nil
}

// Delete removes the record with the given id; a miss is a silent no-op.
func (s *Service) Delete(id string) bool {
	rec, ok := s.records.Get(id)
	if !s.records.Delete(id) {
		return false
	}
	if ok {
		s.notifier.Notify(notify.Info("Record deleted", rec.RecordType+" for "+rec.PatientName))
	}
	return true
}

// Stats summarizes the unfiltered store by status; every bucket is reported
// even when zero.
func (s *Service) Stats() Stats {
	var st Stats
	for _, r := range s.records.Snapshot() {
		st.Total++
		switch r.Status {
		case StatusComplete:
			st.Complete++
		case StatusPending:
			st.Pending++
		case StatusDraft:
			st.Draft++
		}
	}
	return st
}
