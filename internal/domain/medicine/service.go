package medicine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/medichat/medichat/internal/filter"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

// expiryLayout is the date format inventory rows carry.
const expiryLayout = "2006-01-02"

type Service struct {
	medicines *store.Store[Medicine]
	notifier  notify.Notifier
}

func NewService(medicines *store.Store[Medicine], notifier notify.Notifier) *Service {
	return &Service{medicines: medicines, notifier: notifier}
}

// List returns the filtered inventory view. The type dimension accepts the
// "All Types" sentinel from the UI as well as the usual empty/"all" values.
func (s *Service) List(f Filters) []Medicine {
	typ := f.Type
	if typ == TypeAll {
		typ = filter.All
	}
	return filter.Apply(s.medicines.Snapshot(),
		filter.Search(f.Search, func(m Medicine) string { return m.Name }),
		filter.Enum(typ, func(m Medicine) string { return m.Type }),
		filter.Bucket(f.Stock, func(m Medicine) string { return StockBucket(m.Stock) }),
	)
}

// Get returns the medicine with the given id.
func (s *Service) Get(id string) (Medicine, bool) {
	return s.medicines.Get(id)
}

// Add creates a new inventory line at the front of the store.
func (s *Service) Add(m Medicine) (Medicine, error) {
	if m.Name == "" {
		s.notifier.Notify(notify.Error("Error", "Medicine name is required"))
		return Medicine{}, fmt.Errorf("name is required")
	}
	if m.Type == "" || m.Type == TypeAll {
		return Medicine{}, fmt.Errorf("type is required")
	}
	if m.Stock < 0 {
		return Medicine{}, fmt.Errorf("stock must not be negative")
	}
	if m.Expiry != "" {
		if _, err := time.Parse(expiryLayout, m.Expiry); err != nil {
			return Medicine{}, fmt.Errorf("invalid expiry date: %w", err)
		}
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if err := s.medicines.Prepend(m); err != nil {
		return Medicine{}, err
	}
	s.notifier.Notify(notify.Success("Medicine added", m.Name))
	return m, nil
}

// Stats summarizes the unfiltered inventory. Zero stock counts as out, not
// low.
func (s *Service) Stats() Stats {
	st := Stats{ByType: map[string]int{}}
	for _, m := range s.medicines.Snapshot() {
		st.Total++
		switch StockBucket(m.Stock) {
		case StockOut:
			st.Out++
		case StockLow:
			st.Low++
		}
		st.ByType[m.Type]++
	}
	return st
}

// ExpiringSoon returns up to three inventory lines whose expiry falls within
// three calendar months of now, soonest first. Rows with unparseable dates
// are skipped.
func (s *Service) ExpiringSoon(now time.Time) []Medicine {
	cutoff := now.AddDate(0, 3, 0)
	type dated struct {
		med Medicine
		at  time.Time
	}
	soon := []dated{}
	for _, m := range s.medicines.Snapshot() {
		at, err := time.Parse(expiryLayout, m.Expiry)
		if err != nil {
			continue
		}
		if !at.After(cutoff) {
			soon = append(soon, dated{med: m, at: at})
		}
	}
	sort.SliceStable(soon, func(i, j int) bool { return soon[i].at.Before(soon[j].at) })
	if len(soon) > 3 {
		soon = soon[:3]
	}
	out := make([]Medicine, len(soon))
	for i, d := range soon {
		out[i] = d.med
	}
	return out
}
