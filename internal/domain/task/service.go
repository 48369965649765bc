package task

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/medichat/medichat/internal/filter"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

type Service struct {
	tasks    *store.Store[Task]
	notifier notify.Notifier
}

func NewService(tasks *store.Store[Task], notifier notify.Notifier) *Service {
	return &Service{tasks: tasks, notifier: notifier}
}

func completionPredicate(want string) filter.Predicate[Task] {
	switch want {
	case CompletionCompleted:
		return func(t Task) bool { return t.Completed }
	case CompletionPending:
		return func(t Task) bool { return !t.Completed }
	default:
		return func(Task) bool { return true }
	}
}

// List returns the filtered task view. Search covers the title only, as in
// the task list's search box.
func (s *Service) List(f Filters) []Task {
	return filter.Apply(s.tasks.Snapshot(),
		filter.Search(f.Search, func(t Task) string { return t.Title }),
		completionPredicate(f.Completion),
		filter.Enum(f.Category, func(t Task) string { return t.Category }),
	)
}

// Get returns the task with the given id.
func (s *Service) Get(id string) (Task, bool) {
	return s.tasks.Get(id)
}

// Add creates a new task at the front of the store. The title is required;
// a rejected add mutates nothing and emits a validation notification.
func (s *Service) Add(t Task) (Task, error) {
	if t.Title == "" {
		s.notifier.Notify(notify.Error("Error", "Task title is required"))
		return Task{}, fmt.Errorf("title is required")
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if !validPriorities[t.Priority] {
		return Task{}, fmt.Errorf("invalid priority: %s", t.Priority)
	}
	if t.Category == "" {
		t.Category = CategoryPatient
	}
	if !validCategories[t.Category] {
		return Task{}, fmt.Errorf("invalid category: %s", t.Category)
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.Completed = false
	if err := s.tasks.Prepend(t); err != nil {
		return Task{}, err
	}
	s.notifier.Notify(notify.Success("Task added", t.Title))
	return t, nil
}

// Toggle flips the completion flag of the matching task only. A lookup miss
// is a silent no-op with no state change and no notification.
func (s *Service) Toggle(id string) (Task, bool) {
	changed := s.tasks.Update(id, func(t Task) Task {
		t.Completed = !t.Completed
		return t
	})
	if !changed {
		return Task{}, false
	}
	t, _ := s.tasks.Get(id)
	if t.Completed {
		s.notifier.Notify(notify.Success("Task completed", t.Title))
	} else {
		s.notifier.Notify(notify.Info("Task marked as pending", t.Title))
	}
	return t, true
}

// Delete removes the task with the given id; a miss is a silent no-op.
func (s *Service) Delete(id string) bool {
	t, ok := s.tasks.Get(id)
	if !s.tasks.Delete(id) {
		return false
	}
	if ok {
		s.notifier.Notify(notify.Info("Task deleted", t.Title))
	}
	return true
}

// Stats summarizes the unfiltered store. Percent-complete of an empty store
// is 0.
func (s *Service) Stats() Stats {
	st := Stats{
		ByPriority: map[string]int{
			PriorityLow:    0,
			PriorityMedium: 0,
			PriorityHigh:   0,
		},
	}
	for _, t := range s.tasks.Snapshot() {
		st.Total++
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
		st.ByPriority[t.Priority]++
	}
	if st.Total > 0 {
		st.PercentComplete = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}
