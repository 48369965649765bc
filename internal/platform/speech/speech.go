// Package speech abstracts the optional speech-to-text capability. Hosts must
// work with either implementation: when recognition is unavailable the
// feature degrades to manual text entry and the unavailability is surfaced
// once per session through the notification channel.
package speech

import (
	"errors"
	"sync"

	"github.com/medichat/medichat/internal/platform/notify"
)

// ErrUnavailable is returned by recognizers that cannot capture audio.
var ErrUnavailable = errors.New("speech recognition is not available")

// Recognizer is the capability surface. Start begins a capture session and
// delivers each recognized phrase to sink; Stop ends the session.
type Recognizer interface {
	Available() bool
	Start(sink func(text string)) error
	Stop()
}

// Unavailable is the degraded implementation used when no speech backend
// exists. The first Start reports the condition through the notifier; later
// calls fail silently with the same error.
type Unavailable struct {
	notifier notify.Notifier
	once     sync.Once
}

// NewUnavailable creates the degraded recognizer.
func NewUnavailable(n notify.Notifier) *Unavailable {
	return &Unavailable{notifier: n}
}

func (u *Unavailable) Available() bool { return false }

func (u *Unavailable) Start(func(string)) error {
	u.once.Do(func() {
		u.notifier.Notify(notify.Error(
			"Speech Recognition Not Available",
			"Dictation is disabled for this session; use manual text entry.",
		))
	})
	return ErrUnavailable
}

func (u *Unavailable) Stop() {}

// Scripted replays a fixed list of phrases to the sink on Start. It stands in
// for a real recognizer in tests and demos.
type Scripted struct {
	Phrases []string

	mu      sync.Mutex
	started bool
}

func (s *Scripted) Available() bool { return true }

// Start delivers every scripted phrase synchronously.
func (s *Scripted) Start(sink func(text string)) error {
	s.mu.Lock()
	s.started = true
	phrases := s.Phrases
	s.mu.Unlock()

	for _, p := range phrases {
		sink(p)
	}
	return nil
}

func (s *Scripted) Stop() {
	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
}

// Started reports whether a capture session is active.
func (s *Scripted) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}
