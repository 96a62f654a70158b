package i18n

import (
	"sync"
	"time"
)

// DefaultLoadingDelay is how long a locale-to-locale switch may stay in
// flight before the loading flag turns on. First-ever switches skip the
// debounce and flag immediately.
const DefaultLoadingDelay = 200 * time.Millisecond

// loadingSignal derives the loading flag from in-flight switches. Switches
// away from an already committed locale are debounced so flushes that settle
// within the delay never surface as loading.
type loadingSignal struct {
	delay  time.Duration
	notify func(bool)

	mu      sync.Mutex
	pending int
	active  bool
}

func newLoadingSignal(delay time.Duration, notify func(bool)) *loadingSignal {
	if delay <= 0 {
		delay = DefaultLoadingDelay
	}
	return &loadingSignal{delay: delay, notify: notify}
}

// loading reports the current flag value.
func (s *loadingSignal) loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// begin records a flush entering flight and returns the settle callback the
// caller must invoke once the flush settles, success or failure. With
// immediate set the flag turns on right away; otherwise a timer raises it
// only if the flush outlives the delay.
func (s *loadingSignal) begin(immediate bool) (settle func()) {
	s.mu.Lock()
	s.pending++
	changed := immediate && s.set(true)
	s.mu.Unlock()

	if changed {
		s.notify(true)
	}

	var timer *time.Timer
	if !immediate {
		timer = time.AfterFunc(s.delay, func() {
			s.mu.Lock()
			changed := s.pending > 0 && s.set(true)
			s.mu.Unlock()

			if changed {
				s.notify(true)
			}
		})
	}

	return func() {
		if timer != nil {
			timer.Stop()
		}

		s.mu.Lock()
		s.pending--
		changed := s.pending == 0 && s.set(false)
		s.mu.Unlock()

		if changed {
			s.notify(false)
		}
	}
}

// set flips the flag and reports whether it changed. Callers hold mu.
func (s *loadingSignal) set(v bool) bool {
	if s.active == v {
		return false
	}
	s.active = v
	return true
}
