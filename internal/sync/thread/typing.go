package thread

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// typingEmitter turns a stream of local input activity into at most one
// typing:true per burst and exactly one trailing typing:false once the
// input goes quiet. The debounce window delays the start signal; the stop
// window measures idle time from the last activity.
type typingEmitter struct {
	clock     clock.Clock
	debounce  time.Duration
	stopAfter time.Duration
	emit      func(typing bool)

	mu        sync.Mutex
	pending   *clock.Timer
	stopTimer *clock.Timer
	sent      bool
}

func newTypingEmitter(clk clock.Clock, debounce, stopAfter time.Duration, emit func(bool)) *typingEmitter {
	return &typingEmitter{
		clock:     clk,
		debounce:  debounce,
		stopAfter: stopAfter,
		emit:      emit,
	}
}

func (t *typingEmitter) Activity() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.sent && t.pending == nil {
		t.pending = t.clock.AfterFunc(t.debounce, t.fireStart)
	}

	if t.stopTimer != nil {
		t.stopTimer.Stop()
	}
	t.stopTimer = t.clock.AfterFunc(t.stopAfter, t.fireStop)
}

func (t *typingEmitter) fireStart() {
	t.mu.Lock()
	t.pending = nil
	start := !t.sent
	if start {
		t.sent = true
	}
	t.mu.Unlock()

	if start {
		t.emit(true)
	}
}

func (t *typingEmitter) fireStop() {
	t.mu.Lock()
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.stopTimer = nil
	stop := t.sent
	t.sent = false
	t.mu.Unlock()

	if stop {
		t.emit(false)
	}
}

// Cancel drops all timers without emitting; used when the thread closes and
// the room is left anyway.
func (t *typingEmitter) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	if t.stopTimer != nil {
		t.stopTimer.Stop()
		t.stopTimer = nil
	}
	t.sent = false
}
