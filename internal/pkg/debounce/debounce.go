package debounce

import (
	"sync"
	"time"
)

// Input coalesces rapid text changes. Each Set resets the quiet window, so the
// flush callback fires once with the final value after the input has been
// stable for the full window. At most one timer is pending at a time.
type Input struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	flush  func(string)
}

func NewInput(window time.Duration, flush func(string)) *Input {
	return &Input{
		window: window,
		flush:  flush,
	}
}

// Set replaces any pending value with text and restarts the quiet window.
func (i *Input) Set(text string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.timer != nil {
		i.timer.Stop()
	}
	i.timer = time.AfterFunc(i.window, func() {
		i.flush(text)
	})
}

// Stop cancels any pending flush.
func (i *Input) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
}
