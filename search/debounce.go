package search

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must stay still before a search.
const DefaultQuietPeriod = 1500 * time.Millisecond

// Debouncer delays fn until no Trigger has arrived for the quiet period.
// Only the most recent value survives.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func(string)
	timer *time.Timer
	// wg counts scheduled and running calls. Add and Wait both run under
	// mu so an Add from zero never races a Wait.
	wg sync.WaitGroup
}

// NewDebouncer creates a debouncer that calls fn after delay.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger cancels any pending call and schedules fn(value).
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.fn(value)
	})
}

// Stop cancels a pending call. A call already running is not affected.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.timer = nil
}

// Wait blocks until no call is pending or running. Trigger and Stop
// block while Wait is in progress; fn itself must not call them.
func (d *Debouncer) Wait() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wg.Wait()
}
