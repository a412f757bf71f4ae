package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, v)
}

func (r *callRecorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestDebouncer_CollapsesBurst(t *testing.T) {
	rec := &callRecorder{}
	d := NewDebouncer(80*time.Millisecond, rec.record)

	d.Trigger("In")
	time.Sleep(20 * time.Millisecond)
	d.Trigger("Ince")
	time.Sleep(20 * time.Millisecond)
	d.Trigger("Inception")

	d.Wait()
	assert.Equal(t, []string{"Inception"}, rec.get())
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	rec := &callRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)

	d.Trigger("Alien")
	d.Wait()
	d.Trigger("Aliens")
	d.Wait()

	assert.Equal(t, []string{"Alien", "Aliens"}, rec.get())
}

func TestDebouncer_Stop(t *testing.T) {
	rec := &callRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)

	d.Trigger("Heat")
	d.Stop()
	d.Wait()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.get())
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func(string) {})
	assert.Equal(t, DefaultQuietPeriod, d.delay)
}

func TestDebouncer_WaitCoversRunningCall(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})

	d := NewDebouncer(10*time.Millisecond, func(string) {
		close(started)
		<-release
	})
	d.Trigger("x")
	<-started

	go func() {
		d.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		t.Fatal("Wait returned while the call was still running")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	require.Eventually(t, func() bool {
		select {
		case <-finished:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncer_TriggerDuringWait(t *testing.T) {
	rec := &callRecorder{}
	d := NewDebouncer(5*time.Millisecond, rec.record)

	d.Trigger("first")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Wait()
		}()
	}
	for i := 0; i < 20; i++ {
		d.Trigger("last")
		time.Sleep(time.Millisecond)
	}
	wg.Wait()
	d.Wait()

	calls := rec.get()
	require.NotEmpty(t, calls)
	assert.Equal(t, "last", calls[len(calls)-1])
}
