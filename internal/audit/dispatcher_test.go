package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type memoryWriter struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	err    error
}

func (w *memoryWriter) Log(_ context.Context, ev Event) error {
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, ev)
	return w.err
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	w := &memoryWriter{}
	d := NewDispatcher(w)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{UserID: int64(i), Action: "booking_confirmed"})
	}
	d.Close()
	d.Close()

	assert.Len(t, w.events, 10)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	w := &memoryWriter{block: make(chan struct{})}
	d := NewDispatcher(w)

	for i := 0; i < 150; i++ {
		d.Dispatch(Event{Action: "booking_created"})
	}
	close(w.block)
	d.Close()

	assert.Less(t, len(w.events), 150)
	assert.GreaterOrEqual(t, len(w.events), 100)
}

func TestDispatcher_WriterErrorIsSwallowed(t *testing.T) {
	w := &memoryWriter{err: errors.New("db down")}
	d := NewDispatcher(w)

	d.Dispatch(Event{Action: "booking_cancelled"})
	d.Close()

	assert.Len(t, w.events, 1)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	w := &memoryWriter{}
	d := NewDispatcher(w)
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "booking_confirmed"})
	})
	assert.Empty(t, w.events)
}

func TestDispatcher_ConcurrentDispatchDuringClose(t *testing.T) {
	w := &memoryWriter{}
	d := NewDispatcher(w)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "booking_created"})
			}
		}()
	}
	d.Close()
	wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.LessOrEqual(t, len(w.events), 1000)
}
