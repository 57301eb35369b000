package utils

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDelay is the delay used when callers have no preference.
const DefaultDelay = 100 * time.Millisecond

// OperationCompleted is the value every AsyncOperation resolves with.
const OperationCompleted = "Operation completed"

// ErrCanceled is the outcome of a Deferred that was cancelled before its timer fired.
var ErrCanceled = errors.New("operation canceled")

// Deferred is a single-shot result that becomes available after a timer fires.
type Deferred struct {
	timer *time.Timer
	done  chan struct{}
	once  sync.Once

	value string
	err   error
}

// AsyncOperation returns a Deferred that resolves with OperationCompleted no
// earlier than delay after the call. A non-positive delay resolves on the
// next timer tick.
func AsyncOperation(delay time.Duration) *Deferred {
	d := &Deferred{done: make(chan struct{})}
	d.timer = time.AfterFunc(delay, func() {
		d.resolve(OperationCompleted, nil)
	})
	return d
}

func (d *Deferred) resolve(value string, err error) {
	d.once.Do(func() {
		d.value = value
		d.err = err
		close(d.done)
	})
}

// Done is closed once the result is available.
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Wait blocks until the result is available or ctx ends. An ended context
// does not cancel the Deferred.
func (d *Deferred) Wait(ctx context.Context) (string, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Cancel stops the timer. It reports whether the call settled the Deferred
// with ErrCanceled; false means it had already resolved.
func (d *Deferred) Cancel() bool {
	if !d.timer.Stop() {
		return false
	}
	d.resolve("", ErrCanceled)
	return true
}
