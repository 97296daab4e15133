// Package worker runs a single task on a dedicated goroutine with a deadline.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/panics"
)

var (
	// ErrTimeout means the task did not finish before the deadline
	ErrTimeout = errors.New("worker: task did not complete in time")

	// ErrPanic means the task panicked
	ErrPanic = errors.New("worker: task panicked")
)

// Task is the unit of work executed by Run
type Task func(ctx context.Context) error

// Run executes task on a fresh goroutine locked to its OS thread and waits
// at most timeout for it. A timeout <= 0 waits until ctx is done.
//
// The context handed to the task is cancelled when Run gives up. A task that
// ignores it keeps running in the background; Run never waits for it.
func Run(ctx context.Context, timeout time.Duration, task Task) error {
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	// Buffered so an abandoned task can still finish and exit
	done := make(chan error, 1)

	go func() {
		// Window focus is per thread, so the whole task stays on one
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		var err error
		var pc panics.Catcher
		pc.Try(func() { err = task(ctx) })

		if r := pc.Recovered(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r.Value)
		}

		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Prefer a result that raced with the deadline
		select {
		case err := <-done:
			return err
		default:
		}

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s: %w", ErrTimeout, timeout, ctx.Err())
		}

		return ctx.Err()
	}
}
