package future

import (
	"time"

	"github.com/pkg/errors"
)

// Value returns a Future that completes synchronously with v every time it
// is resolved. It is the deferred form of an already-available result, and
// is handy as the head of a chain.
func Value[T any](v T) Future[T] {
	return New(func(completion func(T)) {
		completion(v)
	})
}

// Go returns a Future that runs work on a new goroutine and completes with
// its return value from that goroutine. It adapts ordinary blocking work
// into the completion-callback shape; each Resolve spawns a fresh goroutine
// and runs work again. It panics if work is nil.
func Go[T any](work func() T) Future[T] {
	if work == nil {
		panic(errors.New("future: the provided work function is nil"))
	}
	return New(func(completion func(T)) {
		go func() {
			completion(work())
		}()
	})
}

// After returns a Future that completes with v once at least d has elapsed.
// The timer is armed when the Future is resolved, not when it is built, and
// the completion fires on the timer's goroutine. Each Resolve arms a fresh
// timer.
func After[T any](d time.Duration, v T) Future[T] {
	return New(func(completion func(T)) {
		time.AfterFunc(d, func() {
			completion(v)
		})
	})
}
