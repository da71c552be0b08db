package future

import (
	"sync"

	"github.com/pkg/errors"
)

// All combines independent futures into one that completes with all of
// their values, in argument order. Resolving the combined Future resolves
// every input without waiting in between, so inputs backed by concurrent
// operations overlap freely; the combined completion fires once every input
// has reported, on whichever goroutine delivers the last value.
//
// All keeps only the first completion of each input; repeat completions by
// a misbehaving operation are dropped. With no inputs the combined Future
// completes immediately with an empty slice.
func All[T any](fs ...Future[T]) Future[[]T] {
	inputs := make([]Future[T], len(fs))
	copy(inputs, fs)

	return New(func(completion func([]T)) {
		if len(inputs) == 0 {
			completion([]T{})
			return
		}

		var (
			mu      sync.Mutex
			seen    = make([]bool, len(inputs))
			pending = len(inputs)
			values  = make([]T, len(inputs))
		)
		for i, f := range inputs {
			i, f := i, f
			f.Resolve(func(v T) {
				mu.Lock()
				if seen[i] {
					mu.Unlock()
					return
				}
				seen[i] = true
				values[i] = v
				pending--
				last := pending == 0
				mu.Unlock()

				if last {
					completion(values)
				}
			})
		}
	})
}

// First combines futures into one that completes with whichever value any
// of them delivers first. Resolving the combined Future resolves every
// input; the laggards keep running, and their results are discarded.
// It panics if called with no futures.
func First[T any](fs ...Future[T]) Future[T] {
	if len(fs) == 0 {
		panic(errors.New("future: First requires at least one future"))
	}
	inputs := make([]Future[T], len(fs))
	copy(inputs, fs)

	return New(func(completion func(T)) {
		var winner sync.Once
		for _, f := range inputs {
			f := f
			f.Resolve(func(v T) {
				winner.Do(func() {
					completion(v)
				})
			})
		}
	})
}
