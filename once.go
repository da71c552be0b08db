package future

import "sync"

// Once hardens f against operations that complete more than once: for each
// Resolve of the returned Future, only the first completion reaches the
// handler, and repeats are dropped. The bare core forwards every completion
// it is given; wrap a stage in Once where that tolerance is unwanted.
//
// The guard is per Resolve call, so a Once future can still be resolved
// repeatedly, delivering one completion each time.
func Once[T any](f Future[T]) Future[T] {
	return New(func(completion func(T)) {
		var first sync.Once
		f.Resolve(func(v T) {
			first.Do(func() {
				completion(v)
			})
		})
	})
}
