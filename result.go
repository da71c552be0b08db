package future

import (
	"github.com/pkg/errors"

	"github.com/garlicnation/futures/result"
)

// GoResult adapts Go's conventional two-value function into a Future whose
// completions carry an explicit outcome. Like Go, each Resolve runs work on
// a fresh goroutine. It panics if work is nil.
func GoResult[T any](work func() (T, error)) Future[result.Result[T]] {
	if work == nil {
		panic(errors.New("future: the provided work function is nil"))
	}
	return Go(func() result.Result[T] {
		v, err := work()
		if err != nil {
			return result.Err[T](err)
		}
		return result.Ok(v)
	})
}

// ThenResult chains outcome-carrying futures with failure short-circuiting.
// On a successful upstream outcome, next receives the value and reports its
// own outcome through its completion callback. On a failed one, next is
// skipped entirely and the failure is passed straight through, so a single
// terminal handler observes the first error a chain produces.
// It panics if next is nil.
func ThenResult[T, U any](
	f Future[result.Result[T]],
	next func(input T, completion func(result.Result[U])),
) Future[result.Result[U]] {
	if next == nil {
		panic(errors.New("future: the provided continuation is nil"))
	}
	return Then(f, func(r result.Result[T], completion func(result.Result[U])) {
		v, err := r.Get()
		if err != nil {
			completion(result.Err[U](err))
			return
		}
		next(v, completion)
	})
}

// MapResult is ThenResult for synchronous steps written in Go's two-value
// convention: a returned error fails the chain, otherwise the returned
// value continues it. It panics if transform is nil.
func MapResult[T, U any](
	f Future[result.Result[T]],
	transform func(T) (U, error),
) Future[result.Result[U]] {
	if transform == nil {
		panic(errors.New("future: the provided transform is nil"))
	}
	return ThenResult(f, func(input T, completion func(result.Result[U])) {
		v, err := transform(input)
		if err != nil {
			completion(result.Err[U](err))
			return
		}
		completion(result.Ok(v))
	})
}
