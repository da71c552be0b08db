package future

import (
	"context"

	"github.com/pkg/errors"
)

// Guard ties a chain to ctx so the chain goes quiet once ctx is done. The
// returned Future checks ctx before starting f's operation and again before
// forwarding its completion, so stages placed after a Guard never begin for
// a canceled context, and their handlers are never invoked.
//
// Cancellation is cooperative. An operation already in flight is not
// interrupted; its result is dropped at the guard. Place a Guard between
// stages wherever the chain should be able to stop:
//
//	future.Then(future.Guard(ctx, load), process)
//
// It panics if ctx is nil.
func Guard[T any](ctx context.Context, f Future[T]) Future[T] {
	if ctx == nil {
		panic(errors.New("future: the provided Context is nil"))
	}
	return New(func(completion func(T)) {
		if ctx.Err() != nil {
			return
		}
		f.Resolve(func(v T) {
			if ctx.Err() != nil {
				return
			}
			completion(v)
		})
	})
}
