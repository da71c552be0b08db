package future

import "github.com/pkg/errors"

// An AsyncOperation is a unit of work that returns promptly and reports its
// outcome later by invoking completion, possibly from another goroutine.
// Invoking completion is the only way a result leaves the operation.
type AsyncOperation[T any] func(completion func(T))

// A Future wraps an AsyncOperation into a value that can be combined with
// other asynchronous steps before any of them run.
//
// A Future is inert. Constructing one, or deriving new Futures from it with
// Then or Map, never invokes the wrapped operation; only Resolve does. Each
// Future owns exactly one operation and nothing else, so Futures are cheap
// to copy and a built chain fragment can be extended several ways without
// the branches interfering.
type Future[T any] struct {
	operation AsyncOperation[T]
}

// New wraps operation into a Future without invoking it.
//
// The operation should eventually invoke its completion callback; one that
// never does leaves every chain built on it silently incomplete. Nothing
// enforces this, nor how often or on which goroutine the callback fires.
// It panics if operation is nil.
func New[T any](operation func(completion func(T))) Future[T] {
	if operation == nil {
		panic(errors.New("future: the provided operation is nil"))
	}
	return Future[T]{operation: operation}
}

// Resolve starts the wrapped operation, passing handler as its completion
// callback. This is the sole point at which wrapped work begins.
//
// The handler is forwarded to the operation as-is: nothing constrains how
// often the operation invokes it, or on which goroutine. Resolve itself
// returns as soon as the operation does.
// It panics if handler is nil, or if f is the zero Future.
func (f Future[T]) Resolve(handler func(T)) {
	if handler == nil {
		panic(errors.New("future: the provided handler is nil"))
	}
	if f.operation == nil {
		panic(errors.New("future: resolving a zero Future"))
	}
	f.operation(handler)
}

// Then combines f with a continuation, producing a Future for the
// continuation's eventual result. The continuation receives f's value once
// it is available, together with a completion callback for reporting its
// own, possibly asynchronous, result.
//
// Composition is purely deferred: neither f's operation nor next runs until
// the returned Future is resolved. Resolving it starts f, and next begins
// only after f's callback has fired, so a chain of Then calls executes
// strictly left to right. f itself is left untouched and can be combined
// again. It panics if next is nil.
func Then[T, U any](f Future[T], next func(input T, completion func(U))) Future[U] {
	if next == nil {
		panic(errors.New("future: the provided continuation is nil"))
	}
	return New(func(completion func(U)) {
		f.Resolve(func(first T) {
			next(first, completion)
		})
	})
}

// Map is Then for synchronous steps: the derived Future completes with
// transform applied to f's value, on the goroutine that delivered it.
// It panics if transform is nil.
func Map[T, U any](f Future[T], transform func(T) U) Future[U] {
	if transform == nil {
		panic(errors.New("future: the provided transform is nil"))
	}
	return Then(f, func(input T, completion func(U)) {
		completion(transform(input))
	})
}
