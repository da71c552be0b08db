// Package result provides a two-variant outcome value: success carrying a
// value of type T, or failure carrying an error. It exists so that a single
// value can travel through code that knows nothing about errors, such as a
// completion callback with one argument, and be split back into Go's
// conventional pair at the end.
package result

// A Result holds either a value or an error. The zero Result is a success
// holding T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a Result representing a successful outcome with the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a Result representing a failed outcome with the given error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Get returns the value and error contained in the Result, forcing the
// caller back into ordinary error handling.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Failed reports whether the Result carries an error.
func (r Result[T]) Failed() bool {
	return r.err != nil
}
