package future

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValueCompletesSynchronously(t *testing.T) {
	var got int
	delivered := false
	Value(42).Resolve(func(v int) {
		got = v
		delivered = true
	})

	require.True(t, delivered, "Value must complete during Resolve")
	require.Equal(t, 42, got)
}

func TestGoDeliversTheReturnValue(t *testing.T) {
	require.Equal(t, 49, awaitValue(t, Go(func() int { return 7 * 7 })))
}

func TestGoDoesNotBlockResolve(t *testing.T) {
	gate := make(chan struct{})
	f := Go(func() int {
		<-gate
		return 7
	})

	done := make(chan int, 1)
	f.Resolve(func(v int) { done <- v })

	// Resolve has already returned; the work is still parked on the gate.
	select {
	case <-done:
		t.Fatal("work must not complete before the gate opens")
	case <-time.After(10 * time.Millisecond):
	}

	close(gate)
	select {
	case v := <-done:
		require.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("work never completed")
	}
}

func TestGoRunsWorkPerResolve(t *testing.T) {
	var runs int32
	f := Go(func() int {
		return int(atomic.AddInt32(&runs, 1))
	})

	require.Equal(t, 1, awaitValue(t, f))
	require.Equal(t, 2, awaitValue(t, f), "each Resolve runs the work again")
}

func TestAfterDelaysCompletion(t *testing.T) {
	const delay = 50 * time.Millisecond

	start := time.Now()
	require.Equal(t, "ready", awaitValue(t, After(delay, "ready")))

	elapsed := time.Since(start)
	require.True(t, elapsed >= delay, "completed after %v, want at least %v", elapsed, delay)
}

func TestAfterArmsAFreshTimerPerResolve(t *testing.T) {
	f := After(20*time.Millisecond, 1)

	require.Equal(t, 1, awaitValue(t, f))
	require.Equal(t, 1, awaitValue(t, f), "a second Resolve arms a new timer")
}

func TestGoNilWorkPanics(t *testing.T) {
	require.Panics(t, func() { Go[int](nil) }, "Go must reject a nil work function")
}
