package parallel_test

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"vista/parallel"
	"vista/views"
)

func TestRunJoinsAllUnits(t *testing.T) {
	var counter atomic.Int64

	parallel.Run(func(s *parallel.Scope) {
		for i := 0; i < 50; i++ {
			s.Go(func() { counter.Add(1) })
		}
	})

	// Every unit finished before Run returned.
	require.EqualValues(t, 50, counter.Load())
}

func TestRunRepanicsFirstPanic(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		parallel.Run(func(s *parallel.Scope) {
			s.Go(func() { panic("boom") })
		})
	})
}

func TestForEach(t *testing.T) {
	src := views.Range(0, 100, 1)

	var mu sync.Mutex
	var got []int
	parallel.ForEach(src, func(x int) {
		mu.Lock()
		got = append(got, x)
		mu.Unlock()
	})

	// All elements processed exactly once; order is unspecified.
	require.Len(t, got, 100)
	sort.Ints(got)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestForEachRequiresFinite(t *testing.T) {
	require.Panics(t, func() {
		parallel.ForEach(views.Counter(0), func(int) {})
	})
}
