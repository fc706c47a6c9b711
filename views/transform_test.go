package views_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vista/views"
)

func TestFilterMapComposition(t *testing.T) {
	src := views.Of(1, 19, 4, 2, 5, -1, 5)

	even := src.Filter(func(x int) bool { return x%2 == 0 })
	scaled := views.Map(even, func(x int) int { return x * 10 })

	// Exactly the matching elements, transformed, in original relative order.
	require.Equal(t, []int{40, 20}, scaled.Collect())
}

func TestFilterEmptyUpstream(t *testing.T) {
	calls := 0
	v := views.Of[int]().Filter(func(int) bool { calls++; return true })
	require.Empty(t, v.Collect())
	require.Zero(t, calls)
}

func TestTakeSkipComplementarity(t *testing.T) {
	src := views.Of(1, 19, 4, 2, 5, -1, 5)
	full := src.Collect()

	for n := 0; n <= len(full); n++ {
		joined := src.Take(n).Chain(src.Skip(n))
		require.Equal(t, full, joined.Collect(), "n=%d", n)
	}
}

func TestTakeStopsUpstreamExactly(t *testing.T) {
	visited := 0
	src := views.Of(1, 2, 3, 4, 5).Inspect(func(int) { visited++ })

	require.Equal(t, []int{1, 2, 3}, src.Take(3).Collect())
	require.Equal(t, 3, visited)
}

func TestTakeZeroDoesNotTouchUpstream(t *testing.T) {
	visited := 0
	src := views.Of(1, 2, 3).Inspect(func(int) { visited++ })

	require.Empty(t, src.Take(0).Collect())
	require.Zero(t, visited)
}

func TestTakeStride(t *testing.T) {
	src := views.Of(0, 1, 2, 3, 4, 5, 6, 7)

	// Visits at most 5 upstream elements, keeps indexes 0, 2, 4 of those.
	require.Equal(t, []int{0, 2, 4}, src.TakeStride(5, 2).Collect())

	require.Panics(t, func() { src.TakeStride(3, 0) })
}

func TestSkipStride(t *testing.T) {
	src := views.Of(0, 1, 2, 3, 4, 5, 6, 7)

	// Skip 2, then every 3rd of the remainder: 2, 5.
	require.Equal(t, []int{2, 5}, src.SkipStride(2, 3).Collect())

	// Skipping past the end yields nothing.
	require.Empty(t, src.Skip(100).Collect())

	require.Panics(t, func() { src.SkipStride(1, -1) })
}

func TestTakeWhile(t *testing.T) {
	src := views.Of(1, 2, 3, 1, 2)
	got := src.TakeWhile(func(x int) bool { return x < 3 }).Collect()

	// Stops for good at the first failure, even though later elements match.
	require.Equal(t, []int{1, 2}, got)

	// Bounding an infinite series is the primary use.
	doubling := views.Series(1, func(x int) int { return x * 2 })
	require.Equal(t, []int{1, 2, 4, 8, 16}, doubling.TakeWhile(func(x int) bool { return x < 20 }).Collect())
}

func TestDropWhileLocksIn(t *testing.T) {
	evals := 0
	src := views.Of(1, 2, 3, 1, 2)
	got := src.DropWhile(func(x int) bool {
		evals++
		return x < 3
	}).Collect()

	// Once the predicate flips, the remainder passes through unevaluated.
	require.Equal(t, []int{3, 1, 2}, got)
	require.Equal(t, 3, evals)
}

func TestEnumerate(t *testing.T) {
	src := views.Of("a", "b", "c")

	got := views.Enumerate(src, 10).Collect()
	require.Equal(t, []views.Indexed[string]{
		{Index: 10, Value: "a"},
		{Index: 11, Value: "b"},
		{Index: 12, Value: "c"},
	}, got)
}

func TestInspect(t *testing.T) {
	var seen []int
	src := views.Of(1, 2, 3).Inspect(func(x int) { seen = append(seen, x) })

	require.Equal(t, []int{1, 2, 3}, src.Collect())
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestChain(t *testing.T) {
	a := views.Of(1, 19, 4, 2)
	b := views.Of(5, -1, 3)

	t.Run("Size", func(t *testing.T) {
		require.Equal(t, 7, a.Chain(b).Size())

		c := views.Of(8)
		require.Equal(t, 8, a.Chain(b).Chain(c).Size())
	})

	t.Run("Order", func(t *testing.T) {
		require.Equal(t, []int{1, 19, 4, 2, 5, -1, 3}, a.Chain(b).Collect())
	})

	t.Run("EarlyStopSkipsSecond", func(t *testing.T) {
		visited := 0
		watched := b.Inspect(func(int) { visited++ })

		got := a.Chain(watched).Take(4).Collect()
		require.Equal(t, []int{1, 19, 4, 2}, got)
		require.Zero(t, visited)
	})

	t.Run("PermanentAccess", func(t *testing.T) {
		chained := a.Chain(b)
		require.True(t, chained.Permanent())

		v, ok := chained.ElementAt(5)
		require.True(t, ok)
		require.Equal(t, -1, v)
	})

	t.Run("RequiresFinite", func(t *testing.T) {
		require.Panics(t, func() { a.Chain(views.Counter(0)) })
		require.Panics(t, func() { views.Counter(0).Chain(a) })
	})
}

func TestZip(t *testing.T) {
	a := views.Of(1, 19, 4, 2)
	b := views.Of(5, -1, 3)

	t.Run("StopsAtShorterSide", func(t *testing.T) {
		got := views.Zip(a, b).Collect()
		require.Equal(t, []views.Pair[int, int]{{1, 5}, {19, -1}, {4, 3}}, got)
	})

	t.Run("ComputedAgainstPermanent", func(t *testing.T) {
		big := a.Filter(func(x int) bool { return x > 2 }) // 19, 4
		got := views.Zip(big, b).Collect()
		require.Equal(t, []views.Pair[int, int]{{19, 5}, {4, -1}}, got)

		// Permanent side on the left works the same way.
		got2 := views.Zip(b, big).Collect()
		require.Equal(t, []views.Pair[int, int]{{5, 19}, {-1, 4}}, got2)
	})

	t.Run("BothComputedPanics", func(t *testing.T) {
		p := func(x int) bool { return x > 0 }
		require.Panics(t, func() { views.Zip(a.Filter(p), b.Filter(p)) })
	})

	t.Run("InfinitePermanentSide", func(t *testing.T) {
		// Range is permanent, so an unbounded computed view zips against it.
		idx := views.Range(0, 2, 1)
		got := views.Zip(views.Counter(100).Filter(func(int) bool { return true }), idx).Collect()
		require.Equal(t, []views.Pair[int, int]{{100, 0}, {101, 1}}, got)
	})
}

func TestCartesian(t *testing.T) {
	a := views.Of(1, 2)
	b := views.Of("x", "y")

	got := views.Cartesian(a, b).Collect()
	require.Equal(t, []views.Pair[int, string]{
		{1, "x"}, {1, "y"}, {2, "x"}, {2, "y"},
	}, got)

	t.Run("EarlyStop", func(t *testing.T) {
		got := views.Cartesian(a, b).Take(3).Collect()
		require.Equal(t, []views.Pair[int, string]{{1, "x"}, {1, "y"}, {2, "x"}}, got)
	})

	t.Run("RequiresFinite", func(t *testing.T) {
		require.Panics(t, func() { views.Cartesian(views.Counter(0), b) })
	})
}

func TestGroup(t *testing.T) {
	src := views.Of(0, 1, 2, 3)

	t.Run("NonOverlapping", func(t *testing.T) {
		require.Equal(t, [][]int{{0, 1}, {2, 3}}, views.Group(src, 2, 2).Collect())
	})

	t.Run("Overlapping", func(t *testing.T) {
		require.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, views.Group(src, 2, 1).Collect())
	})

	t.Run("Gapped", func(t *testing.T) {
		long := views.Range(0, 10, 1)
		require.Equal(t, [][]int{{0, 1}, {3, 4}, {6, 7}}, views.Group(long, 2, 3).Collect())
	})

	t.Run("TrailingDroppedSilently", func(t *testing.T) {
		require.Equal(t, [][]int{{0, 1, 2}}, views.Group(src, 3, 3).Collect())
		require.Empty(t, views.Group(views.Of(1, 2), 3, 3).Collect())
	})

	t.Run("BadArguments", func(t *testing.T) {
		require.Panics(t, func() { views.Group(src, 0, 1) })
		require.Panics(t, func() { views.Group(src, 2, 0) })
	})
}
