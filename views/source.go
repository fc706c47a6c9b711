package views

import "iter"

// FromSlice wraps a slice as a finite, permanent view with O(1) indexed
// access. The view reads from the slice on every traversal; the caller must
// not mutate it while the view is in use. Use [View.Stage] to obtain an
// independent copy.
func FromSlice[T any](values []T) View[T] {
	return permanentView(true,
		func() int { return len(values) },
		func(i int) (T, bool) {
			if i < 0 || i >= len(values) {
				var zero T
				return zero, false
			}
			return values[i], true
		})
}

// Of builds a finite, permanent view over the given values.
func Of[T any](values ...T) View[T] {
	return FromSlice(values)
}

// Single builds a finite, permanent view containing exactly one value.
func Single[T any](value T) View[T] {
	return permanentView(true,
		func() int { return 1 },
		func(i int) (T, bool) {
			if i != 0 {
				var zero T
				return zero, false
			}
			return value, true
		})
}

// FromSeq adapts an arbitrary push iterator as a finite, non-permanent view.
// The caller asserts that seq terminates; for unbounded iterators use
// [FromSeqUnbounded].
func FromSeq[T any](seq iter.Seq[T]) View[T] {
	return lazy(true, seq)
}

// FromSeqUnbounded adapts a possibly endless push iterator as an infinite,
// non-permanent view.
func FromSeqUnbounded[T any](seq iter.Seq[T]) View[T] {
	return lazy(false, seq)
}

// Cursor is the external record-source protocol: a has-more check paired
// with an advance operation. Row and record readers expose themselves to the
// engine through this interface.
type Cursor[T any] interface {
	// HasNext reports whether another element is available.
	HasNext() bool
	// Next returns the next element and advances the cursor. It must only
	// be called after HasNext reported true.
	Next() T
}

// FromCursor presents a cursor as an unbounded, non-permanent view. The
// cursor is consumed by traversal, so the resulting view is single-shot;
// stage it if more than one pass is needed.
func FromCursor[T any](c Cursor[T]) View[T] {
	return lazy(false, func(yield func(T) bool) {
		for c.HasNext() {
			if !yield(c.Next()) {
				return
			}
		}
	})
}
