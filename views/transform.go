package views

import "vista/internal/ringbuf"

// Pair combines one element from each side of a [Zip] or [Cartesian].
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Indexed associates an element with its position in traversal order.
type Indexed[T any] struct {
	Index int
	Value T
}

// Filter yields only the elements that satisfy the predicate. Lazy;
// finiteness mirrors the upstream.
func (v View[T]) Filter(predicate func(T) bool) View[T] {
	return lazy(v.finite, func(yield func(T) bool) {
		for x := range v.seq {
			if predicate(x) {
				if !yield(x) {
					return
				}
			}
		}
	})
}

// Map applies transform to each element, yielding the transformed elements.
// Lazy; finiteness mirrors the upstream.
func Map[T, R any](v View[T], transform func(T) R) View[R] {
	return lazy(v.finite, func(yield func(R) bool) {
		for x := range v.seq {
			if !yield(transform(x)) {
				return
			}
		}
	})
}

// Take yields the first n elements. Always finite, regardless of upstream.
// The upstream traversal stops exactly upon the n-th visited element, never
// overrunning; with n <= 0 the upstream is not visited at all.
func (v View[T]) Take(n int) View[T] {
	return v.TakeStride(n, 1)
}

// TakeStride visits at most n upstream elements and yields every stride-th
// of those visited, counting from the first. Panics if stride is not
// positive.
func (v View[T]) TakeStride(n, stride int) View[T] {
	if stride <= 0 {
		panic("views.TakeStride: stride must be positive")
	}
	return lazy(true, func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		visited := 0
		for x := range v.seq {
			if visited%stride == 0 {
				if !yield(x) {
					return
				}
			}
			visited++
			if visited >= n {
				return
			}
		}
	})
}

// Skip discards the first n elements and yields the rest. Lazy; finiteness
// mirrors the upstream.
func (v View[T]) Skip(n int) View[T] {
	return v.SkipStride(n, 1)
}

// SkipStride discards the first n elements, then yields every stride-th
// element of the remainder, counting from the first kept one. Panics if
// stride is not positive.
func (v View[T]) SkipStride(n, stride int) View[T] {
	if stride <= 0 {
		panic("views.SkipStride: stride must be positive")
	}
	return lazy(v.finite, func(yield func(T) bool) {
		skipped, idx := 0, 0
		for x := range v.seq {
			if skipped < n {
				skipped++
				continue
			}
			if idx%stride == 0 {
				if !yield(x) {
					return
				}
			}
			idx++
		}
	})
}

// TakeWhile yields elements as long as the predicate holds, then stops the
// upstream traversal for good. The result is classified finite regardless of
// the upstream.
func (v View[T]) TakeWhile(predicate func(T) bool) View[T] {
	return lazy(true, func(yield func(T) bool) {
		for x := range v.seq {
			if !predicate(x) {
				return
			}
			if !yield(x) {
				return
			}
		}
	})
}

// DropWhile discards elements as long as the predicate holds, then yields
// everything that follows. Once the predicate flips the decision locks in:
// it is never evaluated again. Lazy; finiteness mirrors the upstream.
func (v View[T]) DropWhile(predicate func(T) bool) View[T] {
	return lazy(v.finite, func(yield func(T) bool) {
		dropping := true
		for x := range v.seq {
			if dropping {
				if predicate(x) {
					continue
				}
				dropping = false
			}
			if !yield(x) {
				return
			}
		}
	})
}

// Enumerate pairs each element with a running index starting at offset, in
// strict traversal order. Lazy; finiteness mirrors the upstream.
//
// Like [Map], it is a function rather than a View method: a method returning
// View[Indexed[T]] would create a generic instantiation cycle.
func Enumerate[T any](v View[T], offset int) View[Indexed[T]] {
	return lazy(v.finite, func(yield func(Indexed[T]) bool) {
		index := offset
		for x := range v.seq {
			if !yield(Indexed[T]{Index: index, Value: x}) {
				return
			}
			index++
		}
	})
}

// Inspect calls action on each element as it passes through, without
// modifying the sequence. Useful for debugging and for pushing elements into
// external sinks mid-pipeline.
func (v View[T]) Inspect(action func(T)) View[T] {
	return lazy(v.finite, func(yield func(T) bool) {
		for x := range v.seq {
			action(x)
			if !yield(x) {
				return
			}
		}
	})
}

// Chain concatenates two views: all elements of v, then all elements of
// other. The second view is traversed only if the first ran to completion
// without an early stop. Panics unless both views are finite.
//
// When both sides are permanent the result is permanent as well, with
// piecewise indexed access.
func (v View[T]) Chain(other View[T]) View[T] {
	v.mustBeFinite("Chain")
	other.mustBeFinite("Chain")
	if v.permanent && other.permanent {
		return permanentView(true,
			func() int { return v.length() + other.length() },
			func(i int) (T, bool) {
				if n := v.length(); i >= n {
					return other.at(i - n)
				}
				return v.at(i)
			})
	}
	return lazy(true, func(yield func(T) bool) {
		for x := range v.seq {
			if !yield(x) {
				return
			}
		}
		for x := range other.seq {
			if !yield(x) {
				return
			}
		}
	})
}

// Zip pairs the elements of two views positionally, stopping as soon as
// either side has no element at the current index. At least one side must be
// permanent so that the pairing stays amortized-efficient; panics otherwise.
// The result is finite if either side is.
func Zip[T1, T2 any](a View[T1], b View[T2]) View[Pair[T1, T2]] {
	if !a.permanent && !b.permanent {
		panic("views.Zip: requires at least one permanent side, call Stage first")
	}
	finite := a.finite || b.finite
	switch {
	case a.permanent && b.permanent:
		return permanentView(finite,
			func() int { return min(a.length(), b.length()) },
			func(i int) (Pair[T1, T2], bool) {
				x, ok := a.at(i)
				if !ok {
					return Pair[T1, T2]{}, false
				}
				y, ok := b.at(i)
				if !ok {
					return Pair[T1, T2]{}, false
				}
				return Pair[T1, T2]{x, y}, true
			})
	case b.permanent:
		return lazy(finite, func(yield func(Pair[T1, T2]) bool) {
			i := 0
			for x := range a.seq {
				y, ok := b.at(i)
				if !ok {
					return
				}
				if !yield(Pair[T1, T2]{x, y}) {
					return
				}
				i++
			}
		})
	default: // only a is permanent
		return lazy(finite, func(yield func(Pair[T1, T2]) bool) {
			i := 0
			for y := range b.seq {
				x, ok := a.at(i)
				if !ok {
					return
				}
				if !yield(Pair[T1, T2]{x, y}) {
					return
				}
				i++
			}
		})
	}
}

// Cartesian yields every ordered pair of elements, outer loop over a, inner
// loop over b. The inner view is re-traversed once per outer element. Early
// stop is honored at both levels. Panics unless both views are finite.
func Cartesian[T1, T2 any](a View[T1], b View[T2]) View[Pair[T1, T2]] {
	a.mustBeFinite("Cartesian")
	b.mustBeFinite("Cartesian")
	return lazy(true, func(yield func(Pair[T1, T2]) bool) {
		for x := range a.seq {
			for y := range b.seq {
				if !yield(Pair[T1, T2]{x, y}) {
					return
				}
			}
		}
	})
}

// Group buffers elements into a rolling window and emits a copy of the
// window each time it reaches size elements. With jump == size the windows
// are consecutive and non-overlapping; with jump < size they overlap,
// sliding forward jump elements at a time; with jump > size the extra
// elements between windows are skipped. Trailing elements that never fill a
// complete window are dropped silently.
//
// Panics if size or jump is not positive. Lazy; finiteness mirrors the
// upstream.
//
// Like [Map], it is a function rather than a View method: a method returning
// View[[]T] would create a generic instantiation cycle.
func Group[T any](v View[T], size, jump int) View[[]T] {
	if size <= 0 {
		panic("views.Group: size must be positive")
	}
	if jump <= 0 {
		panic("views.Group: jump must be positive")
	}
	return lazy[[]T](v.finite, func(yield func([]T) bool) {
		window := ringbuf.New[T](size)
		skip := 0
		for x := range v.seq {
			if skip > 0 {
				skip--
				continue
			}
			window.Push(x)
			if window.Len() < size {
				continue
			}
			out := make([]T, size)
			window.Fill(out)
			if !yield(out) {
				return
			}
			if jump < size {
				window.Drop(jump)
			} else {
				window.Clear()
				skip = jump - size
			}
		}
	})
}
