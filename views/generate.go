package views

// Range builds a finite, permanent view over the integer progression
// start, start+step, ... up to but excluding stop. Size and indexed access
// are closed-form, no traversal needed.
//
// Range panics if step is zero or if the step direction cannot reach stop
// from start (both are construction-time contract violations).
func Range(start, stop, step int) View[int] {
	if step == 0 {
		panic("views.Range: step must not be zero")
	}
	if (step > 0 && stop < start) || (step < 0 && stop > start) {
		panic("views.Range: step direction does not match bounds")
	}
	n := rangeSize(start, stop, step)
	return permanentView(true,
		func() int { return n },
		func(i int) (int, bool) {
			if i < 0 || i >= n {
				return 0, false
			}
			return start + i*step, true
		})
}

func rangeSize(start, stop, step int) int {
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if stop >= start {
		return 0
	}
	return (start - stop + (-step) - 1) / (-step)
}

// Series builds an infinite, non-permanent view from a seed value and a
// step function: first, next(first), next(next(first)), ...
// Bound it with [View.Take] or [View.TakeWhile] before applying any
// finite-only operation.
func Series[T any](first T, next func(T) T) View[T] {
	return lazy(false, func(yield func(T) bool) {
		for v := first; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// SeriesBounded is [Series] bounded by a stop value: generation ends just
// before the first value for which stop returns true. Per that contract the
// result is classified finite, like [View.TakeWhile]; the caller guarantees
// the stop value is eventually reached.
func SeriesBounded[T any](first T, next func(T) T, stop func(T) bool) View[T] {
	return lazy(true, func(yield func(T) bool) {
		for v := first; !stop(v); v = next(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// Counter builds the infinite integer series from, from+1, from+2, ...
func Counter(from int) View[int] {
	return Series(from, func(x int) int { return x + 1 })
}

// Arithmetic builds the infinite progression first, first+step, ...
func Arithmetic[T Number](first, step T) View[T] {
	return Series(first, func(x T) T { return x + step })
}

// Geometric builds the infinite progression first, first*ratio, ...
func Geometric[T Number](first, ratio T) View[T] {
	return Series(first, func(x T) T { return x * ratio })
}

// Repeat builds a finite view yielding value count times. A negative count
// yields nothing.
func Repeat[T any](value T, count int) View[T] {
	if count < 0 {
		count = 0
	}
	return permanentView(true,
		func() int { return count },
		func(i int) (T, bool) {
			if i < 0 || i >= count {
				var zero T
				return zero, false
			}
			return value, true
		})
}
