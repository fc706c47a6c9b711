package views

import "math"

// Number constrains the element types accepted by the numeric reductions.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up all elements. Panics unless the view is finite.
func Sum[T Number](v View[T]) T {
	v.mustBeFinite("Sum")
	var total T
	for x := range v.seq {
		total += x
	}
	return total
}

// SumBy adds up a numeric projection of the elements. Panics unless the
// view is finite.
func SumBy[T any, N Number](v View[T], projection func(T) N) N {
	v.mustBeFinite("SumBy")
	var total N
	for x := range v.seq {
		total += projection(x)
	}
	return total
}

// Reduce aggregates the elements using the reducer function, starting from
// the initial value. Panics unless the view is finite.
func Reduce[T, R any](v View[T], initial R, reducer func(R, T) R) R {
	v.mustBeFinite("Reduce")
	acc := initial
	for x := range v.seq {
		acc = reducer(acc, x)
	}
	return acc
}

// Stats is a running count/sum/sum-of-squares accumulator over a numeric
// projection. The derived quantities are computed on demand.
type Stats struct {
	Count int
	Sum   float64
	Sum2  float64
}

// Add folds one observation into the accumulator.
func (s *Stats) Add(x float64) {
	s.Count++
	s.Sum += x
	s.Sum2 += x * x
}

// Mean returns the arithmetic mean, or zero for an empty accumulator.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the population variance E[x²]−E[x]², or zero for an
// empty accumulator.
func (s Stats) Variance() float64 {
	if s.Count == 0 {
		return 0
	}
	m := s.Mean()
	return s.Sum2/float64(s.Count) - m*m
}

// Sigma returns the population standard deviation.
func (s Stats) Sigma() float64 {
	return math.Sqrt(s.Variance())
}

// StatBy accumulates count, sum and sum of squares of a numeric projection
// over one traversal. Panics unless the view is finite.
func StatBy[T any](v View[T], projection func(T) float64) Stats {
	v.mustBeFinite("StatBy")
	var s Stats
	for x := range v.seq {
		s.Add(projection(x))
	}
	return s
}

// Stat is [StatBy] with the identity projection.
func Stat[T Number](v View[T]) Stats {
	return StatBy(v, func(x T) float64 { return float64(x) })
}
