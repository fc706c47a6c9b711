package views

import "slices"

// Collect traverses once and returns the elements as a fresh slice. Panics
// unless the view is finite.
func (v View[T]) Collect() []T {
	v.mustBeFinite("Collect")
	return slices.Collect(v.seq)
}

// Stage eagerly materializes the view into an owned buffer and returns a
// finite, permanent view over it with O(1) indexed access. Staging is the
// prescribed way to make a computed view usable where permanence is
// required (Sort, Zip against another computed view) or to keep results
// alive beyond the source data. Re-staging a staged view copies again and
// yields an equal sequence. Panics unless the view is finite.
func (v View[T]) Stage() View[T] {
	v.mustBeFinite("Stage")
	return FromSlice(slices.Collect(v.seq))
}
