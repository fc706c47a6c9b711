package views

import "iter"

// View represents a deferred computation over a sequence of elements of
// type T. A View is an immutable value: every transformation returns a new
// View wrapping the old one, and traversal only happens when a terminal
// operation runs.
//
// Two capability tags are fixed at construction:
//
//   - finite: the view's traversal is guaranteed to terminate.
//   - permanent: repeated traversals yield identical elements in identical
//     order, and indexed access is available in better than linear time.
//
// Sources over materialized data ([FromSlice], [Single], [View.Stage]) and
// [Range] are permanent. Transformations computed on the fly (Filter, Map,
// Take, ...) are not, even over a permanent upstream, because their elements
// are recomputed per traversal and indexed access would be linear.
type View[T any] struct {
	seq       iter.Seq[T]
	finite    bool
	permanent bool

	// set only when permanent
	length func() int
	at     func(int) (T, bool)
}

// Seq returns the view's traversal as a push iterator, usable directly in a
// range-over-func loop. Each call to the returned iterator replays the whole
// pipeline from its sources.
func (v View[T]) Seq() iter.Seq[T] { return v.seq }

// Finite reports whether the view's traversal is guaranteed to terminate.
func (v View[T]) Finite() bool { return v.finite }

// Permanent reports whether the view supports stable repeated traversal and
// fast indexed access.
func (v View[T]) Permanent() bool { return v.permanent }

// lazy builds a non-permanent transformation view around a traversal closure.
func lazy[T any](finite bool, seq iter.Seq[T]) View[T] {
	return View[T]{seq: seq, finite: finite}
}

// permanentView builds a view whose traversal is derived from an indexed
// accessor. at must report ok=false for every index past the end.
func permanentView[T any](finite bool, length func() int, at func(int) (T, bool)) View[T] {
	return View[T]{
		seq: func(yield func(T) bool) {
			for i := 0; ; i++ {
				v, ok := at(i)
				if !ok {
					return
				}
				if !yield(v) {
					return
				}
			}
		},
		finite:    finite,
		permanent: true,
		length:    length,
		at:        at,
	}
}

func (v View[T]) mustBeFinite(op string) {
	if !v.finite {
		panic("views." + op + ": requires a finite view")
	}
}

func (v View[T]) mustBePermanent(op string) {
	if !v.permanent {
		panic("views." + op + ": requires a permanent view, call Stage first")
	}
}
