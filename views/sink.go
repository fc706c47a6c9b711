package views

// ForEach runs fn on every element in order. Unlike the traversal protocol's
// consumer, fn cannot stop the traversal early; use [View.FirstOf] or
// [View.TakeWhile] when early exit is needed. Panics unless the view is
// finite.
func (v View[T]) ForEach(fn func(T)) {
	v.mustBeFinite("ForEach")
	for x := range v.seq {
		fn(x)
	}
}

// Count returns the number of elements satisfying the predicate. Panics
// unless the view is finite.
func (v View[T]) Count(predicate func(T) bool) int {
	v.mustBeFinite("Count")
	count := 0
	for x := range v.seq {
		if predicate(x) {
			count++
		}
	}
	return count
}

// Size returns the number of elements. Permanent views answer in closed
// form; others are counted through one traversal. Panics unless the view is
// finite.
func (v View[T]) Size() int {
	v.mustBeFinite("Size")
	if v.permanent {
		return v.length()
	}
	count := 0
	for range v.seq {
		count++
	}
	return count
}

// Empty reports whether the view yields no elements. It inspects at most one
// element, so it is safe on infinite views.
func (v View[T]) Empty() bool {
	empty := true
	v.seq(func(T) bool {
		empty = false
		return false
	})
	return empty
}

// Contains reports whether any element satisfies the predicate, stopping at
// the first match.
func (v View[T]) Contains(predicate func(T) bool) bool {
	_, ok := v.FirstOf(predicate)
	return ok
}

// ContainsValue reports whether any element equals value, stopping at the
// first match.
func ContainsValue[T comparable](v View[T], value T) bool {
	return v.Contains(func(x T) bool { return x == value })
}

// All reports whether every element satisfies the predicate, stopping at the
// first failure. All of an empty sequence is false. That convention is
// deliberate and load-bearing for existing callers, even though it differs
// from the usual vacuous-truth rule.
func (v View[T]) All(predicate func(T) bool) bool {
	seen := false
	ok := true
	v.seq(func(x T) bool {
		seen = true
		if !predicate(x) {
			ok = false
			return false
		}
		return true
	})
	return seen && ok
}

// First returns the first element, or ok=false when the view is empty.
func (v View[T]) First() (T, bool) {
	var out T
	found := false
	v.seq(func(x T) bool {
		out, found = x, true
		return false
	})
	return out, found
}

// Last returns the final element of a finite view, or ok=false when it is
// empty. Panics unless the view is finite.
func (v View[T]) Last() (T, bool) {
	v.mustBeFinite("Last")
	var out T
	found := false
	for x := range v.seq {
		out, found = x, true
	}
	return out, found
}

// FirstOf returns the first element satisfying the predicate, stopping the
// traversal there, or ok=false when nothing matches.
func (v View[T]) FirstOf(predicate func(T) bool) (T, bool) {
	var out T
	found := false
	v.seq(func(x T) bool {
		if predicate(x) {
			out, found = x, true
			return false
		}
		return true
	})
	return out, found
}

// FirstOfIndex returns the traversal position of the first element
// satisfying the predicate, or ok=false when nothing matches.
func (v View[T]) FirstOfIndex(predicate func(T) bool) (int, bool) {
	idx := 0
	found := false
	v.seq(func(x T) bool {
		if predicate(x) {
			found = true
			return false
		}
		idx++
		return true
	})
	if !found {
		return 0, false
	}
	return idx, true
}

// ElementAt returns the element at position i in traversal order, or
// ok=false when the view is shorter. Permanent views answer in better than
// linear time; others are walked up to position i.
func (v View[T]) ElementAt(i int) (T, bool) {
	var zero T
	if i < 0 {
		return zero, false
	}
	if v.permanent {
		return v.at(i)
	}
	out, found := zero, false
	idx := 0
	v.seq(func(x T) bool {
		if idx == i {
			out, found = x, true
			return false
		}
		idx++
		return true
	})
	return out, found
}

// IsSameFunc pairs the two views positionally via [Zip] and reports whether
// eq holds for every pair. Sequences of different lengths are compared only
// over their overlap, so a sequence compares the same as any of its
// prefixes. That truncation is a deliberate, documented quirk, not a full
// equality test. The zip precondition applies: at least one side must be
// permanent.
func IsSameFunc[T1, T2 any](a View[T1], b View[T2], eq func(T1, T2) bool) bool {
	same := true
	for p := range Zip(a, b).Seq() {
		if !eq(p.V1, p.V2) {
			same = false
			break
		}
	}
	return same
}

// IsSame is [IsSameFunc] with element equality.
func IsSame[T comparable](a, b View[T]) bool {
	return IsSameFunc(a, b, func(x, y T) bool { return x == y })
}
