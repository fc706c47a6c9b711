/*
Package views provides a composable, lazily-evaluated sequence engine built
on Go push iterators (iter.Seq).

A [View] is a deferred computation over a sequence of elements. Pipelines are
built by chaining transformations; nothing is evaluated until a terminal
operation drives a traversal:

	evens := views.Range(0, 100, 1).Filter(func(x int) bool { return x%2 == 0 })
	total := views.Sum(evens.Take(10))

Main concepts:

  - **Sources**: [FromSlice], [Of], [Single], [Range], [Series], [Counter],
    [FromSeq], [FromCursor].
  - **Transformations**: [View.Filter], [Map], [View.Take], [View.Skip],
    [View.TakeWhile], [View.DropWhile], [Enumerate], [View.Inspect],
    [View.Chain], [Zip], [Cartesian], [Group], [View.Reverse],
    [Sort], [SortBy], [Min], [Max], [MinBy], [MaxBy].
  - **Terminals**: [View.ForEach], [View.Count], [View.Size], [View.Empty],
    [View.Contains], [View.All], [View.FirstOf], [View.ElementAt],
    [Sum], [Reduce], [Stat], [IsSame].
  - **Staging**: [View.Stage] materializes any finite view into an owned,
    randomly-accessible buffer.

# Capability tags

Every view carries two properties fixed at construction: finite (its
traversal terminates) and permanent (repeated traversal is stable and
indexed access is better than linear). Operations that need a full pass or
fast random access (Sort, Reverse, Stage, Zip, Chain, Cartesian, Size, ...)
check these tags when the pipeline is built and panic on violation, before
any element is visited. The fix is always to restructure the pipeline,
typically by calling Stage first.

# Evaluation model

Traversal is a plain nested-call chain: the terminal operation invokes the
outermost view's iterator, which invokes its upstream's, down to the source.
The consumer's boolean return is the sole early-termination mechanism and is
forwarded through every layer. Views never cache results: running a terminal
operation twice traverses twice.

Views capture their upstream by value, so a pipeline stays valid for as long
as the caller holds it. Results that must outlive the source data should be
staged.
*/
package views
