package nestwalk

import "iter"

// Run is a value together with the number of adjacent times it occurred.
type Run[E any] struct {
	Value E
	Count int
}

// Compact returns a new slice in which every run of adjacent equal elements
// is replaced by its first element. Equal elements that are not adjacent are
// all kept. s is not modified.
func Compact[S ~[]E, E comparable](s S) S {
	return CompactFunc(s, func(a, b E) bool { return a == b })
}

// CompactFunc is Compact with a caller supplied equality.
func CompactFunc[S ~[]E, E any](s S, eq func(a, b E) bool) S {
	out := make(S, 0, len(s))
	for i, e := range s {
		if i > 0 && eq(s[i-1], e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CompactSeq collapses adjacent duplicates of a sequence lazily.
func CompactSeq[E comparable](seq iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		var prev E
		started := false
		for e := range seq {
			if started && e == prev {
				continue
			}
			started = true
			prev = e
			if !yield(e) {
				return
			}
		}
	}
}

// Runs returns the run-length encoding of s. The run values are exactly the
// elements of Compact(s).
func Runs[S ~[]E, E comparable](s S) []Run[E] {
	return RunsFunc(s, func(a, b E) bool { return a == b })
}

// RunsFunc is Runs with a caller supplied equality.
func RunsFunc[S ~[]E, E any](s S, eq func(a, b E) bool) []Run[E] {
	out := []Run[E]{}
	for i, e := range s {
		if i > 0 && eq(s[i-1], e) {
			out[len(out)-1].Count++
			continue
		}
		out = append(out, Run[E]{Value: e, Count: 1})
	}
	return out
}
