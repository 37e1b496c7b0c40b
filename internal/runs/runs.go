package runs

// Predicate is a pure boolean test over a single integer.
type Predicate func(n int) bool

// Span locates a run inside the input sequence.
// Len == 0 means no element satisfied the predicate.
type Span struct {
	Start int `json:"start"`
	Len   int `json:"length"`
}

// End returns the index one past the last element of the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Empty reports whether the span covers no elements.
func (s Span) Empty() bool {
	return s.Len == 0
}

// Longest returns the longest run of consecutive elements of seq for which
// pred holds, as a newly allocated slice in original order.
//
// Returns an empty (non-nil) slice when no element satisfies pred.
// Equal-length runs do not replace an earlier one. seq is never modified.
func Longest(seq []int, pred Predicate) []int {
	best := []int{}
	current := []int{}

	for _, n := range seq {
		if pred(n) {
			current = append(current, n)
			continue
		}
		if len(current) > len(best) {
			best = current
		}
		current = []int{}
	}

	// The last run may still be open at the end of input.
	if len(current) > len(best) {
		best = current
	}

	return best
}

// LongestSpan performs the same scan as Longest but reports only where the
// winning run sits in seq.
func LongestSpan(seq []int, pred Predicate) Span {
	var best, current Span

	for i, n := range seq {
		if pred(n) {
			if current.Len == 0 {
				current.Start = i
			}
			current.Len++
			continue
		}
		if current.Len > best.Len {
			best = current
		}
		current = Span{}
	}

	if current.Len > best.Len {
		best = current
	}

	return best
}

// Maximal returns every maximal run of seq in order of appearance.
// pred is evaluated exactly once per element.
func Maximal(seq []int, pred Predicate) []Span {
	spans := []Span{}
	open := false

	for i, n := range seq {
		if pred(n) {
			if !open {
				spans = append(spans, Span{Start: i})
				open = true
			}
			spans[len(spans)-1].Len++
			continue
		}
		open = false
	}

	return spans
}
