package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/longrun/internal/runs"
)

// CheckProperties verifies that out is a valid longest run of seq under pred
// and returns one message per violated property.
//
// Properties:
//   - out occurs in seq as a contiguous sub-slice, in original order
//   - every element of out satisfies pred
//   - the elements just before and after out (if any) fail pred
//   - no maximal run is longer than out, and none of equal length starts earlier
//
// When out occurs more than once in seq, the earliest occurrence that
// is a maximal run is used.
func CheckProperties(seq []int, pred runs.Predicate, out []int) []string {
	var errs []string

	for i, n := range out {
		if !pred(n) {
			errs = append(errs, fmt.Sprintf("element %d (%d) does not satisfy the predicate", i, n))
		}
	}

	maximal := runs.Maximal(seq, pred)

	if len(out) == 0 {
		if len(maximal) > 0 {
			errs = append(errs, fmt.Sprintf("empty result but input has a run at %d (length %d)",
				maximal[0].Start, maximal[0].Len))
		}
		return errs
	}

	start, ok := locateRun(seq, out, maximal)
	if !ok {
		errs = append(errs, fmt.Sprintf("result %v is not a maximal contiguous run of %v", out, seq))
		return errs
	}

	for _, m := range maximal {
		if m.Len > len(out) {
			errs = append(errs, fmt.Sprintf("longer run exists at %d (length %d > %d)", m.Start, m.Len, len(out)))
			break
		}
		if m.Len == len(out) && m.Start < start {
			errs = append(errs, fmt.Sprintf("earlier run of equal length exists at %d (result starts at %d)", m.Start, start))
			break
		}
	}

	return errs
}

// CheckSpan verifies that span is a maximal run of seq under pred and that
// it is the first longest one and holds exactly out. Unlike CheckProperties
// it pins down which occurrence was chosen when equal runs repeat.
func CheckSpan(seq []int, pred runs.Predicate, span runs.Span, out []int) []string {
	if span.Empty() {
		if len(out) != 0 {
			return []string{fmt.Sprintf("span is empty but result is %v", out)}
		}
		return nil
	}

	if span.Start < 0 || span.Len < 0 || span.End() > len(seq) {
		return []string{fmt.Sprintf("span [%d, %d) out of range for input of length %d",
			span.Start, span.End(), len(seq))}
	}

	var errs []string
	if got := seq[span.Start:span.End()]; !slices.Equal(got, out) {
		errs = append(errs, fmt.Sprintf("span [%d, %d) holds %v, result is %v",
			span.Start, span.End(), got, out))
	}
	maximal := runs.Maximal(seq, pred)
	if !slices.Contains(maximal, span) {
		errs = append(errs, fmt.Sprintf("span [%d, %d) is not a maximal run", span.Start, span.End()))
		return errs
	}
	for _, m := range maximal {
		if m.Len > span.Len || (m.Len == span.Len && m.Start < span.Start) {
			errs = append(errs, fmt.Sprintf("span starts at %d but the first longest run starts at %d",
				span.Start, m.Start))
			break
		}
	}
	return errs
}

// locateRun finds the start of the first maximal run of seq equal to out.
func locateRun(seq, out []int, maximal []runs.Span) (int, bool) {
	for _, m := range maximal {
		if m.Len != len(out) {
			continue
		}
		if slices.Equal(seq[m.Start:m.End()], out) {
			return m.Start, true
		}
	}
	return 0, false
}
