// Package runs finds the longest contiguous run of integers satisfying a predicate.
//
// A run is a maximal contiguous sub-slice of the input whose every element
// satisfies the predicate. Longest returns the longest such run; when several
// runs share the maximum length, the one with the lowest start index wins.
//
// The scan is a single left-to-right pass. The run still open when the input
// ends is compared against the best run after the loop, so a run touching the
// end of the input is never lost.
//
// # Predicates
//
// Two predicate families are built in:
//
//   - DivisibleBy(d): n % d == 0 (zero is divisible by any nonzero d)
//   - HasAllDigitsPrime: every decimal digit of |n| is 2, 3, 5 or 7
//
// ParsePredicate resolves textual references ("divisible:10", "even",
// "prime-digits") used by the CLI and scenario files.
package runs
