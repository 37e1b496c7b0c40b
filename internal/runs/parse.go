package runs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Named predicate references accepted by ParsePredicate.
const (
	NameDivisible   = "divisible"
	NameEven        = "even"
	NamePrimeDigits = "prime-digits"
)

var (
	// ErrUnknownPredicate is returned for names ParsePredicate does not know.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrZeroDivisor is returned for "divisible:0".
	ErrZeroDivisor = errors.New("divisor must be nonzero")
)

// ParsePredicate resolves a textual predicate reference.
//
// Accepted forms:
//
//	divisible:<d>   n % d == 0, d a nonzero integer
//	even            same as divisible:2
//	prime-digits    HasAllDigitsPrime
func ParsePredicate(ref string) (Predicate, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(ref), ":")

	switch name {
	case NameDivisible:
		if !hasArg {
			return nil, fmt.Errorf("%s: missing divisor (use %s:<d>)", ref, NameDivisible)
		}
		d, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("%s: invalid divisor %q: %w", ref, arg, err)
		}
		if d == 0 {
			return nil, fmt.Errorf("%s: %w", ref, ErrZeroDivisor)
		}
		return DivisibleBy(d), nil
	case NameEven:
		if hasArg {
			return nil, fmt.Errorf("%s: %s takes no argument", ref, NameEven)
		}
		return Even, nil
	case NamePrimeDigits:
		if hasArg {
			return nil, fmt.Errorf("%s: %s takes no argument", ref, NamePrimeDigits)
		}
		return HasAllDigitsPrime, nil
	default:
		return nil, fmt.Errorf("%q: %w", ref, ErrUnknownPredicate)
	}
}
