package runs

// primeDigits marks the decimal digits that are prime.
var primeDigits = [10]bool{2: true, 3: true, 5: true, 7: true}

// IsDivisibleBy reports whether n is divisible by divisor.
// Zero is divisible by every nonzero divisor. A zero divisor divides nothing.
func IsDivisibleBy(n, divisor int) bool {
	if divisor == 0 {
		return false
	}
	return n%divisor == 0
}

// DivisibleBy returns a predicate testing divisibility by divisor.
func DivisibleBy(divisor int) Predicate {
	return func(n int) bool {
		return IsDivisibleBy(n, divisor)
	}
}

// Even holds for numbers divisible by 2.
var Even Predicate = DivisibleBy(2)

// HasAllDigitsPrime reports whether every decimal digit of |n| is prime.
// Zero has the single digit 0 and fails.
func HasAllDigitsPrime(n int) bool {
	if n == 0 {
		return false
	}

	// Work on the non-positive side so math.MinInt never overflows.
	if n > 0 {
		n = -n
	}

	for n < 0 {
		if !primeDigits[-(n % 10)] {
			return false
		}
		n /= 10
	}

	return true
}
