package lshamp

import (
	"fmt"
	"math"
	"math/big"
)

// trialDivisionLimit is the largest candidate tested by trial division.
// Above it the candidate's square root exceeds 2^20 and IsPrime switches to
// Baillie-PSW, which has no known pseudoprimes below 2^64.
const trialDivisionLimit = uint64(1) << 40

// IsPrime reports whether m is prime.
func IsPrime(m uint64) bool {
	switch {
	case m < 2:
		return false
	case m == 2:
		return true
	case m%2 == 0:
		return false
	case m >= trialDivisionLimit:
		return new(big.Int).SetUint64(m).ProbablyPrime(0)
	}

	// Inclusive on floor(sqrt(m)) so perfect squares of primes are rejected.
	for i := uint64(3); i <= m/i; i += 2 {
		if m%i == 0 {
			return false
		}
	}
	return true
}

// nextPrimeAbove returns the smallest odd prime strictly greater than n.
func nextPrimeAbove(n uint64) (uint64, error) {
	m := n + 1
	if n%2 == 1 {
		m = n + 2
	}
	if m <= n {
		return 0, fmt.Errorf("%w: no prime above %d fits in 64 bits", ErrInvalidArgument, n)
	}

	for !IsPrime(m) {
		if m > math.MaxUint64-2 {
			return 0, fmt.Errorf("%w: no prime above %d fits in 64 bits", ErrInvalidArgument, n)
		}
		m += 2
	}
	return m, nil
}
