// Package domain defines the limits and errors shared by the number-theory operations:
// divisor enumeration, primality checks and prime sequence generation.
package domain

import "math"

// Prime sequence limits. A requested count is recognized only when
// MinNumberOfPrimes < count <= MaxNumberOfPrimes.
const (
	MinNumberOfPrimes = 1
	MaxNumberOfPrimes = 2000

	// ScanCeiling bounds the candidate scan of the prime sequence generator (exclusive).
	ScanCeiling int64 = math.MaxInt32
)

// InRange reports whether a requested prime count falls inside the recognized range.
// Counts outside the range produce an absent result rather than an error.
func InRange(count int) bool {
	return count > MinNumberOfPrimes && count <= MaxNumberOfPrimes
}
