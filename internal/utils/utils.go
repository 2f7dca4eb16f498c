package utils

import "golang.org/x/exp/constraints"

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// AbsUint64 - Returns the absolute value of n as an unsigned 64 bit integer.
// The minimum value of a signed type has no positive counterpart in the same type, going through uint64
// avoids the overflow.
func AbsUint64[N constraints.Integer](n N) uint64 {
	if n < 0 {
		return uint64(-(int64(n) + 1)) + 1
	}
	return uint64(n)
}
