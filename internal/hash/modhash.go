package hash

import (
	"github.com/gostonefire/chainedhashmap/internal/utils"
	"golang.org/x/exp/constraints"
)

// ModHashAlgorithm - The reference bucket selection algorithm for integer keys, bucket = abs(key) mod capacity.
// It is deliberately simple, keys that differ by a multiple of the capacity end up in the same bucket.
type ModHashAlgorithm[K constraints.Integer] struct{}

// NewModHashAlgorithm - Returns a pointer to a new ModHashAlgorithm instance
func NewModHashAlgorithm[K constraints.Integer]() *ModHashAlgorithm[K] {
	return &ModHashAlgorithm[K]{}
}

// BucketNo - Given key it generates an index (bucket) between 0 and capacity - 1
func (M *ModHashAlgorithm[K]) BucketNo(key K, capacity int64) int64 {
	return int64(utils.AbsUint64(key) % uint64(capacity))
}

// Equal - Returns true if a and b are equal
func (M *ModHashAlgorithm[K]) Equal(a, b K) bool {
	return a == b
}
