package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Bucket selection algorithm for string keys, implemented using 64 bit xxhash over the key and
// then applying bucket = hash mod capacity.
type XXHashAlgorithm[K ~string] struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm[K ~string]() *XXHashAlgorithm[K] {
	return &XXHashAlgorithm[K]{}
}

// BucketNo - Given key it generates an index (bucket) between 0 and capacity - 1
func (X *XXHashAlgorithm[K]) BucketNo(key K, capacity int64) int64 {
	return int64(xxhash.Sum64String(string(key)) % uint64(capacity))
}

// Equal - Returns true if a and b are equal
func (X *XXHashAlgorithm[K]) Equal(a, b K) bool {
	return a == b
}
