package hash

import (
	"github.com/gostonefire/chainedhashmap/internal/utils"
	"hash/crc32"
)

// CRC32HashAlgorithm - Bucket selection algorithm for string and byte slice keys, implemented using
// crc32.ChecksumIEEE to create a hash value over the key and then applying bucket = hash mod capacity.
type CRC32HashAlgorithm[K ~string | ~[]byte] struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm[K ~string | ~[]byte]() *CRC32HashAlgorithm[K] {
	return &CRC32HashAlgorithm[K]{}
}

// BucketNo - Given key it generates an index (bucket) between 0 and capacity - 1
func (C *CRC32HashAlgorithm[K]) BucketNo(key K, capacity int64) int64 {
	h := uint64(crc32.ChecksumIEEE([]byte(key)))
	return int64(h % uint64(capacity))
}

// Equal - Returns true if a and b are equal both in size and contents
func (C *CRC32HashAlgorithm[K]) Equal(a, b K) bool {
	return utils.IsEqual([]byte(a), []byte(b))
}
