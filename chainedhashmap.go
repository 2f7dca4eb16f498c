package chainedhashmap

import (
	"fmt"
	"github.com/RoaringBitmap/roaring"
	"github.com/gostonefire/chainedhashmap/hashfunc"
	"github.com/gostonefire/chainedhashmap/internal/hash"
	"github.com/gostonefire/chainedhashmap/internal/model"
	"golang.org/x/exp/constraints"
	"math"
)

// MaxCapacity - The highest number of buckets a table can be created with
const MaxCapacity int64 = math.MaxUint32

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the fixed capacity of the table
//   - OccupiedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the longest bucket chain
//   - LoadFactor is Records divided by NumberOfBuckets
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	NumberOfBuckets    int64
	OccupiedBuckets    int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// Table - A fixed capacity hash table using separate chaining. Records live in an arena and are linked per bucket
// by their 1-based address, each bucket slot holds the address of its chain head or 0 (zero) if empty.
// A Table is not safe for concurrent use.
type Table[K any, V any] struct {
	hasher   hashfunc.KeyHasher[K]
	capacity int64
	buckets  []int64
	records  []model.Record[K, V]
	occupied *roaring.Bitmap
	length   int64
}

// New - Returns a new table with capacity empty buckets.
// It panics with InvalidCapacity if capacity is not in 1 -> MaxCapacity and with InvalidHasher if hasher is nil,
// both are precondition violations that can't be recovered from.
//   - capacity is the fixed number of buckets, it is never changed after construction
//   - hasher is the key capability supplying bucket selection and key equality
func New[K any, V any](capacity int64, hasher hashfunc.KeyHasher[K]) *Table[K, V] {
	if capacity <= 0 || capacity > MaxCapacity {
		panic(InvalidCapacity{msg: fmt.Sprintf("capacity must be a positive value higher than 0 (zero) and at most %d, got %d", MaxCapacity, capacity)})
	}
	if hasher == nil {
		panic(InvalidHasher{})
	}

	return &Table[K, V]{
		hasher:   hasher,
		capacity: capacity,
		buckets:  make([]int64, capacity),
		occupied: roaring.New(),
	}
}

// NewIntegerTable - Returns a new table for integer keys using the reference modulo bucket selection,
// bucket = abs(key) mod capacity.
func NewIntegerTable[K constraints.Integer, V any](capacity int64) *Table[K, V] {
	return New[K, V](capacity, NewModHashAlgorithm[K]())
}

// NewStringTable - Returns a new table for string keys using crc32 bucket selection
func NewStringTable[V any](capacity int64) *Table[string, V] {
	return New[string, V](capacity, NewCRC32HashAlgorithm[string]())
}

// NewModHashAlgorithm - Returns the reference bucket selection for integer keys, bucket = abs(key) mod capacity
func NewModHashAlgorithm[K constraints.Integer]() hashfunc.KeyHasher[K] {
	return hash.NewModHashAlgorithm[K]()
}

// NewCRC32HashAlgorithm - Returns a crc32 based bucket selection for string and byte slice keys
func NewCRC32HashAlgorithm[K ~string | ~[]byte]() hashfunc.KeyHasher[K] {
	return hash.NewCRC32HashAlgorithm[K]()
}

// NewXXHashAlgorithm - Returns a 64 bit xxhash based bucket selection for string keys
func NewXXHashAlgorithm[K ~string]() hashfunc.KeyHasher[K] {
	return hash.NewXXHashAlgorithm[K]()
}

// Len - Returns the number of distinct keys stored
func (T *Table[K, V]) Len() int64 {
	return T.length
}

// Capacity - Returns the fixed number of buckets
func (T *Table[K, V]) Capacity() int64 {
	return T.capacity
}

// ReorgConf - Is a struct used in the call to Reorg holding configuration for the new table.
//   - Capacity is the number of buckets in the new table, 0 (zero) or less keeps the capacity of the original
//   - Hasher is the key hasher of the new table, nil keeps the key hasher of the original
type ReorgConf[K any] struct {
	Capacity int64
	Hasher   hashfunc.KeyHasher[K]
}

// Reorg - Is used when an existing table needs to reflect new conditions as compared to when it was first created.
// For instance if the first estimate of the number of keys was way off and chains have grown long, or a better
// key hasher has been found for the particular set of keys.
//
// The original table is not changed, a new table is returned holding every record of the original. Records are
// inserted bucket by bucket in ascending bucket order, and in chain order within each bucket.
//   - from is the table to copy records from
//   - reorgConf is an instance of the ReorgConf struct
func Reorg[K any, V any](from *Table[K, V], reorgConf ReorgConf[K]) (to *Table[K, V]) {
	capacity := from.capacity
	if reorgConf.Capacity > 0 {
		capacity = reorgConf.Capacity
	}
	hasher := from.hasher
	if reorgConf.Hasher != nil {
		hasher = reorgConf.Hasher
	}

	to = New[K, V](capacity, hasher)
	from.Range(func(key K, value V) bool {
		to.Set(key, value)
		return true
	})

	return
}
