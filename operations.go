package chainedhashmap

import (
	"fmt"
	"github.com/gostonefire/chainedhashmap/internal/model"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value of V
//   - found is false if the key is not stored in the table
func (T *Table[K, V]) Get(key K) (value V, found bool) {
	address, _ := T.find(T.BucketNo(key), key)
	if address == 0 {
		return
	}

	value = T.records[address-1].Value
	found = true

	return
}

// Has - Returns true if the key is stored in the table
//   - key is the identifier of a record
func (T *Table[K, V]) Has(key K) bool {
	address, _ := T.find(T.BucketNo(key), key)
	return address != 0
}

// Set - Updates an existing record with a new value or adds it if no existing is found with same key.
// A new record is appended at the tail of its bucket chain, so the first inserted key of a bucket stays at the head.
//   - key is the identifier of a record
//   - value is the value to store along with the key
func (T *Table[K, V]) Set(key K, value V) {
	bucketNo := T.BucketNo(key)
	address, tail := T.find(bucketNo, key)
	if address != 0 {
		T.records[address-1].Value = value
		return
	}

	T.appendRecord(bucketNo, tail, key, value)
}

// Add - Adds a record if no existing is found with same key, an existing record is left untouched.
//   - key is the identifier of a record
//   - value is the value to store along with the key
//
// It returns:
//   - added is true if a new record was created, false if the key was already stored
func (T *Table[K, V]) Add(key K, value V) (added bool) {
	bucketNo := T.BucketNo(key)
	address, tail := T.find(bucketNo, key)
	if address != 0 {
		return
	}

	T.appendRecord(bucketNo, tail, key, value)
	added = true

	return
}

// Range - Calls fn for every record in the table, buckets in ascending order and in chain order within a bucket.
// Iteration stops if fn returns false. The table must not be changed from within fn.
func (T *Table[K, V]) Range(fn func(key K, value V) bool) {
	iter := T.occupied.Iterator()
	for iter.HasNext() {
		for address := T.buckets[iter.Next()]; address != 0; address = T.records[address-1].NextRecord {
			if !fn(T.records[address-1].Key, T.records[address-1].Value) {
				return
			}
		}
	}
}

// Stat - Walks through all occupied buckets and produce a HashMapStat struct with information.
// The HashMapStat.BucketDistribution slice can be memory heavy for big tables (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (T *Table[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	hms := HashMapStat{
		Records:         T.length,
		NumberOfBuckets: T.capacity,
		OccupiedBuckets: int64(T.occupied.GetCardinality()),
		LoadFactor:      float64(T.length) / float64(T.capacity),
	}

	if includeDistribution {
		hms.BucketDistribution = make([]int64, T.capacity)
	}

	iter := T.occupied.Iterator()
	for iter.HasNext() {
		bucketNo := int64(iter.Next())
		var chainLength int64
		for address := T.buckets[bucketNo]; address != 0; address = T.records[address-1].NextRecord {
			chainLength++
		}
		if chainLength > hms.LongestChain {
			hms.LongestChain = chainLength
		}
		if includeDistribution {
			hms.BucketDistribution[bucketNo] = chainLength
		}
	}

	hashMapStat = &hms
	return
}

// BucketNo - Returns which bucket number that the given key results in.
// It panics with BucketOutOfRange if the key hasher breaks its contract and returns a number outside 0 -> capacity - 1.
//   - key is the identifier of a record
func (T *Table[K, V]) BucketNo(key K) (bucketNo int64) {
	bucketNo = T.hasher.BucketNo(key, T.capacity)
	if bucketNo < 0 || bucketNo >= T.capacity {
		panic(BucketOutOfRange{msg: fmt.Sprintf("received bucket number %d from key hasher is outside permitted range 0 -> %d", bucketNo, T.capacity-1)})
	}

	return
}

// GetBucket - Returns an iterator over the records chained in a bucket
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to BucketNo
//
// It returns:
//   - chain is a ChainRecords struct that can be used to get the records belonging to the bucket, in chain order.
//   - err is standard error
func (T *Table[K, V]) GetBucket(bucketNo int64) (chain *ChainRecords[K, V], err error) {
	if bucketNo < 0 || bucketNo >= T.capacity {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 -> %d", bucketNo, T.capacity-1)
		return
	}

	getRecordFunc := func(address int64) model.Record[K, V] { return T.records[address-1] }
	chain = newChainRecords(getRecordFunc, T.buckets[bucketNo])

	return
}

// find - Searches the chain of a bucket for a record with matching key, every record in the chain is compared.
//
// It returns:
//   - address is the address of the matching record, 0 (zero) if no match
//   - tail is the address of the last record in the chain, 0 (zero) if the bucket is empty
func (T *Table[K, V]) find(bucketNo int64, key K) (address, tail int64) {
	for a := T.buckets[bucketNo]; a != 0; a = T.records[a-1].NextRecord {
		if T.hasher.Equal(T.records[a-1].Key, key) {
			address = a
			return
		}
		tail = a
	}

	return
}

// appendRecord - Creates a new record and links it after tail, or as chain head if the bucket is empty
func (T *Table[K, V]) appendRecord(bucketNo, tail int64, key K, value V) {
	address := int64(len(T.records)) + 1
	T.records = append(T.records, model.Record[K, V]{
		Key:           key,
		Value:         value,
		RecordAddress: address,
	})

	if tail == 0 {
		T.buckets[bucketNo] = address
		T.occupied.Add(uint32(bucketNo))
	} else {
		T.records[tail-1].NextRecord = address
	}

	T.length++
}
