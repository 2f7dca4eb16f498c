package hashfunc

// KeyHasher - Interface that a key type's collaborator implements to be usable in a Table. It permits an
// implementation to supply a bucket selection algorithm suited for its particular distribution of keys.
// Equal keys must always produce the same bucket number, otherwise a key may become unreachable.
type KeyHasher[K any] interface {
	// BucketNo - Given key it generates an index (bucket) between 0 and capacity - 1.
	// It must be deterministic and free of hidden state. Any number returned outside 0 -> capacity - 1
	// results in a panic down stream.
	//   - key is the key to select a bucket for
	//   - capacity is the fixed number of buckets in the table, always higher than 0 (zero)
	BucketNo(key K, capacity int64) int64

	// Equal - Returns true if a and b are the same key.
	// It must be reflexive, symmetric and transitive.
	Equal(a, b K) bool
}
