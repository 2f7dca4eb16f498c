//go:build unit

package chainedhashmap

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTable_Set(t *testing.T) {
	t.Run("counts distinct keys", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		assert.Equal(t, int64(0), table.Len(), "empty table")

		// Execute and Check
		table.Set(50, 0)
		assert.Equal(t, int64(1), table.Len(), "one key")

		table.Set(51, 1)
		assert.Equal(t, int64(2), table.Len(), "two keys")

		// With simple modulo hashing, this will be a collision with 50.
		table.Set(250, 2)
		assert.Equal(t, int64(3), table.Len(), "three keys")
	})

	t.Run("updates an existing key in place", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		table.Set(50, 0)
		table.Set(51, 1)
		table.Set(250, 2)

		// Execute
		table.Set(50, 3)

		// Check
		assert.Equal(t, int64(3), table.Len(), "length unchanged")
		assert.Len(t, table.records, 3, "no record created")
		v, found := table.Get(50)
		assert.True(t, found, "key found")
		assert.Equal(t, 3, v, "value updated")
		v, _ = table.Get(250)
		assert.Equal(t, 2, v, "colliding key untouched")
	})

	t.Run("updates the tail of a chain", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, string](200)
		table.Set(50, "a")
		table.Set(250, "b")

		// Execute
		table.Set(250, "c")

		// Check
		assert.Equal(t, int64(2), table.Len(), "length unchanged")
		v, _ := table.Get(250)
		assert.Equal(t, "c", v, "tail value updated")
		v, _ = table.Get(50)
		assert.Equal(t, "a", v, "head value untouched")
	})

	t.Run("re-setting the head of a length-1 chain creates no extra record", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		table.Set(7, 1)

		// Execute
		table.Set(7, 2)

		// Check
		chain, err := table.GetBucket(7)
		require.NoError(t, err, "get bucket")
		var n int
		for chain.HasNext() {
			_, _, err = chain.Next()
			assert.NoError(t, err, "next record")
			n++
		}
		assert.Equal(t, 1, n, "single record in chain")
		assert.Equal(t, int64(1), table.Len(), "one key")
	})

	t.Run("appends colliding keys at the tail", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)

		// Execute
		table.Set(50, 0)
		table.Set(250, 2)
		table.Set(450, 4)

		// Check
		chain, err := table.GetBucket(50)
		require.NoError(t, err, "get bucket")
		var keys []int
		for chain.HasNext() {
			k, _, err := chain.Next()
			assert.NoError(t, err, "next record")
			keys = append(keys, k)
		}
		assert.Equal(t, []int{50, 250, 450}, keys, "insertion order kept, first inserted at head")
	})
}

func TestTable_Add(t *testing.T) {
	t.Run("adds a new key", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)

		// Execute
		added := table.Add(50, 1)

		// Check
		assert.True(t, added, "key added")
		assert.Equal(t, int64(1), table.Len(), "one key")
	})

	t.Run("rejects an existing key", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		table.Add(50, 1)
		table.Add(250, 2)

		// Execute
		addedHead := table.Add(50, 3)
		addedTail := table.Add(250, 4)

		// Check
		assert.False(t, addedHead, "head key not added again")
		assert.False(t, addedTail, "tail key not added again")
		assert.Equal(t, int64(2), table.Len(), "length unchanged")
		v, _ := table.Get(50)
		assert.Equal(t, 1, v, "value untouched")
		v, _ = table.Get(250)
		assert.Equal(t, 2, v, "value untouched")
	})
}

func TestTable_Get(t *testing.T) {
	t.Run("returns the value just set", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		table.Set(50, 0)
		table.Set(51, 1)
		table.Set(250, 2)

		// Execute
		v50, found50 := table.Get(50)
		v250, found250 := table.Get(250)

		// Check
		assert.True(t, found50, "50 found")
		assert.Equal(t, 0, v50, "correct value for 50")
		assert.True(t, found250, "250 found")
		assert.Equal(t, 2, v250, "correct value for 250")
	})

	t.Run("returns not found on empty bucket", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, string](200)

		// Execute
		v, found := table.Get(42)

		// Check
		assert.False(t, found, "not found")
		assert.Equal(t, "", v, "zero value")
	})

	t.Run("returns not found for colliding key never inserted", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		table.Set(50, 0)
		table.Set(250, 2)

		// Execute
		_, found := table.Get(450)

		// Check
		assert.False(t, found, "450 not found")
	})
}

func TestTable_Has(t *testing.T) {
	t.Run("reports membership with collisions", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		assert.Equal(t, table.BucketNo(50), table.BucketNo(250), "50 and 250 are hash collisions")

		assert.False(t, table.Has(50), "initially the table doesn't have 50")
		assert.False(t, table.Has(51), "initially the table doesn't have 51")
		assert.False(t, table.Has(250), "initially the table doesn't have 250")

		// Execute
		table.Set(50, 0)
		table.Set(51, 1)
		table.Set(250, 2)

		// Check
		assert.True(t, table.Has(50), "checking for added keys works")
		assert.True(t, table.Has(51), "checking for added keys works")
		assert.True(t, table.Has(250), "checking for keys with collisions works")
		assert.False(t, table.Has(450), "collision with both 50 and 250 never inserted")
	})
}

func TestTable_Range(t *testing.T) {
	t.Run("visits buckets in order and chains in insertion order", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		table.Set(51, 1)
		table.Set(250, 2)
		table.Set(50, 0)

		// Execute
		var keys, values []int
		table.Range(func(key int, value int) bool {
			keys = append(keys, key)
			values = append(values, value)
			return true
		})

		// Check
		assert.Equal(t, []int{250, 50, 51}, keys, "correct key order")
		assert.Equal(t, []int{2, 0, 1}, values, "correct value order")
	})

	t.Run("stops when asked to", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		for i := 0; i < 10; i++ {
			table.Set(i, i)
		}

		// Execute
		var n int
		table.Range(func(key int, value int) bool {
			n++
			return n < 3
		})

		// Check
		assert.Equal(t, 3, n, "stopped after third record")
	})

	t.Run("visits nothing in an empty table", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](10)

		// Execute
		var n int
		table.Range(func(key int, value int) bool {
			n++
			return true
		})

		// Check
		assert.Zero(t, n, "no records visited")
	})
}

func TestTable_Stat(t *testing.T) {
	t.Run("produces statistics with distribution", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](200)
		table.Set(50, 0)
		table.Set(51, 1)
		table.Set(250, 2)

		// Execute
		stat := table.Stat(true)

		// Check
		assert.Equal(t, int64(3), stat.Records, "correct records")
		assert.Equal(t, int64(200), stat.NumberOfBuckets, "correct number of buckets")
		assert.Equal(t, int64(2), stat.OccupiedBuckets, "correct occupied buckets")
		assert.Equal(t, int64(2), stat.LongestChain, "correct longest chain")
		assert.InDelta(t, 0.015, stat.LoadFactor, 1e-9, "correct load factor")
		require.Len(t, stat.BucketDistribution, 200, "one entry per bucket")
		assert.Equal(t, int64(2), stat.BucketDistribution[50], "two records in bucket 50")
		assert.Equal(t, int64(1), stat.BucketDistribution[51], "one record in bucket 51")

		var sum int64
		for _, n := range stat.BucketDistribution {
			sum += n
		}
		assert.Equal(t, table.Len(), sum, "distribution adds up to length")
	})

	t.Run("produces statistics without distribution", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](10)
		table.Set(1, 1)

		// Execute
		stat := table.Stat(false)

		// Check
		assert.Nil(t, stat.BucketDistribution, "no distribution")
		assert.Equal(t, int64(1), stat.Records, "correct records")
		assert.Equal(t, int64(1), stat.LongestChain, "correct longest chain")
	})
}

func TestTable_BucketNo(t *testing.T) {
	t.Run("panics when hasher returns bucket outside range", func(t *testing.T) {
		// Prepare
		table := New[int, int](12, outOfRangeHasher{})

		// Execute and Check
		assert.PanicsWithError(t,
			"received bucket number 12 from key hasher is outside permitted range 0 -> 11",
			func() { table.Set(1, 1) },
			"contract violation fails fast")
		assert.Equal(t, int64(0), table.Len(), "nothing stored")
	})
}

func TestTable_GetBucket(t *testing.T) {
	t.Run("returns empty chain for empty bucket", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](12)

		// Execute
		chain, err := table.GetBucket(3)

		// Check
		assert.NoError(t, err, "get bucket")
		assert.False(t, chain.HasNext(), "no records")
		_, _, err = chain.Next()
		assert.ErrorIs(t, err, NoRecordFound{}, "get correct error")
	})

	t.Run("fails on bucket outside range", func(t *testing.T) {
		// Prepare
		table := NewIntegerTable[int, int](12)

		// Execute
		_, errLow := table.GetBucket(-1)
		_, errHigh := table.GetBucket(12)

		// Check
		assert.Error(t, errLow, "negative bucket number")
		assert.Error(t, errHigh, "bucket number equal to capacity")
	})

	t.Run("iterates a chain built on one bucket", func(t *testing.T) {
		// Prepare
		table := New[int, string](5, collidingHasher{})
		table.Set(3, "c")
		table.Set(1, "a")
		table.Set(2, "b")

		// Execute
		chain, err := table.GetBucket(0)
		require.NoError(t, err, "get bucket")

		// Check
		var keys []int
		var values []string
		for chain.HasNext() {
			k, v, err := chain.Next()
			assert.NoError(t, err, "next record")
			keys = append(keys, k)
			values = append(values, v)
		}
		assert.Equal(t, []int{3, 1, 2}, keys, "chain order")
		assert.Equal(t, []string{"c", "a", "b"}, values, "chain values")
	})
}
