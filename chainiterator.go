package chainedhashmap

import "github.com/gostonefire/chainedhashmap/internal/model"

// ChainRecords - Is used to iterate over the records of a bucket chain one by one.
type ChainRecords[K any, V any] struct {
	getRecordFunc func(int64) model.Record[K, V]
	recordAddress int64
}

// newChainRecords - Returns a pointer to a new ChainRecords struct
func newChainRecords[K any, V any](getRecordFunc func(int64) model.Record[K, V], headAddress int64) *ChainRecords[K, V] {

	return &ChainRecords[K, V]{
		getRecordFunc: getRecordFunc,
		recordAddress: headAddress,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (C *ChainRecords[K, V]) HasNext() bool {
	return C.recordAddress != 0
}

// Next - Returns the next record in the chain.
// It returns:
//   - key is the key of the record.
//   - value is the value of the record.
//   - err is an error of type NoRecordFound if there are no more records when calling this function.
func (C *ChainRecords[K, V]) Next() (key K, value V, err error) {
	if C.recordAddress == 0 {
		err = NoRecordFound{}
		return
	}

	record := C.getRecordFunc(C.recordAddress)
	key = record.Key
	value = record.Value
	C.recordAddress = record.NextRecord

	return
}
