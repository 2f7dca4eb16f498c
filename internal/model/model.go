package model

// Record - Represents one entry in a bucket chain
//   - RecordAddress is the 1-based address of the record in the table arena
//   - NextRecord is the address of the next record in the same chain, 0 (zero) terminates the chain
type Record[K any, V any] struct {
	Key           K
	Value         V
	RecordAddress int64
	NextRecord    int64
}
