package chainedhashmap

import "github.com/gostonefire/chainedhashmap/hashfunc"

// Set - A fixed capacity set of distinct members backed by a Table
type Set[T any] struct {
	table *Table[T, struct{}]
}

// NewSet - Returns a new empty set, see New for the rules on capacity and hasher
func NewSet[T any](capacity int64, hasher hashfunc.KeyHasher[T]) *Set[T] {
	return &Set[T]{table: New[T, struct{}](capacity, hasher)}
}

// Add - Adds member to the set, it returns false if the member was already present
func (S *Set[T]) Add(member T) (added bool) {
	return S.table.Add(member, struct{}{})
}

// Has - Returns true if member is present in the set
func (S *Set[T]) Has(member T) bool {
	return S.table.Has(member)
}

// Len - Returns the number of members
func (S *Set[T]) Len() int64 {
	return S.table.Len()
}

// Range - Calls fn for every member, stops if fn returns false
func (S *Set[T]) Range(fn func(member T) bool) {
	S.table.Range(func(member T, _ struct{}) bool {
		return fn(member)
	})
}
