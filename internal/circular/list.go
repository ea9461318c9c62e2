// Package circular provides sequence containers whose indexes wrap around
// their length, so that -1 is the last element and Len() is the first.
package circular

import "fmt"

// Index gives the modular index of i for length n, but unlike the raw modulo
// operator, it only gives positive values.
func Index(i, n int) int {
	return (i%n + n) % n
}

// List is a growable slice that treats its indexes as circular. The zero
// value is an empty list ready to use.
type List[T any] struct {
	items []T
}

func NewList[T any](items ...T) List[T] {
	l := List[T]{items: make([]T, len(items))}
	copy(l.items, items)
	return l
}

func WithCapacity[T any](capacity int) List[T] {
	return List[T]{items: make([]T, 0, capacity)}
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// Indexing an empty list is a programming error, and panics.
func (l *List[T]) normalize(i int) int {
	if len(l.items) == 0 {
		panic(fmt.Sprintf("circular: index %d into empty list", i))
	}
	return Index(i, len(l.items))
}

func (l *List[T]) At(i int) T {
	return l.items[l.normalize(i)]
}

func (l *List[T]) Set(i int, v T) {
	l.items[l.normalize(i)] = v
}

func (l *List[T]) Add(items ...T) {
	l.items = append(l.items, items...)
}

// Insert places v before the element currently at i. Unlike At, the index is
// only wrapped when it is outside [0, Len()], so inserting at Len() appends.
func (l *List[T]) Insert(i int, v T) {
	if i < 0 || i > len(l.items) {
		i = l.normalize(i)
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
}

func (l *List[T]) RemoveAt(i int) T {
	i = l.normalize(i)
	v := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return v
}

func (l *List[T]) Clear() {
	l.items = l.items[:0]
}

func (l *List[T]) Reverse() {
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
}

// Items returns a copy of the underlying elements in order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
