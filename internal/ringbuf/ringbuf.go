// Package ringbuf implements a power-of-two circular buffer used as the
// rolling window behind the group transformation.
package ringbuf

import "math/bits"

// Buffer is a generic circular buffer. Unlike a queue it supports copying
// the buffered elements out oldest-first without consuming them, which is
// what an overlapping window needs.
type Buffer[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the oldest element
	size int // number of buffered elements
	mask int // capacity - 1, for fast modulo: idx & mask
}

// New creates a Buffer able to hold at least capacity elements before
// growing.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = 16
	}
	c := 1
	if capacity > 1 {
		c = 1 << uint(bits.Len(uint(capacity-1)))
	}
	return &Buffer[T]{
		buf:  make([]T, c),
		mask: c - 1,
	}
}

func (b *Buffer[T]) grow() {
	newCap := len(b.buf) * 2
	newBuf := make([]T, newCap)
	if b.head+b.size <= len(b.buf) {
		copy(newBuf, b.buf[b.head:b.head+b.size])
	} else {
		// wrapped around
		n := copy(newBuf, b.buf[b.head:])
		tail := (b.head + b.size) & b.mask
		copy(newBuf[n:], b.buf[:tail])
	}
	clear(b.buf)
	b.buf = newBuf
	b.head = 0
	b.mask = newCap - 1
}

// Push appends value at the tail, growing the buffer when full.
func (b *Buffer[T]) Push(value T) {
	if b.size == len(b.buf) {
		b.grow()
	}
	b.buf[(b.head+b.size)&b.mask] = value
	b.size++
}

// Drop discards the n oldest elements, clearing their slots so references
// are not retained. Dropping more than Len discards everything.
func (b *Buffer[T]) Drop(n int) {
	if n > b.size {
		n = b.size
	}
	var zero T
	for i := 0; i < n; i++ {
		b.buf[b.head] = zero
		b.head = (b.head + 1) & b.mask
	}
	b.size -= n
}

// Fill copies up to len(dst) buffered elements into dst, oldest first,
// without consuming them. It returns the number of elements copied.
func (b *Buffer[T]) Fill(dst []T) int {
	n := len(dst)
	if n > b.size {
		n = b.size
	}
	if b.head+n <= len(b.buf) {
		copy(dst, b.buf[b.head:b.head+n])
	} else {
		// wrapped around
		part := copy(dst, b.buf[b.head:])
		copy(dst[part:], b.buf[:n-part])
	}
	return n
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Clear discards all elements and releases references.
func (b *Buffer[T]) Clear() {
	clear(b.buf)
	b.head = 0
	b.size = 0
}
