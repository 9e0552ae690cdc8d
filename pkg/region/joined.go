package region

import (
	"errors"
	"iter"
)

// ErrExhausted is returned by [Iterator.Next] when no elements remain.
// Calling Next without checking HasNext is a programmer error.
var ErrExhausted = errors.New("no more elements")

// Join concatenates the given sequences into one logical sequence without
// copying elements. Sources are drained in the order supplied; empty
// sources are skipped transparently. The result is finite whenever every
// source is, and each range over it restarts the underlying sources.
func Join[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Iterator is a pull-style view over a joined sequence. It buffers at most
// one element so HasNext can peek without losing it.
//
// The zero value is not usable; create iterators with [NewIterator].
type Iterator[T any] struct {
	next     func() (T, bool)
	stop     func()
	buffered T
	hasBuf   bool
	done     bool
}

// NewIterator returns a pull-style iterator over the concatenation of the
// given sequences, in order.
func NewIterator[T any](seqs ...iter.Seq[T]) *Iterator[T] {
	next, stop := iter.Pull(Join(seqs...))
	return &Iterator[T]{next: next, stop: stop}
}

// HasNext reports whether another element is available.
func (it *Iterator[T]) HasNext() bool {
	if it.hasBuf {
		return true
	}
	if it.done {
		return false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		return false
	}
	it.buffered = v
	it.hasBuf = true
	return true
}

// Next returns the next element, or ErrExhausted when the sequence has no
// more elements.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	it.hasBuf = false
	return it.buffered, nil
}

// Stop releases the underlying traversal. It is safe to call multiple
// times; iterators drained to exhaustion stop themselves.
func (it *Iterator[T]) Stop() {
	if !it.done {
		it.done = true
		it.stop()
	}
	var zero T
	it.buffered = zero
	it.hasBuf = false
}
