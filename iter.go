// SPDX-License-Identifier: MIT

package lusbir

import (
	"iter"

	"github.com/emirpasic/gods/containers"
)

// All returns a lazy iterator over the elements in order. It is restartable:
// each range over the returned sequence starts again at the first element.
func (l Lusbir) All() iter.Seq[int] {
	f := l.form

	return func(yield func(int) bool) {
		v := f.first
		for i := 0; i < f.count; i++ {
			if !yield(v) {
				return
			}
			v += f.step
		}
	}
}

// Backward returns a lazy iterator over the elements in reverse order,
// without materialising the sequence.
func (l Lusbir) Backward() iter.Seq[int] {
	f := l.form

	return func(yield func(int) bool) {
		if f.count == 0 {
			return
		}
		v := f.last()
		for i := 0; i < f.count; i++ {
			if !yield(v) {
				return
			}
			v -= f.step
		}
	}
}

// Enumerate returns a lazy iterator over (index, element) pairs.
func (l Lusbir) Enumerate() iter.Seq2[int, int] {
	f := l.form

	return func(yield func(int, int) bool) {
		for i := 0; i < f.count; i++ {
			if !yield(i, f.at(i)) {
				return
			}
		}
	}
}

// Values materialises the elements into a new slice. Memory is O(Len()).
func (l Lusbir) Values() []int {
	out := make([]int, 0, l.form.count)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// Iterator is a stateful cursor over a Lusbir. It satisfies the gods
// containers.ReverseIteratorWithIndex contract, so a Lusbir can be walked by
// code written against gods lists.
//
// The cursor starts before the first element; Next moves forward, Prev moves
// back, Begin/End reset to the one-before-first / one-past-last positions.
type Iterator struct {
	form  form
	index int
}

var _ containers.ReverseIteratorWithIndex = (*Iterator)(nil)

// Iterator returns a cursor positioned before the first element.
func (l Lusbir) Iterator() *Iterator {
	return &Iterator{form: l.form, index: -1}
}

// Next advances to the next element and reports whether one exists.
func (it *Iterator) Next() bool {
	if it.index < it.form.count {
		it.index++
	}

	return it.valid()
}

// Prev moves to the previous element and reports whether one exists.
func (it *Iterator) Prev() bool {
	if it.index >= 0 {
		it.index--
	}

	return it.valid()
}

// Value returns the current element. Call only after Next/Prev/First/Last
// reported true.
func (it *Iterator) Value() interface{} { return it.Int() }

// Int returns the current element without boxing.
func (it *Iterator) Int() int { return it.form.at(it.index) }

// Index returns the position of the current element.
func (it *Iterator) Index() int { return it.index }

// Begin resets the cursor to before the first element.
func (it *Iterator) Begin() { it.index = -1 }

// End moves the cursor past the last element.
func (it *Iterator) End() { it.index = it.form.count }

// First moves to the first element and reports whether it exists.
func (it *Iterator) First() bool {
	it.Begin()

	return it.Next()
}

// Last moves to the last element and reports whether it exists.
func (it *Iterator) Last() bool {
	it.End()

	return it.Prev()
}

func (it *Iterator) valid() bool {
	return it.index >= 0 && it.index < it.form.count
}
