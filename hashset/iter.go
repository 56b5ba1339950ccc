// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashset

import "iter"

const errModified = "hashset: set modified during iteration"

// An Iterator walks the elements of a set in slot order:
//
//	for it := s.Iter(); !it.Done(); {
//		v := it.Next()
//		...
//	}
//
// Any change to the set after the iterator is created, other than adding an
// element that is already present or deleting one that is absent,
// invalidates the iterator; Done and Next then panic.
type Iterator[T any] struct {
	s    *HashSet[T]
	i    int
	mods uint64
}

// Iter returns an iterator positioned at the first element of s.
func (s *HashSet[T]) Iter() *Iterator[T] {
	return &Iterator[T]{s: s, i: s.next(0), mods: s.mods}
}

func (it *Iterator[T]) check() {
	if it.mods != it.s.mods {
		panic(errModified)
	}
}

// Done reports whether every element has been returned.
func (it *Iterator[T]) Done() bool {
	it.check()
	return it.i >= len(it.s.slots)
}

// Next returns the current element and advances the iterator. The pointer
// refers to the set's storage and is valid until the next change to the
// set; the element must not be modified in a way that changes its hash or
// equality.
func (it *Iterator[T]) Next() *T {
	it.check()
	if it.i >= len(it.s.slots) {
		panic("hashset: Next called after iteration finished")
	}
	v := &it.s.slots[it.i].elem
	it.i = it.s.next(it.i + 1)
	return v
}

// All returns an iterator over the elements of s. Changing s while ranging
// over it panics, like an invalidated Iterator.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		mods := s.mods
		for i := s.next(0); i < len(s.slots); i = s.next(i + 1) {
			if !yield(s.slots[i].elem) {
				return
			}
			if s.mods != mods {
				panic(errModified)
			}
		}
	}
}
