// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashset implements a generic set backed by an open-addressed hash
// table.
//
// Elements are stored in a power-of-two array of slots and collisions are
// resolved by probing. Deleted elements leave tombstones behind so that
// probe sequences of other elements stay intact; tombstones are discarded
// whenever the table is rebuilt.
//
// Sets of comparable types created with New hash and compare elements
// structurally. NewFunc accepts any element type together with a hash and an
// equality function, which is also the way to key a set on part of a value:
//
//	type Node struct{ X, Y int }
//
//	s := hashset.NewFunc(
//		func(n Node, h *hashset.Hasher) uint64 { return hashset.Sum(h, n.X) },
//		func(a, b Node) bool { return a.X == b.X },
//	)
//
// A HashSet is not safe for concurrent use. The order in which elements are
// visited is unspecified and may change after any mutation.
package hashset

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// ErrTooLarge is returned by Grow, and used as the panic value of Add, when
// the table cannot grow to the required size. The set is left unchanged.
var ErrTooLarge = xerrors.New("hashset: too large")

// A HashSet is a set of elements of type T. The zero value is not usable;
// create sets with New or NewFunc.
type HashSet[T any] struct {
	slots      []slot[T]
	size       int
	tombstones int

	hash   HashFunc[T]
	equal  EqualFunc[T]
	hasher *Hasher

	// mods counts structural changes, so that iterators can tell when the
	// table moved under them.
	mods uint64
}

// New returns a set holding values, using the default hash and ==.
func New[T comparable](values ...T) *HashSet[T] {
	return NewFunc(defaultHash[T], defaultEqual[T], values...)
}

// NewFunc returns a set holding values that hashes elements with hash and
// compares them with equal. Elements for which equal reports true must have
// the same hash.
func NewFunc[T any](hash HashFunc[T], equal EqualFunc[T], values ...T) *HashSet[T] {
	if hash == nil || equal == nil {
		panic("hashset: nil hash or equal function")
	}
	s := &HashSet[T]{
		slots:  make([]slot[T], InitialCap),
		hash:   hash,
		equal:  equal,
		hasher: newHasher(),
	}
	if len(values) > 0 {
		if err := s.Grow(len(values)); err != nil {
			panic(err)
		}
		for _, v := range values {
			s.Add(v)
		}
	}
	return s
}

// SetHash replaces the hash function. Elements already in the set are not
// rehashed, so the hash function should be set before the first Add.
func (s *HashSet[T]) SetHash(hash HashFunc[T]) {
	if hash == nil {
		panic("hashset: nil hash function")
	}
	s.hash = hash
	s.mods++
}

// SetEqual replaces the equality function. Like SetHash, it should be
// called before the first Add.
func (s *HashSet[T]) SetEqual(equal EqualFunc[T]) {
	if equal == nil {
		panic("hashset: nil equal function")
	}
	s.equal = equal
	s.mods++
}

// Add adds v to the set. Adding an element that is already present does
// nothing. If the table cannot grow, Add panics with ErrTooLarge and the set
// is unchanged.
func (s *HashSet[T]) Add(v T) {
	if err := s.insert(v); err != nil {
		panic(err)
	}
}

// Delete removes v from the set. Deleting an absent element does nothing.
func (s *HashSet[T]) Delete(v T) {
	s.remove(v)
}

// Contains reports whether v is in the set.
func (s *HashSet[T]) Contains(v T) bool {
	if s.size == 0 {
		return false
	}
	_, ok := s.locate(v)
	return ok
}

// ContainsAll reports whether every one of values is in the set.
func (s *HashSet[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Len returns the number of elements in the set.
func (s *HashSet[T]) Len() int { return s.size }

// Cap returns the number of slots in the table.
func (s *HashSet[T]) Cap() int { return len(s.slots) }

// Clear removes all elements, keeping the table's capacity.
func (s *HashSet[T]) Clear() {
	clear(s.slots)
	s.size = 0
	s.tombstones = 0
	s.mods++
}

// Free releases the table. The set stays usable and allocates a new table
// of InitialCap slots on the next Add.
func (s *HashSet[T]) Free() {
	s.slots = nil
	s.size = 0
	s.tombstones = 0
	s.mods++
}

// Grow makes room for at least n more elements, so that the next n calls to
// Add do not rebuild the table. It panics if n is negative and returns an
// error wrapping ErrTooLarge if the table cannot be made that large.
func (s *HashSet[T]) Grow(n int) error {
	if n < 0 {
		panic("hashset: negative count passed to Grow")
	}
	want := s.size + n
	if want < s.size {
		return xerrors.Errorf("hashset: grow by %d: %w", n, ErrTooLarge)
	}
	c, ok := capFor(want)
	if !ok {
		return xerrors.Errorf("hashset: grow to %d elements: %w", want, ErrTooLarge)
	}
	if c <= len(s.slots) {
		if s.size+s.tombstones+n <= maxLoad(len(s.slots)) {
			return nil
		}
		c = len(s.slots)
	}
	if err := s.rehash(c); err != nil {
		return xerrors.Errorf("hashset: grow to %d slots: %w", c, err)
	}
	return nil
}

// Clone returns a copy of the set with the same hash and equal functions.
func (s *HashSet[T]) Clone() *HashSet[T] {
	c := *s
	if len(s.slots) > 0 {
		c.slots = make([]slot[T], len(s.slots))
		copy(c.slots, s.slots)
	}
	c.mods = 0
	return &c
}

// Equal reports whether s and o hold the same elements.
func (s *HashSet[T]) Equal(o *HashSet[T]) bool {
	return s.Len() == o.Len() && IsSubset(s, o) && IsSubset(o, s)
}

// ToSlice returns the elements of the set in unspecified order.
func (s *HashSet[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// String formats the set as {a b c}.
func (s *HashSet[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	for v := range s.All() {
		fmt.Fprint(&b, sep, v)
		sep = " "
	}
	b.WriteByte('}')
	return b.String()
}
