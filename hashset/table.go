// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashset

import "math/bits"

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	// A tombstone marks a deleted element. Lookups probe past it so that
	// elements placed further along the same probe sequence stay reachable.
	slotTombstone
)

type slot[T any] struct {
	state slotState
	elem  T
}

// InitialCap is the number of slots a new set starts with.
const InitialCap = 16

// maxCap is the largest capacity a set will try to allocate.
const maxCap = 1 << (bits.UintSize - 2)

// maxLoad returns how many slots of a table with n slots may be in use,
// live or tombstone, before it is rebuilt.
func maxLoad(n int) int {
	return n/10*7 + n%10*7/10
}

// capFor returns the smallest capacity that holds n elements without
// exceeding the load limit.
func capFor(n int) (int, bool) {
	c := InitialCap
	for maxLoad(c) < n {
		if c > maxCap/2 {
			return 0, false
		}
		c <<= 1
	}
	return c, true
}

// makeSlots allocates a table of n slots. A length the runtime refuses is
// reported as ErrTooLarge instead of crashing the caller.
func makeSlots[T any](n int) (slots []slot[T], err error) {
	if n < 0 || n > maxCap {
		return nil, ErrTooLarge
	}
	defer func() {
		if recover() != nil {
			slots, err = nil, ErrTooLarge
		}
	}()
	return make([]slot[T], n), nil
}

// start returns the first slot of v's probe sequence in a table with
// mask+1 slots.
func (s *HashSet[T]) start(v T, mask int) int {
	return int(mix(s.hash(v, s.hasher)) & uint64(mask))
}

// locate finds v in the table. If v is present it returns its index and
// true. Otherwise it returns the slot an insertion of v should use: the
// first tombstone on the probe sequence if there was one, else the empty
// slot that ended the search. It returns -1 only if every slot is occupied.
//
// Probing is triangular (offsets 0, 1, 3, 6, ...), which visits each slot of
// a power-of-two table exactly once in len(slots) steps.
func (s *HashSet[T]) locate(v T) (int, bool) {
	mask := len(s.slots) - 1
	i := s.start(v, mask)
	free := -1
	for step := 1; step <= len(s.slots); step++ {
		sl := &s.slots[i]
		switch sl.state {
		case slotEmpty:
			if free < 0 {
				free = i
			}
			return free, false
		case slotTombstone:
			if free < 0 {
				free = i
			}
		case slotOccupied:
			if s.equal(sl.elem, v) {
				return i, true
			}
		}
		i = (i + step) & mask
	}
	return free, false
}

// place stores v, known to be absent, in the first empty slot of its probe
// sequence in slots.
func (s *HashSet[T]) place(slots []slot[T], v T) {
	mask := len(slots) - 1
	i := s.start(v, mask)
	for step := 1; slots[i].state != slotEmpty; step++ {
		i = (i + step) & mask
	}
	slots[i] = slot[T]{state: slotOccupied, elem: v}
}

// rehash moves every live element into a fresh table of n slots and drops
// the tombstones. On error the set is unchanged.
func (s *HashSet[T]) rehash(n int) error {
	slots, err := makeSlots[T](n)
	if err != nil {
		return err
	}
	for i := range s.slots {
		if s.slots[i].state == slotOccupied {
			s.place(slots, s.slots[i].elem)
		}
	}
	s.slots = slots
	s.tombstones = 0
	s.mods++
	return nil
}

// rebuild makes room for one more element. If tombstones account for most
// of the load the table is rehashed at its current size, otherwise it
// doubles.
func (s *HashSet[T]) rebuild() error {
	n := len(s.slots)
	if s.size+1 > maxLoad(n)/2 {
		if n > maxCap/2 {
			return ErrTooLarge
		}
		n <<= 1
	}
	return s.rehash(n)
}

// insert adds v if it is absent.
func (s *HashSet[T]) insert(v T) error {
	if s.hash == nil {
		panic("hashset: zero HashSet; use New or NewFunc")
	}
	if len(s.slots) == 0 {
		slots, err := makeSlots[T](InitialCap)
		if err != nil {
			return err
		}
		s.slots = slots
	}
	i, ok := s.locate(v)
	if ok {
		return nil
	}
	if i < 0 || (s.slots[i].state == slotEmpty && s.size+s.tombstones+1 > maxLoad(len(s.slots))) {
		if err := s.rebuild(); err != nil {
			return err
		}
		i, _ = s.locate(v)
	}
	if s.slots[i].state == slotTombstone {
		s.tombstones--
	}
	s.slots[i] = slot[T]{state: slotOccupied, elem: v}
	s.size++
	s.mods++
	return nil
}

// remove deletes v if it is present.
func (s *HashSet[T]) remove(v T) bool {
	if s.size == 0 {
		return false
	}
	i, ok := s.locate(v)
	if !ok {
		return false
	}
	s.slots[i] = slot[T]{state: slotTombstone}
	s.size--
	s.tombstones++
	s.mods++
	return true
}

// next returns the index of the first occupied slot at or after i, or
// len(s.slots) if there is none.
func (s *HashSet[T]) next(i int) int {
	for i < len(s.slots) && s.slots[i].state != slotOccupied {
		i++
	}
	return i
}
