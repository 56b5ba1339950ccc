// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashset

// The functions in this file replace the contents of dst with the result.
// dst uses its own hash and equal functions, which should agree with those
// of a and b. dst may be a or b.

// build clears dst and lets fill populate it. If dst is also a source, the
// result is collected in a scratch set and moved into dst at the end.
func build[T any](dst, a, b *HashSet[T], fill func(out *HashSet[T])) {
	if dst != a && dst != b {
		dst.Clear()
		fill(dst)
		return
	}
	out := &HashSet[T]{
		slots:  make([]slot[T], InitialCap),
		hash:   dst.hash,
		equal:  dst.equal,
		hasher: dst.hasher,
	}
	fill(out)
	dst.slots = out.slots
	dst.size = out.size
	dst.tombstones = out.tombstones
	dst.mods++
}

// smaller returns a and b ordered by length.
func smaller[T any](a, b *HashSet[T]) (small, large *HashSet[T]) {
	if b.Len() < a.Len() {
		return b, a
	}
	return a, b
}

// Union sets dst to the elements that are in a or b.
func Union[T any](dst, a, b *HashSet[T]) {
	build(dst, a, b, func(out *HashSet[T]) {
		for v := range a.All() {
			out.Add(v)
		}
		for v := range b.All() {
			out.Add(v)
		}
	})
}

// Intersect sets dst to the elements of a that are also in b. The stored
// values are always a's, even when b is the smaller set and is the one
// walked.
func Intersect[T any](dst, a, b *HashSet[T]) {
	build(dst, a, b, func(out *HashSet[T]) {
		if a.Len() <= b.Len() {
			for v := range a.All() {
				if b.Contains(v) {
					out.Add(v)
				}
			}
			return
		}
		for v := range b.All() {
			if i, ok := a.locate(v); ok {
				out.Add(a.slots[i].elem)
			}
		}
	})
}

// Difference sets dst to the elements of a that are not in b.
func Difference[T any](dst, a, b *HashSet[T]) {
	build(dst, a, b, func(out *HashSet[T]) {
		for v := range a.All() {
			if !b.Contains(v) {
				out.Add(v)
			}
		}
	})
}

// SymmetricDifference sets dst to the elements that are in exactly one of a
// and b.
func SymmetricDifference[T any](dst, a, b *HashSet[T]) {
	build(dst, a, b, func(out *HashSet[T]) {
		for v := range a.All() {
			if !b.Contains(v) {
				out.Add(v)
			}
		}
		for v := range b.All() {
			if !a.Contains(v) {
				out.Add(v)
			}
		}
	})
}

// IsDisjoint reports whether a and b have no element in common.
func IsDisjoint[T any](a, b *HashSet[T]) bool {
	small, large := smaller(a, b)
	for v := range small.All() {
		if large.Contains(v) {
			return false
		}
	}
	return true
}

// IsSubset reports whether every element of a is in b.
func IsSubset[T any](a, b *HashSet[T]) bool {
	if a.Len() > b.Len() {
		return false
	}
	for v := range a.All() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}
