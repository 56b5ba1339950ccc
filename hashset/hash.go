// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashset

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// A HashFunc returns the hash of v. It may delegate to h to hash a part of v
// with the same functions the default strategy uses, for example
//
//	func(p Point, h *hashset.Hasher) uint64 { return hashset.Sum(h, p.X) }
//
// A HashFunc must agree with the set's EqualFunc: elements that compare
// equal must have equal hashes. This is not checked; a mismatched pair
// silently stores "equal" elements more than once.
type HashFunc[T any] func(v T, h *Hasher) uint64

// An EqualFunc reports whether a and b are the same element.
type EqualFunc[T any] func(a, b T) bool

// A Hasher is the default hasher of a set. Every set gets its own random
// seed, so hashes are only meaningful within the set that computed them.
type Hasher struct {
	seed maphash.Seed
	salt uint64
}

func newHasher() *Hasher {
	seed := maphash.MakeSeed()
	return &Hasher{seed: seed, salt: maphash.Comparable(seed, uint64(0))}
}

// Bytes returns the hash of b.
func (h *Hasher) Bytes(b []byte) uint64 {
	d := xxhash.NewWithSeed(h.salt)
	d.Write(b)
	return d.Sum64()
}

// String returns the hash of s. It equals h.Bytes([]byte(s)).
func (h *Hasher) String(s string) uint64 {
	d := xxhash.NewWithSeed(h.salt)
	d.WriteString(s)
	return d.Sum64()
}

// Sum returns the default hash of v. The default hash is structural: it
// agrees with ==, so it hashes strings by content, pointers by address and
// treats +0 and -0 as the same float.
func Sum[V comparable](h *Hasher, v V) uint64 {
	return maphash.Comparable(h.seed, v)
}

func defaultHash[T comparable](v T, h *Hasher) uint64 {
	return maphash.Comparable(h.seed, v)
}

func defaultEqual[T comparable](a, b T) bool {
	return a == b
}

// mix spreads the entropy of x over all 64 bits (the murmur3 finalizer), so
// that weak custom hashes do not pile up in the low bits used for indexing.
func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
