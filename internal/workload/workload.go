// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workload generates reproducible key streams for exercising sets.
package workload

// A Generator produces keys and selections from a seeded PCG source. Two
// generators with the same seed produce the same output.
type Generator struct {
	src        pcgSource
	sequential bool
}

// New returns a generator seeded with seed. A sequential generator returns
// 0, 1, 2, ... from Keys; otherwise keys are drawn from [0, 2n), so roughly
// a fifth of them repeat.
func New(seed uint64, sequential bool) *Generator {
	g := &Generator{sequential: sequential}
	g.src.seed(seed)
	return g
}

// Keys returns n keys.
func (g *Generator) Keys(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		if g.sequential {
			keys[i] = uint64(i)
		} else {
			keys[i] = g.src.below(2 * uint64(n))
		}
	}
	return keys
}

// Split partitions keys into a picked part holding round(ratio*len(keys))
// keys and the rest, preserving neither order. keys itself is not modified.
func (g *Generator) Split(keys []uint64, ratio float64) (picked, rest []uint64) {
	shuffled := append([]uint64(nil), keys...)
	// Fisher-Yates, driven by the same source as Keys.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.src.below(uint64(i) + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	k := int(ratio*float64(len(keys)) + 0.5)
	if k > len(keys) {
		k = len(keys)
	}
	if k < 0 {
		k = 0
	}
	return shuffled[:k], shuffled[k:]
}
