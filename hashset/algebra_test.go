// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashset_test

import (
	"math/rand/v2"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/itsmanjeet/cset/hashset"
	"github.com/samber/lo"
)

func TestIntersect(t *testing.T) {
	a := hashset.New(12, 13, 14)
	b := hashset.New(12, 13, 16)
	dst := hashset.New[int]()

	hashset.Intersect(dst, a, b)
	testToSlice(t, dst, []int{12, 13})

	b.Add(14)
	hashset.Intersect(dst, a, b)
	testToSlice(t, dst, []int{12, 13, 14})
}

func TestUnion(t *testing.T) {
	a := hashset.New(34, 25, 12)
	b := hashset.New(1, 4, 34)
	dst := hashset.New[int]()

	hashset.Union(dst, a, b)
	testToSlice(t, dst, []int{1, 4, 12, 25, 34})

	b.Add(100)
	hashset.Union(dst, a, b)
	if got := dst.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
}

func TestDifference(t *testing.T) {
	a := hashset.New[int]()
	b := hashset.New[int]()
	dst := hashset.New[int]()

	hashset.Difference(dst, a, b)
	if got := dst.Len(); got != 0 {
		t.Fatalf("difference of empty sets has %d elements", got)
	}

	a.Add(45)
	a.Add(46)
	a.Add(58)
	b.Add(12)
	b.Add(11)
	b.Add(45)
	hashset.Difference(dst, a, b)
	testToSlice(t, dst, []int{46, 58})

	dst.Clear()
	b.Add(46)
	b.Add(58)
	hashset.Difference(dst, a, b)
	testToSlice(t, dst, []int{})

	hashset.Difference(dst, b, a)
	testToSlice(t, dst, []int{11, 12})
}

func TestSymmetricDifference(t *testing.T) {
	dst := hashset.New(99)
	hashset.SymmetricDifference(dst, hashset.New(1, 2, 3), hashset.New(2, 3, 4))
	testToSlice(t, dst, []int{1, 4})
}

func TestIsDisjoint(t *testing.T) {
	a := hashset.New('a', 'b')
	b := hashset.New('c', 'd')
	if !hashset.IsDisjoint(a, b) {
		t.Errorf("IsDisjoint(%v, %v) = false, want true", a, b)
	}
	b.Add('a')
	if hashset.IsDisjoint(a, b) {
		t.Errorf("IsDisjoint(%v, %v) = true, want false", a, b)
	}
	if !hashset.IsDisjoint(hashset.New[rune](), b) {
		t.Errorf("empty set is not disjoint from %v", b)
	}
}

func TestIsSubset(t *testing.T) {
	for _, tc := range []struct {
		a, b *hashset.HashSet[int]
		want bool
	}{
		{hashset.New[int](), hashset.New[int](), true},
		{hashset.New[int](), hashset.New(1), true},
		{hashset.New(1), hashset.New[int](), false},
		{hashset.New(1, 2), hashset.New(1, 2, 3), true},
		{hashset.New(1, 4), hashset.New(1, 2, 3), false},
	} {
		if got := hashset.IsSubset(tc.a, tc.b); got != tc.want {
			t.Errorf("IsSubset(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAlgebraReplacesDestination(t *testing.T) {
	dst := hashset.New(7, 8, 9)
	hashset.Union(dst, hashset.New(1), hashset.New(2))
	testToSlice(t, dst, []int{1, 2})
}

func TestAlgebraAliasedDestination(t *testing.T) {
	a := hashset.New(1, 2, 3)
	b := hashset.New(2, 3, 4)
	hashset.Union(a, a, b)
	testToSlice(t, a, []int{1, 2, 3, 4})

	hashset.Intersect(b, a, b)
	testToSlice(t, b, []int{2, 3, 4})

	hashset.Difference(a, a, b)
	testToSlice(t, a, []int{1})

	c := hashset.New(5)
	hashset.Intersect(c, c, c)
	testToSlice(t, c, []int{5})
}

func TestAlgebraCustomEqual(t *testing.T) {
	newNodes := func(values ...node) *hashset.HashSet[node] {
		return hashset.NewFunc(hashNodeX, equalNodeX, values...)
	}
	a := newNodes(node{1, 1}, node{2, 2})
	b := newNodes(node{2, 20}, node{3, 30})
	dst := newNodes()

	hashset.Union(dst, a, b)
	if got := dst.Len(); got != 3 {
		t.Errorf("Union: Len() = %d, want 3", got)
	}
	hashset.Intersect(dst, a, b)
	if got := dst.Len(); got != 1 || !dst.Contains(node{x: 2}) {
		t.Errorf("Intersect = %v, want one element with x=2", dst)
	}
	if hashset.IsDisjoint(a, b) {
		t.Errorf("IsDisjoint = true, want false")
	}
}

// Intersect keeps a's values whichever operand is smaller.
func TestIntersectKeepsFirstOperand(t *testing.T) {
	newNodes := func(values ...node) *hashset.HashSet[node] {
		return hashset.NewFunc(hashNodeX, equalNodeX, values...)
	}
	for _, tt := range []struct {
		name string
		a, b *hashset.HashSet[node]
		want []node
	}{
		{
			name: "larger a",
			a:    newNodes(node{1, 1}, node{2, 2}, node{3, 3}),
			b:    newNodes(node{2, 20}),
			want: []node{{2, 2}},
		},
		{
			name: "smaller a",
			a:    newNodes(node{2, 2}),
			b:    newNodes(node{1, 10}, node{2, 20}, node{3, 30}),
			want: []node{{2, 2}},
		},
		{
			name: "larger b",
			a:    newNodes(node{2, 20}),
			b:    newNodes(node{1, 1}, node{2, 2}, node{3, 3}),
			want: []node{{2, 20}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dst := newNodes()
			hashset.Intersect(dst, tt.a, tt.b)
			if got := dst.ToSlice(); len(got) != len(tt.want) || got[0] != tt.want[0] {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestAlgebraRandom compares the set operations with golang-set on random
// inputs.
func TestAlgebraRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 50; iter++ {
		xs := lo.Times(r.IntN(200), func(int) int { return r.IntN(300) })
		ys := lo.Times(r.IntN(200), func(int) int { return r.IntN(300) })

		a, b := hashset.New(xs...), hashset.New(ys...)
		ma, mb := mapset.NewThreadUnsafeSet(xs...), mapset.NewThreadUnsafeSet(ys...)

		if got, want := a.Len(), len(lo.Uniq(xs)); got != want {
			t.Fatalf("Len() = %d, want %d", got, want)
		}

		dst := hashset.New[int]()
		check := func(op string, want mapset.Set[int]) {
			t.Helper()
			if !mapset.NewThreadUnsafeSet(dst.ToSlice()...).Equal(want) {
				t.Fatalf("%s(%v, %v) = %v, want %v", op, xs, ys, dst, want)
			}
		}
		hashset.Union(dst, a, b)
		check("Union", ma.Union(mb))
		hashset.Intersect(dst, a, b)
		check("Intersect", ma.Intersect(mb))
		hashset.Difference(dst, a, b)
		check("Difference", ma.Difference(mb))
		hashset.SymmetricDifference(dst, a, b)
		check("SymmetricDifference", ma.SymmetricDifference(mb))

		if got, want := hashset.IsDisjoint(a, b), ma.Intersect(mb).Cardinality() == 0; got != want {
			t.Fatalf("IsDisjoint = %v, want %v", got, want)
		}
		if got, want := hashset.IsSubset(a, b), ma.IsSubset(mb); got != want {
			t.Fatalf("IsSubset = %v, want %v", got, want)
		}
	}
}
