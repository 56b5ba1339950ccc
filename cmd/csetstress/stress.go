// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/itsmanjeet/cset/hashset"
	"github.com/itsmanjeet/cset/internal/workload"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/xerrors"
)

// errCheck marks a failed verification, as opposed to a setup problem.
var errCheck = xerrors.New("check failed")

func checkf(format string, args ...any) error {
	return xerrors.Errorf("%s: %w", fmt.Sprintf(format, args...), errCheck)
}

// absent is never produced by the workload generator.
const absent = math.MaxUint64

type stress struct {
	cfg    *config
	log    *logrus.Logger
	tracer trace.Tracer
	gen    *workload.Generator

	keys []uint64 // distinct keys, in first-insertion order
	set  *hashset.HashSet[uint64]
}

type summary struct {
	keys    int
	len     int
	cap     int
	resizes int
}

func (s summary) print(w io.Writer) {
	fmt.Fprintf(w, "ok: %d distinct keys, len %d, cap %d, %d resizes\n", s.keys, s.len, s.cap, s.resizes)
}

func newStress(c *config, log *logrus.Logger, tracer trace.Tracer) *stress {
	return &stress{
		cfg:    c,
		log:    log,
		tracer: tracer,
		gen:    workload.New(c.seed, c.sequential),
		set:    hashset.New[uint64](),
	}
}

func (s *stress) run(ctx context.Context) (summary, error) {
	ctx, span := s.tracer.Start(ctx, "csetstress")
	defer span.End()

	var sum summary
	phases := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"insert", func(ctx context.Context) error {
			n, err := s.insert(ctx)
			sum.resizes = n
			return err
		}},
		{"lookup", s.lookup},
		{"churn", s.churn},
		{"algebra", s.algebra},
	}
	for _, p := range phases {
		if err := s.phase(ctx, p.name, p.fn); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return summary{}, err
		}
	}
	sum.keys = len(s.keys)
	sum.len = s.set.Len()
	sum.cap = s.set.Cap()
	return sum, nil
}

// phase runs fn in its own span and logs its outcome.
func (s *stress) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	span.SetAttributes(
		attribute.Int("set.len", s.set.Len()),
		attribute.Int("set.cap", s.set.Cap()),
	)
	entry := s.log.WithFields(logrus.Fields{
		"phase":    name,
		"len":      s.set.Len(),
		"cap":      s.set.Cap(),
		"duration": time.Since(start),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Error("phase failed")
		return xerrors.Errorf("%s: %w", name, err)
	}
	entry.Info("phase done")
	return nil
}

// insert adds the generated keys one by one and reports how many times the
// table was resized.
func (s *stress) insert(ctx context.Context) (int, error) {
	raw := s.gen.Keys(s.cfg.count)
	s.keys = lo.Uniq(raw)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("keys.generated", len(raw)),
		attribute.Int("keys.distinct", len(s.keys)),
	)

	resizes := 0
	for _, k := range raw {
		before := s.set.Cap()
		s.set.Add(k)
		if after := s.set.Cap(); after != before {
			resizes++
			s.log.WithFields(logrus.Fields{"from": before, "to": after, "len": s.set.Len()}).Debug("resized")
		}
	}
	if got, want := s.set.Len(), len(s.keys); got != want {
		return resizes, checkf("Len() = %d after inserting %d distinct keys", got, want)
	}
	return resizes, nil
}

func (s *stress) lookup(ctx context.Context) error {
	for _, k := range s.keys {
		if !s.set.Contains(k) {
			return checkf("Contains(%d) = false", k)
		}
	}
	if s.set.Contains(absent) {
		return checkf("Contains(%d) = true for a key never added", uint64(absent))
	}
	n := 0
	for it := s.set.Iter(); !it.Done(); n++ {
		if v := *it.Next(); !s.set.Contains(v) {
			return checkf("iterator returned %d, which is not in the set", v)
		}
	}
	if n != s.set.Len() {
		return checkf("iterated %d elements, Len() = %d", n, s.set.Len())
	}
	return nil
}

// churn deletes part of the keys, checks the survivors, and puts the
// deleted keys back. Tombstone reuse keeps the table from growing more than
// once.
func (s *stress) churn(ctx context.Context) error {
	deleted, kept := s.gen.Split(s.keys, s.cfg.deleteRatio)
	capBefore := s.set.Cap()

	for _, k := range deleted {
		s.set.Delete(k)
		s.set.Delete(k)
	}
	if got := s.set.Len(); got != len(kept) {
		return checkf("Len() = %d after deleting %d of %d keys", got, len(deleted), len(s.keys))
	}
	for _, k := range deleted {
		if s.set.Contains(k) {
			return checkf("Contains(%d) = true after Delete", k)
		}
	}
	for _, k := range kept {
		if !s.set.Contains(k) {
			return checkf("Contains(%d) = false for a key that was not deleted", k)
		}
	}

	for _, k := range deleted {
		s.set.Add(k)
	}
	if got := s.set.Len(); got != len(s.keys) {
		return checkf("Len() = %d after re-inserting, want %d", got, len(s.keys))
	}
	if c := s.set.Cap(); c > 2*capBefore {
		return checkf("Cap() grew from %d to %d while re-inserting deleted keys", capBefore, c)
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("keys.deleted", len(deleted)))
	return nil
}

// algebra derives sets from the keys by predicate and checks the results of
// the set operations against the predicates.
func (s *stress) algebra(ctx context.Context) error {
	inA := func(k uint64) bool { return k%3 != 0 }
	inB := func(k uint64) bool { return k%2 == 0 }
	inC := func(k uint64) bool { return k%3 == 0 }

	a, b, c := hashset.New[uint64](), hashset.New[uint64](), hashset.New[uint64]()
	for v := range s.set.All() {
		if inA(v) {
			a.Add(v)
		}
		if inB(v) {
			b.Add(v)
		}
		if inC(v) {
			c.Add(v)
		}
	}

	dst := hashset.New[uint64]()
	ops := []struct {
		name string
		op   func(dst, a, b *hashset.HashSet[uint64])
		want func(k uint64) bool
	}{
		{"union", hashset.Union[uint64], func(k uint64) bool { return inA(k) || inB(k) }},
		{"intersect", hashset.Intersect[uint64], func(k uint64) bool { return inA(k) && inB(k) }},
		{"difference", hashset.Difference[uint64], func(k uint64) bool { return inA(k) && !inB(k) }},
		{"symmetric difference", hashset.SymmetricDifference[uint64], func(k uint64) bool { return inA(k) != inB(k) }},
	}
	for _, o := range ops {
		o.op(dst, a, b)
		want := lo.CountBy(s.keys, o.want)
		if dst.Len() != want {
			return checkf("%s: Len() = %d, want %d", o.name, dst.Len(), want)
		}
		for v := range dst.All() {
			if !o.want(v) {
				return checkf("%s: result contains %d", o.name, v)
			}
		}
	}

	if !hashset.IsDisjoint(a, c) {
		return checkf("IsDisjoint(a, c) = false, but no key is in both")
	}
	overlap := lo.SomeBy(s.keys, func(k uint64) bool { return inA(k) && inB(k) })
	if got := hashset.IsDisjoint(a, b); got == overlap {
		return checkf("IsDisjoint(a, b) = %v with overlap %v", got, overlap)
	}
	return nil
}
