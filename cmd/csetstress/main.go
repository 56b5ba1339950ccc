// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The csetstress command exercises a hashset.HashSet with a reproducible
// workload and verifies its contract along the way: bulk insertion with
// resizes, lookups and iteration, delete/re-insert churn, and set algebra.
//
// Usage:
//
//	csetstress [-n count] [--delete-ratio r] [--seed s] [--sequential] [-v] [--log-format text|json] [--trace]
//
// It exits with status 0 if every check passes, 1 if one fails and 2 on a
// usage error.
package main

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/xerrors"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

type config struct {
	count       int
	deleteRatio float64
	seed        uint64
	sequential  bool
	verbose     bool
	logFormat   string
	trace       bool
}

func (c *config) validate() error {
	if c.count < 0 {
		return xerrors.Errorf("--count must not be negative, got %d", c.count)
	}
	if c.deleteRatio < 0 || c.deleteRatio > 1 {
		return xerrors.Errorf("--delete-ratio must be in [0, 1], got %v", c.deleteRatio)
	}
	switch c.logFormat {
	case "text", "json":
	default:
		return xerrors.Errorf("--log-format must be text or json, got %q", c.logFormat)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var c config
	fs := pflag.NewFlagSet("csetstress", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&c.count, "count", "n", 3200, "number of keys inserted in the bulk phase")
	fs.Float64Var(&c.deleteRatio, "delete-ratio", 0.5, "fraction of the keys deleted and re-inserted in the churn phase")
	fs.Uint64Var(&c.seed, "seed", 1, "seed of the workload generator")
	fs.BoolVar(&c.sequential, "sequential", false, "insert 0..n-1 instead of pseudo-random keys")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log every resize")
	fs.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
	fs.BoolVar(&c.trace, "trace", false, "write OpenTelemetry spans for each phase to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, xerrors.Errorf("unexpected arguments: %q", fs.Args())
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func newLogger(c *config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if c.logFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return log
}

// newTracerProvider returns the provider the phases are traced with and a
// function that flushes it.
func newTracerProvider(c *config, w io.Writer) (trace.TracerProvider, func(context.Context) error, error) {
	if !c.trace {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, nil, xerrors.Errorf("creating trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	return tp, tp.Shutdown, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if err != nil {
		if xerrors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		io.WriteString(stderr, "csetstress: "+err.Error()+"\n")
		return exitUsage
	}
	log := newLogger(c, stderr)

	tp, shutdown, err := newTracerProvider(c, stderr)
	if err != nil {
		log.WithError(err).Error("tracing setup failed")
		return exitFailed
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Warn("flushing traces failed")
		}
	}()

	s := newStress(c, log, tp.Tracer("github.com/itsmanjeet/cset/cmd/csetstress"))
	sum, err := s.run(ctx)
	if err != nil {
		log.WithError(err).Error("stress run failed")
		return exitFailed
	}
	sum.print(stdout)
	return exitOK
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
