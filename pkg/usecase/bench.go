package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fetchbench/pkg/domain/interfaces"
	"github.com/m-mizutani/fetchbench/pkg/domain/model"
	"github.com/m-mizutani/fetchbench/pkg/utils/pool"
)

// Bench runs every fetcher against every target, verifies the downloaded
// content by MD5, and reports throughput. The full cross-product runs twice:
// once in the calling goroutine and once dispatched through a single-worker
// pool, to expose the dispatch overhead in isolation.
type Bench struct {
	targets  []model.Target
	fetchers []interfaces.Fetcher
	out      io.Writer
	skipPool bool
}

// Option is a functional option for Bench configuration
type Option func(*Bench)

// WithOutput redirects the report from stdout
func WithOutput(w io.Writer) Option {
	return func(b *Bench) {
		b.out = w
	}
}

// WithSkipPool disables the second, pool-dispatched pass
func WithSkipPool(skip bool) Option {
	return func(b *Bench) {
		b.skipPool = skip
	}
}

// NewBench creates a benchmark runner over the given targets and fetchers
func NewBench(targets []model.Target, fetchers []interfaces.Fetcher, opts ...Option) *Bench {
	b := &Bench{
		targets:  targets,
		fetchers: fetchers,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var headerColor = color.New(color.Bold)

// Run executes both benchmark passes. A digest mismatch is reported and the
// run continues; a fetcher failure aborts the whole run.
func (b *Bench) Run(ctx context.Context) error {
	logger := ctxlog.From(ctx)
	logger.Info("starting benchmark",
		"run_id", uuid.NewString(),
		"targets", len(b.targets),
		"fetchers", len(b.fetchers),
	)

	headerColor.Fprintln(b.out, "=== Benchmark download in main goroutine ===")
	for _, target := range b.targets {
		for _, fetcher := range b.fetchers {
			if err := b.benchOne(ctx, target, fetcher); err != nil {
				return err
			}
		}
	}

	if b.skipPool {
		return nil
	}

	headerColor.Fprintln(b.out, "=== Benchmark download in a single worker pool ===")
	workers := pool.New(ctx, 1)
	for _, target := range b.targets {
		for _, fetcher := range b.fetchers {
			workers.Submit(func(ctx context.Context) error {
				return b.benchOne(ctx, target, fetcher)
			})
		}
	}
	if err := workers.Wait(); err != nil {
		return goerr.Wrap(err, "pool-dispatched benchmark failed")
	}

	return nil
}

// benchOne times a single (target, fetcher) download into a scoped temp file
// and prints either a throughput line or a mismatch diagnostic. The temp
// file is removed on every exit path.
func (b *Bench) benchOne(ctx context.Context, target model.Target, fetcher interfaces.Fetcher) error {
	tmp, err := os.CreateTemp("", "fetchbench-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file")
	}
	dest := tmp.Name()
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", dest))
	}
	defer os.Remove(dest)

	start := time.Now()
	if err := fetcher.Fetch(ctx, target.URL, dest); err != nil {
		return goerr.Wrap(err, "fetch failed",
			goerr.V("fetcher", fetcher.Name()),
			goerr.V("target", target.Name),
		)
	}
	elapsed := time.Since(start).Seconds()

	digest, err := FileDigest(dest)
	if err != nil {
		return goerr.Wrap(err, "failed to digest downloaded file",
			goerr.V("fetcher", fetcher.Name()),
			goerr.V("target", target.Name),
		)
	}

	if digest != target.MD5 {
		b.printMismatch(&model.Mismatch{
			Fetcher:  fetcher.Name(),
			Target:   target.Name,
			Size:     target.Size,
			Actual:   digest,
			Expected: target.MD5,
		})
		return nil
	}

	// Size from the filesystem, deliberately independent of the bytes the
	// fetcher streamed.
	info, err := os.Stat(dest)
	if err != nil {
		return goerr.Wrap(err, "failed to stat downloaded file", goerr.V("path", dest))
	}

	b.printResult(&model.Result{
		Fetcher: fetcher.Name(),
		Elapsed: elapsed,
		Bytes:   info.Size(),
		Speed:   float64(info.Size()) / elapsed,
	})
	return nil
}

func (b *Bench) printResult(r *model.Result) {
	fmt.Fprintf(b.out, "%-22s%6.2f sec%10s%10s/s\n",
		r.Fetcher,
		r.Elapsed,
		humanize.Bytes(uint64(r.Bytes)),
		humanize.Bytes(uint64(r.Speed)),
	)
}

func (b *Bench) printMismatch(m *model.Mismatch) {
	color.New(color.FgRed).Fprintf(b.out,
		"Error in benchmark of %s using target %s (%s): MD5 mismatch (%s != %s)\n",
		m.Fetcher, m.Target, m.Size, m.Actual, m.Expected,
	)
}
