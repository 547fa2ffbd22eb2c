package main

import (
	"context"
	"io"
	"os"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/ospv"
	"github.com/wippyai/ospv/codec"
	"github.com/wippyai/ospv/errors"
)

type batch struct {
	cfg    *config
	stdout io.Writer
	log    *zap.Logger

	mu   sync.Mutex
	errs error
}

func newBatch(cfg *config, stdout io.Writer, log *zap.Logger) *batch {
	return &batch{cfg: cfg, stdout: stdout, log: log}
}

// run converts every input with at most cfg.jobs conversions in flight.
// Artifacts bound for stdout are framed as documents of one stream, in
// completion order.
// Without keep-going the first failure cancels inputs that have not
// started. With it every input is attempted and the failures are combined.
func (b *batch) run(ctx context.Context) error {
	if b.cfg.outDir != "" {
		if err := os.MkdirAll(b.cfg.outDir, 0o755); err != nil {
			return errors.IO(errors.PhaseWrite, b.cfg.outDir, err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.jobs)

	for _, input := range b.cfg.inputs {
		input := input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := b.convert(input)
			if err == nil {
				return nil
			}
			b.log.Error("conversion failed", zap.String("input", input), zap.Error(err))
			if !b.cfg.keepGoing {
				return err
			}
			b.mu.Lock()
			b.errs = multierr.Append(b.errs, err)
			b.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return b.errs
}

func (b *batch) convert(input string) error {
	a, err := ospv.ConvertFile(input)
	if err != nil {
		return err
	}

	out := b.cfg.outputPath(input)
	if out != "" {
		if err := ospv.WriteArtifact(out, a, b.cfg.options()); err != nil {
			return err
		}
		b.log.Info("converted",
			zap.String("input", input),
			zap.String("output", out),
			zap.Int("types", len(a.Types)),
			zap.Int("entries", len(a.Entries)),
		)
		return nil
	}

	text, err := codec.Render(a, b.cfg.options())
	if err != nil {
		return err
	}
	text = codec.Document(text, b.cfg.format)

	b.mu.Lock()
	defer b.mu.Unlock()
	n, err := b.stdout.Write(text)
	if err != nil {
		return errors.IO(errors.PhaseWrite, "stdout", err)
	}
	if n != len(text) {
		return errors.ShortWrite("stdout", n, len(text))
	}
	return nil
}
