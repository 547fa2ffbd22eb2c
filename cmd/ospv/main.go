package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/ospv/convert"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	cfg, err := loadConfig(os.Args[1:], os.Getenv, tty, os.Stderr)
	if stderrors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.version {
		fmt.Println("ospv", version)
		return 0
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()
	convert.SetLogger(log)

	if cfg.interactive {
		if err := runInteractive(cfg.inputs[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newBatch(cfg, os.Stdout, log).run(ctx); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", e)
		}
		return 1
	}
	return 0
}

// newLogger returns a development logger for -v and a production logger at
// the configured level otherwise. Both write to stderr.
func newLogger(cfg *config) (*zap.Logger, error) {
	if cfg.verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.logLevel)
	return zc.Build()
}
