package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/ospv/codec"
)

// Environment variables read after .env is loaded. Flags override them.
const (
	envFormat   = "OSPV_FORMAT"
	envPretty   = "OSPV_PRETTY"
	envJobs     = "OSPV_JOBS"
	envOutDir   = "OSPV_OUT_DIR"
	envLogLevel = "OSPV_LOG_LEVEL"
)

type config struct {
	inputs      []string
	output      string
	outDir      string
	format      codec.Format
	pretty      bool
	jobs        int
	keepGoing   bool
	verbose     bool
	interactive bool
	version     bool
	logLevel    zapcore.Level
}

// loadConfig layers environment values under command-line flags. tty
// reports whether stdout is a terminal, which turns on pretty output when
// nothing else decides it.
func loadConfig(args []string, getenv func(string) string, tty bool, usage io.Writer) (*config, error) {
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }

	cfg := &config{
		outDir: env(envOutDir),
		pretty: tty || codec.DefaultOptions().Pretty,
		jobs:   runtime.NumCPU(),
	}

	formatName := env(envFormat)
	if v := env(envPretty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envPretty, err)
		}
		cfg.pretty = b
	}
	if v := env(envJobs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envJobs, err)
		}
		cfg.jobs = n
	}
	level := "warn"
	if v := env(envLogLevel); v != "" {
		level = v
	}

	fs := flag.NewFlagSet("ospv", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&cfg.output, "o", "", "Output file (single input only)")
	fs.StringVar(&cfg.outDir, "out-dir", cfg.outDir, "Directory for outputs, one per input")
	fs.StringVar(&formatName, "format", formatName, "Output format: json or yaml")
	fs.BoolVar(&cfg.pretty, "pretty", cfg.pretty, "Indented output")
	fs.IntVar(&cfg.jobs, "j", cfg.jobs, "Parallel conversions")
	fs.BoolVar(&cfg.keepGoing, "keep-going", false, "Convert remaining inputs after a failure")
	fs.BoolVar(&cfg.verbose, "v", false, "Debug logging")
	fs.BoolVar(&cfg.interactive, "i", false, "Browse the artifact in a TUI")
	fs.BoolVar(&cfg.version, "version", false, "Print version and exit")
	fs.StringVar(&level, "log-level", level, "Log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: ospv [flags] <module.spv>...")
		fmt.Fprintln(fs.Output(), "       ospv -i <module.spv|artifact.json>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.inputs = fs.Args()

	if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	switch {
	case formatName != "":
		f, err := codec.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
		cfg.format = f
	case cfg.output != "":
		cfg.format = codec.FormatFromPath(cfg.output)
	default:
		cfg.format = codec.FormatJSON
	}

	if cfg.version {
		return cfg, nil
	}
	return cfg, cfg.validate()
}

func (c *config) validate() error {
	switch {
	case len(c.inputs) == 0:
		return fmt.Errorf("no input files")
	case c.interactive && len(c.inputs) != 1:
		return fmt.Errorf("-i takes exactly one input")
	case c.output != "" && c.outDir != "":
		return fmt.Errorf("-o and -out-dir are mutually exclusive")
	case c.output != "" && len(c.inputs) > 1:
		return fmt.Errorf("-o requires a single input, got %d", len(c.inputs))
	case c.jobs < 1:
		return fmt.Errorf("-j must be at least 1, got %d", c.jobs)
	}

	if c.outDir != "" {
		written := make(map[string]string, len(c.inputs))
		for _, input := range c.inputs {
			out := c.outputPath(input)
			if prev, ok := written[out]; ok {
				return fmt.Errorf("%s and %s would both write %s", prev, input, out)
			}
			written[out] = input
		}
	}
	return nil
}

func (c *config) options() codec.Options {
	return codec.Options{Format: c.format, Pretty: c.pretty}
}

// outputPath returns where the artifact for input goes. An empty path means
// stdout.
func (c *config) outputPath(input string) string {
	switch {
	case c.output != "":
		return c.output
	case c.outDir != "":
		base := filepath.Base(input)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		return filepath.Join(c.outDir, base+c.format.Extension())
	default:
		return ""
	}
}
