// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

// Command dcexpand expands compressed DiskCopy-era HFS images.
//
//	dcexpand [-o out] [-outdir dir] [-j N] [-zstd] [-v] image...
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/adc/hfsimage"
)

const expandedSuffix = ".expanded"

var errUsage = errors.New("usage")

type config struct {
	output  string
	outDir  string
	jobs    int
	zstd    bool
	verbose bool
	inputs  []string
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, cfg.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("expand failed", slog.Any("error", err))
		stop()
		os.Exit(1) //nolint:gocritic // exitAfterDefer: stop is called explicitly
	}
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("dcexpand", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: dcexpand [flags] image...")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.output, "o", "", "output path (single input only)")
	fs.StringVar(&cfg.outDir, "outdir", "", "output directory (default: next to each input)")
	fs.IntVar(&cfg.jobs, "j", runtime.NumCPU(), "images expanded concurrently")
	fs.BoolVar(&cfg.zstd, "zstd", false, "compress expanded images with zstd")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg.inputs = fs.Args()
	if len(cfg.inputs) == 0 {
		return config{}, fmt.Errorf("%w: no input images", errUsage)
	}
	if cfg.output != "" && len(cfg.inputs) > 1 {
		return config{}, fmt.Errorf("%w: -o needs exactly one input", errUsage)
	}
	if cfg.output != "" && cfg.outDir != "" {
		return config{}, fmt.Errorf("%w: -o and -outdir are exclusive", errUsage)
	}
	cfg.jobs = max(cfg.jobs, 1)

	if _, err := resolveOutputs(cfg); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// outputPath returns where the expansion of input is written.
func outputPath(cfg config, input string) string {
	if cfg.output != "" {
		return cfg.output
	}

	dir := cfg.outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	name := filepath.Base(input) + expandedSuffix
	if cfg.zstd {
		name += ".zst"
	}

	return filepath.Join(dir, name)
}

// resolveOutputs returns the output path of every input. Two inputs sharing an
// output, or an output that overwrites an input, is a usage error.
func resolveOutputs(cfg config) ([]string, error) {
	inputs := make(map[string]string, len(cfg.inputs))
	for _, input := range cfg.inputs {
		inputs[absPath(input)] = input
	}

	outputs := make([]string, len(cfg.inputs))
	seen := make(map[string]string, len(cfg.inputs))
	for i, input := range cfg.inputs {
		output := outputPath(cfg, input)
		key := absPath(output)

		if src, ok := inputs[key]; ok {
			return nil, fmt.Errorf("%w: output %s would overwrite input %s", errUsage, output, src)
		}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s both expand to %s", errUsage, prev, input, output)
		}

		seen[key] = input
		outputs[i] = output
	}

	return outputs, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}

	return filepath.Clean(path)
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	outputs, err := resolveOutputs(cfg)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)

	for i, input := range cfg.inputs {
		output := outputs[i]
		g.Go(func() error {
			if err := expandFile(ctx, input, output, cfg.zstd, logger.With(slog.String("image", input))); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// expandFile expands input into output. A partial output is removed on failure.
func expandFile(ctx context.Context, input, output string, compress bool, logger *slog.Logger) (err error) {
	src, err := os.Open(input)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	dst, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = dst.Close()
			if rmErr := os.Remove(output); rmErr != nil {
				logger.Warn("remove partial output", slog.String("output", output), slog.Any("error", rmErr))
			}
		}
	}()

	bw := bufio.NewWriterSize(dst, 1<<20)
	var w io.Writer = bw

	var enc *zstd.Encoder
	if compress {
		enc, err = zstd.NewWriter(bw, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return err
		}
		w = enc
	}

	res, err := hfsimage.Expand(ctx, src, info.Size(), w, hfsimage.WithLogger(logger))
	if err != nil {
		if enc != nil {
			_ = enc.Close()
		}
		return err
	}

	if enc != nil {
		if err = enc.Close(); err != nil {
			return err
		}
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = dst.Close(); err != nil {
		return err
	}

	logger.Info("image expanded",
		slog.String("output", output),
		slog.Int64("bytes", res.Written),
		slog.Int64("data_start", res.Layout.DataStart),
		slog.Int64("compressed", res.Layout.CompressedSize()),
		slog.String("digest", res.Digest.String()))

	return nil
}
