// Command crepitus synthesizes a noisy acoustic signal with an embedded
// narrow-band tone, isolates the band with a Butterworth band-pass filter and
// prints the crepitus index.
//
// Usage:
//
//	crepitus [flags]
//
// Standard output carries exactly one line, "Detection Score: <value>%",
// printed before any plot is written. The comparison plot then opens in the
// system viewer unless -show=false or -plot "" is given. Logs go to standard
// error.
//
// Examples:
//
//	crepitus
//	crepitus -seed 7 -plot out.png
//	crepitus -show=false -input recording.wav -psd psd.png -log-level debug
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-crepitus/internal/logging"
	"github.com/cwbudde/algo-crepitus/internal/pipeline"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer, opts ...pipeline.Option) int {
	cfg := pipeline.DefaultConfig()

	fs := flag.NewFlagSet("crepitus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	fs.StringVar(&cfg.PlotPath, "plot", cfg.PlotPath, "comparison plot PNG path (empty disables)")
	fs.StringVar(&cfg.PSDPath, "psd", "", "filtered-signal PSD plot PNG path")
	fs.BoolVar(&cfg.Show, "show", cfg.Show, "open the comparison plot in the system viewer")
	fs.IntVar(&cfg.PlotWindow, "window", cfg.PlotWindow, "samples drawn per panel")
	fs.StringVar(&cfg.InputPath, "input", "", "mono WAV recording to analyze instead of the synthesized signal")
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: crepitus [flags]\n\n")
		fmt.Fprintf(stderr, "Scores the %g-%g Hz band of a noisy signal and prints the detection score.\n\n",
			cfg.LowHz, cfg.HighHz)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", fs.Args())
		return 1
	}

	logger, err := logging.NewWriter(*level, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	runner, err := pipeline.NewRunner(cfg, logger, opts...)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 1
	}

	res, err := runner.Score()
	if err != nil {
		logger.Error("detection failed", zap.Error(err))
		return 1
	}

	if _, err := fmt.Fprintf(stdout, "Detection Score: %.4f%%\n", res.Score); err != nil {
		logger.Error("write score", zap.Error(err))
		return 1
	}

	if err := runner.Render(res); err != nil {
		logger.Error("render failed", zap.Error(err))
		return 1
	}
	return 0
}
