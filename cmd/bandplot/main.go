// Command bandplot draws band structure diagrams described by a TOML file.
//
// Usage:
//
//	bandplot [-o out.png] [-v] figure.toml
//
// A figure file looks like
//
//	title = "Slab"
//	rows = 1
//	width = "8in"
//	height = "5in"
//
//	[[subplot]]
//	title = "TE"
//	bands = "te_freqs.csv"
//	kvectors = "te_k.csv"
//	correct_x = true
//	crop = "auto"            # or "none", 0.6, [0.1, 0.6]
//	ticks = [{pos = 0, label = "Γ"}, {pos = 10, label = "X"}]
//	light_cone = {index = 1.0, fill = true}
//
//	[[subplot.gap]]
//	from = 0.3
//	to = 0.4
//	light_line = true
//
//	[[subplot.continuum]]
//	file = "projected.csv"
//	prevent_overlap = true
//
// Data files are numbers separated by commas, semicolons or white space,
// one row per k-vector. K-vector files have the four columns kx, ky, kz
// and |k|.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

func main() {
	out := flag.String("o", "bands.png", "output `file`, its extension selects the format")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bandplot [flags] figure.toml\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Arg(0), *out, logger); err != nil {
		logger.Error("bandplot failed", "err", err)
		os.Exit(1)
	}
}

func run(config, out string, logger *slog.Logger) error {
	cfg, err := LoadConfig(config)
	if err != nil {
		return err
	}
	w, h, err := cfg.Size()
	if err != nil {
		return err
	}
	fig, err := cfg.Figure(filepath.Dir(config), logger)
	if err != nil {
		return err
	}
	if err := fig.Save(w, h, out); err != nil {
		return err
	}
	logger.Info("figure written", "file", out, "subplots", len(fig.Subplots))
	return nil
}
