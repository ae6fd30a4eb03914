// ABOUTME: CLI entry point for im2as: prints an image as colored text in the terminal
// ABOUTME: Parses flags, merges the optional config file, and runs the conversion pipeline

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mauromedda/im2as-go/internal/config"
	pilog "github.com/mauromedda/im2as-go/internal/log"
	"github.com/mauromedda/im2as-go/pkg/tui/image"
	"github.com/mauromedda/im2as-go/pkg/tui/terminal"
	"github.com/mauromedda/im2as-go/pkg/tui/width"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("im2as %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, image.ErrConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run resolves the configuration and renders args.imgPath to stdout.
func run(args cliArgs, stdout *os.File) error {
	if args.verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	fileLayer, err := config.LoadFile(args.configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Merge(fileLayer, args.overrides()).Resolve()
	if err != nil {
		return err
	}
	if cfg.Verbose {
		pilog.SetLevel(pilog.LevelDebug)
	}

	opts := cfg.Options
	if args.fit {
		w, err := terminalWidth(stdout)
		if err != nil {
			return err
		}
		opts.Width = w
	}
	warnIgnored(opts)

	profile := cfg.Color.Profile(stdout.Fd())
	pilog.Debug("run: path=%s width=%d contrast=%.1f filter=%s pixelated=%t color=%s",
		args.imgPath, opts.Width, opts.Contrast, opts.Filter, opts.Pixelated, cfg.Color)

	return image.Convert(terminal.Writer(stdout), profile, args.imgPath, opts)
}

// terminalWidth returns the column count of the terminal behind f.
func terminalWidth(f *os.File) (int, error) {
	w, _, err := terminal.Size(f)
	if err != nil {
		return 0, &image.ConfigError{Field: "fit", Reason: fmt.Sprintf("stdout is not a terminal: %v", err)}
	}
	if w < 1 {
		return 0, &image.ConfigError{Field: "fit", Reason: fmt.Sprintf("terminal reports width %d", w)}
	}
	return w, nil
}

// warnIgnored logs settings that are ignored or will misalign the output.
func warnIgnored(opts image.Options) {
	if opts.Pixelated {
		if opts.Drop != "" {
			pilog.Warn("--drop is ignored in pixelated mode")
		}
		return
	}
	ramp, err := image.NewRamp(opts.Ramp)
	if err != nil {
		return
	}
	// Cells counts grapheme clusters, so it also catches runes that join
	// into one cell even though each is a single cell on its own.
	wide := ramp.WideGlyphs()
	if cells := width.Cells(opts.Ramp); len(wide) > 0 || cells != ramp.Len() {
		pilog.Warn("ramp of %d characters spans %d terminal cells (misfits %q); rows will be misaligned",
			ramp.Len(), cells, string(wide))
	}
	if opts.Drop != "" && pilog.GetLevel() <= pilog.LevelDebug {
		var unused []string
		for _, r := range opts.Drop {
			if !strings.ContainsRune(opts.Ramp, r) {
				unused = append(unused, string(r))
			}
		}
		if len(unused) > 0 {
			pilog.Debug("drop characters %q are not in the ramp", strings.Join(unused, ""))
		}
	}
}
