// ABOUTME: CLI flag parsing using stdlib flag package; the image path may precede flags
// ABOUTME: Only flags given explicitly become config overrides

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/im2as-go/internal/config"
	"github.com/mauromedda/im2as-go/pkg/tui/image"
)

type cliArgs struct {
	imgPath    string
	ramp       string
	width      int
	fit        bool
	contrast   float64
	pixelated  bool
	filter     image.Filter
	drop       string
	color      image.ColorPolicy
	autoOrient bool
	configPath string
	verbose    bool
	version    bool

	// set holds the names of flags present on the command line.
	set map[string]bool
}

var errUsage = errors.New("usage")

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	args := cliArgs{
		width:    config.DefaultWidth,
		contrast: config.DefaultContrast,
		filter:   config.DefaultFilter,
		color:    config.DefaultColor,
		set:      make(map[string]bool),
	}

	fs := flag.NewFlagSet("im2as", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: im2as [flags] <img_path>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&args.ramp, "ramp", config.DefaultRamp, "Character ramp from black to white pixels")
	fs.IntVar(&args.width, "width", config.DefaultWidth, "Width in characters of the printed image")
	fs.BoolVar(&args.fit, "fit", false, "Use the terminal width of stdout instead of --width")
	fs.Float64Var(&args.contrast, "contrast", config.DefaultContrast, "Contrast adjustment in percent (negative lowers it)")
	fs.BoolVar(&args.pixelated, "pixelated", false, "Print each pixel as a colored full block (U+2588)")
	fs.BoolVar(&args.pixelated, "p", false, "Alias for --pixelated")
	fs.Var(&args.filter, "filter", "Resize kernel: linear, nearest, gaussian")
	fs.StringVar(&args.drop, "drop", "", "Blank out pixels whose ramp character is in DROP")
	fs.Var(&args.color, "color", "Color output: always, auto, never")
	fs.BoolVar(&args.autoOrient, "auto-orient", false, "Apply EXIF orientation before resizing")
	fs.StringVar(&args.configPath, "config", "", "YAML file with default settings")
	fs.BoolVar(&args.verbose, "verbose", false, "Debug logging on stderr")
	fs.BoolVar(&args.verbose, "v", false, "Alias for --verbose")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	// flag stops at the first positional argument; resume after it so that
	// "im2as img.png --width 40" works. After a "--" terminator everything
	// is positional.
	var positional []string
	rest := argv
	for {
		if err := fs.Parse(rest); err != nil {
			return cliArgs{}, err
		}
		consumed := rest[:len(rest)-len(fs.Args())]
		rest = fs.Args()
		if endsWithTerminator(fs, consumed) {
			positional = append(positional, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })

	if args.version {
		return args, nil
	}
	switch len(positional) {
	case 0:
		fs.Usage()
		return cliArgs{}, fmt.Errorf("%w: missing image path", errUsage)
	case 1:
		args.imgPath = positional[0]
	default:
		return cliArgs{}, fmt.Errorf("%w: expected one image path, got %d", errUsage, len(positional))
	}
	return args, nil
}

// endsWithTerminator reports whether the last argument flag consumed was a
// bare "--" rather than the value of a preceding flag such as "--ramp --".
func endsWithTerminator(fs *flag.FlagSet, consumed []string) bool {
	n := len(consumed)
	if n == 0 || consumed[n-1] != "--" {
		return false
	}
	if n < 2 {
		return true
	}
	name := strings.TrimLeft(consumed[n-2], "-")
	if !strings.HasPrefix(consumed[n-2], "-") || name == "" || strings.Contains(name, "=") {
		return true
	}
	f := fs.Lookup(name)
	if f == nil {
		return true
	}
	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return true
	}
	return false
}

// overrides returns a config layer holding only the flags given explicitly.
func (a cliArgs) overrides() *config.Settings {
	s := &config.Settings{}
	if a.set["ramp"] {
		s.Ramp = config.Ptr(a.ramp)
	}
	if a.set["width"] {
		s.Width = config.Ptr(a.width)
	}
	if a.set["contrast"] {
		s.Contrast = config.Ptr(a.contrast)
	}
	if a.set["pixelated"] || a.set["p"] {
		s.Pixelated = config.Ptr(a.pixelated)
	}
	if a.set["filter"] {
		s.Filter = config.Ptr(a.filter)
	}
	if a.set["drop"] {
		s.Drop = config.Ptr(a.drop)
	}
	if a.set["color"] {
		s.Color = config.Ptr(a.color)
	}
	if a.set["auto-orient"] {
		s.AutoOrient = config.Ptr(a.autoOrient)
	}
	if a.set["verbose"] || a.set["v"] {
		s.Verbose = config.Ptr(a.verbose)
	}
	return s
}
