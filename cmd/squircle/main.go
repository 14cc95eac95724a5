// Command squircle draws a superellipse rectangle and writes it as a PNG or
// SVG file.
//
// The shape can be described with flags, or with a TOML or YAML file passed
// via -config. Flags that are set explicitly take precedence over the file.
//
//	squircle -width 512 -height 256 -radius 96 -exponent 5 -fill '#3366ff' -o button.png
//	squircle -config shape.toml -format svg -o - > shape.svg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/term"

	"honnef.co/go/superellipse/render"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("squircle failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := defaultConfig()
	fcfg := cfg

	fs := flag.NewFlagSet("squircle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML or YAML file describing the shape")
		output     = fs.String("o", "squircle.png", "output file, or - for stdout")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)
	fs.IntVar(&fcfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&fcfg.Height, "height", cfg.Height, "image height")
	fs.Float64Var(&fcfg.Padding, "padding", cfg.Padding, "space between the image's edges and the shape")
	fs.Float64Var(&fcfg.Radius, "radius", cfg.Radius, "corner radius")
	fs.Float64Var(&fcfg.Exponent, "exponent", cfg.Exponent, "corner exponent; 2 is elliptical, 4 is a typical squircle")
	fs.Float64Var(&fcfg.Inset, "inset", cfg.Inset, "inset applied to the shape; negative values grow it")
	fs.StringVar(&fcfg.Fill, "fill", cfg.Fill, "fill color as hex")
	fs.StringVar(&fcfg.Background, "background", cfg.Background, "background color as hex; transparent if empty")
	fs.StringVar(&fcfg.Backend, "backend", cfg.Backend, "rasterizer: gg or vector")
	fs.StringVar(&fcfg.Format, "format", cfg.Format, "output format: png or svg; derived from -o if empty")
	fs.IntVar(&fcfg.Precision, "precision", cfg.Precision, "decimal places of SVG coordinates")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)
	if *verbose {
		gg.SetLogger(logger)
	}

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", *configPath)
	}
	overrides := map[string]func(){
		"width":      func() { cfg.Width = fcfg.Width },
		"height":     func() { cfg.Height = fcfg.Height },
		"padding":    func() { cfg.Padding = fcfg.Padding },
		"radius":     func() { cfg.Radius = fcfg.Radius },
		"exponent":   func() { cfg.Exponent = fcfg.Exponent },
		"inset":      func() { cfg.Inset = fcfg.Inset },
		"fill":       func() { cfg.Fill = fcfg.Fill },
		"background": func() { cfg.Background = fcfg.Background },
		"backend":    func() { cfg.Backend = fcfg.Backend },
		"format":     func() { cfg.Format = fcfg.Format },
		"precision":  func() { cfg.Precision = fcfg.Precision },
	}
	fs.Visit(func(f *flag.Flag) {
		if fn, ok := overrides[f.Name]; ok {
			fn()
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}

	opts, err := cfg.renderOptions()
	if err != nil {
		return err
	}
	format := cfg.Format
	if format == "" {
		format = "png"
		if strings.EqualFold(filepath.Ext(*output), ".svg") {
			format = "svg"
		}
	}
	shape := cfg.Shape()
	logger.Debug("shape", "shape", shape)

	w, closeOutput, err := openOutput(*output, format, stdout)
	if err != nil {
		return err
	}
	err = write(ctx, w, shape, format, render.SVGOptions{Options: opts, MaxPrecision: cfg.Precision})
	if cerr := closeOutput(); err == nil && cerr != nil {
		err = fmt.Errorf("couldn't write %s: %w", *output, cerr)
	}
	if err != nil {
		if *output != pipeName {
			// Don't leave a truncated image behind.
			if rerr := os.Remove(*output); rerr != nil {
				logger.Warn("couldn't remove incomplete output", "path", *output, "err", rerr)
			}
		}
		return err
	}
	logger.Info("wrote image", "path", *output, "format", format, "width", cfg.Width, "height", cfg.Height)
	return nil
}

func (cfg Config) renderOptions() (render.Options, error) {
	backend, err := render.ParseBackend(cfg.Backend)
	if err != nil {
		return render.Options{}, err
	}
	fill, err := parseColor(cfg.Fill)
	if err != nil {
		return render.Options{}, fmt.Errorf("fill: %w", err)
	}
	bg, err := parseColor(cfg.Background)
	if err != nil {
		return render.Options{}, fmt.Errorf("background: %w", err)
	}
	return render.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fill:       fill,
		Background: bg,
		Backend:    backend,
	}, nil
}

func write(ctx context.Context, w io.Writer, shape render.Outline, format string, opts render.SVGOptions) error {
	if format == "svg" {
		return render.WriteSVG(w, shape, opts)
	}
	img, err := render.Image(ctx, shape, opts.Options)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("couldn't encode PNG: %w", err)
	}
	return nil
}

// openOutput opens the destination. Binary output is refused if stdout is a
// terminal.
func openOutput(path, format string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == pipeName {
		if f, ok := stdout.(*os.File); ok && format == "png" && term.IsTerminal(int(f.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for PNG output")
		}
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, f.Close, nil
}
