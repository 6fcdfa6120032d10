// halfblock prints images to the terminal using half block characters
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~rockorager/halfblock"
	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
)

func main() {
	ignoreBrokenPipe()
	opts, err := parseArgs(os.Args[1:], os.Stderr, os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "halfblock: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.verbose {
		handler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05.000",
		})
		log = slog.New(handler)
	}

	p := halfblock.New(halfblock.Options{
		Logger: log,
	})
	for _, name := range opts.files {
		if err := show(p, name, opts, log); err != nil {
			fmt.Fprintf(os.Stderr, "halfblock: %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

// show decodes, fits and prints one image
func show(p *halfblock.Printer, name string, opts *options, log *slog.Logger) error {
	img, format, err := decodeFile(name)
	if err != nil {
		return err
	}
	maxW, maxH := terminalBox(opts.cfg)
	img = fit(img, fitBox{
		maxWidth:  maxW,
		maxHeight: maxH,
		width:     opts.width / halfblock.GlyphWidth(),
		height:    opts.height * 2,
	})
	cols, rows := halfblock.Footprint(img.Bounds().Dx(), img.Bounds().Dy(), opts.cfg)
	log.Debug("printing image",
		"file", name,
		"format", format,
		"cols", cols,
		"rows", rows,
	)
	return p.Print(img, opts.cfg)
}
