// Package halfblock prints images to a terminal using half block characters.
// Every terminal row carries two rows of pixels: the top pixel is drawn as the
// cell background and the bottom pixel as the foreground of a ▄ glyph.
package halfblock

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/exp/slog"
	"golang.org/x/term"
)

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

type Options struct {
	// Output receives the image. Defaults to os.Stdout. Writing to a closed
	// pipe on stdout raises SIGPIPE and kills the process unless the
	// program ignores the signal with signal.Ignore(syscall.SIGPIPE)
	Output io.Writer
	// Cursor is used to keep the cursor below everything printed when a
	// negative Y offset moved it up. When nil and Output is a terminal,
	// the controlling terminal is queried. Otherwise no correction is
	// made
	Cursor CursorReporter
	// Logger is an optional slog.Logger that halfblock will log to.
	// halfblock uses stdlib levels for logging
	Logger *slog.Logger
}

// Printer prints images. It holds no state between calls to Print
type Printer struct {
	out    io.Writer
	cursor CursorReporter
	log    *slog.Logger
}

func New(opts Options) *Printer {
	p := &Printer{
		out:    opts.Output,
		cursor: opts.Cursor,
		log:    opts.Logger,
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.log == nil {
		p.log = log
	}
	if p.cursor == nil && isTerminal(p.out) {
		p.cursor = TTYCursor{}
	}
	return p
}

// Print prints img to the terminal, placed according to cfg. Each row of
// terminal cells is flushed as soon as it is complete. If the reader of the
// output goes away, Print stops writing and returns nil
func Print(img image.Image, cfg Config) error {
	return New(Options{}).Print(img, cfg)
}

// Print prints img to the terminal, placed according to cfg. Each row of
// terminal cells is flushed as soon as it is complete. If the reader of the
// output goes away, Print stops writing and returns nil. A *ConfigError is
// returned before anything is written if cfg is invalid
func (p *Printer) Print(img image.Image, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w := newWriter(p.out, p.log)

	// The cursor is only sampled when a reporter is present, which New
	// arranges for interactive output only. Querying a pipe disturbs tools
	// like head(1)
	startRow := -1
	if !cfg.AbsoluteOffset && p.cursor != nil {
		_, row, err := p.cursor.CursorPosition()
		if err != nil {
			p.log.Debug("cursor position unavailable", "error", err)
		} else {
			startRow = row
		}
	}

	placeCursor(w, cfg)
	p.log.Debug("placed cursor",
		"absolute", cfg.AbsoluteOffset,
		"x", cfg.X,
		"y", cfg.Y,
	)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width > 0 && height > 0 {
		pr := newPairer(width)
	rows:
		for y := 0; y < height; y += 1 {
			for x := 0; x < width; x += 1 {
				px := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				if !pr.push(Resolve(px, y, x, cfg)) {
					continue
				}
				moveRight(w, cfg.X)
				renderRow(w, pr.cells, false)
				pr.reset()
				if err := w.Flush(); err != nil {
					return err
				}
				if w.closed {
					break rows
				}
			}
		}
		if !w.closed && pr.pending() {
			p.log.Debug("odd height, printing top only row", "height", height)
			moveRight(w, cfg.X)
			renderRow(w, pr.cells, true)
			pr.reset()
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if startRow >= 0 && !w.closed {
		_, row, err := p.cursor.CursorPosition()
		if err != nil {
			return fmt.Errorf("query cursor position: %w", err)
		}
		if startRow > row {
			p.log.Debug("restoring cursor", "from", row, "to", startRow)
		}
		restoreCursor(w, startRow, row)
	}
	return w.Flush()
}

func moveRight(w *writer, n uint16) {
	if n > 0 {
		w.Printf(cuf, n)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
