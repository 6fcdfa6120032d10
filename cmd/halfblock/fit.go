package main

import (
	"image"
	"os"

	"git.sr.ht/~rockorager/halfblock"
	"git.sr.ht/~rockorager/halfblock/term"
	"golang.org/x/image/draw"
	xterm "golang.org/x/term"
)

// fitBox constrains the pixel size of a printed image. Zero values are
// unconstrained
type fitBox struct {
	// maxWidth and maxHeight bound the automatic size. The image is never
	// upscaled to reach them
	maxWidth  int
	maxHeight int
	// width and height are requested by the user and win over the
	// automatic size. If only one is given the other keeps the aspect
	// ratio
	width  int
	height int
}

// fitSize computes the pixel size an image of w x h is scaled to
func fitSize(w int, h int, box fitBox) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	switch {
	case box.width > 0 && box.height > 0:
		return box.width, box.height
	case box.width > 0:
		return box.width, atLeastOne(h * box.width / w)
	case box.height > 0:
		return atLeastOne(w * box.height / h), box.height
	}
	sfX := 1.0
	if box.maxWidth > 0 && w > box.maxWidth {
		sfX = float64(box.maxWidth) / float64(w)
	}
	sfY := 1.0
	if box.maxHeight > 0 && h > box.maxHeight {
		sfY = float64(box.maxHeight) / float64(h)
	}
	sf := sfX
	if sfY < sf {
		sf = sfY
	}
	if sf == 1.0 {
		return w, h
	}
	return atLeastOne(int(sf * float64(w))), atLeastOne(int(sf * float64(h)))
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// fit scales img to the size computed by fitSize. If the image already has
// that size, it is returned as is
func fit(img image.Image, box fitBox) image.Image {
	b := img.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), box)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}

// terminalBox returns the largest pixel size that fits in the terminal
// after the offsets in cfg. The last row is left for the prompt. Returns
// 0, 0 when the size is unknown
func terminalBox(cfg halfblock.Config) (int, int) {
	cols, rows, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		pty, err := term.OpenPty()
		if err != nil {
			return 0, 0
		}
		defer pty.Close()
		size, err := pty.Size()
		if err != nil {
			return 0, 0
		}
		cols, rows = size.Col, size.Row
	}
	return boxFor(cols, rows, cfg)
}

func boxFor(cols int, rows int, cfg halfblock.Config) (int, int) {
	cols -= int(cfg.X)
	if cfg.AbsoluteOffset {
		rows -= int(cfg.Y)
	}
	rows -= 1
	return atLeastOne(cols / halfblock.GlyphWidth()), atLeastOne(rows) * 2
}
