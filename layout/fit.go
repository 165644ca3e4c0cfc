// seehuhn.de/go/labels - print auto-sized text labels as PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"seehuhn.de/go/labels/metrics"
)

// An Engine lays out label text in a fixed font.
//
// An Engine has no mutable state and can be used concurrently from
// several goroutines.
type Engine struct {
	Font   metrics.Font
	Face   metrics.Face
	Params *Params
}

// New returns an engine for one of the built-in fonts.
// If p is nil, [DefaultParams] are used.
func New(F metrics.Font, p *Params) (*Engine, error) {
	ww, err := F.Widths()
	if err != nil {
		return nil, err
	}
	return NewWithFace(F, ww, p)
}

// NewWithFace returns an engine which measures text using face, but labels
// the result with the built-in font F.  This is used when the glyph widths
// of the printer's version of F differ from the standard metrics.
func NewWithFace(F metrics.Font, face metrics.Face, p *Params) (*Engine, error) {
	if err := F.Check(); err != nil {
		return nil, err
	}
	if p == nil {
		p = DefaultParams()
	} else if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Engine{Font: F, Face: face, Params: p}, nil
}

// extent returns the physical lines of b at the given size, together with
// the width of the widest line and the total height of the text block.
func (e *Engine) extent(c Canvas, b Block, size float64) ([][]string, float64, float64) {
	sections := b.sections(e.Face, size, c.Width-e.Params.Margin)

	var maxWidth float64
	for _, lines := range sections {
		for _, line := range lines {
			maxWidth = max(maxWidth, e.Face.Width(line, size))
		}
	}
	return sections, maxWidth, e.height(sections, size)
}

// height returns the total height of the given sections.
func (e *Engine) height(sections [][]string, size float64) float64 {
	ls := e.Params.LineSpacing
	var total float64
	for _, lines := range sections {
		n := float64(len(lines))
		total += n*size + (n-1)*ls
	}
	total += float64(len(sections)-1) * e.Params.SectionGap
	return total
}

// Fits reports whether the text of b, set at the given font size, fits
// into the canvas minus the margin.
func (e *Engine) Fits(c Canvas, b Block, size int) bool {
	_, width, height := e.extent(c, b, float64(size))
	return width <= c.Width-e.Params.Margin && height <= c.Height-e.Params.Margin
}

// MaxFontSize returns the largest integer font size at which b fits into
// the canvas.  If the text does not even fit at size 1, the result is 1.
//
// Sizes are tried in increasing order, starting at 1, and the result is one
// less than the first size which does not fit.  Every block has at least
// one line, so the text height grows with the size and the search stops
// once the size exceeds the canvas height.  Since the canvas is at most
// [MaxSize] points high, the scan takes at most MaxSize+1 steps.
func (e *Engine) MaxFontSize(c Canvas, b Block) (int, error) {
	if err := c.Check(); err != nil {
		return 0, err
	}
	size := 1
	for e.Fits(c, b, size) {
		size++
	}
	return max(size-1, 1), nil
}

// EffectiveSize returns the font size used for drawing, given the result
// of the size search, the safety adjustment and a user override.
// The result is at least 1.
func EffectiveSize(raw, adjustment, override int) int {
	return max(raw-adjustment+override, 1)
}

// Compute lays out b on the canvas c, using the built-in font F and the
// default parameters.  An invalid font is reported before the canvas is
// examined.
func Compute(c Canvas, F metrics.Font, b Block, override int) (*Result, error) {
	e, err := New(F, nil)
	if err != nil {
		return nil, err
	}
	return e.Layout(c, b, override)
}
