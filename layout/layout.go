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

// Package layout fits the text of a label into a fixed rectangle.
//
// The engine first determines the largest integer font size at which all
// lines fit into the canvas, less a small margin.  The drawing size is
// derived from this by subtracting a safety adjustment and adding a user
// override.  At the drawing size the lines are centred horizontally, and
// the block of lines is centred vertically.
//
// There are three kinds of text, see [Text], [Paragraphs] and [Sections].
//
// Coordinates follow the PDF convention: the origin is the lower left
// corner of the canvas and y grows upwards.  The y coordinate of a line is
// the position of its baseline.
package layout

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/labels/metrics"
)

// Result describes the layout of one label.
type Result struct {
	Canvas Canvas
	Font   metrics.Font
	Mode   Mode

	// RawSize is the largest font size at which the text fits.
	RawSize int

	// FontSize is the size used for drawing, after the safety adjustment
	// and the user override have been applied.
	FontSize int

	// Lines lists the physical lines, top line first.
	Lines []Line

	// Rules lists the divider rules between sections, top rule first.
	// This is empty except in [Sectioned] mode.
	Rules []Rule
}

// Line is a single line of text, placed on the canvas.
type Line struct {
	Text string

	// Pos is the start of the baseline.
	Pos vec.Vec2

	// Section is the index of the section the line belongs to.
	// For freeform and wrapped text this is always 0.
	Section int
}

// Rule is a horizontal divider line.
type Rule struct {
	From, To vec.Vec2
}

// Layout computes the layout of b on the canvas c.
//
// The override is added to the font size after the safety adjustment.
// Typical values are between -5 and +5.
func (e *Engine) Layout(c Canvas, b Block, override int) (*Result, error) {
	raw, err := e.MaxFontSize(c, b)
	if err != nil {
		return nil, err
	}
	size := EffectiveSize(raw, e.Params.Adjustment, override)

	res := &Result{
		Canvas:   c,
		Font:     e.Font,
		Mode:     b.Mode(),
		RawSize:  raw,
		FontSize: size,
	}

	s := float64(size)
	sections, _, total := e.extent(c, b, s)
	startY := (c.Height - total) / 2

	if res.Mode != Sectioned {
		lines := sections[0]
		n := len(lines)
		res.Lines = make([]Line, n)
		for i, text := range lines {
			res.Lines[i] = Line{
				Text: text,
				Pos: vec.Vec2{
					X: e.centre(c, text, s),
					Y: startY + float64(n-i-1)*(s+e.Params.LineSpacing),
				},
			}
		}
		return res, nil
	}

	// Walk upwards from the bottom of the text block, starting with the
	// last word of the last section.
	count := 0
	for _, words := range sections {
		count += len(words)
	}
	res.Lines = make([]Line, count)
	y := startY
	for k := len(sections) - 1; k >= 0; k-- {
		words := sections[k]
		for j := len(words) - 1; j >= 0; j-- {
			count--
			res.Lines[count] = Line{
				Text:    words[j],
				Pos:     vec.Vec2{X: e.centre(c, words[j], s), Y: y},
				Section: k,
			}
			y += s
			if j > 0 {
				y += e.Params.LineSpacing
			}
		}
		if k > 0 {
			ruleY := y + e.Params.SectionGap/2
			res.Rules = append(res.Rules, Rule{
				From: vec.Vec2{X: e.Params.DividerInset, Y: ruleY},
				To:   vec.Vec2{X: c.Width - e.Params.DividerInset, Y: ruleY},
			})
			y += e.Params.SectionGap
		}
	}
	slices.Reverse(res.Rules)

	return res, nil
}

// centre returns the x coordinate which centres text horizontally.
func (e *Engine) centre(c Canvas, text string, size float64) float64 {
	return (c.Width - e.Face.Width(text, size)) / 2
}
