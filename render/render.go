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

// Package render draws label layouts onto pages.
//
// A [Target] receives simple drawing commands.  [PDF] writes the pages into
// a PDF file, [Recorder] keeps the commands in memory.
package render

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/labels/layout"
	"seehuhn.de/go/labels/metrics"
)

// A Target receives the drawing commands for a sequence of labels.
//
// Coordinates are in PDF points, relative to the lower left corner of the
// current page, with y pointing upwards.
type Target interface {
	// NewPage starts a new page of the given size.
	NewPage(c layout.Canvas) error

	// SetFont selects the font for subsequent calls to ShowText.
	SetFont(F metrics.Font, size float64) error

	// ShowText draws text with the start of the baseline at (x, y).
	ShowText(x, y float64, text string) error

	// Rule draws a straight line.
	Rule(from, to vec.Vec2) error
}

// Draw renders one label as a new page on t.
func Draw(t Target, res *layout.Result) error {
	err := t.NewPage(res.Canvas)
	if err != nil {
		return err
	}
	err = t.SetFont(res.Font, float64(res.FontSize))
	if err != nil {
		return err
	}
	for _, line := range res.Lines {
		if line.Text == "" {
			continue
		}
		err = t.ShowText(line.Pos.X, line.Pos.Y, line.Text)
		if err != nil {
			return err
		}
	}
	for _, rule := range res.Rules {
		err = t.Rule(rule.From, rule.To)
		if err != nil {
			return err
		}
	}
	return nil
}
