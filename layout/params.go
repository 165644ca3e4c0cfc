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
	"fmt"
	"math"
)

// Params holds the spacing constants used by the layout engine.
// All lengths are in PDF points.
type Params struct {
	// Margin is subtracted from both the width and the height of the
	// canvas before checking whether text fits.  It is the total over both
	// sides, not the margin per side.
	Margin float64

	// LineSpacing is the gap between adjacent lines.
	LineSpacing float64

	// SectionGap is the vertical space between two sections.  The divider
	// rule is drawn in the middle of this gap.
	SectionGap float64

	// DividerInset is the distance between the ends of a divider rule and
	// the left and right edges of the canvas.
	DividerInset float64

	// Adjustment is subtracted from the largest fitting font size, to leave
	// some room for printer calibration errors.
	Adjustment int
}

// DefaultParams returns the default spacing constants.
func DefaultParams() *Params {
	return &Params{
		Margin:       4,
		LineSpacing:  2,
		SectionGap:   2,
		DividerInset: 2,
		Adjustment:   2,
	}
}

// Validate checks that all lengths are finite and non-negative.
func (p *Params) Validate() error {
	lengths := []struct {
		name string
		val  float64
	}{
		{"margin", p.Margin},
		{"line spacing", p.LineSpacing},
		{"section gap", p.SectionGap},
		{"divider inset", p.DividerInset},
	}
	for _, l := range lengths {
		if l.val < 0 || math.IsNaN(l.val) || math.IsInf(l.val, 0) {
			return fmt.Errorf("layout: invalid %s %g", l.name, l.val)
		}
	}
	if p.Adjustment < 0 {
		return fmt.Errorf("layout: invalid size adjustment %d", p.Adjustment)
	}
	return nil
}
