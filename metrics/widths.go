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

package metrics

import (
	"fmt"
	"sync"

	"codeberg.org/go-pdf/fpdf"
)

// A Face measures the width of text at a given font size.
//
// Implementations must be deterministic and the width must be a
// non-decreasing function of size.
type Face interface {
	Width(text string, size float64) float64
}

// Widths holds the advance widths of the 256 WinAnsi codes, in glyph space
// units (1/1000 of the font size).
//
// A Widths value is immutable and safe for concurrent use.
type Widths struct {
	Name string
	W    [256]float64
}

// Width returns the width of text set at the given size.
// Text is converted to WinAnsi using [Encode] before measuring.
func (ww *Widths) Width(text string, size float64) float64 {
	return ww.EncodedWidth(Encode(text), size)
}

// EncodedWidth returns the width of a string which is already WinAnsi
// encoded.
func (ww *Widths) EncodedWidth(s string, size float64) float64 {
	var total float64
	for i := 0; i < len(s); i++ {
		total += ww.W[s[i]]
	}
	return total * size / 1000
}

// Widths returns the width table for f.
// The tables are computed once and then shared.
func (f Font) Widths() (*Widths, error) {
	if err := f.Check(); err != nil {
		return nil, err
	}
	coreMu.Lock()
	defer coreMu.Unlock()

	if ww, ok := coreWidths[f]; ok {
		return ww, nil
	}
	ww, err := loadCore(f)
	if err != nil {
		return nil, err
	}
	coreWidths[f] = ww
	return ww, nil
}

// Measure returns the width of text set in font F at the given size.
func Measure(text string, F Font, size float64) (float64, error) {
	ww, err := F.Widths()
	if err != nil {
		return 0, err
	}
	return ww.Width(text, size), nil
}

var (
	coreMu     sync.Mutex
	coreWidths = make(map[Font]*Widths)
)

// loadCore reads the width table of a built-in font from the core font
// metrics shipped with fpdf.  At a font size of 1000pt the width of a single
// character equals its advance width in glyph space units.
func loadCore(f Font) (*Widths, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	style := ""
	if f.IsBold() {
		style = "B"
	}
	doc.SetFont(f.Family(), style, 1000)
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("metrics: loading %s: %w", f, err)
	}

	ww := &Widths{Name: string(f)}
	for c := 1; c < 256; c++ {
		ww.W[c] = doc.GetStringWidth(string([]byte{byte(c)}))
	}
	return ww, nil
}
