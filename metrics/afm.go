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
	"io"
	"os"

	"seehuhn.de/go/pdf/font/pdfenc"
	"seehuhn.de/go/postscript/afm"
)

// ReadAFM reads a width table from an Adobe Font Metrics file.
//
// This is useful when the printer replaces one of the built-in fonts with a
// substitute whose glyph widths differ from the Adobe metrics.  Glyphs are
// looked up by their WinAnsi glyph name.  Codes without a glyph in the file
// get the width of ".notdef", or zero if the file has no ".notdef" glyph.
func ReadAFM(r io.Reader) (*Widths, error) {
	info, err := afm.Read(r)
	if err != nil {
		return nil, fmt.Errorf("metrics: reading AFM: %w", err)
	}

	var missing float64
	if g, ok := info.Glyphs[".notdef"]; ok {
		missing = float64(g.WidthX)
	}

	ww := &Widths{Name: info.FontName}
	for c, name := range pdfenc.WinAnsi.Encoding {
		if c == 0 {
			continue
		}
		ww.W[c] = missing
		if name == "" || name == ".notdef" {
			continue
		}
		if g, ok := info.Glyphs[name]; ok {
			ww.W[c] = max(float64(g.WidthX), 0)
		}
	}
	return ww, nil
}

// LoadAFM reads a width table from the named AFM file.
func LoadAFM(fname string) (*Widths, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return ReadAFM(fd)
}
