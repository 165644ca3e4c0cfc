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

// Package metrics measures text set in the built-in label fonts.
//
// The six supported fonts are a subset of the 14 standard PDF fonts.  PDF
// viewers and printers are required to provide these fonts, so labels never
// need to embed font data.  Widths are given in PDF text space units, i.e.
// in points for a font size given in points.
//
// Use [Measure] for one-off measurements:
//
//	w, err := metrics.Measure("HELLO", metrics.Helvetica, 12)
//
// Code which measures many strings in the same font should obtain a [Face]
// once, using [Font.Widths], and call its Width method.
package metrics

import (
	"errors"
	"strconv"
	"strings"
)

// Font identifies one of the built-in label fonts.
type Font string

// The built-in label fonts.
const (
	Helvetica     Font = "Helvetica"
	HelveticaBold Font = "Helvetica-Bold"
	TimesRoman    Font = "Times-Roman"
	TimesBold     Font = "Times-Bold"
	Courier       Font = "Courier"
	CourierBold   Font = "Courier-Bold"
)

// All lists the built-in label fonts.
var All = []Font{
	Helvetica,
	HelveticaBold,
	TimesRoman,
	TimesBold,
	Courier,
	CourierBold,
}

// IsValid reports whether f is one of the built-in fonts.
func (f Font) IsValid() bool {
	for _, g := range All {
		if f == g {
			return true
		}
	}
	return false
}

// Check returns an [*InvalidFontError] if f is not one of the built-in
// fonts.
func (f Font) Check() error {
	if !f.IsValid() {
		return &InvalidFontError{Font: f}
	}
	return nil
}

// Family returns the font family name, e.g. "Helvetica" for
// [HelveticaBold].
func (f Font) Family() string {
	family, _, _ := strings.Cut(string(f), "-")
	return family
}

// IsBold reports whether f is the bold member of its family.
func (f Font) IsBold() bool {
	return strings.HasSuffix(string(f), "-Bold")
}

// ParseFont returns the built-in font with the given name.
// Names are case sensitive and must match one of the constants in this
// package exactly.
func ParseFont(name string) (Font, error) {
	f := Font(name)
	if err := f.Check(); err != nil {
		return "", err
	}
	return f, nil
}

// ErrInvalidFont is matched by all [*InvalidFontError] values.
var ErrInvalidFont = errors.New("invalid font")

// InvalidFontError is returned when a font name does not identify one of
// the built-in fonts.
type InvalidFontError struct {
	Font Font
}

func (err *InvalidFontError) Error() string {
	return "metrics: unsupported font " + strconv.Quote(string(err.Font))
}

// Is allows errors.Is(err, ErrInvalidFont) to match.
func (err *InvalidFontError) Is(target error) bool {
	return target == ErrInvalidFont
}
