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
	"strings"

	"seehuhn.de/go/labels/metrics"
)

// Mode describes how the text of a [Block] is arranged on the label.
type Mode int

// These are the supported layout modes.
const (
	// Freeform text is split into lines at newline characters.
	// Lines are never wrapped.
	Freeform Mode = iota

	// Wrapped text consists of logical lines, each of which is word-wrapped
	// to the width of the label.
	Wrapped

	// Sectioned text consists of groups of words, set one word per line.
	// Adjacent groups are separated by a horizontal rule.
	Sectioned
)

func (m Mode) String() string {
	switch m {
	case Freeform:
		return "freeform"
	case Wrapped:
		return "wrapped"
	case Sectioned:
		return "sectioned"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the name of a mode, as returned by [Mode.String],
// back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "freeform":
		return Freeform, nil
	case "wrapped":
		return Wrapped, nil
	case "sectioned":
		return Sectioned, nil
	}
	return 0, fmt.Errorf("layout: unknown mode %q", s)
}

// A Block is the text of one label.
// The concrete types are [Text], [Paragraphs] and [Sections].
type Block interface {
	Mode() Mode

	// sections returns the physical lines of the block at the given font
	// size, grouped into sections.  The result has at least one section,
	// and every section has at least one line.
	sections(face metrics.Face, size, maxWidth float64) [][]string
}

// Text is a block of freeform text.  Newline characters separate lines.
type Text string

// Mode implements the [Block] interface.
func (Text) Mode() Mode { return Freeform }

func (t Text) sections(metrics.Face, float64, float64) [][]string {
	return [][]string{strings.Split(string(t), "\n")}
}

// Paragraphs is a block of logical lines which are word-wrapped to fit the
// label width.
type Paragraphs []string

// Mode implements the [Block] interface.
func (Paragraphs) Mode() Mode { return Wrapped }

func (p Paragraphs) sections(face metrics.Face, size, maxWidth float64) [][]string {
	if len(p) == 0 {
		return [][]string{{""}}
	}
	var lines []string
	for _, par := range p {
		lines = append(lines, Wrap(face, par, size, maxWidth)...)
	}
	return [][]string{lines}
}

// Sections is a block of word groups.  Each word is set on a line of its
// own, and a rule is drawn between adjacent groups.
// The first group is placed at the top of the label.
type Sections [][]string

// Mode implements the [Block] interface.
func (Sections) Mode() Mode { return Sectioned }

func (s Sections) sections(metrics.Face, float64, float64) [][]string {
	if len(s) == 0 {
		return [][]string{{""}}
	}
	res := make([][]string, len(s))
	for i, words := range s {
		if len(words) == 0 {
			words = []string{""}
		}
		res[i] = words
	}
	return res
}
