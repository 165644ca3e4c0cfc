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
	"strings"

	"seehuhn.de/go/labels/metrics"
)

// SplitWords splits s into words at runs of ASCII white space.
// Other space characters, like the no-break space U+00A0, are part of
// the words.
func SplitWords(s string) []string {
	return strings.FieldsFunc(s, isASCIISpace)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Wrap breaks a line of text into physical lines no wider than maxWidth,
// using greedy line breaking.  Words are found using [SplitWords], and
// consecutive white space collapses into a single space.
//
// A word which is wider than maxWidth on its own is placed on a line by
// itself and may overflow.  The result always contains at least one line;
// for text without words this is the empty string.
func Wrap(face metrics.Face, text string, size, maxWidth float64) []string {
	words := SplitWords(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if face.Width(candidate, size) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}
