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
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Replacement is used for characters which cannot be represented in the
// WinAnsi encoding.
const Replacement = '?'

// Encode converts a UTF-8 string into the single-byte WinAnsi encoding used
// for the built-in fonts.  The string is normalised to NFC first, so that
// combining sequences like "é" map to precomposed characters.
//
// The same encoded string must be used for measuring and for drawing,
// otherwise the measured width will not match the printed width.
func Encode(text string) string {
	text = norm.NFC.String(text)
	buf := make([]byte, 0, len(text))
	for _, r := range text {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = Replacement
		}
		buf = append(buf, c)
	}
	return string(buf)
}
