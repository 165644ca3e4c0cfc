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
	"errors"
	"fmt"
)

// MM is the length of one millimetre, in PDF points.
const MM = 72 / 25.4

// Canvas is the drawing area of a single label, in PDF points.
type Canvas struct {
	Width, Height float64
}

// CanvasMM returns the canvas for a label of the given size in
// millimetres.
func CanvasMM(width, height float64) Canvas {
	return Canvas{Width: width * MM, Height: height * MM}
}

// MaxSize is the largest allowed canvas width and height, in PDF points.
// This is the largest page size PDF viewers are required to support.
const MaxSize = 14400

// Check returns an [*InvalidCanvasError] unless both dimensions are
// positive and at most [MaxSize].
func (c Canvas) Check() error {
	if !(c.Width > 0 && c.Width <= MaxSize && c.Height > 0 && c.Height <= MaxSize) {
		return &InvalidCanvasError{Canvas: c}
	}
	return nil
}

// ErrInvalidCanvas is matched by all [*InvalidCanvasError] values.
var ErrInvalidCanvas = errors.New("invalid canvas")

// InvalidCanvasError is returned for a canvas with a dimension which is
// not positive, too large, or NaN.
type InvalidCanvasError struct {
	Canvas Canvas
}

func (err *InvalidCanvasError) Error() string {
	return fmt.Sprintf("layout: invalid canvas %gx%g", err.Canvas.Width, err.Canvas.Height)
}

// Is allows errors.Is(err, ErrInvalidCanvas) to match.
func (err *InvalidCanvasError) Is(target error) bool {
	return target == ErrInvalidCanvas
}
