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

// Package labels prints auto-sized text labels.
//
// Every label is a single page of fixed size, for use with a label
// printer.  The text of each label is set at the largest font size which
// still fits onto the label.  The work is split between several packages:
//
//   - [seehuhn.de/go/labels/metrics] measures text in the standard PDF fonts,
//   - [seehuhn.de/go/labels/layout] finds the font size and places the lines,
//   - [seehuhn.de/go/labels/render] draws the result into a PDF file,
//   - [seehuhn.de/go/labels/records] reads label texts from a text file,
//   - [seehuhn.de/go/labels/config] reads job files.
//
// This package ties the pieces together.  A [Batch] lays out a sequence of
// labels in parallel and renders them, in order, one label per page:
//
//	e, err := layout.New(metrics.HelveticaBold, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	b := &labels.Batch{Engine: e, Canvas: layout.CanvasMM(50, 30)}
//	p, err := render.NewPDF(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_, err = b.Render(ctx, p, blocks)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = p.Write(out)
package labels
