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

package render

import (
	"errors"
	"fmt"
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/xdg-go/stringprep"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/labels/layout"
	"seehuhn.de/go/labels/metrics"
)

// DefaultRuleWidth is the line width used for divider rules, in PDF points.
const DefaultRuleWidth = 0.5

// Info holds document level settings for a [PDF].
//
// Title, Author, Subject and Keywords are written both to the document
// information dictionary and to an XMP metadata stream.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string

	// CreationDate is stored in the document information dictionary and
	// in the XMP metadata.  If this is zero, the current time is used.
	CreationDate time.Time

	// RuleWidth is the line width for divider rules.
	// If this is zero, DefaultRuleWidth is used.
	RuleWidth float64

	// If UserPassword or OwnerPassword is set, the file is encrypted.
	// Readers need the user password to open the file; printing is
	// allowed, copying and modification are not.
	UserPassword  string
	OwnerPassword string
}

// PDF is a [Target] which writes a PDF file.
// Each label becomes one page, with the page size equal to the label size.
type PDF struct {
	doc       *fpdf.Fpdf
	height    float64
	ruleWidth float64
	pages     int
}

var errNoPages = errors.New("render: no pages")

// NewPDF starts a new PDF document.
// The document is written by calling [PDF.Write].
func NewPDF(info *Info) (*PDF, error) {
	if info == nil {
		info = &Info{}
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: 50 * layout.MM, Ht: 30 * layout.MM},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)

	if info.Title != "" {
		doc.SetTitle(info.Title, true)
	}
	if info.Author != "" {
		doc.SetAuthor(info.Author, true)
	}
	if info.Subject != "" {
		doc.SetSubject(info.Subject, true)
	}
	if info.Keywords != "" {
		doc.SetKeywords(info.Keywords, true)
	}
	if info.Creator != "" {
		doc.SetCreator(info.Creator, true)
	}
	date := info.CreationDate
	if date.IsZero() {
		date = time.Now()
	}
	doc.SetCreationDate(date)

	meta, err := xmpMetadata(info, date)
	if err != nil {
		return nil, fmt.Errorf("render: XMP metadata: %w", err)
	}
	doc.SetXmpMetadata(meta)

	if info.UserPassword != "" || info.OwnerPassword != "" {
		user, err := stringprep.SASLprep.Prepare(info.UserPassword)
		if err != nil {
			return nil, fmt.Errorf("render: invalid user password: %w", err)
		}
		owner, err := stringprep.SASLprep.Prepare(info.OwnerPassword)
		if err != nil {
			return nil, fmt.Errorf("render: invalid owner password: %w", err)
		}
		doc.SetProtection(fpdf.CnProtectPrint, user, owner)
	}

	ruleWidth := info.RuleWidth
	if ruleWidth <= 0 {
		ruleWidth = DefaultRuleWidth
	}

	p := &PDF{
		doc:       doc,
		ruleWidth: ruleWidth,
	}
	return p, doc.Error()
}

// NewPage implements the [Target] interface.
func (p *PDF) NewPage(c layout.Canvas) error {
	p.doc.AddPageFormat("P", fpdf.SizeType{Wd: c.Width, Ht: c.Height})
	p.height = c.Height
	p.pages++
	return p.doc.Error()
}

// SetFont implements the [Target] interface.
func (p *PDF) SetFont(F metrics.Font, size float64) error {
	if err := F.Check(); err != nil {
		return err
	}
	style := ""
	if F.IsBold() {
		style = "B"
	}
	p.doc.SetFont(F.Family(), style, size)
	return p.doc.Error()
}

// ShowText implements the [Target] interface.
func (p *PDF) ShowText(x, y float64, text string) error {
	// fpdf measures y from the top of the page
	p.doc.Text(x, p.height-y, metrics.Encode(text))
	return p.doc.Error()
}

// Rule implements the [Target] interface.
func (p *PDF) Rule(from, to vec.Vec2) error {
	p.doc.SetLineWidth(p.ruleWidth)
	p.doc.Line(from.X, p.height-from.Y, to.X, p.height-to.Y)
	return p.doc.Error()
}

// Pages returns the number of pages started so far.
func (p *PDF) Pages() int {
	return p.pages
}

// Write finishes the document and writes it to w.
// The PDF must not be used after Write has been called.
func (p *PDF) Write(w io.Writer) error {
	if p.pages == 0 {
		return errNoPages
	}
	return p.doc.Output(w)
}
