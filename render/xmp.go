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
	"bytes"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"
)

// pdfProperties is the XMP namespace for PDF specific metadata.
type pdfProperties struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
}

// xmpMetadata returns the XMP packet which mirrors the document
// information in info.  The subject, which identifies the label job, is
// stored as the Dublin Core description.
func xmpMetadata(info *Info, date time.Time) ([]byte, error) {
	xDefault := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
	}

	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(date)
	basic.ModifyDate = xmp.NewDate(date)

	pdfInfo := &pdfProperties{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
