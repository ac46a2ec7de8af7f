// seehuhn.de/go/text2pdf - convert plain text files to PDF
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

// Package metadata writes XMP metadata streams.
//
// The metadata stream duplicates the entries of the document information
// dictionary in XMP form, so that the information is also available to
// tools which only read XMP.
package metadata

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/text2pdf/pdf"
)

// Info holds the document properties stored in the metadata stream.
type Info struct {
	Title    string
	Subject  string
	Author   string
	Keywords []string
	Producer string

	// Lang, if set, is used as an additional language alternative for the
	// title and the description.
	Lang language.Tag

	CreationDate time.Time
}

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

var xDefault = language.MustParse("x-default")

// NewPacket creates an XMP packet which describes the document.
func NewPacket(info *Info) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
		if info.Lang != language.Und {
			dc.Title.Set(info.Lang, info.Title)
		}
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
		if info.Lang != language.Und {
			dc.Description.Set(info.Lang, info.Subject)
		}
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
		basic.ModifyDate = xmp.NewDate(info.CreationDate)
	}

	pdfInfo := &PDF{}
	if len(info.Keywords) > 0 {
		pdfInfo.Keywords = xmp.NewText(strings.Join(info.Keywords, ", "))
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// Write writes packet as the metadata stream ref.  The XML is written
// uncompressed, as required for metadata streams.
func Write(w *pdf.Writer, ref pdf.Reference, packet *xmp.Packet, pretty bool) error {
	if packet == nil {
		return errMissingPacket
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: pretty})
	if err != nil {
		return err
	}
	return stm.Close()
}

var errMissingPacket = errors.New("metadata: missing XMP packet")
