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

// Package standard provides the 14 standard PDF fonts.
//
// These fonts are available in every PDF viewer, so no font data needs to
// be embedded.  Only the font dictionary is written.
package standard

import (
	"fmt"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/text2pdf/pdf"
)

// Font identifies the individual fonts.
type Font string

// Constants for the 14 standard PDF fonts.
const (
	Courier              Font = "Courier"
	CourierBold          Font = "Courier-Bold"
	CourierBoldOblique   Font = "Courier-BoldOblique"
	CourierOblique       Font = "Courier-Oblique"
	Helvetica            Font = "Helvetica"
	HelveticaBold        Font = "Helvetica-Bold"
	HelveticaBoldOblique Font = "Helvetica-BoldOblique"
	HelveticaOblique     Font = "Helvetica-Oblique"
	TimesRoman           Font = "Times-Roman"
	TimesBold            Font = "Times-Bold"
	TimesBoldItalic      Font = "Times-BoldItalic"
	TimesItalic          Font = "Times-Italic"
	Symbol               Font = "Symbol"
	ZapfDingbats         Font = "ZapfDingbats"
)

// All lists the 14 standard PDF fonts defined in this package.
var All = []Font{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

// Lookup returns the standard font with the given name.
// A leading slash, as used in PDF name syntax, is ignored.
func Lookup(name string) (Font, error) {
	if len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	f := Font(name)
	if !slices.Contains(All, f) {
		return "", fmt.Errorf("%q is not one of the 14 standard fonts", name)
	}
	return f, nil
}

// IsSymbolic reports whether the font uses its own built-in encoding.
// This is the case for Symbol and ZapfDingbats.
func (f Font) IsSymbolic() bool {
	return f == Symbol || f == ZapfDingbats
}

// Encoding selects how character codes are mapped to glyphs.
type Encoding int

// These are the supported encodings.
const (
	// WinAnsi uses the WinAnsiEncoding predefined in PDF.
	WinAnsi Encoding = iota

	// ISOLatin1 maps every byte to the corresponding ISO 8859-1 character.
	ISOLatin1
)

func (e Encoding) String() string {
	switch e {
	case WinAnsi:
		return "WinAnsi"
	case ISOLatin1:
		return "ISO Latin-1"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// Dict returns the font dictionary for f, using the given resource name.
// The encoding is ignored for the symbolic fonts.
func (f Font) Dict(name pdf.Name, enc Encoding) pdf.Dict {
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f),
		"Name":     name,
	}
	if f.IsSymbolic() {
		return dict
	}

	switch enc {
	case ISOLatin1:
		dict["Encoding"] = pdf.Dict{
			"Type":         pdf.Name("Encoding"),
			"BaseEncoding": pdf.Name("WinAnsiEncoding"),
			"Differences":  latin1Differences(),
		}
	default:
		dict["Encoding"] = pdf.Name("WinAnsiEncoding")
	}
	return dict
}
