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

package standard

import (
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/text2pdf/pdf"
)

// Latin1GlyphNames returns the glyph name for each of the 256 byte values
// under ISO 8859-1.  Codes without a printable character map to ".notdef".
func Latin1GlyphNames() []string {
	res := make([]string, 256)
	for i := range res {
		b := byte(i)
		switch {
		case b == 0xA0: // no-break space
			res[i] = "space"
		case b == 0xAD: // soft hyphen
			res[i] = "hyphen"
		case b >= 0x20 && b < 0x7F, b > 0xA0:
			res[i] = names.FromUnicode(string(charmap.ISO8859_1.DecodeByte(b)))
		default:
			res[i] = ".notdef"
		}
	}
	return res
}

// latin1Differences returns the /Differences array which maps all codes,
// starting at 0, to their ISO 8859-1 glyphs.
func latin1Differences() pdf.Array {
	glyphs := Latin1GlyphNames()
	res := make(pdf.Array, 0, len(glyphs)+1)
	res = append(res, pdf.Integer(0))
	for _, name := range glyphs {
		res = append(res, pdf.Name(name))
	}
	return res
}
