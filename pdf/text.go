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

package pdf

import "unicode/utf16"

// pdfDocEncode encodes s using PDFDocEncoding.  Only the subset of
// PDFDocEncoding which coincides with Unicode is used: printable ASCII,
// tab/newline/carriage return, and the Latin-1 range 0xA1-0xFF without
// the soft hyphen.  The second return value is false if s contains any
// other character.
func pdfDocEncode(s string) (String, bool) {
	res := make(String, 0, len(s))
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r >= 0x20 && r < 0x7f:
		case r >= 0xa1 && r <= 0xff && r != 0xad:
		default:
			return nil, false
		}
		res = append(res, byte(r))
	}
	return res, true
}

func utf16Encode(s string) String {
	u := utf16.Encode([]rune(s))
	res := make(String, 0, 2+2*len(u))
	res = append(res, 0xFE, 0xFF)
	for _, c := range u {
		res = append(res, byte(c>>8), byte(c))
	}
	return res
}
