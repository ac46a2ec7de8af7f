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

package document

import (
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Paper sizes, in PDF points.  The ISO sizes are rounded to whole points.
var (
	Letter = rect.Rect{URx: 612, URy: 792}
	A4     = rect.Rect{URx: 595, URy: 842}
	A3     = rect.Rect{URx: 842, URy: 1190}
)

// PaperSize returns the paper size with the given name.  Names are
// matched case-insensitively.  The second return value is false if the
// name is not known.
func PaperSize(name string) (rect.Rect, bool) {
	switch strings.ToLower(name) {
	case "letter":
		return Letter, true
	case "a4":
		return A4, true
	case "a3":
		return A3, true
	default:
		return rect.Rect{}, false
	}
}
