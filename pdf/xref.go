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

import (
	"fmt"
)

// MissingObjectError is returned by [Writer.Close] if an object number was
// allocated but the object was never written.
type MissingObjectError struct {
	Ref Reference
}

func (err *MissingObjectError) Error() string {
	return fmt.Sprintf("object %s was allocated but never written", err.Ref)
}

// writeXRefTable writes the cross-reference section, the trailer and the
// end-of-file marker.  The table has a single subsection, covering all
// objects from 0 to the highest allocated object number.  Every entry is
// exactly 20 bytes long.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	for i := uint32(1); i < pdf.nextRef; i++ {
		if _, ok := pdf.xref[i]; !ok {
			return &MissingObjectError{Ref: NewReference(i, 0)}
		}
	}

	xRefPos := pdf.w.pos

	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for i := uint32(1); i < pdf.nextRef; i++ {
		_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pdf.xref[i])
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pdf.w)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return err
}
