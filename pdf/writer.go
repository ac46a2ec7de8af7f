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

// Package pdf writes PDF files in a single forward pass.
//
// Objects are written sequentially.  The [Writer] counts every byte it
// emits, records the offset at which each indirect object starts, and uses
// these offsets to produce the cross-reference table when the file is
// closed.  Nothing which has been written is ever revisited: values which
// only become known later, like the length of a content stream, are stored
// in separate indirect objects which are written once the value is known.
package pdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Writer represents a PDF file open for writing.
type Writer struct {
	// Version is the PDF version given in the file header.
	Version Version

	w       *posWriter
	xref    map[uint32]int64
	nextRef uint32

	stream *streamWriter
	closed bool
}

// NewWriter prepares a PDF file for writing and writes the file header.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	verString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		Version: ver,
		w:       &posWriter{w: bufio.NewWriter(w)},
		xref:    make(map[uint32]int64),
		nextRef: 1,
	}

	// The comment with four high-bit bytes marks the file as binary.
	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
// Object numbers are handed out contiguously, starting at 1.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref
}

// Pos returns the number of bytes written so far.
// After the file has been closed, this is the total file size.
func (pdf *Writer) Pos() int64 {
	return pdf.w.pos
}

// offset returns the recorded file offset of the given object.
// The second return value is false if the object has not been written yet.
func (pdf *Writer) offset(ref Reference) (int64, bool) {
	pos, ok := pdf.xref[ref.Number()]
	return pos, ok
}

// Put writes obj to the file as the indirect object ref.
// Every allocated object must be written exactly once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	err := pdf.startObject(ref)
	if err != nil {
		return err
	}

	err = writeObject(pdf.w, obj)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	return err
}

// OpenStream starts the stream object ref with the given dictionary.
// The /Length entry of the dictionary is set to a reference to a newly
// allocated object, and this object is written as soon as the returned
// stream is closed.  No other object can be written while the stream is
// open.
func (pdf *Writer) OpenStream(ref Reference, dict Dict) (io.WriteCloser, error) {
	lengthRef := pdf.Alloc()

	d := Dict{}
	for key, val := range dict {
		d[key] = val
	}
	d["Length"] = lengthRef

	err := pdf.startObject(ref)
	if err != nil {
		return nil, err
	}
	err = d.PDF(pdf.w)
	if err != nil {
		return nil, err
	}
	_, err = pdf.w.Write([]byte("\nstream\n"))
	if err != nil {
		return nil, err
	}

	stm := &streamWriter{
		pdf:       pdf,
		ref:       ref,
		lengthRef: lengthRef,
		start:     pdf.w.pos,
	}
	pdf.stream = stm
	return stm, nil
}

// Close writes the cross-reference table and the file trailer, and flushes
// all buffered data to the underlying io.Writer.  The underlying writer is
// not closed.
//
// If any allocated object has not been written, no cross-reference table is
// produced and an error is returned.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.closed {
		return errClosed
	}
	if pdf.stream != nil {
		return fmt.Errorf("stream %s is still open", pdf.stream.ref)
	}
	if catalog == 0 {
		return errors.New("missing /Catalog")
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}

	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	err = pdf.w.w.Flush()
	pdf.closed = true
	return err
}

func (pdf *Writer) startObject(ref Reference) error {
	if pdf.closed {
		return errClosed
	}
	if pdf.stream != nil {
		return fmt.Errorf("cannot write %s while stream %s is open",
			ref, pdf.stream.ref)
	}
	if ref.Number() == 0 || ref.Number() >= pdf.nextRef {
		return fmt.Errorf("object %s was not allocated", ref)
	}
	if _, seen := pdf.xref[ref.Number()]; seen {
		return fmt.Errorf("object %s already written", ref)
	}

	pdf.xref[ref.Number()] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number(), ref.Generation())
	return err
}

type streamWriter struct {
	pdf       *Writer
	ref       Reference
	lengthRef Reference
	start     int64
}

func (stm *streamWriter) Write(p []byte) (int, error) {
	if stm.pdf == nil {
		return 0, errClosed
	}
	return stm.pdf.w.Write(p)
}

// Close ends the stream object and writes its length object.
func (stm *streamWriter) Close() error {
	pdf := stm.pdf
	if pdf == nil {
		return errClosed
	}
	stm.pdf = nil

	length := pdf.w.pos - stm.start
	_, err := pdf.w.Write([]byte("\nendstream\nendobj\n"))
	if err != nil {
		return err
	}
	pdf.stream = nil

	return pdf.Put(stm.lengthRef, Integer(length))
}

// posWriter keeps track of the number of bytes written.
type posWriter struct {
	w   *bufio.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

var errClosed = errors.New("pdf: write to closed object")
