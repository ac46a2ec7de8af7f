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

// Package xrefcheck verifies the cross-reference table of a PDF file.
//
// The checks are done independently of the code which writes PDF files:
// the file is scanned as a byte string, and every offset recorded in the
// cross-reference table is compared to the actual position of the
// corresponding object.
package xrefcheck

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

// File holds the result of a successful check.
type File struct {
	Data []byte

	// Offsets maps object numbers to the offsets recorded in the
	// cross-reference table.
	Offsets map[int]int64

	// Size is the number of entries in the cross-reference table,
	// including the free entry for object 0.
	Size int

	// XRef is the offset of the "xref" keyword.
	XRef int64

	// Trailer is the text of the trailer dictionary.
	Trailer string
}

var (
	startxrefRe = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`)
	subsectRe   = regexp.MustCompile(`^xref\n0 (\d+)\n`)
	entryRe     = regexp.MustCompile(`^(\d{10}) 00000 n\r\n$`)
	lengthRe    = regexp.MustCompile(`/Length (\d+) 0 R`)
	sizeRe      = regexp.MustCompile(`/Size (\d+)\b`)
)

// Check parses the cross-reference table at the end of data and verifies
// that every entry points to the start of the corresponding object.
// For stream objects with an indirect /Length, the length is compared to
// the actual size of the stream data.
func Check(data []byte) (*File, error) {
	m := startxrefRe.FindSubmatch(data)
	if m == nil {
		return nil, fmt.Errorf("missing startxref/%%%%EOF at end of file")
	}
	xref, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil || xref < 0 || xref >= int64(len(data)) {
		return nil, fmt.Errorf("invalid startxref value %q", m[1])
	}

	section := data[xref:]
	m = subsectRe.FindSubmatch(section)
	if m == nil {
		return nil, fmt.Errorf("no xref table at offset %d", xref)
	}
	size, err := strconv.Atoi(string(m[1]))
	if err != nil || size < 1 {
		return nil, fmt.Errorf("invalid xref subsection size %q", m[1])
	}
	pos := len(m[0])

	if len(section) < pos+20*size {
		return nil, fmt.Errorf("xref table truncated")
	}
	if string(section[pos:pos+20]) != "0000000000 65535 f\r\n" {
		return nil, fmt.Errorf("invalid free list head %q", section[pos:pos+20])
	}

	f := &File{
		Data:    data,
		Offsets: make(map[int]int64, size),
		Size:    size,
		XRef:    xref,
	}
	for i := 1; i < size; i++ {
		entry := section[pos+20*i : pos+20*i+20]
		m := entryRe.FindSubmatch(entry)
		if m == nil {
			return nil, fmt.Errorf("object %d: malformed xref entry %q", i, entry)
		}
		offset, _ := strconv.ParseInt(string(m[1]), 10, 64)
		if offset >= xref {
			return nil, fmt.Errorf("object %d: offset %d beyond xref table", i, offset)
		}
		header := []byte(strconv.Itoa(i) + " 0 obj\n")
		if !bytes.HasPrefix(data[offset:], header) {
			return nil, fmt.Errorf("object %d: offset %d points to %q",
				i, offset, excerpt(data[offset:]))
		}
		f.Offsets[i] = offset
	}

	rest := section[pos+20*size:]
	if !bytes.HasPrefix(rest, []byte("trailer\n")) {
		return nil, fmt.Errorf("missing trailer")
	}
	end := bytes.Index(rest, []byte("\nstartxref\n"))
	if end < 0 {
		return nil, fmt.Errorf("malformed trailer")
	}
	f.Trailer = string(rest[len("trailer\n"):end])
	m = sizeRe.FindSubmatch([]byte(f.Trailer))
	if m == nil || string(m[1]) != strconv.Itoa(size) {
		return nil, fmt.Errorf("trailer /Size does not match xref table")
	}

	for i := 1; i < size; i++ {
		err := f.checkStream(i)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Object returns the body of object n, without the "n 0 obj" and "endobj"
// lines.
func (f *File) Object(n int) ([]byte, error) {
	offset, ok := f.Offsets[n]
	if !ok {
		return nil, fmt.Errorf("object %d not found", n)
	}
	body := f.Data[offset:]
	body = body[len(strconv.Itoa(n)+" 0 obj\n"):]
	end := bytes.Index(body, []byte("\nendobj\n"))
	if end < 0 {
		return nil, fmt.Errorf("object %d: missing endobj", n)
	}
	return body[:end], nil
}

// Stream returns the dictionary and the data of stream object n.
func (f *File) Stream(n int) (dict, data []byte, err error) {
	body, err := f.Object(n)
	if err != nil {
		return nil, nil, err
	}
	k := bytes.Index(body, []byte("\nstream\n"))
	if k < 0 {
		return nil, nil, fmt.Errorf("object %d is not a stream", n)
	}
	dict = body[:k]
	data = body[k+len("\nstream\n"):]
	if !bytes.HasSuffix(data, []byte("\nendstream")) {
		return nil, nil, fmt.Errorf("object %d: missing endstream", n)
	}
	data = data[:len(data)-len("\nendstream")]
	return dict, data, nil
}

// Int returns the value of object n, which must be an integer.
func (f *File) Int(n int) (int64, error) {
	body, err := f.Object(n)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(string(body), 10, 64)
}

func (f *File) checkStream(n int) error {
	body, err := f.Object(n)
	if err != nil {
		return err
	}
	if !bytes.Contains(body, []byte("\nstream\n")) {
		return nil
	}

	dict, data, err := f.Stream(n)
	if err != nil {
		return err
	}
	m := lengthRe.FindSubmatch(dict)
	if m == nil {
		return nil
	}
	lengthObj, _ := strconv.Atoi(string(m[1]))
	length, err := f.Int(lengthObj)
	if err != nil {
		return fmt.Errorf("object %d: invalid length object %d: %w", n, lengthObj, err)
	}
	if length != int64(len(data)) {
		return fmt.Errorf("object %d: /Length is %d, stream has %d bytes",
			n, length, len(data))
	}
	return nil
}

func excerpt(b []byte) []byte {
	if len(b) > 16 {
		b = b[:16]
	}
	return b
}
