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

package text2pdf

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/text2pdf/document"
	"seehuhn.de/go/text2pdf/internal/buildinfo"
	"seehuhn.de/go/text2pdf/layout"
)

const toolName = "text2pdf"

var producer = buildinfo.Producer(toolName)

// Result summarises a completed conversion.
type Result struct {
	// OutputName is the name of the file written by [ConvertFile].
	// It is empty for [Convert].
	OutputName string

	Pages int
	Size  int64 // in bytes
}

// Convert reads plain text from r and writes a PDF document to w.
//
// Errors from r are returned as [*ReadError], errors from w as
// [*WriteError].  In case of an error, the data written to w is
// incomplete.
func Convert(w io.Writer, r io.Reader, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.Clamp()
	s, err := c.settings()
	if err != nil {
		return nil, err
	}

	in := &trackingReader{r: r}
	out := &trackingWriter{w: w}

	src := layout.NewEngine(in, &s.layout)
	pages, err := document.Write(out, src, &s.document)
	res := &Result{
		Pages: pages,
		Size:  out.n,
	}
	switch {
	case err == nil:
		return res, nil
	case in.err != nil && errors.Is(err, in.err):
		return res, &ReadError{Err: err}
	case out.err != nil:
		return res, &WriteError{Err: out.err}
	default:
		return res, &WriteError{Err: err}
	}
}

// ConvertFile converts the text file inName into a PDF file.
// If outName is empty, the output file name is derived from inName using
// [OutputName].  The output file must not be the input file.  If the
// document has neither title nor subject, the input file name is used as
// the title.  If the conversion fails, the partial output file is removed.
func ConvertFile(inName, outName string, cfg *Config) (res *Result, err error) {
	if inName == "" {
		return nil, ErrMissingInput
	}
	if outName == "" {
		outName = OutputName(inName)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if c.Title == "" && c.Subject == "" {
		c.Title = inName
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}

	in, err := os.Open(inName)
	if err != nil {
		return nil, &OpenError{Op: "read", Path: inName, Err: err}
	}
	defer in.Close()

	inInfo, err := in.Stat()
	if err != nil {
		return nil, &OpenError{Op: "read", Path: inName, Err: err}
	}
	if outInfo, err := os.Stat(outName); err == nil && os.SameFile(inInfo, outInfo) {
		return nil, &OpenError{Op: "write", Path: outName, Err: errSameFile}
	}

	out, err := os.Create(outName)
	if err != nil {
		return nil, &OpenError{Op: "write", Path: outName, Err: err}
	}
	defer func() {
		closeErr := out.Close()
		if err == nil && closeErr != nil {
			err = &WriteError{Err: closeErr}
		}
		if err != nil {
			os.Remove(outName)
		}
	}()

	res, err = Convert(out, in, &c)
	if res != nil {
		res.OutputName = outName
	}
	return res, err
}

// OutputName returns the default output file name for the input file
// inName.  The file name extension, if any, is replaced by ".pdf".  If
// this would give the input file name, ".pdf" is appended instead.
func OutputName(inName string) string {
	ext := filepath.Ext(inName)
	outName := strings.TrimSuffix(inName, ext) + ".pdf"
	if outName == inName {
		outName = inName + ".pdf"
	}
	return outName
}

// trackingReader remembers the first error returned by the underlying
// reader, so that read failures can be told apart from write failures.
type trackingReader struct {
	r   io.Reader
	err error
}

func (r *trackingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}

type trackingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (w *trackingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.n += int64(n)
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}
