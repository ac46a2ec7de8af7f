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

// Package document assembles the pages of a text listing into a PDF file.
//
// The file is written in a single pass.  Object numbers 1 to 5 are
// reserved for the information dictionary, the catalog, the page tree
// root, the font and the shared resource dictionary.  Every page then
// uses three more objects: the page, its content stream, and the length
// of the content stream.  The page tree root is written after the last
// page, just before the cross-reference table.
package document

import (
	"errors"
	"io"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/text2pdf/font/standard"
	"seehuhn.de/go/text2pdf/graphics"
	"seehuhn.de/go/text2pdf/layout"
	"seehuhn.de/go/text2pdf/metadata"
	"seehuhn.de/go/text2pdf/pdf"
)

// TextSource provides the pages of text to be written.
// After the last page, NextPage must return io.EOF.
type TextSource interface {
	NextPage() (*layout.Page, error)
}

// Decorator draws the background of a page.
// Decorate is called before any text is drawn.  The decorator must leave
// the graphics state as it found it.
type Decorator interface {
	Decorate(w *graphics.Writer, box rect.Rect)
}

// Options controls the appearance of the generated document.
type Options struct {
	// PageSize is the size of every page.
	PageSize rect.Rect

	Font     standard.Font
	Encoding standard.Encoding
	FontSize float64

	// LineSpacing is the distance between consecutive baselines.
	LineSpacing float64

	// Info is written as the document information dictionary.
	Info pdf.Info

	// Lang, if set, is recorded as the document language.
	Lang language.Tag

	// XMP selects whether an XMP metadata stream is included.
	XMP bool

	// Decorator, if not nil, draws the page backgrounds.
	Decorator Decorator

	// Progress, if not nil, is called after each page has been written.
	Progress func(pageNo int)
}

// Text is positioned relative to the top left corner of the page.
const (
	leftMargin   = 50
	topMargin    = 40
	columnOffset = 25 // from the middle of the page to the second column
)

const fontName pdf.Name = "F1"

// Assembler writes a PDF document one page at a time.
type Assembler struct {
	w   *pdf.Writer
	opt Options

	info      pdf.Reference
	catalog   pdf.Reference
	pages     pdf.Reference
	font      pdf.Reference
	resources pdf.Reference

	kids []pdf.Reference
}

// New starts a new document and writes all objects which are shared
// between pages.
func New(out io.Writer, opt *Options) (*Assembler, error) {
	if opt == nil {
		return nil, errors.New("document: missing options")
	}
	if opt.PageSize.Dx() <= 0 || opt.PageSize.Dy() <= 0 {
		return nil, errors.New("document: invalid page size")
	}

	w, err := pdf.NewWriter(out, pdf.V1_4)
	if err != nil {
		return nil, err
	}

	a := &Assembler{
		w:   w,
		opt: *opt,
	}
	a.info = w.Alloc()
	a.catalog = w.Alloc()
	a.pages = w.Alloc()
	a.font = w.Alloc()
	a.resources = w.Alloc()

	catalog := &pdf.Catalog{
		Pages: a.pages,
		Lang:  opt.Lang,
	}
	var metaRef pdf.Reference
	if opt.XMP {
		metaRef = w.Alloc()
		catalog.Metadata = metaRef
	}

	err = w.Put(a.info, opt.Info.AsDict())
	if err != nil {
		return nil, err
	}
	err = w.Put(a.catalog, catalog.AsDict())
	if err != nil {
		return nil, err
	}
	err = w.Put(a.font, opt.Font.Dict(fontName, opt.Encoding))
	if err != nil {
		return nil, err
	}
	resources := pdf.Dict{
		"Font":    pdf.Dict{fontName: a.font},
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text")},
	}
	err = w.Put(a.resources, resources)
	if err != nil {
		return nil, err
	}

	if opt.XMP {
		err = a.writeMetadata(metaRef)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *Assembler) writeMetadata(ref pdf.Reference) error {
	info := &a.opt.Info
	packet, err := metadata.NewPacket(&metadata.Info{
		Title:        info.Title,
		Subject:      info.Subject,
		Author:       info.Author,
		Keywords:     info.Keywords,
		Producer:     info.Producer,
		Lang:         a.opt.Lang,
		CreationDate: info.CreationDate,
	})
	if err != nil {
		return err
	}
	return metadata.Write(a.w, ref, packet, true)
}

// AddPage writes one page of text.
func (a *Assembler) AddPage(page *layout.Page) error {
	pageRef := a.w.Alloc()
	contentRef := a.w.Alloc()

	pageDict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    a.pages,
		"Resources": a.resources,
		"Contents":  contentRef,
	}
	err := a.w.Put(pageRef, pageDict)
	if err != nil {
		return err
	}

	stm, err := a.w.OpenStream(contentRef, nil)
	if err != nil {
		return err
	}
	gw := graphics.NewWriter(stm)
	if a.opt.Decorator != nil {
		a.opt.Decorator.Decorate(gw, a.opt.PageSize)
	}
	a.writeText(gw, page)
	err = gw.Close()
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	a.kids = append(a.kids, pageRef)
	if a.opt.Progress != nil {
		a.opt.Progress(len(a.kids))
	}
	return nil
}

// writeText emits the text object of a page.  Every line is shown with the
// "'" operator, which moves down by the leading first.  The further passes
// of an overstruck line return to the start of the line using "0 0 Td",
// so that all passes share the same baseline.
func (a *Assembler) writeText(gw *graphics.Writer, page *layout.Page) {
	box := a.opt.PageSize
	top := box.URy - topMargin

	gw.TextStart()
	gw.TextSetFont(fontName, a.opt.FontSize)
	gw.TextSetMatrix(matrix.Translate(box.LLx+leftMargin, top))
	gw.TextSetLeading(a.opt.LineSpacing)
	for i, col := range page.Columns {
		if i > 0 {
			x := box.LLx + box.Dx()/2 + columnOffset
			gw.TextSetMatrix(matrix.Translate(x, top))
		}
		for _, line := range col {
			gw.TextShowNextLineRaw(line.Segments[0])
			for _, seg := range line.Segments[1:] {
				gw.TextFirstLine(0, 0)
				gw.TextShowRaw(seg)
			}
		}
	}
	gw.TextEnd()
}

// NumPages returns the number of pages written so far.
func (a *Assembler) NumPages() int {
	return len(a.kids)
}

// Close writes the page tree root, the cross-reference table and the
// trailer.  The underlying writer is not closed.
func (a *Assembler) Close() error {
	pages := pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     refArray(a.kids),
		"Count":    pdf.Integer(len(a.kids)),
		"MediaBox": pdf.Rectangle(a.opt.PageSize),
	}
	err := a.w.Put(a.pages, pages)
	if err != nil {
		return err
	}
	return a.w.Close(a.catalog, a.info)
}

// Size returns the number of bytes written so far.
func (a *Assembler) Size() int64 {
	return a.w.Pos()
}

func refArray(refs []pdf.Reference) pdf.Array {
	res := make(pdf.Array, len(refs))
	for i, ref := range refs {
		res[i] = ref
	}
	return res
}

// Write reads all pages from src and writes the complete document to out.
// It returns the number of pages written.
func Write(out io.Writer, src TextSource, opt *Options) (int, error) {
	a, err := New(out, opt)
	if err != nil {
		return 0, err
	}
	for {
		page, err := src.NextPage()
		if err == io.EOF {
			break
		} else if err != nil {
			return a.NumPages(), err
		}
		err = a.AddPage(page)
		if err != nil {
			return a.NumPages(), err
		}
	}
	err = a.Close()
	return a.NumPages(), err
}
