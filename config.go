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

// Package text2pdf converts plain text files to PDF, following the
// conventions of line printers.
//
// Tabs are expanded, a carriage return without line feed prints the
// following text over the current line, and form feeds can be used as
// page breaks.  Pages can optionally be decorated to look like "green
// bar" continuous listing paper.  The PDF file is written in a single pass
// and only uses the 14 standard PDF fonts, so no font data is embedded.
package text2pdf

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/text2pdf/document"
	"seehuhn.de/go/text2pdf/font/standard"
	"seehuhn.de/go/text2pdf/layout"
	"seehuhn.de/go/text2pdf/ornament"
)

// Config holds the options for a conversion.
type Config struct {
	// Font is the name of one of the 14 standard PDF fonts.
	Font string

	// ISOLatin1 selects ISO 8859-1 instead of WinAnsi encoding.
	ISOLatin1 bool

	FontSize    float64 // at least 1
	LineSpacing float64 // at least 1

	// LinesPerPage is the number of lines per page (or per column).
	// Zero selects (height-72)/LineSpacing.
	LinesPerPage int

	// CharsPerLine is the column after which lines wrap, at least 4.
	CharsPerLine int

	// TruncateAt, if non-zero, is the column after which the remainder of
	// a line is discarded, at least 4.
	TruncateAt int

	TabWidth int // at least 1

	// PaperSize, if non-empty, names a paper size ("letter", "A4" or "A3")
	// which overrides Width and Height.
	PaperSize string

	Width, Height float64 // in PDF points, at least 72

	// Landscape swaps Width and Height.
	Landscape bool

	// Columns is the number of text columns, 1 or 2.
	Columns int

	// FormFeed makes form feed characters start a new page.
	FormFeed bool

	// Greenbar draws a listing paper background.
	Greenbar bool

	// StrictEscapes writes non-printable bytes as octal escapes.
	StrictEscapes bool

	Title    string
	Subject  string
	Author   string
	Keywords []string

	// Lang, if non-empty, is a BCP 47 language tag for the document text.
	Lang string

	// XMP adds an XMP metadata stream to the document.
	XMP bool

	// Now returns the creation time of the document.
	// If nil, time.Now is used.
	Now func() time.Time

	// Progress, if not nil, is called after each page is written.
	Progress func(pageNo int)
}

// DefaultConfig returns the default configuration:
// 10pt Courier with 12pt line spacing, 80 characters per line,
// tab width 4, and US letter paper.
func DefaultConfig() *Config {
	return &Config{
		Font:         string(standard.Courier),
		FontSize:     10,
		LineSpacing:  12,
		CharsPerLine: 80,
		TabWidth:     4,
		Width:        document.Letter.Dx(),
		Height:       document.Letter.Dy(),
		Columns:      1,
	}
}

// Clamp moves all numeric options into their valid ranges.
func (c *Config) Clamp() {
	c.FontSize = max(c.FontSize, 1)
	c.LineSpacing = max(c.LineSpacing, 1)
	c.LinesPerPage = max(c.LinesPerPage, 0)
	c.CharsPerLine = max(c.CharsPerLine, 4)
	if c.TruncateAt != 0 {
		c.TruncateAt = max(c.TruncateAt, 4)
	}
	c.TabWidth = max(c.TabWidth, 1)
	c.Width = max(c.Width, 72)
	c.Height = max(c.Height, 72)
	c.Columns = min(max(c.Columns, 1), 2)
}

// PageSize returns the size of the output pages, taking the paper size
// preset and the landscape option into account.
func (c *Config) PageSize() (rect.Rect, error) {
	box := rect.Rect{URx: max(c.Width, 72), URy: max(c.Height, 72)}
	if c.PaperSize != "" {
		var ok bool
		box, ok = document.PaperSize(c.PaperSize)
		if !ok {
			return rect.Rect{}, &ConfigError{
				Field: "paper size",
				Err:   fmt.Errorf("unknown paper size %q", c.PaperSize),
			}
		}
	}
	if c.Landscape {
		box.URx, box.URy = box.URy, box.URx
	}
	return box, nil
}

// Lines returns the number of lines per page (or per column).
func (c *Config) Lines() (int, error) {
	if c.LinesPerPage > 0 {
		return c.LinesPerPage, nil
	}
	box, err := c.PageSize()
	if err != nil {
		return 0, err
	}
	n := int((box.Dy() - 72) / max(c.LineSpacing, 1))
	return max(n, 1), nil
}

// Validate checks the options which cannot be clamped: the font name, the
// paper size and the language tag.
func (c *Config) Validate() error {
	cc := *c
	cc.Clamp()
	_, err := cc.settings()
	return err
}

type settings struct {
	layout   layout.Options
	document document.Options
}

// settings translates the configuration into options for the layout
// engine and the document assembler.  The configuration must be clamped.
func (c *Config) settings() (*settings, error) {
	font, err := standard.Lookup(c.Font)
	if err != nil {
		return nil, &ConfigError{Field: "font", Err: err}
	}

	box, err := c.PageSize()
	if err != nil {
		return nil, err
	}
	lines, err := c.Lines()
	if err != nil {
		return nil, err
	}

	lang := language.Und
	if c.Lang != "" {
		lang, err = language.Parse(c.Lang)
		if err != nil {
			return nil, &ConfigError{Field: "language", Err: err}
		}
	}

	s := &settings{
		layout: layout.Options{
			CharsPerLine:  c.CharsPerLine,
			TruncateAt:    c.TruncateAt,
			TabWidth:      c.TabWidth,
			LinesPerPage:  lines,
			Columns:       c.Columns,
			FormFeed:      c.FormFeed,
			StrictEscapes: c.StrictEscapes,
		},
		document: document.Options{
			PageSize:    box,
			Font:        font,
			FontSize:    c.FontSize,
			LineSpacing: c.LineSpacing,
			Lang:        lang,
			XMP:         c.XMP,
			Progress:    c.Progress,
		},
	}
	if c.ISOLatin1 {
		s.document.Encoding = standard.ISOLatin1
	}
	if c.Greenbar {
		s.document.Decorator = ornament.Greenbar{}
	}

	info := &s.document.Info
	info.Title = c.Title
	if info.Title == "" {
		info.Title = c.Subject
	}
	info.Subject = c.Subject
	info.Author = c.Author
	for _, kw := range c.Keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			info.Keywords = append(info.Keywords, kw)
		}
	}
	info.Creator = toolName
	info.Producer = producer
	now := c.Now
	if now == nil {
		now = time.Now
	}
	info.CreationDate = now()

	return s, nil
}

// ParseKeywords splits a comma-separated list of keywords.
func ParseKeywords(s string) []string {
	var res []string
	for _, kw := range strings.Split(s, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			res = append(res, kw)
		}
	}
	return res
}
