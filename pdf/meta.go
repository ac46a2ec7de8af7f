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
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Version represents a version of PDF standard.
type Version int

// PDF versions supported by this package.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

// ToString returns the string representation of ver, e.g. "1.7".
// If ver does not correspond to a supported PDF version, an error is
// returned.
func (ver Version) ToString() (string, error) {
	if ver >= V1_0 && ver <= V1_7 {
		return "1." + string([]byte{byte(ver - V1_0 + '0')}), nil
	}
	if ver == V2_0 {
		return "2.0", nil
	}
	return "", errVersion
}

func (ver Version) String() string {
	versionString, err := ver.ToString()
	if err != nil {
		versionString = "pdf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return versionString
}

var errVersion = errors.New("unsupported PDF version")

// Catalog represents the entries of a PDF Document Catalog which are
// used by this package.  The only required field is Pages.
type Catalog struct {
	Pages Reference

	// Metadata, if non-zero, refers to an XMP metadata stream.
	Metadata Reference

	// Lang gives the natural language of the document text.
	Lang language.Tag
}

// AsDict returns the catalog dictionary.
func (c *Catalog) AsDict() Dict {
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": c.Pages,
	}
	if c.Metadata != 0 {
		dict["Metadata"] = c.Metadata
	}
	if c.Lang != language.Und {
		dict["Lang"] = TextString(c.Lang.String())
	}
	return dict
}

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  The zero value represents
// an empty information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the document.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time
}

// AsDict returns the information dictionary.  Empty fields are omitted.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	if info.Title != "" {
		dict["Title"] = TextString(info.Title)
	}
	if info.Author != "" {
		dict["Author"] = TextString(info.Author)
	}
	if info.Subject != "" {
		dict["Subject"] = TextString(info.Subject)
	}
	if len(info.Keywords) > 0 {
		dict["Keywords"] = TextString(strings.Join(info.Keywords, " "))
	}
	if info.Creator != "" {
		dict["Creator"] = TextString(info.Creator)
	}
	if info.Producer != "" {
		dict["Producer"] = TextString(info.Producer)
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	return dict
}
