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
	"testing"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Integer(-7), "-7"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Number(2), "2"},
		{Number(34.75), "34.75"},
		{Name("F1"), "/F1"},
		{Name("a b#(c)"), "/a#20b#23#28c#29"},
		{String("a(b)c"), "(a(b)c)"},
		{String("a)b"), `(a\)b)`},
		{String(`x\y`), `(x\\y)`},
		{String("\x00\x01\x02"), "<000102>"},
		{Literal(`a\(b\)c\\`), `(a\(b\)c\\)`},
		{Array{Integer(1), Name("x"), nil}, "[1 /x null]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{NewReference(12, 0), "12 0 R"},
		{Rectangle(rect.Rect{URx: 792, URy: 612}), "[0 0 792 612]"},
	}
	for _, c := range cases {
		got := Format(c.in)
		if got != c.out {
			t.Errorf("Format(%#v) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestTextString(t *testing.T) {
	if got := TextString("Hello"); string(got) != "Hello" {
		t.Errorf("wrong PDFDocEncoding: %q", got)
	}
	if got := TextString("Grüße"); string(got) != "Gr\xfc\xdfe" {
		t.Errorf("wrong PDFDocEncoding: %q", got)
	}
	got := TextString("€1")
	expected := "\xfe\xff\x20\xac\x00\x31"
	if string(got) != expected {
		t.Errorf("wrong UTF-16 encoding: %q", got)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("X", 2*3600+30*60)
	d := time.Date(2026, 3, 4, 5, 6, 7, 0, loc)
	if got := string(Date(d)); got != "D:20260304050607+02'30" {
		t.Errorf("wrong date: %q", got)
	}
}

func TestCatalogInfo(t *testing.T) {
	c := &Catalog{Pages: NewReference(3, 0), Lang: language.German}
	if got := Format(c.AsDict()); got != "<<\n/Lang (de)\n/Pages 3 0 R\n/Type /Catalog\n>>" {
		t.Errorf("wrong catalog: %q", got)
	}

	info := &Info{
		Title:    "t(1)",
		Keywords: []string{"a", "b"},
		Producer: "p",
	}
	expected := "<<\n/Keywords (a b)\n/Producer (p)\n/Title (t(1))\n>>"
	if got := Format(info.AsDict()); got != expected {
		t.Errorf("wrong info: %q", got)
	}
}
