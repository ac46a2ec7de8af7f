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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/text2pdf/internal/xrefcheck"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Now = func() time.Time {
		return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	}
	return cfg
}

func TestConvert(t *testing.T) {
	buf := &bytes.Buffer{}
	res, err := Convert(buf, strings.NewReader("hello\tworld\n"), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.Pages != 1 {
		t.Errorf("wrong page count: %d", res.Pages)
	}
	if res.Size != int64(buf.Len()) {
		t.Errorf("wrong size: %d != %d", res.Size, buf.Len())
	}

	f, err := xrefcheck.Check(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	_, data, err := f.Stream(7)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("(hello   world)'")) {
		t.Errorf("text not found in content stream:\n%s", data)
	}

	info, err := f.Object(1)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"/Creator (text2pdf)",
		"/CreationDate (D:20260304050607+00'00)",
	} {
		if !bytes.Contains(info, []byte(want)) {
			t.Errorf("missing %q in info dict:\n%s", want, info)
		}
	}
}

func TestDeterministic(t *testing.T) {
	input := strings.Repeat("line\f\ttabbed\rover\n", 50)

	cfg := testConfig()
	cfg.FormFeed = true
	cfg.Greenbar = true

	var out [2][]byte
	for i := range out {
		buf := &bytes.Buffer{}
		_, err := Convert(buf, strings.NewReader(input), cfg)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = buf.Bytes()
	}
	if !bytes.Equal(out[0], out[1]) {
		t.Error("output differs between runs")
	}
}

func TestLines(t *testing.T) {
	cfg := DefaultConfig()
	n, err := cfg.Lines()
	if err != nil {
		t.Fatal(err)
	}
	if n != 60 {
		t.Errorf("letter: %d lines, want 60", n)
	}

	cfg.Landscape = true
	n, _ = cfg.Lines()
	if n != 45 {
		t.Errorf("landscape letter: %d lines, want 45", n)
	}

	cfg.LinesPerPage = 7
	n, _ = cfg.Lines()
	if n != 7 {
		t.Errorf("explicit: %d lines, want 7", n)
	}
}

func TestPageSize(t *testing.T) {
	cases := []struct {
		paper     string
		landscape bool
		want      string
	}{
		{"", false, "/MediaBox [0 0 612 792]"},
		{"", true, "/MediaBox [0 0 792 612]"},
		{"a4", false, "/MediaBox [0 0 595 842]"},
		{"A3", true, "/MediaBox [0 0 1190 842]"},
	}
	for _, c := range cases {
		cfg := testConfig()
		cfg.PaperSize = c.paper
		cfg.Landscape = c.landscape

		buf := &bytes.Buffer{}
		_, err := Convert(buf, strings.NewReader("x\n"), cfg)
		if err != nil {
			t.Fatal(err)
		}
		f, err := xrefcheck.Check(buf.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		pages, err := f.Object(3)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(pages, []byte(c.want)) {
			t.Errorf("%q/%t: missing %q in\n%s", c.paper, c.landscape, c.want, pages)
		}
	}
}

func TestClamp(t *testing.T) {
	cfg := &Config{
		FontSize:     0.5,
		LineSpacing:  -2,
		LinesPerPage: -1,
		CharsPerLine: 2,
		TruncateAt:   1,
		TabWidth:     0,
		Width:        10,
		Height:       5000,
		Columns:      7,
	}
	cfg.Clamp()
	want := &Config{
		FontSize:     1,
		LineSpacing:  1,
		LinesPerPage: 0,
		CharsPerLine: 4,
		TruncateAt:   4,
		TabWidth:     1,
		Width:        72,
		Height:       5000,
		Columns:      2,
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}

	cfg = &Config{}
	cfg.Clamp()
	if cfg.TruncateAt != 0 || cfg.Columns != 1 {
		t.Errorf("zero config clamped to %d/%d", cfg.TruncateAt, cfg.Columns)
	}
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		modify func(*Config)
		field  string
	}{
		{func(c *Config) { c.Font = "Comic-Sans" }, "font"},
		{func(c *Config) { c.PaperSize = "B5" }, "paper size"},
		{func(c *Config) { c.Lang = "no such language!" }, "language"},
	}
	for _, c := range cases {
		cfg := testConfig()
		c.modify(cfg)

		buf := &bytes.Buffer{}
		_, err := Convert(buf, strings.NewReader("x\n"), cfg)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", c.field, err)
			continue
		}
		if cfgErr.Field != c.field {
			t.Errorf("wrong field %q, want %q", cfgErr.Field, c.field)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: output written despite error", c.field)
		}
	}
}

func TestKeywords(t *testing.T) {
	got := ParseKeywords(" listing, ,text ,pdf")
	want := []string{"listing", "text", "pdf"}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

var errFull = errors.New("disk full")

type limitWriter struct {
	n int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteError(t *testing.T) {
	input := strings.Repeat("x\n", 1000)
	_, err := Convert(&limitWriter{n: 1000}, strings.NewReader(input), testConfig())
	var wErr *WriteError
	if !errors.As(err, &wErr) {
		t.Fatalf("expected WriteError, got %v", err)
	}
	if !errors.Is(err, errFull) {
		t.Errorf("wrong cause: %v", err)
	}
}

func TestReadError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	buf := &bytes.Buffer{}
	_, err := Convert(buf, iotest.ErrReader(errBroken), testConfig())
	var rErr *ReadError
	if !errors.As(err, &rErr) {
		t.Fatalf("expected ReadError, got %v", err)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("wrong cause: %v", err)
	}
}

func TestOutputName(t *testing.T) {
	cases := []struct{ in, out string }{
		{"a.txt", "a.pdf"},
		{"dir/listing.c", "dir/listing.pdf"},
		{"README", "README.pdf"},
		{"doc.pdf", "doc.pdf.pdf"},
		{"v1.2/notes", "v1.2/notes.pdf"},
	}
	for _, c := range cases {
		got := OutputName(c.in)
		if got != c.out {
			t.Errorf("OutputName(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	inName := filepath.Join(dir, "input.txt")
	err := os.WriteFile(inName, []byte("one\ntwo\nthree\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	res, err := ConvertFile(inName, "", testConfig())
	if err != nil {
		t.Fatal(err)
	}
	wantName := filepath.Join(dir, "input.pdf")
	if res.OutputName != wantName {
		t.Errorf("wrong output name %q", res.OutputName)
	}

	data, err := os.ReadFile(wantName)
	if err != nil {
		t.Fatal(err)
	}
	if int64(len(data)) != res.Size {
		t.Errorf("file size %d, reported %d", len(data), res.Size)
	}
	f, err := xrefcheck.Check(data)
	if err != nil {
		t.Fatal(err)
	}
	info, _ := f.Object(1)
	if !bytes.Contains(info, []byte("/Title ("+inName+")")) {
		t.Errorf("input name not used as title:\n%s", info)
	}
}

func TestConvertFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ConvertFile("", "", nil)
	if err != ErrMissingInput {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}

	_, err = ConvertFile(filepath.Join(dir, "missing.txt"), "", nil)
	var openErr *OpenError
	if !errors.As(err, &openErr) || openErr.Op != "read" {
		t.Errorf("expected read OpenError, got %v", err)
	}

	inName := filepath.Join(dir, "in.txt")
	err = os.WriteFile(inName, []byte("x\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ConvertFile(inName, filepath.Join(dir, "no", "such", "out.pdf"), nil)
	if !errors.As(err, &openErr) || openErr.Op != "write" {
		t.Errorf("expected write OpenError, got %v", err)
	}

	// Reading a directory fails after it has been opened.
	outName := filepath.Join(dir, "partial.pdf")
	_, err = ConvertFile(dir, outName, nil)
	var rErr *ReadError
	if !errors.As(err, &rErr) {
		t.Errorf("expected ReadError, got %v", err)
	}
	if _, statErr := os.Stat(outName); !os.IsNotExist(statErr) {
		t.Errorf("partial output %q was not removed", outName)
	}
}

func TestConvertFileSameFile(t *testing.T) {
	dir := t.TempDir()
	inName := filepath.Join(dir, "in.txt")
	body := []byte("do not truncate me\n")
	err := os.WriteFile(inName, body, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	alias := filepath.Join(dir, "alias.txt")
	err = os.Link(inName, alias)
	if err != nil {
		t.Fatal(err)
	}
	sep := string(filepath.Separator)
	for _, outName := range []string{inName, dir + sep + "." + sep + "in.txt", alias} {
		_, err = ConvertFile(inName, outName, testConfig())
		var openErr *OpenError
		if !errors.As(err, &openErr) || openErr.Op != "write" {
			t.Errorf("%q: expected write OpenError, got %v", outName, err)
		}
		if !errors.Is(err, errSameFile) {
			t.Errorf("%q: wrong cause: %v", outName, err)
		}
	}

	data, err := os.ReadFile(inName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, body) {
		t.Errorf("input file was modified: %q", data)
	}
}
