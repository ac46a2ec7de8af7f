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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/text2pdf/internal/xrefcheck"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "listing.txt")
	err := os.WriteFile(name, []byte(body), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRun(t *testing.T) {
	inName := writeInput(t, "one\n\ttwo\n\fthree\n")
	outName := filepath.Join(filepath.Dir(inName), "out.pdf")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run([]string{"-o", outName, "-F", "-landscape", "-2", "-I", inName},
		stdout, stderr)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	for _, want := range []string{
		"Landscape option on",
		"Printing in two columns",
		"Using form feed character",
		"Using ISO Latin Encoding",
		"Using font Courier size = 10",
		"Input file ===> " + inName,
		"Wrote file " + outName + " (2 pages,",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("missing %q in output:\n%s", want, stdout)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected messages on stderr:\n%s", stderr)
	}

	data, err := os.ReadFile(outName)
	if err != nil {
		t.Fatal(err)
	}
	_, err = xrefcheck.Check(data)
	if err != nil {
		t.Error(err)
	}
}

func TestQuiet(t *testing.T) {
	inName := writeInput(t, "hello\n")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run([]string{"-q", inName}, stdout, stderr)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if stdout.Len() != 0 {
		t.Errorf("output despite -q:\n%s", stdout)
	}

	outName := strings.TrimSuffix(inName, ".txt") + ".pdf"
	if _, err := os.Stat(outName); err != nil {
		t.Error(err)
	}
}

func TestExitCodes(t *testing.T) {
	inName := writeInput(t, "hello\n")
	dir := filepath.Dir(inName)

	cases := []struct {
		args []string
		code int
	}{
		{[]string{}, exitConfig},
		{[]string{inName, inName}, exitConfig},
		{[]string{"-no-such-flag", inName}, exitConfig},
		{[]string{"-f", "Comic-Sans", inName}, exitConfig},
		{[]string{"-P", "B5", inName}, exitConfig},
		{[]string{filepath.Join(dir, "missing.txt")}, exitOpen},
		{[]string{"-o", filepath.Join(dir, "no", "out.pdf"), inName}, exitOpen},
		{[]string{"-o", inName, inName}, exitOpen},
		{[]string{"-version"}, exitOK},
		{[]string{"-h"}, exitOK},
	}
	for _, c := range cases {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		code := run(c.args, stdout, stderr)
		if code != c.code {
			t.Errorf("%q: exit code %d, want %d", c.args, code, c.code)
		}
	}
}
