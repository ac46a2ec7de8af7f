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

package ornament

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/text2pdf/graphics"
)

func decorate(t *testing.T, box rect.Rect) string {
	t.Helper()

	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)
	Greenbar{}.Decorate(w, box)
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestGreenbarOperators(t *testing.T) {
	out := decorate(t, rect.Rect{URx: 612, URy: 792})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if lines[0] != "q" || lines[len(lines)-1] != "Q" {
		t.Errorf("ornament not wrapped in q/Q")
	}

	count := make(map[string]int)
	for _, line := range lines {
		fields := strings.Fields(line)
		count[fields[len(fields)-1]]++
	}

	// 10 bars, 3 strokes for the H and 3 for each C
	if count["S"] != 10+3+3*3 {
		t.Errorf("wrong number of strokes: %d", count["S"])
	}
	// 16 holes on each side, drawn as four curves each
	if count["s"] != 2*16 {
		t.Errorf("wrong number of holes: %d", count["s"])
	}
	if count["c"] != 4*2*16 {
		t.Errorf("wrong number of curves: %d", count["c"])
	}
}

func TestGreenbarGeometry(t *testing.T) {
	out := decorate(t, rect.Rect{URx: 612, URy: 792})

	expected := []string{
		"27 w\n0.8 1 0.8 RG\n30 61.75 m\n582 61.75 l\nS\n",
		"30 547.75 m\n582 547.75 l\nS\n",
		"3 w\n30 574.75 m\n30 601.75 l\nS\n",
		"108 600.75 m\n126 600.75 l\nS\n",
		"9 w\n0.3 0.3 0.3 RG\n" +
			"14 34.75 m\n" +
			"14 35.301784 14.448216 35.75 15 35.75 c\n" +
			"15.551784 35.75 16 35.301784 16 34.75 c\n" +
			"16 34.198216 15.551784 33.75 15 33.75 c\n" +
			"14.448216 33.75 14 34.198216 14 34.75 c\n" +
			"s\n",
		"596 574.75 m\n",
	}
	for _, s := range expected {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q", s)
		}
	}
	if strings.Contains(out, " 610.75 ") {
		t.Error("too many tractor holes")
	}
}

func TestGreenbarOffset(t *testing.T) {
	out := decorate(t, rect.Rect{LLx: 100, LLy: 200, URx: 400, URy: 500})
	if !strings.Contains(out, "130 261.75 m\n370 261.75 l\n") {
		t.Error("bars do not follow the page box")
	}
}

func TestNone(t *testing.T) {
	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)
	None{}.Decorate(w, rect.Rect{URx: 612, URy: 792})
	if buf.Len() != 0 || w.Err != nil {
		t.Errorf("None produced output %q", buf.String())
	}
}
