// seehuhn.de/go/labels - print auto-sized text labels as PDF pages
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

package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/labels/metrics"
)

// monoFace is a test face where every byte has the same width, given in
// glyph space units.
type monoFace float64

func (f monoFace) Width(text string, size float64) float64 {
	return float64(len(text)) * float64(f) * size / 1000
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewWithFace(metrics.Courier, monoFace(500), nil)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestFreeformPositions(t *testing.T) {
	e := testEngine(t)
	c := Canvas{Width: 100, Height: 50}

	// widths are s and 2s, height is 2s+2
	res, err := e.Layout(c, Text("AB\nCDEF"), 0)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Canvas:   c,
		Font:     metrics.Courier,
		Mode:     Freeform,
		RawSize:  22,
		FontSize: 20,
		Lines: []Line{
			{Text: "AB", Pos: vec.Vec2{X: 40, Y: 26}},
			{Text: "CDEF", Pos: vec.Vec2{X: 30, Y: 4}},
		},
	}
	if d := cmp.Diff(want, res); d != "" {
		t.Errorf("unexpected layout (-want +got):\n%s", d)
	}
}

func TestWrappedPositions(t *testing.T) {
	e := testEngine(t)
	c := Canvas{Width: 44, Height: 100}

	// At sizes up to 10 the text fits on one line, up to 16 on two lines,
	// and from then on it needs three lines.  Three lines fit up to size 30.
	res, err := e.Layout(c, Paragraphs{"AA BB CC"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Canvas:   c,
		Font:     metrics.Courier,
		Mode:     Wrapped,
		RawSize:  30,
		FontSize: 28,
		Lines: []Line{
			{Text: "AA", Pos: vec.Vec2{X: 8, Y: 66}},
			{Text: "BB", Pos: vec.Vec2{X: 8, Y: 36}},
			{Text: "CC", Pos: vec.Vec2{X: 8, Y: 6}},
		},
	}
	if d := cmp.Diff(want, res); d != "" {
		t.Errorf("unexpected layout (-want +got):\n%s", d)
	}

	for _, size := range []int{10, 16, 30} {
		if !e.Fits(c, Paragraphs{"AA BB CC"}, size) {
			t.Errorf("text does not fit at size %d", size)
		}
	}
	if e.Fits(c, Paragraphs{"AA BB CC"}, 31) {
		t.Error("text fits at size 31")
	}
}

func TestSectionedPositions(t *testing.T) {
	e := testEngine(t)
	c := Canvas{Width: 100, Height: 100}

	// height is (2s+2) + s + 2
	res, err := e.Layout(c, Sections{{"AB", "CD"}, {"EF"}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{
		Canvas:   c,
		Font:     metrics.Courier,
		Mode:     Sectioned,
		RawSize:  30,
		FontSize: 28,
		Lines: []Line{
			{Text: "AB", Pos: vec.Vec2{X: 36, Y: 66}},
			{Text: "CD", Pos: vec.Vec2{X: 36, Y: 36}},
			{Text: "EF", Pos: vec.Vec2{X: 36, Y: 6}, Section: 1},
		},
		Rules: []Rule{
			{From: vec.Vec2{X: 2, Y: 35}, To: vec.Vec2{X: 98, Y: 35}},
		},
	}
	if d := cmp.Diff(want, res); d != "" {
		t.Errorf("unexpected layout (-want +got):\n%s", d)
	}
}

// TestHello checks the layout of a single word on a 50x30mm label.
func TestHello(t *testing.T) {
	c := CanvasMM(50, 30)
	res, err := Compute(c, metrics.Helvetica, Text("HELLO"), 0)
	if err != nil {
		t.Fatal(err)
	}

	// "HELLO" is 3279 glyph space units wide
	if res.RawSize != 42 {
		t.Errorf("raw size %d, want 42", res.RawSize)
	}
	if res.FontSize != res.RawSize-2 {
		t.Errorf("font size %d, want %d", res.FontSize, res.RawSize-2)
	}
	if len(res.Lines) != 1 || res.Lines[0].Text != "HELLO" {
		t.Fatalf("unexpected lines %v", res.Lines)
	}
	pos := res.Lines[0].Pos
	wantX := (c.Width - 3.279*40) / 2
	wantY := (c.Height - 40) / 2
	if math.Abs(pos.X-wantX) > 1e-9 || math.Abs(pos.Y-wantY) > 1e-9 {
		t.Errorf("line at %v, want (%g, %g)", pos, wantX, wantY)
	}
}

func TestWrappedStable(t *testing.T) {
	c := Canvas{Width: 60, Height: 85}
	b := Paragraphs{"ORDER NUMBER TWELVE THREE FOUR"}

	first, err := Compute(c, metrics.Helvetica, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Lines) < 2 {
		t.Fatalf("expected at least two lines, got %d", len(first.Lines))
	}
	for i := 0; i < 5; i++ {
		again, err := Compute(c, metrics.Helvetica, b, 0)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(first, again); d != "" {
			t.Fatalf("layout changed between calls:\n%s", d)
		}
	}
}

func TestSectionDivider(t *testing.T) {
	c := CanvasMM(50, 30)
	b := Sections{{"INV", "2024"}, {"JANE", "DOE"}}
	res, err := Compute(c, metrics.HelveticaBold, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rules) != 1 {
		t.Fatalf("expected one rule, got %d", len(res.Rules))
	}
	rule := res.Rules[0]
	if rule.From.Y != rule.To.Y {
		t.Errorf("rule is not horizontal: %v", rule)
	}
	if rule.From.X != 2 || rule.To.X != c.Width-2 {
		t.Errorf("wrong rule extent: %v", rule)
	}

	size := float64(res.FontSize)
	upperBottom := math.Inf(1)
	lowerTop := math.Inf(-1)
	for _, line := range res.Lines {
		switch line.Section {
		case 0:
			upperBottom = min(upperBottom, line.Pos.Y)
		case 1:
			lowerTop = max(lowerTop, line.Pos.Y+size)
		}
	}
	if !(lowerTop < rule.From.Y && rule.From.Y < upperBottom) {
		t.Errorf("rule at %g not between sections [%g, %g]", rule.From.Y, lowerTop, upperBottom)
	}

	var words []string
	for _, line := range res.Lines {
		words = append(words, line.Text)
	}
	if d := cmp.Diff([]string{"INV", "2024", "JANE", "DOE"}, words); d != "" {
		t.Errorf("wrong word order (-want +got):\n%s", d)
	}
}

func TestEmpty(t *testing.T) {
	c := CanvasMM(50, 30)
	blocks := []Block{
		Text(""),
		Paragraphs(nil),
		Paragraphs{""},
		Paragraphs{"   "},
		Sections(nil),
		Sections{{}},
	}
	for _, b := range blocks {
		res, err := Compute(c, metrics.Helvetica, b, 0)
		if err != nil {
			t.Fatalf("%#v: %v", b, err)
		}
		if len(res.Lines) != 1 || res.Lines[0].Text != "" {
			t.Errorf("%#v: unexpected lines %v", b, res.Lines)
		}
		if res.FontSize < 1 {
			t.Errorf("%#v: invalid font size %d", b, res.FontSize)
		}
		if len(res.Rules) != 0 {
			t.Errorf("%#v: unexpected rules", b)
		}
	}
}

func TestEffectiveSize(t *testing.T) {
	cases := []struct {
		raw, adj, override, want int
	}{
		{3, 2, 5, 6},
		{3, 2, 0, 1},
		{3, 2, -1, 1},
		{3, 2, -5, 1},
		{4, 2, 0, 2},
		{4, 2, -1, 1},
		{4, 2, -2, 1},
		{1, 2, 0, 1},
		{40, 2, -5, 33},
		{40, 0, 0, 40},
	}
	for _, c := range cases {
		got := EffectiveSize(c.raw, c.adj, c.override)
		if got != c.want {
			t.Errorf("EffectiveSize(%d, %d, %d) = %d, want %d",
				c.raw, c.adj, c.override, got, c.want)
		}
	}
}

func TestOverride(t *testing.T) {
	c := CanvasMM(50, 30)
	prev := math.MaxInt
	for override := 5; override >= -5; override-- {
		res, err := Compute(c, metrics.TimesRoman, Text("Lot 17\nShelf B"), override)
		if err != nil {
			t.Fatal(err)
		}
		if res.FontSize > prev {
			t.Errorf("override %d: size increased to %d", override, res.FontSize)
		}
		if res.FontSize != EffectiveSize(res.RawSize, 2, override) {
			t.Errorf("override %d: size %d, raw %d", override, res.FontSize, res.RawSize)
		}
		prev = res.FontSize
	}
}

func TestTinyCanvas(t *testing.T) {
	// Nothing fits at size 1, the result is still 1.
	c := Canvas{Width: 3, Height: 3}
	e, err := New(metrics.Helvetica, nil)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := e.MaxFontSize(c, Text("X"))
	if err != nil {
		t.Fatal(err)
	}
	if raw != 1 {
		t.Errorf("raw size %d, want 1", raw)
	}
}

func TestInvalidCanvas(t *testing.T) {
	canvases := []Canvas{
		{},
		{Width: -1, Height: 10},
		{Width: 10, Height: 0},
		{Width: math.NaN(), Height: 10},
		{Width: 10, Height: math.Inf(1)},
		{Width: 1e12, Height: 1e12},
		{Width: 100, Height: MaxSize + 1},
	}
	for _, c := range canvases {
		_, err := Compute(c, metrics.Helvetica, Text("X"), 0)
		if !errors.Is(err, ErrInvalidCanvas) {
			t.Errorf("%v: expected ErrInvalidCanvas, got %v", c, err)
		}
	}
}

func TestLargestCanvas(t *testing.T) {
	e := testEngine(t)
	c := Canvas{Width: MaxSize, Height: MaxSize}
	raw, err := e.MaxFontSize(c, Text("X"))
	if err != nil {
		t.Fatal(err)
	}
	// one line of height s fits iff s <= MaxSize - 4
	if raw != MaxSize-4 {
		t.Errorf("got raw size %d, want %d", raw, MaxSize-4)
	}
}

func TestInvalidFontFirst(t *testing.T) {
	_, err := Compute(Canvas{}, metrics.Font("Arial"), Text("X"), 0)
	if !errors.Is(err, metrics.ErrInvalidFont) {
		t.Errorf("expected ErrInvalidFont, got %v", err)
	}
}

func TestInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.LineSpacing = -1
	_, err := New(metrics.Helvetica, p)
	if err == nil {
		t.Error("negative line spacing accepted")
	}

	p = DefaultParams()
	p.Margin = math.NaN()
	_, err = New(metrics.Helvetica, p)
	if err == nil {
		t.Error("NaN margin accepted")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Freeform, Wrapped, Sectioned} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Error(err)
		} else if got != m {
			t.Errorf("got %s, want %s", got, m)
		}
	}
	if _, err := ParseMode("stacked"); err == nil {
		t.Error("unknown mode accepted")
	}
}
