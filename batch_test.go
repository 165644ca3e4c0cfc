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

package labels

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/labels/layout"
	"seehuhn.de/go/labels/metrics"
	"seehuhn.de/go/labels/render"
)

func testBlocks(n int) []layout.Block {
	var blocks []layout.Block
	for i := range n {
		switch i % 3 {
		case 0:
			blocks = append(blocks, layout.Text(fmt.Sprintf("INV-%d", i)))
		case 1:
			blocks = append(blocks, layout.Paragraphs{"Jane Doe", fmt.Sprintf("order %d of many", i)})
		default:
			blocks = append(blocks, layout.Sections{{"INV", fmt.Sprint(i)}, {"DOE"}})
		}
	}
	return blocks
}

func testBatch(t *testing.T, workers int) *Batch {
	t.Helper()
	e, err := layout.New(metrics.HelveticaBold, nil)
	if err != nil {
		t.Fatal(err)
	}
	return &Batch{
		Engine:   e,
		Canvas:   layout.CanvasMM(50, 30),
		Override: -1,
		Workers:  workers,
	}
}

func TestLayoutOrder(t *testing.T) {
	blocks := testBlocks(50)
	b := testBatch(t, 8)

	var want []*layout.Result
	for _, block := range blocks {
		r, err := b.Engine.Layout(b.Canvas, block, b.Override)
		if err != nil {
			t.Fatal(err)
		}
		want = append(want, r)
	}

	for _, workers := range []int{0, 1, 8} {
		b.Workers = workers
		got, err := b.Layout(context.Background(), blocks)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("workers=%d: results differ (-want +got):\n%s", workers, d)
		}
	}
}

func TestLayoutCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testBatch(t, 2).Layout(ctx, testBlocks(10))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLayoutInvalidCanvas(t *testing.T) {
	b := testBatch(t, 0)
	b.Canvas = layout.Canvas{Width: 0, Height: 10}
	_, err := b.Layout(context.Background(), testBlocks(3))
	if !errors.Is(err, layout.ErrInvalidCanvas) {
		t.Errorf("expected ErrInvalidCanvas, got %v", err)
	}
}

func TestLayoutEmpty(t *testing.T) {
	res, err := testBatch(t, 0).Layout(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 0 {
		t.Errorf("got %d results for no input", len(res))
	}
}

func TestRender(t *testing.T) {
	blocks := testBlocks(7)
	b := testBatch(t, 3)

	rec := &render.Recorder{}
	n, err := b.Render(context.Background(), rec, blocks)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(blocks) || len(rec.Pages) != len(blocks) {
		t.Fatalf("got %d/%d pages, want %d", n, len(rec.Pages), len(blocks))
	}

	for i, page := range rec.Pages {
		if page.Canvas != b.Canvas {
			t.Errorf("page %d: wrong canvas %v", i+1, page.Canvas)
		}
		if len(page.Cmds) < 2 || page.Cmds[0].Op != render.OpSetFont {
			t.Errorf("page %d: unexpected commands %v", i+1, page.Cmds)
		}
	}

	// the first text on page 1 is the freeform label "INV-0"
	if got := rec.Pages[0].Cmds[1].Text; got != "INV-0" {
		t.Errorf("page 1 shows %q, want %q", got, "INV-0")
	}
	// section dividers only appear on the sectioned labels
	for i, page := range rec.Pages {
		hasRule := false
		for _, cmd := range page.Cmds {
			if cmd.Op == render.OpRule {
				hasRule = true
			}
		}
		if hasRule != (i%3 == 2) {
			t.Errorf("page %d: hasRule=%t", i+1, hasRule)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	p, err := render.NewPDF(nil)
	if err != nil {
		t.Fatal(err)
	}
	n, err := testBatch(t, 0).Render(context.Background(), p, testBlocks(4))
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || p.Pages() != 4 {
		t.Errorf("got %d/%d pages, want 4", n, p.Pages())
	}
}
