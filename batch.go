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
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/labels/layout"
	"seehuhn.de/go/labels/render"
)

// A Batch lays out a sequence of labels which share the same canvas and
// font.
type Batch struct {
	Engine *layout.Engine
	Canvas layout.Canvas

	// Override is added to the font size of every label.
	Override int

	// Workers is the maximal number of labels laid out concurrently.
	// If this is zero, the number of CPUs is used.
	Workers int
}

// Layout computes the layouts for all blocks.  The results are returned
// in the order of the input.
//
// If the layout of any block fails, the first error is returned and
// the remaining work is abandoned.
func (b *Batch) Layout(ctx context.Context, blocks []layout.Block) ([]*layout.Result, error) {
	if err := b.Canvas.Check(); err != nil {
		return nil, err
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	res := make([]*layout.Result, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, block := range blocks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := b.Engine.Layout(b.Canvas, block, b.Override)
			if err != nil {
				return fmt.Errorf("label %d: %w", i+1, err)
			}
			res[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Render lays out all blocks and draws them onto t, one page per label.
// The number of pages drawn is returned.
func (b *Batch) Render(ctx context.Context, t render.Target, blocks []layout.Block) (int, error) {
	results, err := b.Layout(ctx, blocks)
	if err != nil {
		return 0, err
	}
	for i, r := range results {
		err = render.Draw(t, r)
		if err != nil {
			return i, fmt.Errorf("label %d: %w", i+1, err)
		}
	}
	return len(results), nil
}
