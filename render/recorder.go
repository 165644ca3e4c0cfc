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

package render

import (
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/labels/layout"
	"seehuhn.de/go/labels/metrics"
)

// A Recorder is a [Target] which stores the drawing commands in memory.
// The recorded pages can later be replayed onto another target, using
// [Recorder.ApplyTo].
type Recorder struct {
	Pages []*Page
}

// Page holds the recorded commands of one page.
type Page struct {
	Canvas layout.Canvas
	Cmds   []Cmd
}

// Cmd is a recorded drawing command.
// Only the fields relevant for the given Op are set.
type Cmd struct {
	Op   Op
	Font metrics.Font
	Size float64
	At   vec.Vec2
	To   vec.Vec2
	Text string
}

// Op identifies the kind of a recorded command.
type Op int

// These are the recorded operations.
const (
	OpSetFont Op = iota
	OpShowText
	OpRule
)

func (op Op) String() string {
	switch op {
	case OpSetFont:
		return "font"
	case OpShowText:
		return "text"
	case OpRule:
		return "rule"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

var errNoPage = errors.New("render: drawing command outside a page")

// NewPage implements the [Target] interface.
func (r *Recorder) NewPage(c layout.Canvas) error {
	r.Pages = append(r.Pages, &Page{Canvas: c})
	return nil
}

// SetFont implements the [Target] interface.
func (r *Recorder) SetFont(F metrics.Font, size float64) error {
	return r.record(Cmd{Op: OpSetFont, Font: F, Size: size})
}

// ShowText implements the [Target] interface.
func (r *Recorder) ShowText(x, y float64, text string) error {
	return r.record(Cmd{Op: OpShowText, At: vec.Vec2{X: x, Y: y}, Text: text})
}

// Rule implements the [Target] interface.
func (r *Recorder) Rule(from, to vec.Vec2) error {
	return r.record(Cmd{Op: OpRule, At: from, To: to})
}

func (r *Recorder) record(cmd Cmd) error {
	if len(r.Pages) == 0 {
		return errNoPage
	}
	page := r.Pages[len(r.Pages)-1]
	page.Cmds = append(page.Cmds, cmd)
	return nil
}

// ApplyTo replays all recorded pages onto t.
func (r *Recorder) ApplyTo(t Target) error {
	for _, page := range r.Pages {
		err := t.NewPage(page.Canvas)
		if err != nil {
			return err
		}
		for _, cmd := range page.Cmds {
			switch cmd.Op {
			case OpSetFont:
				err = t.SetFont(cmd.Font, cmd.Size)
			case OpShowText:
				err = t.ShowText(cmd.At.X, cmd.At.Y, cmd.Text)
			case OpRule:
				err = t.Rule(cmd.At, cmd.To)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTo writes a human readable listing of the recorded commands to w.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	out := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}
	for i, page := range r.Pages {
		err := out("page %d: %.2fx%.2f\n", i+1, page.Canvas.Width, page.Canvas.Height)
		if err != nil {
			return total, err
		}
		for _, cmd := range page.Cmds {
			switch cmd.Op {
			case OpSetFont:
				err = out("  font %s %g\n", cmd.Font, cmd.Size)
			case OpShowText:
				err = out("  text %.2f %.2f %q\n", cmd.At.X, cmd.At.Y, cmd.Text)
			case OpRule:
				err = out("  rule %.2f %.2f %.2f %.2f\n", cmd.At.X, cmd.At.Y, cmd.To.X, cmd.To.Y)
			}
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}
