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

// Package records turns a stream of text records into label blocks.
//
// Every input line is one record.  A record is split into fields at the
// field separator, and the fields are arranged according to the layout
// mode.  Optionally, the first line names the columns, and only selected
// columns are used.  Fields are not quoted or escaped in any way; the input is
// typically the output of a spreadsheet export with tab separated columns.
package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"seehuhn.de/go/labels/layout"
)

// Options control how records are converted into blocks.
type Options struct {
	Mode layout.Mode

	// FieldSeparator splits a record into fields.
	// If this is empty, a tab character is used.
	FieldSeparator string

	// Join is placed between the fields of a freeform record.
	// The two-character sequence `\n` stands for a newline, so that
	// fields can be stacked on separate lines.
	Join string

	// If Header is set, the first line holds the column names and is not
	// turned into a label.
	Header bool

	// Columns selects fields by their column name, in the given order.
	// If this is empty, all fields are used.  Columns requires Header.
	Columns []string
}

// DefaultOptions returns the options used when nil is passed to [Read].
func DefaultOptions() *Options {
	return &Options{
		Mode:           layout.Freeform,
		FieldSeparator: "\t",
		Join:           " ",
	}
}

// maxLine is the longest input line accepted by Read.
const maxLine = 1 << 20

// Read reads all records from r.
//
// Records which contain only white space, and records whose text is "nan"
// in any capitalisation, are skipped.  Spreadsheet exports often use "nan"
// for missing values.  If opt.Header is set, the first line is used only
// to look up the column names from opt.Columns.
func Read(r io.Reader, opt *Options) ([]layout.Block, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	sep := opt.FieldSeparator
	if sep == "" {
		sep = "\t"
	}
	join := Unescape(opt.Join)

	if len(opt.Columns) > 0 && !opt.Header {
		return nil, errors.New("records: column selection needs a header line")
	}

	var res []layout.Block
	var index []int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := splitFields(scanner.Text(), sep)
		if lineNo == 1 && opt.Header {
			fields[0] = strings.TrimPrefix(fields[0], byteOrderMark)
			var err error
			index, err = columnIndex(fields, opt.Columns)
			if err != nil {
				return nil, fmt.Errorf("records: line 1: %w", err)
			}
			continue
		}
		if index != nil {
			fields = selectFields(fields, index)
		}
		if isBlank(strings.Join(fields, join)) {
			continue
		}

		var b layout.Block
		switch opt.Mode {
		case layout.Freeform:
			b = layout.Text(strings.TrimSpace(strings.Join(fields, join)))
		case layout.Wrapped:
			b = layout.Paragraphs(fields)
		case layout.Sectioned:
			sections := make(layout.Sections, len(fields))
			for i, f := range fields {
				sections[i] = layout.SplitWords(f)
			}
			b = sections
		default:
			return nil, fmt.Errorf("records: line %d: unsupported mode %s", lineNo, opt.Mode)
		}
		res = append(res, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("records: line %d: %w", lineNo+1, err)
	}
	return res, nil
}

const byteOrderMark = "\ufeff"

func splitFields(line, sep string) []string {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), sep)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// columnIndex returns the positions of the named columns in the header.
// If no columns are named, the result is nil.
func columnIndex(header, columns []string) ([]int, error) {
	if len(columns) == 0 {
		return nil, nil
	}
	index := make([]int, len(columns))
	for i, name := range columns {
		pos := slices.Index(header, strings.TrimSpace(name))
		if pos < 0 {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		index[i] = pos
	}
	return index, nil
}

// selectFields picks the fields at the given positions.  Fields missing
// from short lines are empty.
func selectFields(fields []string, index []int) []string {
	res := make([]string, len(index))
	for i, pos := range index {
		if pos < len(fields) {
			res[i] = fields[pos]
		}
	}
	return res
}

// Unescape replaces the two-character sequence `\n` by a newline and `\t`
// by a tab character.
func Unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}

func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}
