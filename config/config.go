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

// Package config reads label job descriptions.
//
// A job file fixes everything about a print run except for the records
// themselves: the label size, the font, the layout mode and the PDF
// settings.  Job files can be written in YAML or in TOML:
//
//	width_mm: 62
//	height_mm: 29
//	font: Helvetica-Bold
//	override: -1
//	mode: sectioned
//
// Fields which are missing from the file keep their default values, see
// [Default].
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/labels/layout"
	"seehuhn.de/go/labels/metrics"
	"seehuhn.de/go/labels/records"
)

// Limits for the label size, in millimetres.
const (
	MinSizeMM = 10
	MaxSizeMM = 500
)

// MaxOverride is the largest allowed font size override, in either
// direction.
const MaxOverride = 5

// Job describes a label print run.
type Job struct {
	// ID identifies the print run.  It is recorded in the PDF metadata.
	// If it is empty, Validate fills in a random UUID.
	ID string `yaml:"id" toml:"id"`

	WidthMM  float64 `yaml:"width_mm" toml:"width_mm"`
	HeightMM float64 `yaml:"height_mm" toml:"height_mm"`

	Font     string `yaml:"font" toml:"font"`
	Override int    `yaml:"override" toml:"override"`
	Mode     string `yaml:"mode" toml:"mode"`

	// AFM optionally names a font metrics file for the printer's version
	// of Font.
	AFM string `yaml:"afm" toml:"afm"`

	// Join, FieldSeparator, Header and Columns control how records are
	// read.
	// See [records.Options].
	Join           string `yaml:"join" toml:"join"`
	FieldSeparator string `yaml:"field_separator" toml:"field_separator"`

	// If Header is set, the first input line holds the column names.
	// Columns then optionally selects the columns used for the labels.
	Header  bool     `yaml:"header" toml:"header"`
	Columns []string `yaml:"columns" toml:"columns"`

	// Workers is the number of labels laid out in parallel.
	// Zero means one worker per CPU.
	Workers int `yaml:"workers" toml:"workers"`

	PDF    PDF    `yaml:"pdf" toml:"pdf"`
	Layout Layout `yaml:"layout" toml:"layout"`
}

// PDF holds the settings for the generated PDF file.
type PDF struct {
	Title         string  `yaml:"title" toml:"title"`
	Author        string  `yaml:"author" toml:"author"`
	UserPassword  string  `yaml:"user_password" toml:"user_password"`
	OwnerPassword string  `yaml:"owner_password" toml:"owner_password"`
	RuleWidth     float64 `yaml:"rule_width" toml:"rule_width"`
}

// Layout overrides the spacing constants of the layout engine.
// Nil fields keep the defaults from [layout.DefaultParams].
type Layout struct {
	Margin       *float64 `yaml:"margin" toml:"margin"`
	LineSpacing  *float64 `yaml:"line_spacing" toml:"line_spacing"`
	SectionGap   *float64 `yaml:"section_gap" toml:"section_gap"`
	DividerInset *float64 `yaml:"divider_inset" toml:"divider_inset"`
	Adjustment   *int     `yaml:"adjustment" toml:"adjustment"`
}

// Default returns the default job: 50x30mm labels with freeform text in
// Helvetica-Bold.
func Default() *Job {
	return &Job{
		WidthMM:        50,
		HeightMM:       30,
		Font:           string(metrics.HelveticaBold),
		Mode:           layout.Freeform.String(),
		Join:           " ",
		FieldSeparator: "\t",
	}
}

// Load reads a job file.  The format is chosen by the file name extension:
// ".yaml" and ".yml" for YAML, ".toml" for TOML.
// The returned job has been validated.
func Load(fname string) (*Job, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	job := Default()
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, job)
	case ".toml":
		err = toml.Unmarshal(data, job)
	default:
		return nil, fmt.Errorf("%s: unknown job file format %q", fname, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	err = job.Validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return job, nil
}

// Validate checks the job for errors and fills in the job ID if needed.
func (job *Job) Validate() error {
	if job.WidthMM < MinSizeMM || job.WidthMM > MaxSizeMM {
		return fmt.Errorf("width %gmm outside range %d-%dmm", job.WidthMM, MinSizeMM, MaxSizeMM)
	}
	if job.HeightMM < MinSizeMM || job.HeightMM > MaxSizeMM {
		return fmt.Errorf("height %gmm outside range %d-%dmm", job.HeightMM, MinSizeMM, MaxSizeMM)
	}
	if err := metrics.Font(job.Font).Check(); err != nil {
		return err
	}
	if job.Override < -MaxOverride || job.Override > MaxOverride {
		return fmt.Errorf("font size override %d outside range %d to %d",
			job.Override, -MaxOverride, MaxOverride)
	}
	if _, err := layout.ParseMode(job.Mode); err != nil {
		return err
	}
	if len(job.Columns) > 0 && !job.Header {
		return errors.New("column selection needs a header line")
	}
	if job.Workers < 0 {
		return fmt.Errorf("invalid number of workers %d", job.Workers)
	}
	if job.PDF.RuleWidth < 0 {
		return fmt.Errorf("invalid rule width %g", job.PDF.RuleWidth)
	}
	if err := job.Params().Validate(); err != nil {
		return err
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return nil
}

// Canvas returns the label canvas in PDF points.
func (job *Job) Canvas() layout.Canvas {
	return layout.CanvasMM(job.WidthMM, job.HeightMM)
}

// Params returns the layout parameters, with the overrides from the job
// applied.
func (job *Job) Params() *layout.Params {
	p := layout.DefaultParams()
	l := &job.Layout
	if l.Margin != nil {
		p.Margin = *l.Margin
	}
	if l.LineSpacing != nil {
		p.LineSpacing = *l.LineSpacing
	}
	if l.SectionGap != nil {
		p.SectionGap = *l.SectionGap
	}
	if l.DividerInset != nil {
		p.DividerInset = *l.DividerInset
	}
	if l.Adjustment != nil {
		p.Adjustment = *l.Adjustment
	}
	return p
}

// Records returns the options for reading the records of this job.
// The job must have been validated.
func (job *Job) Records() *records.Options {
	mode, _ := layout.ParseMode(job.Mode)
	return &records.Options{
		Mode:           mode,
		FieldSeparator: records.Unescape(job.FieldSeparator),
		Join:           job.Join,
		Header:         job.Header,
		Columns:        job.Columns,
	}
}
