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

// Labels prints one auto-sized label per input record.
//
// Records are read from the files given on the command line, or from
// standard input if no files are given.  Every line is one record, with
// fields separated by tab characters.  The output is a PDF file with one
// page per label, where the page size equals the label size.
//
// Usage:
//
//	labels [flags] [records.txt ...]
//
// With -header, the first line of each input names the columns, and
// -columns selects the columns which make up a label.
//
// Settings can be collected in a YAML or TOML job file, given with -c.
// Flags given on the command line take precedence over the job file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/config"
	"seehuhn.de/go/labels/internal/buildinfo"
	"seehuhn.de/go/labels/internal/profile"
	"seehuhn.de/go/labels/layout"
	"seehuhn.de/go/labels/metrics"
	"seehuhn.de/go/labels/records"
	"seehuhn.de/go/labels/render"
)

const toolName = "labels"

func main() {
	log.SetFlags(0)
	log.SetPrefix(toolName + ": ")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	cancel()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

type options struct {
	jobFile string
	out     string
	force   bool
	dryRun  bool
	version bool

	cpuprofile string
	memprofile string

	job *config.Job
}

func parseArgs(args []string, stderr io.Writer) (*options, []string, error) {
	opt := &options{}
	job := config.Default()

	flags := flag.NewFlagSet(toolName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opt.jobFile, "c", "", "read settings from this job file (YAML or TOML)")
	flags.StringVar(&opt.out, "o", "labels.pdf", "output file name, \"-\" for standard output")
	flags.BoolVar(&opt.force, "f", false, "overwrite output file if it exists")
	flags.BoolVar(&opt.dryRun, "n", false, "list the drawing commands instead of writing a PDF file")
	flags.BoolVar(&opt.version, "version", false, "print version information and exit")
	flags.StringVar(&opt.cpuprofile, "cpuprofile", "", "write CPU profile to file")
	flags.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to file")

	flags.StringVar(&job.Font, "font", job.Font, "font name, one of the six standard PDF fonts")
	flags.Float64Var(&job.WidthMM, "width", job.WidthMM, "label width in mm")
	flags.Float64Var(&job.HeightMM, "height", job.HeightMM, "label height in mm")
	flags.IntVar(&job.Override, "override", job.Override, "font size adjustment in points")
	flags.StringVar(&job.Mode, "mode", job.Mode, "layout mode: freeform, wrapped or sectioned")
	flags.StringVar(&job.Join, "join", job.Join, "string used to join the fields of a freeform record")
	flags.StringVar(&job.FieldSeparator, "fs", job.FieldSeparator, "field separator")
	flags.IntVar(&job.Workers, "j", job.Workers, "number of parallel layout workers (0 = one per CPU)")
	flags.StringVar(&job.AFM, "afm", job.AFM, "AFM file with the printer's font metrics")
	flags.StringVar(&job.PDF.Title, "title", job.PDF.Title, "document title")
	flags.BoolVar(&job.Header, "header", job.Header, "the first input line holds the column names")
	var columns string
	flags.StringVar(&columns, "columns", "", "comma separated list of the columns to use (requires -header)")

	err := flags.Parse(args)
	if err != nil {
		return nil, nil, err
	}
	if columns != "" {
		job.Columns = splitList(columns)
	}

	if opt.jobFile != "" {
		fromFile, err := config.Load(opt.jobFile)
		if err != nil {
			return nil, nil, err
		}
		// command line flags take precedence
		flags.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "font":
				fromFile.Font = job.Font
			case "width":
				fromFile.WidthMM = job.WidthMM
			case "height":
				fromFile.HeightMM = job.HeightMM
			case "override":
				fromFile.Override = job.Override
			case "mode":
				fromFile.Mode = job.Mode
			case "join":
				fromFile.Join = job.Join
			case "fs":
				fromFile.FieldSeparator = job.FieldSeparator
			case "j":
				fromFile.Workers = job.Workers
			case "afm":
				fromFile.AFM = job.AFM
			case "title":
				fromFile.PDF.Title = job.PDF.Title
			case "header":
				fromFile.Header = job.Header
			case "columns":
				fromFile.Columns = job.Columns
			}
		})
		job = fromFile
	}
	err = job.Validate()
	if err != nil {
		return nil, nil, err
	}
	opt.job = job

	return opt, flags.Args(), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opt, inputs, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	if opt.version {
		fmt.Fprintln(stdout, buildinfo.Creator(toolName))
		return nil
	}

	stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	job := opt.job
	blocks, err := readRecords(inputs, stdin, job.Records())
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return errors.New("no labels")
	}

	e, err := newEngine(job)
	if err != nil {
		return err
	}
	batch := &labels.Batch{
		Engine:   e,
		Canvas:   job.Canvas(),
		Override: job.Override,
		Workers:  job.Workers,
	}

	if opt.dryRun {
		rec := &render.Recorder{}
		_, err = batch.Render(ctx, rec, blocks)
		if err != nil {
			return err
		}
		_, err = rec.WriteTo(stdout)
		return err
	}

	if opt.out == "-" {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return errors.New("refusing to write PDF data to a terminal")
		}
	} else if !opt.force {
		if _, err := os.Stat(opt.out); err == nil {
			return fmt.Errorf("output file %q already exists", opt.out)
		}
	}

	p, err := render.NewPDF(&render.Info{
		Title:         job.PDF.Title,
		Author:        job.PDF.Author,
		Subject:       "label job " + job.ID,
		Creator:       buildinfo.Creator(toolName),
		RuleWidth:     job.PDF.RuleWidth,
		UserPassword:  job.PDF.UserPassword,
		OwnerPassword: job.PDF.OwnerPassword,
	})
	if err != nil {
		return err
	}
	n, err := batch.Render(ctx, p, blocks)
	if err != nil {
		return err
	}

	if opt.out == "-" {
		return p.Write(stdout)
	}
	err = writeFile(opt.out, p)
	if err != nil {
		return err
	}
	log.Printf("wrote %d labels to %s", n, opt.out)
	return nil
}

func newEngine(job *config.Job) (*layout.Engine, error) {
	F := metrics.Font(job.Font)
	if job.AFM == "" {
		return layout.New(F, job.Params())
	}
	ww, err := metrics.LoadAFM(job.AFM)
	if err != nil {
		return nil, err
	}
	return layout.NewWithFace(F, ww, job.Params())
}

func readRecords(inputs []string, stdin io.Reader, opt *records.Options) ([]layout.Block, error) {
	if len(inputs) == 0 {
		return records.Read(stdin, opt)
	}

	var blocks []layout.Block
	for _, fname := range inputs {
		var bb []layout.Block
		var err error
		if fname == "-" {
			bb, err = records.Read(stdin, opt)
		} else {
			bb, err = readFile(fname, opt)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		blocks = append(blocks, bb...)
	}
	return blocks, nil
}

func readFile(fname string, opt *records.Options) ([]layout.Block, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return records.Read(fd, opt)
}

// splitList splits a comma separated list and trims the elements.
func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}

func writeFile(fname string, p *render.PDF) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = p.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
