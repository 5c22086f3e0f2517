// Main command: quality trimming and length/quality filtering of FASTQ streams.
// Records are streamed from stdin to the output in their original order

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
)

// cleanOptions holds the configuration of a run. It is built from the command
// line once and not modified afterwards
type cleanOptions struct {
	MinLength      int
	MinAvgQuality  float64
	MinTrimQuality int
	PairedEnd      bool
	OutFile        string
	Verbose        bool
}

// validate checks value ranges that the flag parser cannot express
func (o cleanOptions) validate() error {
	if o.MinLength < 0 {
		return fmt.Errorf("min-length must be >= 0, got %d", o.MinLength)
	}
	if o.MinTrimQuality < 0 || o.MinTrimQuality > 255 {
		return fmt.Errorf("min-trim-quality must be between 0 and 255, got %d", o.MinTrimQuality)
	}
	if math.IsNaN(o.MinAvgQuality) {
		return fmt.Errorf("min-avg-quality must be a number")
	}
	if o.OutFile == "" {
		return fmt.Errorf("output file must not be empty (use '-' for stdout)")
	}
	return nil
}

// cleanStats counts what happened to the input during a run
type cleanStats struct {
	Lines        int64
	Records      int64
	Written      int64
	Filtered     int64
	PartialLines int64
}

// openOutput opens the output stream; replaced in tests
var openOutput = func(file string) (io.WriteCloser, error) {
	return xopen.Wopen(file)
}

// runCleanCommand opens the output, runs the filter over the command's input
// (stdin) and reports the summary when verbose. Returns an error if the run fails
func runCleanCommand(cmd *cobra.Command, opts cleanOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	outfh, err := openOutput(opts.OutFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	// Input is always the process stdin, read as plain text (no decompression)
	stats, runErr := runClean(cmd.InOrStdin(), outfh, opts)
	closeErr := outfh.Close()

	if runErr != nil && !isBrokenPipe(runErr) {
		return runErr
	}
	if closeErr != nil && !isBrokenPipe(closeErr) {
		return fmt.Errorf("error closing output: %w", closeErr)
	}

	if opts.Verbose {
		stats.logSummary(cmd.ErrOrStderr(), opts)
	}
	return nil
}

// runClean is the single-pass driver. It reads one line at a time, hands it to
// the record assembler, and writes every completed record that passes the
// length and quality filters. A trailing incomplete record is dropped
//
// Returns the run statistics and the first read or write error
func runClean(in io.Reader, out io.Writer, o cleanOptions) (cleanStats, error) {
	var stats cleanStats

	assembler := newRecordAssembler(o.PairedEnd, o.MinTrimQuality)
	scanner := newLineScanner(in)

	for scanner.Scan() {
		stats.Lines++

		rec, ok := assembler.Feed(scanner.Bytes())
		if !ok {
			continue
		}
		stats.Records++

		if !passesFilters(rec, o.MinLength, o.MinAvgQuality) {
			stats.Filtered++
			continue
		}
		if err := writeRecord(out, rec); err != nil {
			return stats, fmt.Errorf("error writing record: %w", err)
		}
		stats.Written++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("error reading input: %w", err)
	}

	stats.PartialLines = int64(assembler.Pending())
	return stats, nil
}

// logSummary prints the run statistics to w
func (s cleanStats) logSummary(w io.Writer, o cleanOptions) {
	unit := "reads"
	if o.PairedEnd {
		unit = "read pairs"
	}
	if s.PartialLines > 0 {
		fmt.Fprintln(w, yellow(fmt.Sprintf("Warning: dropped %d trailing line(s) of an incomplete record", s.PartialLines)))
	}
	fmt.Fprintf(w, "%s %d lines, %d %s; %s %d, %s %d\n",
		cyan("Processed"), s.Lines, s.Records, unit,
		bold("kept"), s.Written,
		bold("filtered"), s.Filtered)
}
