// I/O utilities for filtering and writing FASTQ records

package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"syscall"
)

// Longest line accepted from the input (long-read data can exceed bufio defaults)
const maxLineSize = 1 << 30

// passesFilters reports whether every read of a record is at least minLength
// long and has an average quality of at least minAvgQual. A pair passes or
// fails as a unit; reads with no bases left never pass
func passesFilters(rec *fastqRecord, minLength int, minAvgQual float64) bool {
	if len(rec.Reads) == 0 {
		return false
	}
	for _, read := range rec.Reads {
		if len(read.Seq.Seq) < minLength {
			return false
		}
		if !meetsMinQuality(calculateAvgQuality(read.Seq.Qual), minAvgQual) {
			return false
		}
	}
	return true
}

// writeRecord writes all reads of a record in FASTQ format with a single Write
// call, so the two reads of a pair are never separated on output
//
// Each read is written as four lines: the identifier line exactly as it was
// read, the sequence, a "+" separator and the quality
func writeRecord(w io.Writer, rec *fastqRecord) error {
	var buf bytes.Buffer
	for _, read := range rec.Reads {
		buf.Grow(len(read.Name) + len(read.Seq.Seq) + len(read.Seq.Qual) + 5)
		buf.Write(read.Name)
		buf.WriteByte('\n')
		buf.Write(read.Seq.Seq)
		buf.WriteString("\n+\n")
		buf.Write(read.Seq.Qual)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// newLineScanner returns a scanner over newline-delimited input with a line
// limit large enough for long reads
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// isBrokenPipe reports whether an error is a broken pipe / closed pipe,
// as seen when a downstream consumer (like `head`) exits early
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
