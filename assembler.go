// Positional FASTQ record assembly (4 lines per single-end read, 8 per pair)

package main

import (
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// lineRole is the role of an input line within the current record
type lineRole int

const (
	roleID1 lineRole = iota
	roleSeq1
	roleSep1
	roleQual1
	roleID2
	roleSeq2
	roleSep2
	roleQual2
)

var roleNames = [...]string{"id1", "seq1", "sep1", "qual1", "id2", "seq2", "sep2", "qual2"}

func (r lineRole) String() string {
	if r < roleID1 || r > roleQual2 {
		return "unknown"
	}
	return roleNames[r]
}

// linesPerRecord returns the record length in lines
func linesPerRecord(pairedEnd bool) int {
	if pairedEnd {
		return 8
	}
	return 4
}

// isTerminal reports whether a line in this role completes a record
func isTerminal(role lineRole, pairedEnd bool) bool {
	if pairedEnd {
		return role == roleQual2
	}
	return role == roleQual1
}

// nextRole is the transition function of the assembler
func nextRole(role lineRole, pairedEnd bool) lineRole {
	if isTerminal(role, pairedEnd) {
		return roleID1
	}
	return role + 1
}

// fastqRecord is one record as it is assembled: a single read or a read pair.
// Reads are stored after trimming
type fastqRecord struct {
	ID1, Seq1 []byte
	ID2, Seq2 []byte
	Reads     []*fastx.Record
}

// recordAssembler turns a stream of lines into trimmed records.
// It is not safe for concurrent use
type recordAssembler struct {
	pairedEnd bool
	minQual   int
	role      lineRole
	pending   int
	current   *fastqRecord
}

func newRecordAssembler(pairedEnd bool, minTrimQual int) *recordAssembler {
	return &recordAssembler{
		pairedEnd: pairedEnd,
		minQual:   minTrimQual,
		role:      roleID1,
		current:   newFastqRecord(pairedEnd),
	}
}

func newFastqRecord(pairedEnd bool) *fastqRecord {
	return &fastqRecord{Reads: make([]*fastx.Record, 0, linesPerRecord(pairedEnd)/4)}
}

// Feed consumes one line. When the line completes a record, the trimmed record
// is returned with ok set to true, and a fresh record takes its place.
// The line is copied, so callers may reuse its buffer
func (a *recordAssembler) Feed(line []byte) (rec *fastqRecord, ok bool) {
	role := a.role
	a.role = nextRole(role, a.pairedEnd)
	a.pending++

	switch role {
	case roleID1:
		a.current.ID1 = cloneLine(line)
	case roleSeq1:
		a.current.Seq1 = cloneLine(line)
	case roleQual1:
		a.current.Reads = append(a.current.Reads, a.trim(a.current.ID1, a.current.Seq1, line))
	case roleID2:
		a.current.ID2 = cloneLine(line)
	case roleSeq2:
		a.current.Seq2 = cloneLine(line)
	case roleQual2:
		a.current.Reads = append(a.current.Reads, a.trim(a.current.ID2, a.current.Seq2, line))
	}
	// separator lines are not stored

	if !isTerminal(role, a.pairedEnd) {
		return nil, false
	}

	rec = a.current
	a.current = newFastqRecord(a.pairedEnd)
	a.pending = 0
	return rec, true
}

// Pending returns the number of lines held for an incomplete record
func (a *recordAssembler) Pending() int {
	return a.pending
}

func (a *recordAssembler) trim(id, sequence, quality []byte) *fastx.Record {
	read := &fastx.Record{
		Name: id,
		Seq: &seq.Seq{
			Seq:  sequence,
			Qual: cloneLine(quality),
		},
	}
	return trimRead(read, a.minQual)
}

func cloneLine(line []byte) []byte {
	b := make([]byte, len(line))
	copy(b, line)
	return b
}
