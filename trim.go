// Quality trimming of read ends

package main

import (
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// trimEdges removes bases from both ends of a read while their quality is
// strictly below minQual. The 5' end is scanned forward and the 3' end
// backward; the surviving window [trim5, trim3) is applied to both the sequence
// and the quality. If the window is empty or inverted, both results are empty
//
// With minQual == 0 nothing is trimmed for valid Phred+33 input, since no
// character has a code point below 33
//
// Example:
//
//	trimEdges([]byte("ACGTA"), []byte("#IIII"), 10) // "CGTA", "IIII"
func trimEdges(sequence, quality []byte, minQual int) ([]byte, []byte) {
	trim5, trim3 := trimWindow(quality, minQual)
	if trim5 >= trim3 {
		return []byte{}, []byte{}
	}
	return clampSlice(sequence, trim5, trim3), quality[trim5:trim3]
}

// trimWindow returns the half-open window [trim5, trim3) of bases kept after
// removing low-quality bases from both ends
func trimWindow(quality []byte, minQual int) (trim5, trim3 int) {
	threshold := minQual + PHRED_OFFSET

	for _, q := range quality {
		if int(q) >= threshold {
			break
		}
		trim5++
	}

	trim3 = len(quality)
	for i := len(quality) - 1; i >= 0; i-- {
		if int(quality[i]) >= threshold {
			break
		}
		trim3--
	}
	return trim5, trim3
}

// Mismatched sequence/quality lengths are not validated, so the sequence window
// is clamped to what is actually there
func clampSlice(b []byte, start, end int) []byte {
	if end > len(b) {
		end = len(b)
	}
	if start > end {
		start = end
	}
	return b[start:end]
}

// trimRead trims a record and returns a new record with the same name.
// The returned sequence and quality share memory with the input
func trimRead(record *fastx.Record, minQual int) *fastx.Record {
	s := record.Seq
	trim5, trim3 := trimWindow(s.Qual, minQual)

	var trimmed *seq.Seq
	switch {
	case trim5 >= trim3:
		trimmed = &seq.Seq{Alphabet: s.Alphabet, Seq: []byte{}, Qual: []byte{}}
	case len(s.Seq) == len(s.Qual):
		// SubSeq takes 1-based, inclusive positions and cuts Qual alongside Seq
		trimmed = s.SubSeq(trim5+1, trim3)
	default:
		sq, q := trimEdges(s.Seq, s.Qual, minQual)
		trimmed = &seq.Seq{Alphabet: s.Alphabet, Seq: sq, Qual: q}
	}

	return &fastx.Record{
		Name: record.Name,
		Seq:  trimmed,
	}
}
