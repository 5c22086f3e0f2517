package main

import (
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Helper function to create test FASTX records
func createTestRecord(name string, sequence string, quality string) *fastx.Record {
	return &fastx.Record{
		Name: []byte(name),
		Seq: &seq.Seq{
			Seq:  []byte(sequence),
			Qual: []byte(quality),
		},
	}
}

// Helper function to create a record from one or two reads
func createTestFastqRecord(reads ...*fastx.Record) *fastqRecord {
	return &fastqRecord{Reads: reads}
}
