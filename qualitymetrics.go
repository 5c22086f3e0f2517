package main

import (
	"math"
)

// Phred score of a single quality character
func phredScore(q byte) int {
	return int(q) - PHRED_OFFSET
}

// Average Phred score from quality scores (arithmetic mean of per-base scores).
// Zero-length qualities have no average and yield NaN, which never passes a threshold
func calculateAvgQuality(qual []byte) float64 {
	if len(qual) == 0 {
		return math.NaN()
	}

	var sum int
	for _, q := range qual {
		sum += phredScore(q)
	}
	return float64(sum) / float64(len(qual))
}

// meetsMinQuality reports whether avg is a number and is at least minAvgQual
func meetsMinQuality(avg, minAvgQual float64) bool {
	if math.IsNaN(avg) {
		return false
	}
	return avg >= minAvgQual
}
