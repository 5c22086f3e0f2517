package main

import (
	"math"
	"testing"
)

// Test average quality calculation
func TestCalculateAvgQuality(t *testing.T) {
	tests := []struct {
		name string
		qual []byte
		want float64
	}{
		{
			name: "All Phred 0",
			qual: []byte("!!!!"), // ASCII 33 = Phred 0
			want: 0.0,
		},
		{
			name: "All Phred 40",
			qual: []byte("IIII"), // ASCII 73 = Phred 40
			want: 40.0,
		},
		{
			name: "Mixed quality",
			qual: []byte("I$$I$"), // Phred 40, 3, 3, 40, 3
			want: 17.8,
		},
		{
			name: "Single base",
			qual: []byte("5"), // ASCII 53 = Phred 20
			want: 20.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateAvgQuality(tt.qual)
			if math.Abs(got-tt.want) > 0.00001 {
				t.Errorf("calculateAvgQuality() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateAvgQualityEmpty(t *testing.T) {
	if got := calculateAvgQuality([]byte{}); !math.IsNaN(got) {
		t.Errorf("calculateAvgQuality(empty) = %v, want NaN", got)
	}
}

func TestMeetsMinQuality(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
		min  float64
		want bool
	}{
		{"Above threshold", 30, 20, true},
		{"At threshold", 20, 20, true},
		{"Below threshold", 19.99, 20, false},
		{"NaN against zero", math.NaN(), 0, false},
		{"NaN against negative", math.NaN(), -math.MaxFloat64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := meetsMinQuality(tt.avg, tt.min); got != tt.want {
				t.Errorf("meetsMinQuality(%v, %v) = %v, want %v", tt.avg, tt.min, got, tt.want)
			}
		})
	}
}
