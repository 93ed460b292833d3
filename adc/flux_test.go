package adc

import (
	"math"
	"slices"
	"testing"
)

func TestFindPeaks(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    []int
	}{
		{name: "empty", samples: nil, want: nil},
		{name: "silence", samples: make([]float64, 32), want: nil},
		{
			name:    "square wave plateaus",
			samples: []float64{-1, -1, 1, 1, -1, -1, 1, 1, 1, 1, -1, -1},
			want:    []int{2, 4, 6, 10},
		},
		{
			name:    "smooth extrema",
			samples: []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5, 0, 0.6, 0.8, 0.2},
			want:    []int{2, 6, 10},
		},
		{
			// a negative extremum is ignored while a positive one is expected
			name:    "starts negative",
			samples: []float64{0, -1, 0, 1, 0, -1, 0},
			want:    []int{3, 5},
		},
		{
			name:    "below noise floor",
			samples: []float64{0, 1, 0, -0.05, 0, 0.05, 0, -1, 0},
			want:    []int{1, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindPeaks(tt.samples); !slices.Equal(got, tt.want) {
				t.Errorf("FindPeaks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindPeaksSine(t *testing.T) {
	const period = 40
	samples := make([]float64, 10*period)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(i) / period)
	}
	peaks := FindPeaks(samples)
	if len(peaks) != 20 {
		t.Fatalf("len(peaks) = %d, want 20", len(peaks))
	}
	for i, iv := range Intervals(peaks) {
		if iv != period/2 {
			t.Errorf("interval %d = %d, want %d", i, iv, period/2)
		}
	}
}

func TestIntervals(t *testing.T) {
	if got := Intervals([]int{3}); got != nil {
		t.Errorf("Intervals(1 peak) = %v", got)
	}
	if got := Intervals([]int{3, 13, 18, 40}); !slices.Equal(got, []int{10, 5, 22}) {
		t.Errorf("Intervals() = %v", got)
	}
}

func peaksFrom(intervals ...int) []int {
	peaks := []int{0}
	for _, iv := range intervals {
		peaks = append(peaks, peaks[len(peaks)-1]+iv)
	}
	return peaks
}

func TestExtractBits(t *testing.T) {
	tests := []struct {
		name      string
		intervals []int
		want      []byte
	}{
		{name: "no intervals", intervals: nil, want: nil},
		{
			name:      "steady speed",
			intervals: []int{20, 20, 20, 10, 10, 20, 10, 10, 10, 10, 20},
			want:      []byte{0, 0, 0, 1, 0, 1, 1, 0},
		},
		{
			// the swipe slows down to half speed
			name:      "decelerating",
			intervals: []int{20, 20, 22, 12, 12, 26, 28, 15, 15, 32, 36, 40, 20, 20},
			want:      []byte{0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1},
		},
		{
			name:      "unpaired short at the end",
			intervals: []int{20, 20, 20, 20, 10},
			want:      []byte{0, 0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var peaks []int
			if tt.intervals != nil {
				peaks = peaksFrom(tt.intervals...)
			}
			if got := ExtractBits(peaks); !slices.Equal(got, tt.want) {
				t.Errorf("ExtractBits() = %v, want %v", got, tt.want)
			}
		})
	}
}
