package adc

import "math"

const (
	// MinPeaks is the fewest flux transitions worth handing to ExtractBits.
	MinPeaks = 10

	noiseFloorRatio = 0.1
	thresholdRatio  = 0.75
	seedIntervals   = 10
)

// FindPeaks returns the sample indices of the flux transitions in samples:
// alternating positive and negative local extrema above the noise floor,
// starting with a positive one. The leading edge of a plateau counts as
// its peak.
func FindPeaks(samples []float64) []int {
	maxAbs := 0.0
	for _, s := range samples {
		maxAbs = math.Max(maxAbs, math.Abs(s))
	}
	if maxAbs == 0 {
		return nil
	}
	floor := noiseFloorRatio * maxAbs

	var peaks []int
	positive := true
	for i := 1; i < len(samples)-1; i++ {
		s := samples[i]
		if math.Abs(s) < floor {
			continue
		}
		if positive {
			if s > 0 && s > samples[i-1] && s >= samples[i+1] {
				peaks = append(peaks, i)
				positive = false
			}
		} else {
			if s < 0 && s < samples[i-1] && s <= samples[i+1] {
				peaks = append(peaks, i)
				positive = true
			}
		}
	}
	return peaks
}

// Intervals returns the distances between consecutive peaks.
func Intervals(peaks []int) []int {
	if len(peaks) < 2 {
		return nil
	}
	out := make([]int, len(peaks)-1)
	for i := range out {
		out[i] = peaks[i+1] - peaks[i]
	}
	return out
}

// ExtractBits classifies the peak intervals: a long interval is a 0, two
// short ones are a 1. The short/long threshold follows the swipe speed,
// re-anchored on every decided bit.
func ExtractBits(peaks []int) []byte {
	intervals := Intervals(peaks)
	if len(intervals) == 0 {
		return nil
	}

	n := min(seedIntervals, len(intervals))
	sum := 0
	for _, v := range intervals[:n] {
		sum += v
	}
	threshold := float64(sum) / float64(n) * thresholdRatio

	bits := make([]byte, 0, len(intervals))
	for i := 0; i < len(intervals); {
		if float64(intervals[i]) < threshold {
			if i+1 >= len(intervals) {
				break
			}
			bits = append(bits, 1)
			threshold = float64(intervals[i]+intervals[i+1]) * thresholdRatio
			i += 2
		} else {
			bits = append(bits, 0)
			threshold = float64(intervals[i]) * thresholdRatio
			i++
		}
	}
	return bits
}
