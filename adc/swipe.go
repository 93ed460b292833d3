package adc

// Swipe is the half-open sample range [Start, End) of one card swipe.
type Swipe struct {
	Start int
	End   int
}

func (s Swipe) Len() int {
	return s.End - s.Start
}

// Pad widens s by n samples on both sides, within [0, limit).
func (s Swipe) Pad(n, limit int) Swipe {
	return Swipe{
		Start: max(0, s.Start-n),
		End:   min(limit, s.End+n),
	}
}

// Segmenter finds swipes by zero-crossing rate over fixed windows.
type Segmenter struct {
	Threshold  float64
	WindowSize int
	// CloseAtEnd emits a swipe still open when the last window is scanned.
	CloseAtEnd bool
}

// FindSwipes returns the regions whose zero-crossing rate exceeds
// zcrThreshold. Every full window is scanned, the one ending at
// len(samples) included, so a swipe can close in the last window. A swipe
// still open after it is dropped.
func FindSwipes(samples []float64, zcrThreshold float64, windowSize int) []Swipe {
	return Segmenter{Threshold: zcrThreshold, WindowSize: windowSize}.Find(samples)
}

func (sg Segmenter) Find(samples []float64) []Swipe {
	if sg.WindowSize <= 0 {
		return nil
	}

	var swipes []Swipe
	inSwipe := false
	start, last := 0, 0
	for w := 0; w+sg.WindowSize <= len(samples); w += sg.WindowSize {
		end := w + sg.WindowSize
		zcr := ZeroCrossingRate(samples[w:end])
		switch {
		case !inSwipe && zcr > sg.Threshold:
			inSwipe = true
			start = w
		case inSwipe && zcr < sg.Threshold:
			inSwipe = false
			swipes = append(swipes, Swipe{Start: start, End: end})
		}
		last = end
	}
	if inSwipe && sg.CloseAtEnd {
		swipes = append(swipes, Swipe{Start: start, End: last})
	}
	return swipes
}

// ZeroCrossingRate counts sign changes between consecutive samples of
// window, per sample. Zero counts as positive.
func ZeroCrossingRate(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(window); i++ {
		if (window[i-1] < 0) != (window[i] < 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(window))
}

// Trim returns a copy of the samples covered by s.
func Trim(samples []float64, s Swipe) []float64 {
	s = s.Pad(0, len(samples))
	if s.Len() <= 0 {
		return nil
	}
	out := make([]float64, s.Len())
	copy(out, samples[s.Start:s.End])
	return out
}
