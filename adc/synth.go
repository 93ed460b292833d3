package adc

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrInsufficientData = errors.New("insufficient data")

// SamplesPerBit returns the width of one bit cell.
func SamplesPerBit(sampleRate, bitsPerSecond int) float64 {
	return float64(sampleRate) / float64(bitsPerSecond)
}

// Synth writes an F2F (Aiken biphase) bitstream as a square wave.
//
//	0: one transition, at mid cell
//	1: two transitions, at the cell start and at mid cell
//
// LeadingZeros clocking bits are written before and after the data so that
// both swipe directions start with a run the decoder can lock on to.
type Synth struct {
	SamplesPerBit float64
	LeadingZeros  int
	Amplitude     float64 // 0 means 1.0
}

func (s Synth) check() error {
	if s.SamplesPerBit < 2 || math.IsInf(s.SamplesPerBit, 0) || math.IsNaN(s.SamplesPerBit) {
		return fmt.Errorf("%w: %v samples per bit", ErrInsufficientData, s.SamplesPerBit)
	}
	if s.LeadingZeros < 0 {
		return fmt.Errorf("adc: negative leading zeros: %d", s.LeadingZeros)
	}
	return nil
}

// Generate returns the waveform of bits, read from the head of the card.
func (s Synth) Generate(bits []byte) ([]float64, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	amp := s.Amplitude
	if amp == 0 {
		amp = 1
	}

	cells := len(bits) + 2*s.LeadingZeros
	out := make([]float64, 0, int(math.Round(float64(cells)*s.SamplesPerBit)))
	level := -amp
	for k := 0; k < cells; k++ {
		var bit byte
		if i := k - s.LeadingZeros; i >= 0 && i < len(bits) {
			bit = bits[i]
		}
		start := s.edge(float64(k))
		mid := s.edge(float64(k) + 0.5)
		end := s.edge(float64(k) + 1)

		if bit != 0 {
			level = -level
		}
		for i := start; i < mid; i++ {
			out = append(out, level)
		}
		level = -level
		for i := mid; i < end; i++ {
			out = append(out, level)
		}
	}
	return out, nil
}

// GenerateReverse returns the waveform seen when the card is swiped the
// other way: the forward waveform played backwards.
func (s Synth) GenerateReverse(bits []byte) ([]float64, error) {
	out, err := s.Generate(bits)
	if err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}

func (s Synth) edge(cell float64) int {
	return int(math.Round(cell * s.SamplesPerBit))
}

// ToPCM16 scales normalized samples to signed 16-bit full scale.
func ToPCM16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v))
		out[i] = int16(math.Round(v * math.MaxInt16))
	}
	return out
}

// FromPCM16 is the inverse of ToPCM16.
func FromPCM16(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v) / math.MaxInt16
	}
	return out
}
