package msr

import (
	"errors"
	"fmt"

	"github.com/ysh86/MSRtools/adc"
	"github.com/ysh86/MSRtools/track"
)

// Config holds the codec parameters shared by decoding and synthesis.
type Config struct {
	SampleRate int // Hz
	BitRate    int // bits/s
	// SamplesPerBit overrides SampleRate/BitRate when > 0.
	SamplesPerBit float64
	LeadingZeros  int
	Amplitude     float64

	MinPeaks     int
	ZCRThreshold float64
	WindowSize   int // samples
}

// DefaultConfig returns 20 samples per bit at 44.1kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		BitRate:      2205,
		LeadingZeros: 25,
		Amplitude:    0.9,
		MinPeaks:     adc.MinPeaks,
		ZCRThreshold: 0.1,
		WindowSize:   1024,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.SamplesPerBit <= 0 {
		if c.SampleRate <= 0 {
			errs = append(errs, fmt.Errorf("%w: sample rate must be > 0: %d", track.ErrInvalidArgument, c.SampleRate))
		}
		if c.BitRate <= 0 {
			errs = append(errs, fmt.Errorf("%w: bit rate must be > 0: %d", track.ErrInvalidArgument, c.BitRate))
		}
	}
	if c.LeadingZeros < 0 {
		errs = append(errs, fmt.Errorf("%w: leading zeros must be >= 0: %d", track.ErrInvalidArgument, c.LeadingZeros))
	}
	if c.Amplitude < 0 || c.Amplitude > 1 {
		errs = append(errs, fmt.Errorf("%w: amplitude must be in 0..1: %v", track.ErrInvalidArgument, c.Amplitude))
	}
	if c.WindowSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size must be > 0: %d", track.ErrInvalidArgument, c.WindowSize))
	}
	return errors.Join(errs...)
}

func (c Config) samplesPerBit() float64 {
	if c.SamplesPerBit > 0 {
		return c.SamplesPerBit
	}
	return adc.SamplesPerBit(c.SampleRate, c.BitRate)
}

func (c Config) synth() adc.Synth {
	return adc.Synth{
		SamplesPerBit: c.samplesPerBit(),
		LeadingZeros:  c.LeadingZeros,
		Amplitude:     c.Amplitude,
	}
}

func (c Config) segmenter() adc.Segmenter {
	return adc.Segmenter{Threshold: c.ZCRThreshold, WindowSize: c.WindowSize}
}
