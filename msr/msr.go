// Package msr converts between magnetic stripe audio and track strings.
//
// Decoding runs samples through flux detection, bit extraction and the
// multi-hypothesis track decoder; synthesis encodes a track string and
// writes it as an F2F square wave.
package msr

import (
	"fmt"
	"slices"

	"github.com/ysh86/MSRtools/adc"
	"github.com/ysh86/MSRtools/track"
)

// DecodeAudio decodes samples with DefaultConfig.
func DecodeAudio(samples []float64) ([]string, error) {
	return DefaultConfig().DecodeAudio(samples)
}

// DecodeAudio returns the tracks found reading the swipe in each direction,
// forward first. With no valid track the error is a *track.DecodeError.
func (c Config) DecodeAudio(samples []float64) ([]string, error) {
	bits, err := c.bits(samples)
	if err != nil {
		return nil, err
	}
	results := track.Candidates(bits)
	if len(results) == 0 {
		_, err := track.Decode(bits)
		return nil, err
	}

	var tracks []string
	for _, r := range results {
		if !slices.Contains(tracks, r.Track) {
			tracks = append(tracks, r.Track)
		}
	}
	return tracks, nil
}

func (c Config) bits(samples []float64) ([]byte, error) {
	peaks := adc.FindPeaks(samples)
	if len(peaks) < max(c.MinPeaks, 2) {
		return nil, fmt.Errorf("%w: %d flux transitions", adc.ErrInsufficientData, len(peaks))
	}
	return adc.ExtractBits(peaks), nil
}

// DecodeRecording decodes samples with DefaultConfig.
func DecodeRecording(samples []float64) ([]string, error) {
	return DefaultConfig().DecodeRecording(samples)
}

// DecodeRecording splits a recording into swipes and decodes each of them.
// A recording without a detectable swipe is decoded as a whole.
func (c Config) DecodeRecording(samples []float64) ([]string, error) {
	swipes := c.segmenter().Find(samples)
	if len(swipes) == 0 {
		return c.DecodeAudio(samples)
	}

	var tracks []string
	var firstErr error
	for _, s := range swipes {
		got, err := c.DecodeAudio(adc.Trim(samples, s.Pad(c.WindowSize, len(samples))))
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("swipe [%d, %d): %w", s.Start, s.End, err)
			}
			continue
		}
		for _, t := range got {
			if !slices.Contains(tracks, t) {
				tracks = append(tracks, t)
			}
		}
	}
	if len(tracks) == 0 {
		return nil, firstErr
	}
	return tracks, nil
}

// Synthesize writes trackString as it is read from a forward swipe.
func Synthesize(trackString string, sampleRate, bitRate int) ([]float64, error) {
	c := DefaultConfig()
	c.SampleRate, c.BitRate = sampleRate, bitRate
	return c.Synthesize(trackString)
}

// SynthesizeReverse writes trackString as it is read from a reverse swipe.
func SynthesizeReverse(trackString string, sampleRate, bitRate int) ([]float64, error) {
	c := DefaultConfig()
	c.SampleRate, c.BitRate = sampleRate, bitRate
	return c.SynthesizeReverse(trackString)
}

func (c Config) Synthesize(trackString string) ([]float64, error) {
	return c.synthesize(trackString, false)
}

func (c Config) SynthesizeReverse(trackString string) ([]float64, error) {
	return c.synthesize(trackString, true)
}

func (c Config) synthesize(trackString string, reverse bool) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	bits, err := track.EncodeTrack(trackString)
	if err != nil {
		return nil, err
	}
	if reverse {
		return c.synth().GenerateReverse(bits)
	}
	return c.synth().Generate(bits)
}
