package adc

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"testing"
)

func TestGenerateCells(t *testing.T) {
	s := Synth{SamplesPerBit: 4}
	got, err := s.Generate([]byte{0, 1, 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []float64{
		-1, -1, 1, 1, // 0: mid cell only
		-1, -1, 1, 1, // 1: cell start and mid cell
		1, 1, -1, -1, // 0
	}
	if !slices.Equal(got, want) {
		t.Errorf("Generate() = %v, want %v", got, want)
	}
}

func TestGenerateLength(t *testing.T) {
	bits := []byte{1, 0, 1, 1, 0}
	for _, spb := range []float64{2, 7, 20, 20.5, 18.375} {
		s := Synth{SamplesPerBit: spb, LeadingZeros: 12, Amplitude: 0.5}
		got, err := s.Generate(bits)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		want := int(math.Round(float64(len(bits)+24) * spb))
		if len(got) != want {
			t.Errorf("spb %v: len = %d, want %d", spb, len(got), want)
		}
		for i, v := range got {
			if math.Abs(v) != 0.5 {
				t.Fatalf("spb %v: sample %d = %v, want +-0.5", spb, i, v)
			}
		}
	}
}

func TestGenerateReverse(t *testing.T) {
	s := Synth{SamplesPerBit: 20.5, LeadingZeros: 5}
	bits := []byte{1, 1, 0, 1, 0}
	fwd, err := s.Generate(bits)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rev, err := s.GenerateReverse(bits)
	if err != nil {
		t.Fatalf("GenerateReverse: %v", err)
	}
	slices.Reverse(fwd)
	if !slices.Equal(fwd, rev) {
		t.Errorf("GenerateReverse is not the time-reversed waveform")
	}
}

func TestGenerateInvalid(t *testing.T) {
	for _, spb := range []float64{0, 1.5, math.NaN(), math.Inf(1)} {
		if _, err := (Synth{SamplesPerBit: spb}).Generate([]byte{1}); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("spb %v: error = %v, want ErrInsufficientData", spb, err)
		}
	}
	if _, err := (Synth{SamplesPerBit: 20, LeadingZeros: -1}).Generate([]byte{1}); err == nil {
		t.Errorf("negative leading zeros accepted")
	}
}

func TestSynthRoundTrip(t *testing.T) {
	bits := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0}
	for _, spb := range []float64{7, 20, 20.5} {
		s := Synth{SamplesPerBit: spb, LeadingZeros: 12}
		wave, err := s.Generate(bits)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		// the first clocking bit has no transition before it
		want := make([]byte, 11, 35)
		want = append(want, bits...)
		want = append(want, make([]byte, 12)...)
		if got := ExtractBits(FindPeaks(wave)); !slices.Equal(got, want) {
			t.Errorf("spb %v: forward bits = %v, want %v", spb, got, want)
		}

		rev, err := s.GenerateReverse(bits)
		if err != nil {
			t.Fatalf("GenerateReverse: %v", err)
		}
		reversed := slices.Clone(bits)
		slices.Reverse(reversed)
		got := ExtractBits(FindPeaks(rev))
		if !bytes.Contains(got, reversed) {
			t.Errorf("spb %v: reverse bits %v do not contain %v", spb, got, reversed)
		}
	}
}

func TestPCM16(t *testing.T) {
	got := ToPCM16([]float64{-2, -1, 0, 0.5, 1, 3})
	want := []int16{-32767, -32767, 0, 16384, 32767, 32767}
	if !slices.Equal(got, want) {
		t.Errorf("ToPCM16() = %v, want %v", got, want)
	}
	back := FromPCM16([]int16{-32767, 0, 32767})
	if !slices.Equal(back, []float64{-1, 0, 1}) {
		t.Errorf("FromPCM16() = %v", back)
	}
}
