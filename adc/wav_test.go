package adc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestSaveWavHeader(t *testing.T) {
	samples := []float64{0, 0.5, -0.5, 1, -1}
	var buf bytes.Buffer
	if err := SaveWav(&buf, samples, 44100); err != nil {
		t.Fatalf("SaveWav: %v", err)
	}
	b := buf.Bytes()
	dataLen := len(samples) * 2
	if len(b) != 44+dataLen {
		t.Fatalf("file size = %d, want %d", len(b), 44+dataLen)
	}

	le := binary.LittleEndian
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"ChunkSize", le.Uint32(b[4:8]), uint32(36 + dataLen)},
		{"AudioFormat", uint32(le.Uint16(b[20:22])), 1},
		{"NumChannels", uint32(le.Uint16(b[22:24])), 1},
		{"SampleRate", le.Uint32(b[24:28]), 44100},
		{"ByteRate", le.Uint32(b[28:32]), 44100 * 2},
		{"BlockAlign", uint32(le.Uint16(b[32:34])), 2},
		{"BitsPerSample", uint32(le.Uint16(b[34:36])), 16},
		{"Subchunk2Size", le.Uint32(b[40:44]), uint32(dataLen)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Errorf("bad chunk ids: %q", b[:44])
	}
	if v := int16(le.Uint16(b[44+2:])); v != 16384 {
		t.Errorf("second sample = %d, want 16384", v)
	}
}

func TestWavRoundTrip(t *testing.T) {
	s := Synth{SamplesPerBit: 20, LeadingZeros: 10, Amplitude: 0.8}
	wave, err := s.Generate([]byte{1, 0, 1, 1, 0})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf bytes.Buffer
	if err := SaveWav(&buf, wave, 48000); err != nil {
		t.Fatalf("SaveWav: %v", err)
	}
	got, rate, err := LoadWav(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("LoadWav: %v", err)
	}
	if rate != 48000 {
		t.Errorf("sample rate = %d, want 48000", rate)
	}
	if len(got) != len(wave) {
		t.Fatalf("len = %d, want %d", len(got), len(wave))
	}
	for i := range got {
		if math.Abs(got[i]-wave[i]) > 1e-4 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], wave[i])
		}
	}
}

func TestLoadWavInvalid(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("definitely not a wave file")} {
		if _, _, err := LoadWav(bytes.NewReader(data)); !errors.Is(err, ErrInvalidWav) {
			t.Errorf("LoadWav(%q) error = %v, want ErrInvalidWav", data, err)
		}
	}
	if err := SaveWav(&bytes.Buffer{}, nil, 0); err == nil {
		t.Errorf("SaveWav accepted sample rate 0")
	}
}

func TestLoadWavTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := SaveWav(&buf, []float64{0.5, -0.5, 0.25}, 44100); err != nil {
		t.Fatalf("SaveWav: %v", err)
	}
	for _, n := range []int{0, 4, 10, 12, 20, 30} {
		if _, _, err := LoadWav(bytes.NewReader(buf.Bytes()[:n])); err == nil {
			t.Errorf("LoadWav(first %d bytes) accepted a truncated file", n)
		}
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	s := Synth{SamplesPerBit: 4, LeadingZeros: 3}
	wave, err := s.Generate([]byte{1, 0, 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, tt := range []struct {
		name string
		rate int
	}{
		{"swipe.wav", 44100},
		{"swipe.ul", G711SampleRate},
		{"swipe.alaw", G711SampleRate},
	} {
		path := filepath.Join(dir, tt.name)
		if err := SaveFile(path, wave, tt.rate); err != nil {
			t.Fatalf("SaveFile(%s): %v", tt.name, err)
		}
		got, rate, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", tt.name, err)
		}
		if rate != tt.rate || len(got) != len(wave) {
			t.Errorf("%s: rate %d len %d, want %d %d", tt.name, rate, len(got), tt.rate, len(wave))
		}
	}

	if err := SaveFile(filepath.Join(dir, "bad.ul"), wave, 44100); err == nil {
		t.Errorf("SaveFile accepted a 44.1kHz g711 capture")
	}
	if _, _, err := LoadFile(filepath.Join(dir, "missing.wav")); err == nil {
		t.Errorf("LoadFile of a missing file succeeded")
	}
}
