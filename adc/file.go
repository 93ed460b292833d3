package adc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// G711SampleRate is assumed for headerless G.711 captures.
const G711SampleRate = 8000

func lawOf(path string) (Law, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ul", ".ulaw", ".mulaw":
		return ULaw, true
	case ".al", ".alaw":
		return ALaw, true
	}
	return 0, false
}

// LoadFile reads a WAV file, or a raw G.711 capture when the extension is
// .ul/.ulaw/.mulaw or .al/.alaw. "-" reads a WAV file from stdin.
func LoadFile(path string) ([]float64, int, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, 0, err
		}
		return LoadWav(bytes.NewReader(data))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	if law, ok := lawOf(path); ok {
		samples, err := LoadG711(f, law)
		return samples, G711SampleRate, err
	}
	return LoadWav(f)
}

// SaveFile writes samples as WAV, or as raw G.711 by extension. Raw
// captures must already be at G711SampleRate.
func SaveFile(path string, samples []float64, sampleRate int) (err error) {
	law, raw := lawOf(path)
	if raw && sampleRate != G711SampleRate {
		return fmt.Errorf("g711: sample rate must be %d: %d", G711SampleRate, sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if raw {
		return SaveG711(f, samples, law)
	}
	return SaveWav(f, samples, sampleRate)
}
