package adc

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/youpy/go-riff"
	"github.com/youpy/go-wav"
)

const samplesPerRead = 2048

var ErrInvalidWav = errors.New("wav: invalid file")

// WavInfo is the part of the fmt chunk the tools print.
type WavInfo struct {
	AudioFormat   uint16
	BitsPerSample uint16
	BlockAlign    uint16
	ByteRate      uint32
	NumChannels   uint16
	SampleRate    uint32
}

// LoadWav reads the first channel of an 8 or 16-bit PCM WAV file as
// samples normalized to -1..1.
func LoadWav(r riff.RIFFReader) ([]float64, int, error) {
	samples, info, err := LoadWavInfo(r)
	if err != nil {
		return nil, 0, err
	}
	return samples, int(info.SampleRate), nil
}

// LoadWavInfo is LoadWav that also returns the fmt chunk.
func LoadWavInfo(r riff.RIFFReader) (out []float64, info WavInfo, err error) {
	if err := checkHeader(r); err != nil {
		return nil, WavInfo{}, err
	}
	// go-riff panics on truncated chunks
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrInvalidWav, p)
		}
	}()

	reader := wav.NewReader(r)

	format, err := reader.Format()
	if err != nil {
		return nil, WavInfo{}, fmt.Errorf("wav: %w", err)
	}
	info = WavInfo{
		AudioFormat:   format.AudioFormat,
		BitsPerSample: format.BitsPerSample,
		BlockAlign:    format.BlockAlign,
		ByteRate:      format.ByteRate,
		NumChannels:   format.NumChannels,
		SampleRate:    format.SampleRate,
	}
	if format.AudioFormat != wav.AudioFormatPCM {
		return nil, info, fmt.Errorf("wav: unsupported audio format: %d", format.AudioFormat)
	}
	if format.BitsPerSample != 8 && format.BitsPerSample != 16 {
		return nil, info, fmt.Errorf("wav: unsupported bits/sample: %d", format.BitsPerSample)
	}

	// 8-bit samples are unsigned
	fullScale := float64(int(1) << (format.BitsPerSample - 1))
	offset := 0
	if format.BitsPerSample == 8 {
		offset = int(fullScale)
	}

	for {
		samples, err := reader.ReadSamples(samplesPerRead)
		for _, sample := range samples {
			value := reader.IntValue(sample, 0) - offset // L only
			out = append(out, float64(value)/fullScale)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, info, fmt.Errorf("wav: %w", err)
		}
	}
	return out, info, nil
}

// SaveWav writes samples as a 16-bit mono PCM WAV file.
func SaveWav(w io.Writer, samples []float64, sampleRate int) error {
	if sampleRate <= 0 || sampleRate > math.MaxUint32/2 {
		return fmt.Errorf("wav: invalid sample rate: %d", sampleRate)
	}
	pcm := ToPCM16(samples)
	writer := wav.NewWriter(w, uint32(len(pcm)), 1, uint32(sampleRate), 16)

	buf := make([]wav.Sample, 0, samplesPerRead)
	for i, v := range pcm {
		buf = append(buf, wav.Sample{Values: [2]int{int(v), int(v)}})
		if len(buf) == cap(buf) || i == len(pcm)-1 {
			if err := writer.WriteSamples(buf); err != nil {
				return fmt.Errorf("wav: %w", err)
			}
			buf = buf[:0]
		}
	}
	return nil
}

func checkHeader(r io.ReaderAt) error {
	var header [12]byte
	if _, err := r.ReadAt(header[:], 0); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWav, err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return fmt.Errorf("%w: header %q", ErrInvalidWav, header[:])
	}
	return nil
}
