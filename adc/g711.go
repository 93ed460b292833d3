package adc

import (
	"fmt"
	"io"

	"github.com/zaf/g711"
)

// Law selects the G.711 companding curve of a headerless capture.
type Law int

const (
	ULaw Law = iota
	ALaw
)

func (l Law) String() string {
	switch l {
	case ULaw:
		return "u-law"
	case ALaw:
		return "a-law"
	}
	return fmt.Sprintf("Law(%d)", int(l))
}

// ParseLaw accepts "ulaw", "u-law", "mulaw", "alaw" and "a-law".
func ParseLaw(s string) (Law, error) {
	switch s {
	case "ulaw", "u-law", "mulaw":
		return ULaw, nil
	case "alaw", "a-law":
		return ALaw, nil
	}
	return 0, fmt.Errorf("g711: unknown law: %q", s)
}

// LoadG711 reads a raw G.711 capture, one byte per sample.
func LoadG711(r io.Reader, law Law) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("g711: %w", err)
	}
	pcm := make([]int16, len(data))
	for i, b := range data {
		switch law {
		case ULaw:
			pcm[i] = g711.DecodeUlawFrame(b)
		case ALaw:
			pcm[i] = g711.DecodeAlawFrame(b)
		default:
			return nil, fmt.Errorf("g711: unknown law: %v", law)
		}
	}
	return FromPCM16(pcm), nil
}

// SaveG711 writes samples as a raw G.711 capture.
func SaveG711(w io.Writer, samples []float64, law Law) error {
	pcm := ToPCM16(samples)
	data := make([]byte, len(pcm))
	for i, v := range pcm {
		switch law {
		case ULaw:
			data[i] = g711.EncodeUlawFrame(v)
		case ALaw:
			data[i] = g711.EncodeAlawFrame(v)
		default:
			return fmt.Errorf("g711: unknown law: %v", law)
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("g711: %w", err)
	}
	return nil
}
