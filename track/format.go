package track

import "fmt"

// Format describes the character framing of one ISO/IEC 7811 track.
type Format struct {
	Name          string
	BitsPerChar   int  // data bits + 1 parity bit
	Base          byte // ASCII code of data value 0
	StartSentinel byte
	EndSentinel   byte
}

var (
	Track1 = Format{Name: "track1", BitsPerChar: 7, Base: 32, StartSentinel: '%', EndSentinel: '?'}
	Track2 = Format{Name: "track2", BitsPerChar: 5, Base: 48, StartSentinel: ';', EndSentinel: '?'}
)

func (f Format) dataBits() int {
	return f.BitsPerChar - 1
}

// Valid reports whether c is in the character set of f.
func (f Format) Valid(c byte) bool {
	return c >= f.Base && int(c) < int(f.Base)+1<<f.dataBits()
}

func (f Format) String() string {
	return f.Name
}

// FormatOf selects the track format from the start sentinel of s.
func FormatOf(s string) (Format, error) {
	if s == "" {
		return Format{}, fmt.Errorf("%w: empty track", ErrInvalidArgument)
	}
	switch s[0] {
	case Track1.StartSentinel:
		return Track1, nil
	case Track2.StartSentinel:
		return Track2, nil
	}
	return Format{}, fmt.Errorf("%w: unknown start sentinel %q", ErrInvalidArgument, s[0])
}
