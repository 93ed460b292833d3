package track

import (
	"fmt"
	"strings"
)

// Track2Data holds the fields of a Track 2 string.
type Track2Data struct {
	PAN            string
	ExpirationDate string // YYMM
	ServiceCode    string
	Discretionary  string
}

// Track1Data holds the fields of a Track 1 format B string.
type Track1Data struct {
	FormatCode     byte
	PAN            string
	Name           string
	ExpirationDate string // YYMM
	ServiceCode    string
	Discretionary  string
}

// content strips the sentinels and anything after the end sentinel.
func content(f Format, s string) (string, error) {
	if s == "" || s[0] != f.StartSentinel {
		return "", fmt.Errorf("%w: %s: missing start sentinel", ErrInvalidArgument, f)
	}
	end := strings.IndexByte(s[1:], f.EndSentinel)
	if end < 0 {
		return "", fmt.Errorf("%w: %s: missing end sentinel", ErrInvalidArgument, f)
	}
	return s[1 : end+1], nil
}

// ParseTrack2 splits a Track 2 string on its field separator.
func ParseTrack2(s string) (Track2Data, error) {
	body, err := content(Track2, s)
	if err != nil {
		return Track2Data{}, err
	}
	pan, rest, ok := strings.Cut(body, string(fieldSeparator2))
	if !ok {
		return Track2Data{}, fmt.Errorf("%w: track2: missing separator", ErrInvalidArgument)
	}
	if len(rest) < dateLen+serviceLen {
		return Track2Data{}, fmt.Errorf("%w: track2: short additional data: %q", ErrInvalidArgument, rest)
	}
	return Track2Data{
		PAN:            pan,
		ExpirationDate: rest[:dateLen],
		ServiceCode:    rest[dateLen : dateLen+serviceLen],
		Discretionary:  rest[dateLen+serviceLen:],
	}, nil
}

// ParseTrack1 splits a Track 1 string on its field separators.
func ParseTrack1(s string) (Track1Data, error) {
	body, err := content(Track1, s)
	if err != nil {
		return Track1Data{}, err
	}
	parts := strings.SplitN(body, string(fieldSeparator1), 3)
	if len(parts) != 3 || parts[0] == "" {
		return Track1Data{}, fmt.Errorf("%w: track1: missing separator", ErrInvalidArgument)
	}
	rest := parts[2]
	if len(rest) < dateLen+serviceLen {
		return Track1Data{}, fmt.Errorf("%w: track1: short additional data: %q", ErrInvalidArgument, rest)
	}
	return Track1Data{
		FormatCode:     parts[0][0],
		PAN:            parts[0][1:],
		Name:           parts[1],
		ExpirationDate: rest[:dateLen],
		ServiceCode:    rest[dateLen : dateLen+serviceLen],
		Discretionary:  rest[dateLen+serviceLen:],
	}, nil
}
