package track

import (
	"fmt"
	"strings"
)

const (
	maxPANLen  = 19
	maxNameLen = 26
	dateLen    = 4
	serviceLen = 3

	fieldSeparator1 = '^'
	fieldSeparator2 = '='
	formatCodeB     = 'B'
)

// GenerateTrack2 builds ";PAN=YYMMSSS?" followed by its LRC character.
func GenerateTrack2(pan, expirationDate, serviceCode string) (string, error) {
	if err := checkCommon(pan, expirationDate, serviceCode); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte(Track2.StartSentinel)
	b.WriteString(pan)
	b.WriteByte(fieldSeparator2)
	b.WriteString(expirationDate)
	b.WriteString(serviceCode)
	b.WriteByte(Track2.EndSentinel)
	return AppendLRC(b.String()), nil
}

// GenerateTrack1 builds "%BPAN^NAME^YYMMSSS?" followed by its LRC character.
func GenerateTrack1(pan, name, expirationDate, serviceCode string) (string, error) {
	if err := checkCommon(pan, expirationDate, serviceCode); err != nil {
		return "", err
	}
	if len(name) > maxNameLen {
		return "", fmt.Errorf("%w: name longer than %d: %d", ErrInvalidArgument, maxNameLen, len(name))
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !Track1.Valid(c) || c == fieldSeparator1 || c == Track1.StartSentinel || c == Track1.EndSentinel {
			return "", fmt.Errorf("%w: name: invalid character %q", ErrInvalidArgument, c)
		}
	}

	var b strings.Builder
	b.WriteByte(Track1.StartSentinel)
	b.WriteByte(formatCodeB)
	b.WriteString(pan)
	b.WriteByte(fieldSeparator1)
	b.WriteString(name)
	b.WriteByte(fieldSeparator1)
	b.WriteString(expirationDate)
	b.WriteString(serviceCode)
	b.WriteByte(Track1.EndSentinel)
	return AppendLRC(b.String()), nil
}

func checkCommon(pan, expirationDate, serviceCode string) error {
	if len(pan) > maxPANLen {
		return fmt.Errorf("%w: pan longer than %d: %d", ErrInvalidArgument, maxPANLen, len(pan))
	}
	if len(expirationDate) != dateLen {
		return fmt.Errorf("%w: expiration date must be %d digits: %q", ErrInvalidArgument, dateLen, expirationDate)
	}
	if len(serviceCode) != serviceLen {
		return fmt.Errorf("%w: service code must be %d digits: %q", ErrInvalidArgument, serviceLen, serviceCode)
	}
	for _, field := range []struct{ name, value string }{
		{"pan", pan},
		{"expiration date", expirationDate},
		{"service code", serviceCode},
	} {
		if !isDigits(field.value) {
			return fmt.Errorf("%w: %s: not numeric: %q", ErrInvalidArgument, field.name, field.value)
		}
	}
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// EncodeChar returns the data bits of c, LSB first, followed by an odd
// parity bit.
func EncodeChar(f Format, c byte) ([]byte, error) {
	if !f.Valid(c) {
		return nil, fmt.Errorf("%w: %s: character %q out of range", ErrInvalidArgument, f, c)
	}
	return appendRow(make([]byte, 0, f.BitsPerChar), f, c-f.Base), nil
}

func appendRow(bits []byte, f Format, value byte) []byte {
	ones := 0
	for i := 0; i < f.dataBits(); i++ {
		b := (value >> i) & 1
		ones += int(b)
		bits = append(bits, b)
	}
	return append(bits, byte(1-ones%2))
}

// Encode converts the track string s, from its start sentinel through its
// end sentinel, into the bits written on the stripe. The LRC row is computed
// column-wise from the encoded rows; any characters following the end
// sentinel are ignored.
func Encode(f Format, s string) ([]byte, error) {
	if s == "" || s[0] != f.StartSentinel {
		return nil, fmt.Errorf("%w: %s: missing start sentinel %q", ErrInvalidArgument, f, f.StartSentinel)
	}
	end := strings.IndexByte(s[1:], f.EndSentinel)
	if end < 0 {
		return nil, fmt.Errorf("%w: %s: missing end sentinel %q", ErrInvalidArgument, f, f.EndSentinel)
	}
	data := s[:end+2]

	bits := make([]byte, 0, (len(data)+1)*f.BitsPerChar)
	var lrc byte
	for i := 0; i < len(data); i++ {
		c := data[i]
		if !f.Valid(c) {
			return nil, fmt.Errorf("%w: %s: character %q at %d out of range", ErrInvalidArgument, f, c, i)
		}
		lrc ^= c - f.Base
		bits = appendRow(bits, f, c-f.Base)
	}
	return appendRow(bits, f, lrc), nil
}

// EncodeTrack is Encode with the format taken from the start sentinel.
func EncodeTrack(s string) ([]byte, error) {
	f, err := FormatOf(s)
	if err != nil {
		return nil, err
	}
	return Encode(f, s)
}
