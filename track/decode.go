package track

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// Hypothesis is one framing the decoder tries on a bitstream.
type Hypothesis struct {
	Format  Format
	Reverse bool
}

func (h Hypothesis) String() string {
	if h.Reverse {
		return h.Format.Name + "/reverse"
	}
	return h.Format.Name + "/forward"
}

// Hypotheses lists the framings in the order Decode tries them.
var Hypotheses = []Hypothesis{
	{Track1, false},
	{Track1, true},
	{Track2, false},
	{Track2, true},
}

// Result is a successfully decoded track.
type Result struct {
	Track      string
	Hypothesis Hypothesis
}

// Decode returns the first hypothesis that yields a valid track. A track
// with nothing between its sentinels is returned only when no other
// hypothesis succeeds: a few clocking and data bits read in the wrong
// direction can form a valid empty Track2.
func Decode(bits []byte) (Result, error) {
	var reversed []byte
	var empty *Result
	attempts := make([]error, 0, len(Hypotheses))
	for _, h := range Hypotheses {
		in := bits
		if h.Reverse {
			if reversed == nil {
				reversed = reverse(bits)
			}
			in = reversed
		}
		s, err := decodeHypothesis(h.Format, in)
		if err != nil {
			attempts = append(attempts, fmt.Errorf("%v: %w", h, err))
			continue
		}
		r := Result{Track: s, Hypothesis: h}
		if !isEmpty(s) {
			return r, nil
		}
		if empty == nil {
			empty = &r
		}
	}
	if empty != nil {
		return *empty, nil
	}
	return Result{}, &DecodeError{Attempts: attempts}
}

// Candidates returns the first valid track found in each direction,
// forward first. Empty tracks sort after the others.
func Candidates(bits []byte) []Result {
	var results []Result
	for _, rev := range []bool{false, true} {
		in := bits
		if rev {
			in = reverse(bits)
		}
		for _, f := range []Format{Track1, Track2} {
			s, err := decodeHypothesis(f, in)
			if err == nil {
				results = append(results, Result{Track: s, Hypothesis: Hypothesis{f, rev}})
				break
			}
		}
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		switch ea, eb := isEmpty(a.Track), isEmpty(b.Track); {
		case ea == eb:
			return 0
		case ea:
			return 1
		}
		return -1
	})
	return results
}

// isEmpty reports whether s holds only its sentinels.
func isEmpty(s string) bool {
	return len(s) <= 2
}

func reverse(bits []byte) []byte {
	r := slices.Clone(bits)
	slices.Reverse(r)
	return r
}

func sentinelBits(f Format, c byte) []byte {
	return appendRow(make([]byte, 0, f.BitsPerChar), f, c-f.Base)
}

func decodeHypothesis(f Format, bits []byte) (string, error) {
	w := f.BitsPerChar

	start := bytes.Index(bits, sentinelBits(f, f.StartSentinel))
	if start < 0 {
		return "", fmt.Errorf("%w: start %q", ErrNoSentinel, f.StartSentinel)
	}

	endPattern := sentinelBits(f, f.EndSentinel)
	end := -1
	for pos := start + w; pos+w <= len(bits); pos += w {
		if bytes.Equal(bits[pos:pos+w], endPattern) {
			end = pos
			break
		}
	}
	if end < 0 {
		return "", fmt.Errorf("%w: end %q", ErrNoSentinel, f.EndSentinel)
	}
	if end+2*w > len(bits) {
		return "", fmt.Errorf("%w: no room for lrc", ErrNoSentinel)
	}

	var reg [7]byte
	rolling := reg[:w-1]
	var b strings.Builder
	for pos := start; pos <= end; pos += w {
		row := bits[pos : pos+w]
		var value byte
		ones := 0
		for i, bit := range row[:w-1] {
			value |= bit << i
			rolling[i] ^= bit
			ones += int(bit)
		}
		if (ones+int(row[w-1]))%2 == 0 {
			return "", fmt.Errorf("%w: row %d", ErrParity, (pos-start)/w)
		}
		b.WriteByte(value + f.Base)
	}

	lrc := bits[end+w : end+2*w]
	sum := 0
	for i, bit := range rolling {
		if lrc[i] != bit {
			return "", fmt.Errorf("%w: column %d", ErrLRC, i)
		}
		sum += int(bit)
	}
	if int(lrc[w-1]) != (1+sum)%2 {
		return "", fmt.Errorf("%w: lrc parity", ErrLRC)
	}
	return b.String(), nil
}
