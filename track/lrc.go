package track

// Calculate returns the XOR of all bytes of text.
func Calculate(text string) byte {
	var lrc byte
	for i := 0; i < len(text); i++ {
		lrc ^= text[i]
	}
	return lrc
}

// Validate checks that the last byte of text is the LRC of the rest.
func Validate(text string) bool {
	if text == "" {
		return false
	}
	n := len(text) - 1
	return Calculate(text[:n]) == text[n]
}

// AppendLRC returns text followed by its LRC character.
func AppendLRC(text string) string {
	return text + string([]byte{Calculate(text)})
}
