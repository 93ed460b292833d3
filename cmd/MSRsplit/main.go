package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ysh86/MSRtools/adc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	inFile := pflag.StringP("infile", "i", "", "recording to split")
	threshold := pflag.Float64P("threshold", "t", 0.1, "zero-crossing rate that starts a swipe")
	window := pflag.IntP("window", "w", 1024, "window size in samples")
	pad := pflag.IntP("pad", "p", 1024, "samples kept around each swipe")
	closeAtEnd := pflag.BoolP("close-at-end", "c", false, "keep a swipe still running at the end of the recording")
	pflag.Parse()
	if pflag.NArg() == 1 {
		*inFile = pflag.Arg(0)
	}
	if *inFile == "" {
		pflag.Usage()
		return fmt.Errorf("no input file")
	}

	// in
	samples, sampleRate, err := adc.LoadFile(*inFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "sample rate: %v\n", sampleRate)
	fmt.Fprintf(os.Stderr, "samples:     %v\n", len(samples))
	fmt.Fprintf(os.Stderr, "threshold:   %v\n", *threshold)
	fmt.Fprintf(os.Stderr, "window:      %v\n", *window)

	// step1: find swipes
	sg := adc.Segmenter{Threshold: *threshold, WindowSize: *window, CloseAtEnd: *closeAtEnd}
	swipes := sg.Find(samples)
	fmt.Fprintf(os.Stderr, "swipes:      %v\n", len(swipes))

	// step2: export each swipe
	ext := filepath.Ext(*inFile)
	if *inFile == "-" {
		ext = ".wav"
	}
	base := strings.TrimSuffix(*inFile, ext)
	if *inFile == "-" {
		base = "stdin"
	}
	for i, s := range swipes {
		s = s.Pad(*pad, len(samples))
		outFile := fmt.Sprintf("%s.%02d%s", base, i, ext)
		if err := adc.SaveFile(outFile, adc.Trim(samples, s), sampleRate); err != nil {
			return err
		}
		fmt.Printf("%s: [%d, %d)\n", outFile, s.Start, s.End)
	}
	return nil
}
