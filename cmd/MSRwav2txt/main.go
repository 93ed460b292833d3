package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ysh86/MSRtools/adc"
	"github.com/ysh86/MSRtools/msr"
	"github.com/ysh86/MSRtools/track"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := msr.DefaultConfig()

	inFile := pflag.StringP("infile", "i", "-", "wav (or .ul/.al raw G.711) file to read")
	split := pflag.BoolP("split", "s", false, "split the recording into swipes first")
	pflag.IntVarP(&cfg.MinPeaks, "min-peaks", "m", cfg.MinPeaks, "fewest flux transitions to attempt a decode")
	pflag.Float64VarP(&cfg.ZCRThreshold, "threshold", "t", cfg.ZCRThreshold, "zero-crossing rate that starts a swipe")
	pflag.IntVarP(&cfg.WindowSize, "window", "w", cfg.WindowSize, "swipe detection window in samples")
	pflag.Parse()
	if pflag.NArg() == 1 {
		*inFile = pflag.Arg(0)
	}

	// in
	samples, sampleRate, err := adc.LoadFile(*inFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "sample rate: %v\n", sampleRate)
	fmt.Fprintf(os.Stderr, "samples:     %v\n", len(samples))

	// step1: wav to flux transitions
	peaks := adc.FindPeaks(samples)
	fmt.Fprintf(os.Stderr, "peaks:       %v\n", len(peaks))
	if iv := adc.Intervals(peaks); len(iv) > 0 {
		fmt.Fprintf(os.Stderr, "first gap:   %v samples\n", iv[0])
	}

	// step2: flux transitions to tracks
	var tracks []string
	if *split {
		sg := adc.Segmenter{Threshold: cfg.ZCRThreshold, WindowSize: cfg.WindowSize}
		for _, s := range sg.Find(samples) {
			fmt.Fprintf(os.Stderr, "swipe:       [%d, %d)\n", s.Start, s.End)
		}
		tracks, err = cfg.DecodeRecording(samples)
	} else {
		tracks, err = cfg.DecodeAudio(samples)
	}
	if err != nil {
		return err
	}

	// out
	for _, t := range tracks {
		fmt.Println(t)
		printFields(t)
	}
	return nil
}

func printFields(t string) {
	f, err := track.FormatOf(t)
	if err != nil {
		return
	}
	switch f {
	case track.Track1:
		d, err := track.ParseTrack1(t)
		if err != nil {
			return
		}
		fmt.Fprintf(os.Stderr, "  pan:     %s\n", d.PAN)
		fmt.Fprintf(os.Stderr, "  name:    %s\n", d.Name)
		fmt.Fprintf(os.Stderr, "  expires: %s\n", d.ExpirationDate)
		fmt.Fprintf(os.Stderr, "  service: %s\n", d.ServiceCode)
	case track.Track2:
		d, err := track.ParseTrack2(t)
		if err != nil {
			return
		}
		fmt.Fprintf(os.Stderr, "  pan:     %s\n", d.PAN)
		fmt.Fprintf(os.Stderr, "  expires: %s\n", d.ExpirationDate)
		fmt.Fprintf(os.Stderr, "  service: %s\n", d.ServiceCode)
	}
}
