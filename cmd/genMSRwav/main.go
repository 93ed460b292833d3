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

	outFile := pflag.StringP("outfile", "o", "track.wav", "wav (or .ul/.al raw G.711) file to write")
	data := pflag.StringP("track", "d", "", "track string to write, e.g. ';1234=2512101?'")
	pan := pflag.StringP("pan", "p", "", "primary account number")
	name := pflag.StringP("name", "n", "", "cardholder name, writes track 1 when set")
	exp := pflag.StringP("exp", "e", "", "expiration date YYMM")
	sc := pflag.StringP("service-code", "c", "101", "service code")
	reverse := pflag.BoolP("reverse", "r", false, "write a reverse swipe")
	pflag.IntVarP(&cfg.SampleRate, "rate", "R", cfg.SampleRate, "sample rate in Hz")
	pflag.IntVarP(&cfg.BitRate, "bitrate", "b", cfg.BitRate, "bits per second")
	pflag.IntVarP(&cfg.LeadingZeros, "zeros", "z", cfg.LeadingZeros, "clocking zeros before and after the data")
	pflag.Float64VarP(&cfg.Amplitude, "amplitude", "a", cfg.Amplitude, "peak amplitude 0..1")
	pflag.Parse()

	// step1: fields to track string
	t := *data
	if t == "" {
		var err error
		if *name != "" {
			var n string
			n, err = track.NormalizeName(*name)
			if err != nil {
				return err
			}
			t, err = track.GenerateTrack1(*pan, n, *exp, *sc)
		} else {
			t, err = track.GenerateTrack2(*pan, *exp, *sc)
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "track:       %q\n", t)
	fmt.Fprintf(os.Stderr, "sample rate: %v\n", cfg.SampleRate)
	fmt.Fprintf(os.Stderr, "bit rate:    %v\n", cfg.BitRate)
	fmt.Fprintf(os.Stderr, "reverse:     %v\n", *reverse)

	// step2: track string to LPCM samples
	var samples []float64
	var err error
	if *reverse {
		samples, err = cfg.SynthesizeReverse(t)
	} else {
		samples, err = cfg.Synthesize(t)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "samples:     %v\n", len(samples))

	// step3: samples to file
	return adc.SaveFile(*outFile, samples, cfg.SampleRate)
}
