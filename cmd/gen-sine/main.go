package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavio"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	const sampleRate = 48000

	wavOut, err := wavio.NewEncoder(file, wavio.Spec{
		NumChans:   1,
		SampleRate: sampleRate,
		BitDepth:   16,
	})
	if err != nil {
		return err
	}

	numSamples := int(sampleRate * *length)

	for i := 0; i < numSamples; i++ {
		fv := math.Sin(float64(i) / sampleRate * *frequency * 2 * math.Pi)

		err := wavOut.WriteSample(int(fv * (math.MaxInt16 - 1)))
		if err != nil {
			return err
		}
	}

	return wavOut.Finalize()
}
