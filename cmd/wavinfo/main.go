// This tool prints the format and level statistics of the passed wav
// file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavio"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	dec, err := wavio.NewDecoder(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Format: %s\n", dec.Spec())
	fmt.Fprintf(out, "Frames: %d\n", dec.NumFrames())
	fmt.Fprintf(out, "Duration: %s\n", dec.Duration())

	var (
		sqrSum float64
		n      int64
	)

	it := wavio.Samples[int64](dec)
	for it.Next() {
		v := float64(it.Value())
		sqrSum += v * v
		n++
	}

	if err := it.Err(); err != nil {
		return err
	}

	if n > 0 {
		fmt.Fprintf(out, "RMS: %.2f\n", math.Sqrt(sqrSum/float64(n)))
	}

	return nil
}
