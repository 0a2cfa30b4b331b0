// This tool converts a wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavio"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var flagPath = flag.String("path", "", "The path to the wav file to convert to aiff")

func main() {
	flag.Parse()

	if *flagPath == "" {
		fmt.Println("You must set the -path flag")
		os.Exit(1)
	}

	sourcePath := *flagPath
	if strings.HasPrefix(sourcePath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Println("Failed to get the user home directory")
			os.Exit(1)
		}

		sourcePath = strings.Replace(sourcePath, "~", usr.HomeDir, 1)
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	if err := convert(sourcePath, outPath); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func convert(sourcePath, outPath string) error {
	file, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}
	defer file.Close()

	decoder, err := wavio.NewDecoder(file)
	if err != nil {
		return fmt.Errorf("invalid WAV file: %w", err)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	spec := decoder.Spec()
	encoder := aiff.NewEncoder(outFile, int(spec.SampleRate), int(spec.BitDepth), int(spec.NumChans))

	const bufferSize = 1000000

	buf := &audio.IntBuffer{
		Data:           make([]int, bufferSize),
		Format:         decoder.Format(),
		SourceBitDepth: int(spec.BitDepth),
	}

	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			return err
		}

		if n == 0 {
			break
		}

		chunk := buf
		if n != len(buf.Data) {
			chunk = &audio.IntBuffer{
				Data:           buf.Data[:n],
				Format:         buf.Format,
				SourceBitDepth: buf.SourceBitDepth,
			}
		}

		if err := encoder.Write(chunk); err != nil {
			return err
		}
	}

	return encoder.Close()
}
