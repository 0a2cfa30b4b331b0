package wavio

import (
	"fmt"
	"time"
)

const wavFormatPCM = 1

const maxBitDepth = 32

// Spec describes the PCM stream stored in a wav file: the channel
// count, the sample rate in hertz, and the bit depth of each sample.
// A Spec is a plain value; it can be freely copied and compared.
type Spec struct {
	NumChans   uint16
	SampleRate uint32
	BitDepth   uint16
}

// Validate checks that the spec describes a storable PCM stream.
func (s Spec) Validate() error {
	if s.NumChans == 0 {
		return fmt.Errorf("%w: zero channels", ErrMalformedData)
	}

	if s.SampleRate == 0 {
		return fmt.Errorf("%w: zero sample rate", ErrMalformedData)
	}

	if s.BitDepth == 0 || s.BitDepth > maxBitDepth {
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupported, s.BitDepth)
	}

	return nil
}

// BytesPerSample returns the number of bytes used to store one sample.
func (s Spec) BytesPerSample() uint16 {
	return (s.BitDepth-1)/8 + 1
}

// BlockAlign returns the number of bytes per frame, one sample for
// each channel.
func (s Spec) BlockAlign() uint16 {
	return s.NumChans * s.BytesPerSample()
}

// ByteRate returns the number of data bytes consumed per second of
// audio.
func (s Spec) ByteRate() uint32 {
	return s.SampleRate * uint32(s.BlockAlign())
}

// FrameDuration returns the duration covered by a single frame.
func (s Spec) FrameDuration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}

	return time.Second / time.Duration(s.SampleRate)
}

// String implements the Stringer interface.
func (s Spec) String() string {
	return fmt.Sprintf("%d ch, %d Hz @ %d bits", s.NumChans, s.SampleRate, s.BitDepth)
}
