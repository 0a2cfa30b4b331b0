package wavio

import (
	"errors"
	"testing"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{"cd audio", Spec{NumChans: 2, SampleRate: 44100, BitDepth: 16}, nil},
		{"mono 8-bit", Spec{NumChans: 1, SampleRate: 8000, BitDepth: 8}, nil},
		{"odd bit depth", Spec{NumChans: 1, SampleRate: 8000, BitDepth: 12}, nil},
		{"32-bit", Spec{NumChans: 2, SampleRate: 96000, BitDepth: 32}, nil},
		{"zero channels", Spec{NumChans: 0, SampleRate: 44100, BitDepth: 16}, ErrMalformedData},
		{"zero sample rate", Spec{NumChans: 1, SampleRate: 0, BitDepth: 16}, ErrMalformedData},
		{"zero bit depth", Spec{NumChans: 1, SampleRate: 44100, BitDepth: 0}, ErrUnsupported},
		{"too deep", Spec{NumChans: 1, SampleRate: 44100, BitDepth: 33}, ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate()=%v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpecDerivedSizes(t *testing.T) {
	tests := []struct {
		name           string
		spec           Spec
		bytesPerSample uint16
		blockAlign     uint16
		byteRate       uint32
	}{
		{"stereo 16-bit", Spec{NumChans: 2, SampleRate: 44100, BitDepth: 16}, 2, 4, 176400},
		{"mono 8-bit", Spec{NumChans: 1, SampleRate: 8000, BitDepth: 8}, 1, 1, 8000},
		{"mono 24-bit", Spec{NumChans: 1, SampleRate: 48000, BitDepth: 24}, 3, 3, 144000},
		{"stereo 32-bit", Spec{NumChans: 2, SampleRate: 96000, BitDepth: 32}, 4, 8, 768000},
		{"12-bit uses 2 bytes", Spec{NumChans: 1, SampleRate: 8000, BitDepth: 12}, 2, 2, 16000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.BytesPerSample(); got != tt.bytesPerSample {
				t.Fatalf("BytesPerSample()=%d, want %d", got, tt.bytesPerSample)
			}

			if got := tt.spec.BlockAlign(); got != tt.blockAlign {
				t.Fatalf("BlockAlign()=%d, want %d", got, tt.blockAlign)
			}

			if got := tt.spec.ByteRate(); got != tt.byteRate {
				t.Fatalf("ByteRate()=%d, want %d", got, tt.byteRate)
			}
		})
	}
}

func TestSpecString(t *testing.T) {
	spec := Spec{NumChans: 2, SampleRate: 44100, BitDepth: 16}

	want := "2 ch, 44100 Hz @ 16 bits"
	if got := spec.String(); got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}
