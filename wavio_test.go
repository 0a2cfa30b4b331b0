package wavio

import (
	"os"
	"testing"

	"github.com/go-audio/audio"
)

func rampSamples(bitDepth uint16, n int) []int {
	lo, hi := sampleRange(bitDepth)

	out := make([]int, 0, n+2)
	out = append(out, int(lo), int(hi))

	for i := 0; i < n; i++ {
		out = append(out, i-n/2)
	}

	return out
}

func TestWriteReadIsLossless(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"mono 8-bit", Spec{NumChans: 1, SampleRate: 8000, BitDepth: 8}},
		{"stereo 8-bit", Spec{NumChans: 2, SampleRate: 22050, BitDepth: 8}},
		{"mono 16-bit", Spec{NumChans: 1, SampleRate: 44100, BitDepth: 16}},
		{"stereo 16-bit", Spec{NumChans: 2, SampleRate: 44100, BitDepth: 16}},
		{"mono 24-bit", Spec{NumChans: 1, SampleRate: 48000, BitDepth: 24}},
		{"stereo 24-bit", Spec{NumChans: 2, SampleRate: 48000, BitDepth: 24}},
		{"mono 32-bit", Spec{NumChans: 1, SampleRate: 96000, BitDepth: 32}},
		{"stereo 32-bit", Spec{NumChans: 2, SampleRate: 96000, BitDepth: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestFile(t)

			samples := rampSamples(tt.spec.BitDepth, 100*int(tt.spec.NumChans))

			e, err := NewEncoder(f, tt.spec)
			if err != nil {
				t.Fatalf("NewEncoder: %v", err)
			}

			for _, v := range samples {
				if err := e.WriteSample(v); err != nil {
					t.Fatalf("WriteSample(%d): %v", v, err)
				}
			}

			if err := e.Finalize(); err != nil {
				t.Fatalf("Finalize: %v", err)
			}

			in, err := os.Open(f.Name())
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer in.Close()

			d, err := NewDecoder(in)
			if err != nil {
				t.Fatalf("NewDecoder: %v", err)
			}

			if d.Spec() != tt.spec {
				t.Fatalf("Spec()=%+v, want %+v", d.Spec(), tt.spec)
			}

			if d.NumSamples() != int64(len(samples)) {
				t.Fatalf("NumSamples()=%d, want %d", d.NumSamples(), len(samples))
			}

			i := 0

			it := Samples[int](d)
			for it.Next() {
				if it.Value() != samples[i] {
					t.Fatalf("sample %d: got %d, want %d", i, it.Value(), samples[i])
				}

				i++
			}

			if err := it.Err(); err != nil {
				t.Fatalf("iterator error: %v", err)
			}

			if i != len(samples) {
				t.Fatalf("decoded %d samples, want %d", i, len(samples))
			}
		})
	}
}

func TestBufferRoundTrip(t *testing.T) {
	spec := Spec{NumChans: 2, SampleRate: 44100, BitDepth: 16}

	samples := rampSamples(spec.BitDepth, 256)
	if len(samples)%2 == 1 {
		samples = samples[:len(samples)-1]
	}

	f := createTestFile(t)

	e, err := NewEncoder(f, spec)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	in := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 2, SampleRate: 44100},
		SourceBitDepth: 16,
	}

	if err := e.Write(in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := e.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	reopened, err := os.Open(f.Name())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	d, err := NewDecoder(reopened)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	out, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}

	if out.SourceBitDepth != 16 {
		t.Fatalf("SourceBitDepth=%d, want 16", out.SourceBitDepth)
	}

	if out.Format == nil || out.Format.NumChannels != 2 || out.Format.SampleRate != 44100 {
		t.Fatalf("unexpected format: %+v", out.Format)
	}

	if len(out.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(out.Data), len(samples))
	}

	for i := range samples {
		if out.Data[i] != samples[i] {
			t.Fatalf("sample %d: got %d, want %d", i, out.Data[i], samples[i])
		}
	}
}

func TestPCMBufferChunkedReads(t *testing.T) {
	spec := Spec{NumChans: 1, SampleRate: 8000, BitDepth: 16}

	f := createTestFile(t)

	e, err := NewEncoder(f, spec)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	const total = 10
	for i := 0; i < total; i++ {
		if err := e.WriteSample(i); err != nil {
			t.Fatalf("WriteSample: %v", err)
		}
	}

	if err := e.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	reopened, err := os.Open(f.Name())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	d, err := NewDecoder(reopened)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	buf := &audio.IntBuffer{Data: make([]int, 4)}

	var got []int

	for {
		n, err := d.PCMBuffer(buf)
		if err != nil {
			t.Fatalf("PCMBuffer: %v", err)
		}

		if n == 0 {
			break
		}

		got = append(got, buf.Data[:n]...)
	}

	if len(got) != total {
		t.Fatalf("read %d samples, want %d", len(got), total)
	}

	for i := range got {
		if got[i] != i {
			t.Fatalf("sample %d: got %d, want %d", i, got[i], i)
		}
	}
}
