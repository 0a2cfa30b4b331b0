package wavio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// Offsets of the two size fields written as placeholders by NewEncoder
// and patched by Finalize.
const (
	riffSizeOffset = 4
	dataSizeOffset = 40
	headerSize     = 44
)

// Encoder writes PCM samples into a wav container. The complete header
// is written up front with placeholder size fields so that samples can
// be appended as a pure stream; Finalize seeks back and patches the
// sizes once the sample count is known.
//
// An encoder that is abandoned without calling Finalize leaves a
// structurally parseable file whose data chunk claims zero bytes, even
// though sample data was appended.
type Encoder struct {
	w    io.WriteSeeker
	spec Spec

	encode func(io.Writer, []byte, int) error
	buf    [4]byte

	samplesWritten uint64
	dataBytes      uint64
	finalized      bool
}

// NewEncoder validates spec and writes the provisional header. The
// encoder owns the writer's position until Finalize returns; no other
// code may write to w in between.
func NewEncoder(w io.WriteSeeker, spec Spec) (*Encoder, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	encode, err := sampleEncodeFunc(spec.BitDepth)
	if err != nil {
		return nil, err
	}

	e := &Encoder{w: w, spec: spec, encode: encode}

	if err := e.writeHeader(); err != nil {
		return nil, err
	}

	return e, nil
}

// Spec returns the format the encoder was created with.
func (e *Encoder) Spec() Spec {
	return e.spec
}

// SamplesWritten returns the number of samples appended so far, across
// all channels.
func (e *Encoder) SamplesWritten() uint64 {
	return e.samplesWritten
}

// WriteSample encodes one sample at the configured bit depth and
// appends it to the data chunk. Samples are channel-interleaved; the
// caller supplies NumChans values per frame.
func (e *Encoder) WriteSample(v int) error {
	if e.finalized {
		return ErrFinalized
	}

	if err := e.encode(e.w, e.buf[:], v); err != nil {
		return err
	}

	e.samplesWritten++
	e.dataBytes += uint64(e.spec.BytesPerSample())

	return nil
}

// Write appends every sample of buf to the data chunk.
func (e *Encoder) Write(buf *audio.IntBuffer) error {
	if buf == nil {
		return nil
	}

	for _, v := range buf.Data {
		if err := e.WriteSample(v); err != nil {
			return err
		}
	}

	return nil
}

// Finalize pads the data chunk to a word boundary and patches the two
// placeholder size fields. It must be called exactly once, before the
// underlying writer is closed; a second call fails with ErrFinalized.
// The underlying writer is NOT closed.
func (e *Encoder) Finalize() error {
	if e.finalized {
		return ErrFinalized
	}

	e.finalized = true

	var pad uint64
	if e.dataBytes%2 == 1 {
		if _, err := e.w.Write([]byte{0}); err != nil {
			return fmt.Errorf("failed to write pad byte: %w", err)
		}

		pad = 1
	}

	if err := e.patchSize(riffSizeOffset, uint32(headerSize-8)+uint32(e.dataBytes+pad)); err != nil {
		return err
	}

	if err := e.patchSize(dataSizeOffset, uint32(e.dataBytes)); err != nil {
		return err
	}

	if _, err := e.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end of file: %w", err)
	}

	if f, ok := e.w.(*os.File); ok {
		if err := f.Sync(); err != nil {
			return fmt.Errorf("failed to sync file: %w", err)
		}
	}

	return nil
}

// writeHeader emits the full 44-byte header. The RIFF size covers the
// header only and the data size is zero until Finalize patches both.
func (e *Encoder) writeHeader() error {
	fields := []any{
		riff.RiffID,
		uint32(headerSize - 8),
		riff.WavFormatID,
		riff.FmtID,
		uint32(16),
		uint16(wavFormatPCM),
		e.spec.NumChans,
		e.spec.SampleRate,
		e.spec.ByteRate(),
		e.spec.BlockAlign(),
		e.spec.BitDepth,
		riff.DataFormatID,
		uint32(0),
	}

	for _, field := range fields {
		if err := e.addLE(field); err != nil {
			return err
		}
	}

	return nil
}

// addLE serializes and appends the passed value using little endian.
func (e *Encoder) addLE(src any) error {
	if err := binary.Write(e.w, binary.LittleEndian, src); err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

func (e *Encoder) patchSize(offset int64, v uint32) error {
	if _, err := e.w.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to size field at offset %d: %w", offset, err)
	}

	return e.addLE(v)
}
