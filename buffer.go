package wavio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
)

// Format returns the stream format as a go-audio format value.
func (d *Decoder) Format() *audio.Format {
	return &audio.Format{
		NumChannels: int(d.spec.NumChans),
		SampleRate:  int(d.spec.SampleRate),
	}
}

// PCMBuffer fills buf.Data with decoded samples and reports how many
// were stored. It returns 0 once the data chunk is exhausted.
func (d *Decoder) PCMBuffer(buf *audio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	decode, err := sampleDecodeFunc(d.spec.BitDepth)
	if err != nil {
		return 0, err
	}

	buf.Format = d.Format()
	buf.SourceBitDepth = int(d.spec.BitDepth)

	var sampleBuf [4]byte

	for n := range buf.Data {
		v, err := decode(d.pcm, sampleBuf[:])
		if err != nil {
			return n, sampleErr(err)
		}

		buf.Data[n] = v
	}

	return len(buf.Data), nil
}

// FullPCMBuffer decodes the entire remaining data chunk into memory.
// The whole chunk is held at once; prefer PCMBuffer or Samples for
// large files.
func (d *Decoder) FullPCMBuffer() (*audio.IntBuffer, error) {
	buf := &audio.IntBuffer{
		Data:           make([]int, 0, 4096),
		Format:         d.Format(),
		SourceBitDepth: int(d.spec.BitDepth),
	}

	decode, err := sampleDecodeFunc(d.spec.BitDepth)
	if err != nil {
		return nil, err
	}

	var sampleBuf [4]byte

	for {
		v, err := decode(d.pcm, sampleBuf[:])
		if err != nil {
			return buf, sampleErr(err)
		}

		buf.Data = append(buf.Data, v)
	}
}

// sampleErr maps the end of the data chunk to success, a partial
// sample to a malformed-data error, and passes other failures through.
func sampleErr(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: truncated sample at end of data chunk", ErrMalformedData)
	default:
		return fmt.Errorf("failed to read sample: %w", err)
	}
}
