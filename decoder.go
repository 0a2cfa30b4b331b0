package wavio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/riff"
)

// Decoder reads PCM samples out of a RIFF/WAVE stream.
//
// A decoder owns its reader for the lifetime of the session. The
// stream is consumed strictly forward and is never rewound; to decode
// the same data twice, open a new decoder on a fresh reader.
type Decoder struct {
	r      io.Reader
	parser *riff.Parser

	spec    Spec
	pcmSize uint32
	pcm     io.Reader
}

// NewDecoder opens a wav stream and validates its headers. The fmt
// chunk must appear before the data chunk; any other chunk is skipped
// by length without interpretation. Only uncompressed PCM content is
// accepted.
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{r: r, parser: riff.New(r)}

	if err := d.readHeaders(); err != nil {
		return nil, err
	}

	return d, nil
}

// Spec returns the format parsed from the fmt chunk.
func (d *Decoder) Spec() Spec {
	return d.spec
}

// PCMLen returns the total number of bytes in the PCM data chunk, as
// declared by its header. Trailing bytes beyond that size are never
// decoded.
func (d *Decoder) PCMLen() int64 {
	return int64(d.pcmSize)
}

// NumFrames returns the number of complete frames in the data chunk.
func (d *Decoder) NumFrames() int64 {
	return int64(d.pcmSize) / int64(d.spec.BlockAlign())
}

// NumSamples returns the number of complete samples in the data chunk,
// across all channels.
func (d *Decoder) NumSamples() int64 {
	return int64(d.pcmSize) / int64(d.spec.BytesPerSample())
}

// Duration returns the play time of the decoded content.
func (d *Decoder) Duration() time.Duration {
	return time.Duration(d.NumFrames()) * d.spec.FrameDuration()
}

// String implements the Stringer interface.
func (d *Decoder) String() string {
	return d.spec.String()
}

// readHeaders consumes the outer RIFF header and every sub-chunk up to
// and including the data chunk header. The RIFF size field is advisory
// and is not checked against the actual stream length.
func (d *Decoder) readHeaders() error {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return headerErr(err, "short RIFF header")
	}

	d.parser.ID = id
	if id != riff.RiffID {
		return fmt.Errorf("%w: %q is not a RIFF tag", ErrMalformedData, id[:])
	}

	d.parser.Size = size

	if err := binary.Read(d.r, binary.BigEndian, &d.parser.Format); err != nil {
		return headerErr(err, "short WAVE tag")
	}

	if d.parser.Format != riff.WavFormatID {
		return fmt.Errorf("%w: %q is not a WAVE form type", ErrMalformedData, d.parser.Format[:])
	}

	var seenFmt bool

	for {
		id, size, err := d.parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if !seenFmt {
					return fmt.Errorf("%w: no fmt chunk", ErrMalformedData)
				}

				return fmt.Errorf("%w: no data chunk", ErrMalformedData)
			}

			return fmt.Errorf("error reading chunk header: %w", err)
		}

		switch id {
		case riff.FmtID:
			if err := d.parseFmtChunk(size); err != nil {
				return err
			}

			seenFmt = true
		case riff.DataFormatID:
			if !seenFmt {
				return fmt.Errorf("%w: data chunk before fmt chunk", ErrMalformedData)
			}

			d.pcmSize = size
			d.pcm = io.LimitReader(d.r, int64(size))

			return nil
		default:
			if err := d.skipChunk(size); err != nil {
				return err
			}
		}
	}
}

// parseFmtChunk validates the format fields. The byte rate and block
// align fields are redundant; a mismatch with the explicit fields is
// tolerated and the explicit fields win.
func (d *Decoder) parseFmtChunk(size uint32) error {
	chunk := &riff.Chunk{
		ID:   riff.FmtID,
		Size: int(paddedSize(size)),
		R:    io.LimitReader(d.r, int64(paddedSize(size))),
	}

	var (
		formatTag      uint16
		numChans       uint16
		sampleRate     uint32
		avgBytesPerSec uint32
		blockAlign     uint16
		bitDepth       uint16
	)

	fields := []any{&formatTag, &numChans, &sampleRate, &avgBytesPerSec, &blockAlign, &bitDepth}
	for _, field := range fields {
		if err := chunk.ReadLE(field); err != nil {
			return headerErr(err, "short fmt chunk")
		}
	}

	if formatTag != wavFormatPCM {
		return fmt.Errorf("%w: format tag %d is not PCM", ErrUnsupported, formatTag)
	}

	spec := Spec{NumChans: numChans, SampleRate: sampleRate, BitDepth: bitDepth}
	if err := spec.Validate(); err != nil {
		return err
	}

	chunk.Drain()

	d.spec = spec

	return nil
}

// skipChunk advances past an unrecognized chunk's payload, including
// the pad byte that follows an odd-sized payload.
func (d *Decoder) skipChunk(size uint32) error {
	if _, err := io.CopyN(io.Discard, d.r, int64(paddedSize(size))); err != nil {
		return headerErr(err, fmt.Sprintf("short chunk payload of %d bytes", size))
	}

	return nil
}

// paddedSize returns size rounded up to a word boundary. RIFF chunks
// are word aligned; the pad byte is not counted in the chunk size.
func paddedSize(size uint32) uint32 {
	if size%2 == 1 {
		size++
	}

	return size
}

// headerErr maps a premature end of stream to a malformed-data error
// and passes genuine I/O failures through unchanged.
func headerErr(err error, context string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrMalformedData, context)
	}

	return fmt.Errorf("%s: %w", context, err)
}
