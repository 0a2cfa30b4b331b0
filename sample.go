package wavio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/audio"
)

// sampleDecodeFunc returns a function that reads one sample from r
// into a native int, based on the amount of bits used per sample.
// Note that 8-bit samples are stored unsigned with a 128 bias that is
// removed on decode; all other widths are little-endian
// two's-complement.
func sampleDecodeFunc(bitDepth uint16) (func(r io.Reader, buf []byte) (int, error), error) {
	if bitDepth == 0 || bitDepth > maxBitDepth {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupported, bitDepth)
	}

	switch {
	case bitDepth <= 8:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:1]); err != nil {
				return 0, err
			}

			return int(buf[0]) - 128, nil
		}, nil
	case bitDepth <= 16:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:2]); err != nil {
				return 0, err
			}

			return int(int16(binary.LittleEndian.Uint16(buf[:2]))), nil
		}, nil
	case bitDepth <= 24:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:3]); err != nil {
				return 0, err
			}

			return int(audio.Int24LETo32(buf[:3])), nil
		}, nil
	default:
		return func(r io.Reader, buf []byte) (int, error) {
			if _, err := io.ReadFull(r, buf[:4]); err != nil {
				return 0, err
			}

			return int(int32(binary.LittleEndian.Uint32(buf[:4]))), nil
		}, nil
	}
}

// sampleEncodeFunc returns a function that writes one sample at the
// passed bit depth. Values outside the representable range for that
// depth are rejected, never wrapped.
func sampleEncodeFunc(bitDepth uint16) (func(w io.Writer, buf []byte, v int) error, error) {
	if bitDepth == 0 || bitDepth > maxBitDepth {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupported, bitDepth)
	}

	lo, hi := sampleRange(bitDepth)

	check := func(v int) error {
		if int64(v) < lo || int64(v) > hi {
			return fmt.Errorf("%w: %d at %d bits", ErrSampleOutOfRange, v, bitDepth)
		}

		return nil
	}

	switch {
	case bitDepth <= 8:
		return func(w io.Writer, buf []byte, v int) error {
			if err := check(v); err != nil {
				return err
			}

			buf[0] = byte(v + 128)
			_, err := w.Write(buf[:1])

			return err
		}, nil
	case bitDepth <= 16:
		return func(w io.Writer, buf []byte, v int) error {
			if err := check(v); err != nil {
				return err
			}

			binary.LittleEndian.PutUint16(buf[:2], uint16(int16(v)))
			_, err := w.Write(buf[:2])

			return err
		}, nil
	case bitDepth <= 24:
		return func(w io.Writer, buf []byte, v int) error {
			if err := check(v); err != nil {
				return err
			}

			copy(buf[:3], audio.Int32toInt24LEBytes(int32(v)))
			_, err := w.Write(buf[:3])

			return err
		}, nil
	default:
		return func(w io.Writer, buf []byte, v int) error {
			if err := check(v); err != nil {
				return err
			}

			binary.LittleEndian.PutUint32(buf[:4], uint32(int32(v)))
			_, err := w.Write(buf[:4])

			return err
		}, nil
	}
}

// sampleRange returns the smallest and largest values representable at
// the passed bit depth. The 128 bias of the 1-byte layout does not
// change the logical range: a biased 8-bit sample still decodes into
// [-128, 127].
func sampleRange(bitDepth uint16) (int64, int64) {
	half := int64(1) << (bitDepth - 1)

	return -half, half - 1
}
