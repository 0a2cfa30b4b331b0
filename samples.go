package wavio

import (
	"fmt"
	"io"
	"math/bits"
)

// SampleValue is the closed set of native integer types a sample can
// be decoded into. The chosen type must be at least as wide as the bit
// depth stored in the file.
type SampleValue interface {
	int8 | int16 | int32 | int64 | int
}

// SampleIterator is a lazy, single-pass cursor over the samples of a
// data chunk, channel-interleaved, in file order. It follows the
// scanner idiom:
//
//	it := wavio.Samples[int16](d)
//	for it.Next() {
//		v := it.Value()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type SampleIterator[T SampleValue] struct {
	pcm    io.Reader
	decode func(io.Reader, []byte) (int, error)
	buf    [4]byte
	cur    T
	err    error
	done   bool
}

// Samples returns an iterator decoding every sample of d's data chunk
// into T. The iterator consumes the decoder's underlying reader, so a
// single iterator can be driven per decoder session.
func Samples[T SampleValue](d *Decoder) *SampleIterator[T] {
	it := &SampleIterator[T]{pcm: d.pcm}

	if w := sampleWidth[T](); w < d.spec.BitDepth {
		it.err = fmt.Errorf("%w: %d bits per sample into a %d-bit type", ErrTooWide, d.spec.BitDepth, w)
		return it
	}

	decode, err := sampleDecodeFunc(d.spec.BitDepth)
	if err != nil {
		it.err = err
		return it
	}

	it.decode = decode

	return it
}

func sampleWidth[T SampleValue]() uint16 {
	var z T

	switch any(z).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	case int:
		return bits.UintSize
	default:
		return 64
	}
}

// Next advances the iterator to the next sample. It returns false once
// the data chunk is exhausted or an error occurred; consult Err to
// tell the two apart. After the first false, every call returns false.
func (it *SampleIterator[T]) Next() bool {
	if it.err != nil || it.done {
		return false
	}

	v, err := it.decode(it.pcm, it.buf[:])
	if err != nil {
		it.done = true
		it.err = sampleErr(err)

		return false
	}

	it.cur = T(v)

	return true
}

// Value returns the sample decoded by the last successful call to
// Next.
func (it *SampleIterator[T]) Value() T {
	return it.cur
}

// Err returns the first error the iterator encountered, if any.
func (it *SampleIterator[T]) Err() error {
	return it.err
}
