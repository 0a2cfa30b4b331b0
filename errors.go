package wavio

import "errors"

var (
	// ErrMalformedData is returned when the stream is not a
	// well-formed RIFF/WAVE file: a bad tag, a truncated header, or a
	// missing fmt or data chunk. It is wrapped with a reason.
	ErrMalformedData = errors.New("malformed wav data")
	// ErrUnsupported is returned for valid wav files this codec does
	// not handle: a non-PCM format tag or a bit depth above 32.
	ErrUnsupported = errors.New("unsupported wav format")
	// ErrTooWide is returned when the requested sample type cannot
	// hold the bit depth stored in the file.
	ErrTooWide = errors.New("sample type too narrow for the stored bit depth")
	// ErrSampleOutOfRange is returned when a sample value does not fit
	// the bit depth the encoder was configured with.
	ErrSampleOutOfRange = errors.New("sample value out of range for the configured bit depth")
	// ErrFinalized is returned when an encoder is used after Finalize.
	ErrFinalized = errors.New("encoder already finalized")
)
