// Package wavio encodes and decodes uncompressed PCM audio stored in
// the RIFF/WAVE container, one sample at a time.
//
// The decoder validates the container headers at open time, skips any
// chunk it does not recognize, and exposes the data chunk as a lazy,
// single-pass sample sequence:
//
//	d, err := wavio.NewDecoder(f)
//	it := wavio.Samples[int16](d)
//	for it.Next() {
//		process(it.Value())
//	}
//	err = it.Err()
//
// The encoder writes a provisional header up front so samples can be
// appended as a pure stream; Finalize seeks back and patches the size
// fields once the sample count is known:
//
//	e, err := wavio.NewEncoder(f, wavio.Spec{NumChans: 1, SampleRate: 44100, BitDepth: 16})
//	err = e.WriteSample(v)
//	err = e.Finalize()
//
// Bit depths from 1 to 32 bits are supported, stored in 1 to 4 bytes
// per sample. Anything other than linear PCM (format tag 1) is
// rejected as unsupported.
package wavio
