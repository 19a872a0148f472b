// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// randomize256 applies the ISO/IEC 16022 §5.2.8 pseudo-random scramble to
// a Base256 payload or length byte, keyed by n, the codeword's 1-based
// position in the full output stream.
func randomize256(b byte, n int) byte {
	return byte((int(b) + (n*149)%254 + 1) % 256)
}

// packBase256 implements the Base256 packer: it consumes a contiguous
// run of bytes that the mode selector has committed to encoding as raw
// binary, and emits a length header (one byte for runs up to 254, a
// two-byte extended form otherwise) followed by the randomized payload.
// The length header participates in the same position count as the
// payload, so it is randomized as codeword n even though its value is
// only known once the whole run has been collected.
func packBase256(s *encodingState) error {
	start := s.pos
	for s.hasMore() {
		s.consume()
		if s.hasMore() && chooseMode(s.input, s.pos, s.mode) != s.mode {
			break
		}
	}
	run := s.input[start:s.pos]

	headerPos := s.codewordCount() + 1

	switch {
	case len(run) <= 254:
		s.emit(randomize256(byte(len(run)), headerPos))
	case len(run)/250 <= 6:
		hi := byte(len(run)/250) + 249
		lo := byte(len(run) % 250)
		s.emit(randomize256(hi, headerPos), randomize256(lo, headerPos+1))
	default:
		s.pos = start // fail without consuming the run
		return ErrOutOfSpace
	}

	base := s.codewordCount() + 1
	for i, b := range run {
		s.emit(randomize256(b, base+i))
	}
	s.mode = ModeAscii
	return nil
}
