// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// packASCII packs a single ASCII "unit": a digit pair collapsed into one
// double-digit codeword when possible, otherwise one plain or
// upper-shifted extended-ASCII codeword.
func packASCII(s *encodingState) {
	if s.remaining() >= 2 && isDigit(s.peek(0)) && isDigit(s.peek(1)) {
		d1 := s.consume() - '0'
		d2 := s.consume() - '0'
		s.emit(byte(int(d1)*10+int(d2)) + 130)
		return
	}

	c := s.consume()
	if isExtendedASCII(c) {
		s.emit(asciiUpperShift, c-128+1)
		return
	}
	s.emit(c + 1)
}
