// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// CodeType selects the type-marker preamble emitted ahead of the payload,
// per ISO/IEC 16022 Annex J and the AIM specification for the reader
// programming and 05/06 macro formats.
type CodeType int

const (
	// Default emits no preamble.
	Default CodeType = iota
	// GS1 emits the FNC1 marker (232) and strips a leading 232 byte from
	// the input if the caller already embedded it.
	GS1
	// ReaderProgramming emits the reader-programming marker (234).
	ReaderProgramming
	// Format05 emits the macro-05 marker (236) and strips the
	// "[)>\x1E05\x1D ... \x1E\x04" envelope when present.
	Format05
	// Format06 emits the macro-06 marker (237) and strips the
	// "[)>\x1E06\x1D ... \x1E\x04" envelope when present.
	Format06
)

// CodeForm constrains the shape of the chosen symbol.
type CodeForm int

const (
	// Square restricts the symbol chooser to square symbols.
	Square CodeForm = iota
	// Rectangular restricts the symbol chooser to rectangular symbols.
	Rectangular
	// PreferRectangular allows either shape.
	PreferRectangular
)

// encodingState is the mutable state threaded through the high-level
// encoder driver: the unconsumed input, the accumulated output codewords
// and the active mode.
type encodingState struct {
	input []byte
	pos   int

	codewords []byte
	mode      Mode
	form      CodeForm
}

func (s *encodingState) remaining() int { return len(s.input) - s.pos }

func (s *encodingState) hasMore() bool { return s.pos < len(s.input) }

func (s *encodingState) peek(offset int) byte { return s.input[s.pos+offset] }

func (s *encodingState) consume() byte {
	b := s.input[s.pos]
	s.pos++
	return b
}

// pushBack un-consumes the most recently consumed byte, returning it to the
// head of the remaining input.
func (s *encodingState) pushBack() { s.pos-- }

func (s *encodingState) emit(cws ...byte) { s.codewords = append(s.codewords, cws...) }

func (s *encodingState) codewordCount() int { return len(s.codewords) }
