// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package datamatrix encodes byte payloads into ECC200 Data Matrix
// symbols, per ISO/IEC 16022. It covers the high-level text encoder, the
// symbol size chooser, Reed-Solomon error correction and the module
// placement and rasterization stages; it does not decode, and it does
// not render to an image format.
package datamatrix

import (
	"fmt"

	"github.com/dhoepfl/SwiftDataMatrix/encoder"
)

// CodeType selects the type-marker preamble written ahead of the
// payload.
type CodeType = encoder.CodeType

const (
	Default           = encoder.Default
	GS1               = encoder.GS1
	ReaderProgramming = encoder.ReaderProgramming
	Format05          = encoder.Format05
	Format06          = encoder.Format06
)

// CodeForm constrains the shape of the chosen symbol.
type CodeForm = encoder.CodeForm

const (
	Square            = encoder.Square
	Rectangular       = encoder.Rectangular
	PreferRectangular = encoder.PreferRectangular
)

// Symbol is a fully encoded ECC200 Data Matrix, including its raw
// codewords and its rendered module matrix.
type Symbol struct {
	Info      *encoder.SymbolInfo
	Codewords []byte // data codewords followed by error correction codewords
	Bitmap    *encoder.Bitmap
}

// Columns returns the symbol's module width, including finder patterns
// and timing tracks.
func (s *Symbol) Columns() int { return s.Info.Columns }

// Rows returns the symbol's module height, including finder patterns
// and timing tracks.
func (s *Symbol) Rows() int { return s.Info.Rows }

// Rectangular reports whether the chosen symbol uses a rectangular
// shape rather than a square one.
func (s *Symbol) Rectangular() bool { return s.Info.Rectangular }

// Encode encodes data into the smallest Data Matrix symbol of the
// requested type and shape able to hold it.
func Encode(data []byte, typ CodeType, form CodeForm) (*Symbol, error) {
	dataCodewords, info, err := encoder.EncodeHighLevel(data, typ, form)
	if err != nil {
		return nil, fmt.Errorf("datamatrix: high-level encoding: %w", err)
	}

	full, err := encoder.EncodeECC200(dataCodewords, info)
	if err != nil {
		return nil, fmt.Errorf("datamatrix: error correction: %w", err)
	}

	bitmap := encoder.Render(full, info)

	return &Symbol{Info: info, Codewords: full, Bitmap: bitmap}, nil
}

// EncodeString is a convenience wrapper around Encode for text payloads.
func EncodeString(s string, typ CodeType, form CodeForm) (*Symbol, error) {
	return Encode([]byte(s), typ, form)
}
