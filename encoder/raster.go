// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "github.com/dhoepfl/SwiftDataMatrix/bitutil"

// Bitmap is a rendered ECC200 symbol: a packed 1-bpp raster using the
// convention that a cleared bit (0) marks a dark module, MSB-first
// within each row, with each row padded out to a whole number of bytes.
type Bitmap struct {
	Width  int
	Height int
	Stride int // bytes per row
	Bits   []byte
}

// Render places the full codeword sequence (data plus error correction)
// into the mapping matrix and overlays the finder pattern and clock
// track for every data region, producing the final module matrix in the
// packed byte convention described on Bitmap.
func Render(codewords []byte, info *SymbolInfo) *Bitmap {
	mappingRows := info.MappingRows()
	mappingCols := info.MappingColumns()

	p := newPlacement(codewords, mappingCols, mappingRows)
	p.place()

	matrix := bitutil.NewBitMatrixWithSize(info.Columns, info.Rows)

	drRows := info.DataRegionRows
	drCols := info.DataRegionColumns
	regionsH := info.RegionsHorizontal()
	regionsV := info.RegionsVertical()

	for vr := 0; vr < regionsV; vr++ {
		for hr := 0; hr < regionsH; hr++ {
			ox := hr * (drCols + 2)
			oy := vr * (drRows + 2)

			for y := 0; y < drRows+2; y++ {
				matrix.Set(ox, oy+y)
			}
			for x := 0; x < drCols+2; x++ {
				matrix.Set(ox+x, oy+drRows+1)
			}

			for x := 0; x < drCols+2; x++ {
				if x%2 == 0 {
					matrix.Set(ox+x, oy)
				}
			}
			for y := 0; y < drRows+2; y++ {
				if y%2 == 1 {
					matrix.Set(ox+drCols+1, oy+y)
				}
			}
		}
	}

	for vr := 0; vr < regionsV; vr++ {
		for hr := 0; hr < regionsH; hr++ {
			for r := 0; r < drRows; r++ {
				for c := 0; c < drCols; c++ {
					mappingRow := vr*drRows + r
					mappingCol := hr*drCols + c
					if p.bits.Get(mappingCol, mappingRow) {
						matrix.Set(hr*(drCols+2)+c+1, vr*(drRows+2)+r+1)
					}
				}
			}
		}
	}

	return packBitmap(matrix)
}

// packBitmap converts an on-is-dark BitMatrix into the caller-facing
// packed byte layout, where a cleared bit marks a dark module.
func packBitmap(matrix *bitutil.BitMatrix) *Bitmap {
	w, h := matrix.Width(), matrix.Height()
	stride := (w + 7) / 8
	bits := make([]byte, stride*h)
	for i := range bits {
		bits[i] = 0xff
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if matrix.Get(x, y) {
				bits[y*stride+x/8] &^= 1 << uint(7-x%8)
			}
		}
	}
	return &Bitmap{Width: w, Height: h, Stride: stride, Bits: bits}
}
