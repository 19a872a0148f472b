// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "github.com/dhoepfl/SwiftDataMatrix/bitutil"

// placement runs the ECC200 module placement algorithm of ISO/IEC 16022
// Annex F (with the Annex M corner cases) over a mapping matrix: the
// symbol matrix with finder patterns and timing tracks stripped away, one
// bit per data module.
type placement struct {
	codewords []byte
	numRows   int
	numCols   int
	bits      *bitutil.BitMatrix
	visited   []bool
}

func newPlacement(codewords []byte, numCols, numRows int) *placement {
	return &placement{
		codewords: codewords,
		numRows:   numRows,
		numCols:   numCols,
		bits:      bitutil.NewBitMatrixWithSize(numCols, numRows),
		visited:   make([]bool, numRows*numCols),
	}
}

func (p *placement) hasBit(col, row int) bool { return p.visited[row*p.numCols+col] }

func (p *placement) setBit(col, row int, bit bool) {
	p.visited[row*p.numCols+col] = true
	if bit {
		p.bits.Set(col, row)
	}
}

// place fills the mapping matrix with codeword bits, sweeping the
// diagonal utah pattern across the matrix and special-casing the four
// corner codewords that wrap around matrix edges.
func (p *placement) place() {
	pos := 0
	row := 4
	col := 0

	for {
		if row == p.numRows && col == 0 {
			p.corner1(pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%4 != 0 {
			p.corner2(pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%8 == 4 {
			p.corner3(pos)
			pos++
		}
		if row == p.numRows+4 && col == 2 && p.numCols%8 == 0 {
			p.corner4(pos)
			pos++
		}

		for {
			if row < p.numRows && col >= 0 && !p.hasBit(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.numCols {
				break
			}
		}
		row++
		col += 3

		for {
			if row >= 0 && col < p.numCols && !p.hasBit(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= p.numRows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.numRows && col >= p.numCols {
			break
		}
	}

	if !p.hasBit(p.numCols-1, p.numRows-1) {
		p.setBit(p.numCols-1, p.numRows-1, true)
		p.setBit(p.numCols-2, p.numRows-2, true)
	}
}

// module places bit index bit of codeword pos at (row, col), wrapping
// coordinates that fall outside the matrix per Annex F's edge rules.
func (p *placement) module(row, col, pos, bit int) {
	if row < 0 {
		row += p.numRows
		col += 4 - ((p.numRows + 4) % 8)
	}
	if col < 0 {
		col += p.numCols
		row += 4 - ((p.numCols + 4) % 8)
	}
	if row >= p.numRows {
		row -= p.numRows
	}
	if col >= p.numCols {
		col -= p.numCols
	}

	v := false
	if pos < len(p.codewords) {
		v = (p.codewords[pos] & (1 << uint(8-bit-1))) != 0
	}
	p.setBit(col, row, v)
}

func (p *placement) utah(row, col, pos int) {
	p.module(row-2, col-2, pos, 0)
	p.module(row-2, col-1, pos, 1)
	p.module(row-1, col-2, pos, 2)
	p.module(row-1, col-1, pos, 3)
	p.module(row-1, col, pos, 4)
	p.module(row, col-2, pos, 5)
	p.module(row, col-1, pos, 6)
	p.module(row, col, pos, 7)
}

func (p *placement) corner1(pos int) {
	p.module(p.numRows-1, 0, pos, 0)
	p.module(p.numRows-1, 1, pos, 1)
	p.module(p.numRows-1, 2, pos, 2)
	p.module(0, p.numCols-2, pos, 3)
	p.module(0, p.numCols-1, pos, 4)
	p.module(1, p.numCols-1, pos, 5)
	p.module(2, p.numCols-1, pos, 6)
	p.module(3, p.numCols-1, pos, 7)
}

func (p *placement) corner2(pos int) {
	p.module(p.numRows-3, 0, pos, 0)
	p.module(p.numRows-2, 0, pos, 1)
	p.module(p.numRows-1, 0, pos, 2)
	p.module(0, p.numCols-4, pos, 3)
	p.module(0, p.numCols-3, pos, 4)
	p.module(0, p.numCols-2, pos, 5)
	p.module(0, p.numCols-1, pos, 6)
	p.module(1, p.numCols-1, pos, 7)
}

func (p *placement) corner3(pos int) {
	p.module(p.numRows-3, 0, pos, 0)
	p.module(p.numRows-2, 0, pos, 1)
	p.module(p.numRows-1, 0, pos, 2)
	p.module(0, p.numCols-2, pos, 3)
	p.module(0, p.numCols-1, pos, 4)
	p.module(1, p.numCols-1, pos, 5)
	p.module(2, p.numCols-1, pos, 6)
	p.module(3, p.numCols-1, pos, 7)
}

func (p *placement) corner4(pos int) {
	p.module(p.numRows-1, 0, pos, 0)
	p.module(p.numRows-1, p.numCols-1, pos, 1)
	p.module(0, p.numCols-3, pos, 2)
	p.module(0, p.numCols-2, pos, 3)
	p.module(0, p.numCols-1, pos, 4)
	p.module(1, p.numCols-3, pos, 5)
	p.module(1, p.numCols-2, pos, 6)
	p.module(1, p.numCols-1, pos, 7)
}
