// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// SymbolInfo describes one legal ECC200 symbol size from ISO/IEC 16022
// Table 7. It is immutable once constructed and safe to share across
// concurrent encode calls.
type SymbolInfo struct {
	Rectangular bool

	MaxDataCodewords int // total data codewords across all interleaved blocks
	ErrorCodewords   int // total EC codewords across all interleaved blocks

	Columns int // symbol width in modules, including finder patterns
	Rows    int // symbol height in modules, including finder patterns

	DataRegionRows    int // data rows per region, excluding finder/timing
	DataRegionColumns int // data columns per region, excluding finder/timing

	RSBlockData   int // data codewords in a first-type RS block
	RSBlockError  int // EC codewords per RS block (uniform across block types)
	RSBlockData2  int // data codewords in a second-type RS block, 0 if uniform
	RSBlockCount2 int // number of second-type blocks, 0 if uniform
}

// RegionsHorizontal returns the number of data regions across the symbol.
func (si *SymbolInfo) RegionsHorizontal() int {
	return si.Columns / (si.DataRegionColumns + 2)
}

// RegionsVertical returns the number of data regions down the symbol.
func (si *SymbolInfo) RegionsVertical() int {
	return si.Rows / (si.DataRegionRows + 2)
}

// NumberOfBlocks returns the total count of interleaved RS blocks.
func (si *SymbolInfo) NumberOfBlocks() int {
	n := si.block1Count()
	if si.RSBlockData2 > 0 {
		n += si.RSBlockCount2
	}
	return n
}

// block1Count returns the number of first-type RS blocks.
func (si *SymbolInfo) block1Count() int {
	if si.RSBlockData2 == 0 {
		return si.MaxDataCodewords / si.RSBlockData
	}
	return (si.MaxDataCodewords - si.RSBlockCount2*si.RSBlockData2) / si.RSBlockData
}

// ReedSolomonPerBlock returns the number of EC codewords generated per
// interleaved block.
func (si *SymbolInfo) ReedSolomonPerBlock() int {
	return si.RSBlockError
}

// MappingRows returns the number of rows in the data-region mapping matrix
// (the symbol with finder patterns and timing tracks stripped away).
func (si *SymbolInfo) MappingRows() int {
	return si.Rows - si.RegionsVertical()*2
}

// MappingColumns returns the number of columns in the data-region mapping
// matrix.
func (si *SymbolInfo) MappingColumns() int {
	return si.Columns - si.RegionsHorizontal()*2
}

// blockDataSize returns the data codeword count of interleaved block i.
func (si *SymbolInfo) blockDataSize(i int) int {
	if i < si.block1Count() {
		return si.RSBlockData
	}
	return si.RSBlockData2
}

// symbols is the full list of ECC-200 symbol sizes: the 24 square sizes
// (10x10 through 144x144) in ascending data capacity, followed by the 6
// rectangular sizes in ascending data capacity, per ISO/IEC 16022 Table 7.
var symbols = []SymbolInfo{
	// Square symbols.
	{false, 3, 5, 10, 10, 8, 8, 3, 5, 0, 0},
	{false, 5, 7, 12, 12, 10, 10, 5, 7, 0, 0},
	{false, 8, 10, 14, 14, 12, 12, 8, 10, 0, 0},
	{false, 12, 12, 16, 16, 14, 14, 12, 12, 0, 0},
	{false, 18, 14, 18, 18, 16, 16, 18, 14, 0, 0},
	{false, 22, 18, 20, 20, 18, 18, 22, 18, 0, 0},
	{false, 30, 20, 22, 22, 20, 20, 30, 20, 0, 0},
	{false, 36, 24, 24, 24, 22, 22, 36, 24, 0, 0},
	{false, 44, 28, 26, 26, 24, 24, 44, 28, 0, 0},
	{false, 62, 36, 32, 32, 14, 14, 62, 36, 0, 0},
	{false, 86, 42, 36, 36, 16, 16, 86, 42, 0, 0},
	{false, 114, 48, 40, 40, 18, 18, 114, 48, 0, 0},
	{false, 144, 56, 44, 44, 20, 20, 144, 56, 0, 0},
	{false, 174, 68, 48, 48, 22, 22, 174, 68, 0, 0},
	{false, 204, 84, 52, 52, 24, 24, 102, 42, 0, 0},
	{false, 280, 112, 64, 64, 14, 14, 140, 56, 0, 0},
	{false, 368, 144, 72, 72, 16, 16, 92, 36, 0, 0},
	{false, 456, 192, 80, 80, 18, 18, 114, 48, 0, 0},
	{false, 576, 224, 88, 88, 20, 20, 144, 56, 0, 0},
	{false, 696, 272, 96, 96, 22, 22, 174, 68, 0, 0},
	{false, 816, 336, 104, 104, 24, 24, 136, 56, 0, 0},
	{false, 1050, 408, 120, 120, 18, 18, 175, 68, 0, 0},
	{false, 1304, 496, 132, 132, 20, 20, 163, 62, 0, 0},
	{false, 1558, 620, 144, 144, 22, 22, 156, 62, 155, 2},

	// Rectangular symbols.
	{true, 5, 7, 18, 8, 6, 16, 5, 7, 0, 0},
	{true, 10, 11, 32, 8, 6, 14, 10, 11, 0, 0},
	{true, 16, 14, 26, 12, 10, 24, 16, 14, 0, 0},
	{true, 22, 18, 36, 12, 10, 16, 22, 18, 0, 0},
	{true, 32, 24, 36, 16, 14, 16, 32, 24, 0, 0},
	{true, 49, 28, 48, 16, 14, 22, 49, 28, 0, 0},
}

// Lookup returns the smallest symbol able to hold dataCodewords codewords,
// restricted to shapes permitted by form. Every permitted entry is checked
// and the one with the fewest MaxDataCodewords wins; on a tie the square
// entry, listed first, is kept.
func Lookup(dataCodewords int, form CodeForm) (*SymbolInfo, error) {
	var best *SymbolInfo
	for i := range symbols {
		si := &symbols[i]
		switch form {
		case Square:
			if si.Rectangular {
				continue
			}
		case Rectangular:
			if !si.Rectangular {
				continue
			}
		case PreferRectangular:
			// no filtering; any shape is acceptable
		}
		if si.MaxDataCodewords >= dataCodewords &&
			(best == nil || si.MaxDataCodewords < best.MaxDataCodewords) {
			best = si
		}
	}
	if best == nil {
		return nil, ErrOutOfSpace
	}
	return best, nil
}
