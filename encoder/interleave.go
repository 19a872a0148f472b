// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// deinterleave splits a flat data-codeword slice into per-block slices,
// following ECC200's round-robin interleaving: codeword i belongs to
// block (i mod blockCount) at position (i / blockCount).
func deinterleave(data []byte, info *SymbolInfo) [][]byte {
	blockCount := info.NumberOfBlocks()
	blocks := make([][]byte, blockCount)
	for i := range blocks {
		blocks[i] = make([]byte, info.blockDataSize(i))
	}
	for i, b := range data {
		idx := i % blockCount
		blocks[idx][i/blockCount] = b
	}
	return blocks
}

// interleaveErrorCodewords merges the independently generated
// error-correction blocks back into a single round-robin sequence,
// appended after the data codewords in the final symbol codeword order.
func interleaveErrorCodewords(ecBlocks [][]byte, ecPerBlock int) []byte {
	out := make([]byte, 0, len(ecBlocks)*ecPerBlock)
	for i := 0; i < ecPerBlock; i++ {
		for _, block := range ecBlocks {
			out = append(out, block[i])
		}
	}
	return out
}
