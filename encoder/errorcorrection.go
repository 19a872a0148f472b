// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/dhoepfl/SwiftDataMatrix/reedsolomon"
)

// EncodeECC200 appends Reed-Solomon error correction codewords to a full
// set of padded data codewords, returning data followed by EC in final
// symbol codeword order. For interleaved symbols, data is split into
// blocks, each block is corrected independently over GF(256) with the
// ECC200 primitive polynomial, and the resulting EC codewords are
// re-interleaved.
func EncodeECC200(data []byte, info *SymbolInfo) ([]byte, error) {
	if len(data) != info.MaxDataCodewords {
		return nil, fmt.Errorf("datamatrix/encoder: expected %d data codewords, got %d",
			info.MaxDataCodewords, len(data))
	}

	blocks := deinterleave(data, info)
	ecBlocks := make([][]byte, len(blocks))
	for i, block := range blocks {
		ec, err := generateECCBlock(block, info.ReedSolomonPerBlock())
		if err != nil {
			return nil, err
		}
		ecBlocks[i] = ec
	}

	result := make([]byte, 0, len(data)+info.ErrorCodewords)
	result = append(result, data...)
	result = append(result, interleaveErrorCodewords(ecBlocks, info.ReedSolomonPerBlock())...)
	return result, nil
}

// generateECCBlock computes numEC Reed-Solomon error correction
// codewords for one interleaved data block.
func generateECCBlock(data []byte, numEC int) ([]byte, error) {
	if numEC == 0 {
		return nil, ErrInternal
	}
	rs := reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)

	toEncode := make([]int, len(data)+numEC)
	for i, b := range data {
		toEncode[i] = int(b)
	}
	rs.Encode(toEncode, numEC)

	ec := make([]byte, numEC)
	for i := range ec {
		ec[i] = byte(toEncode[len(data)+i])
	}
	return ec, nil
}
