// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "errors"

// ErrOutOfSpace is returned when the payload exceeds the largest symbol
// available under the requested CodeForm, or when a Base256 run's length
// would overflow its two-byte length encoding.
var ErrOutOfSpace = errors.New("datamatrix/encoder: message does not fit in any symbol size")

// ErrInternal marks the Reed-Solomon block-size lookup miss described in
// ISO/IEC 16022 as an implementation defect. It is unreachable for every
// size in the static symbol table; if it does occur, EncodeECC200 returns
// it as is (it is not mapped to ErrOutOfSpace).
var ErrInternal = errors.New("datamatrix/encoder: internal encoder error")
