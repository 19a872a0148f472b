// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// shiftMapper maps one input byte to its C40/Text shift-value sequence
// (1-4 values in [0,39], per ISO/IEC 16022 Table 5/6).
type shiftMapper func(byte) []int

// c40Shifts maps a byte to its C40 shift sequence. Set 0 covers space and
// the native alphabet (digits, uppercase letters); Sets 1-3 are reached
// through a one-value shift prefix; bytes above 0x7F recurse through the
// Upper Shift escape (Set 2 value 0x1E, i.e. prefix 1 then 0x1E).
func c40Shifts(b byte) []int {
	switch {
	case b >= 0x80:
		return append([]int{1, 0x1e}, c40Shifts(b-128)...)
	case b <= 0x1f:
		return []int{0, int(b)}
	case b == ' ':
		return []int{3}
	case b >= '0' && b <= '9':
		return []int{int(b-'0') + 4}
	case b >= 'A' && b <= 'Z':
		return []int{int(b-'A') + 14}
	case b >= 0x21 && b <= 0x2f:
		return []int{1, int(b - 0x21)}
	case b >= 0x3a && b <= 0x40:
		return []int{1, int(b-0x3a) + 15}
	case b >= 0x5b && b <= 0x5f:
		return []int{1, int(b-0x5b) + 22}
	default: // 0x60..0x7f
		return []int{2, int(b - 0x60)}
	}
}

// textShifts maps a byte to its Text shift sequence: identical to C40
// except Set 0 holds lowercase letters and Set 3 holds uppercase letters,
// backtick and the 0x7B..0x7F control range.
func textShifts(b byte) []int {
	switch {
	case b >= 0x80:
		return append([]int{1, 0x1e}, textShifts(b-128)...)
	case b <= 0x1f:
		return []int{0, int(b)}
	case b == ' ':
		return []int{3}
	case b >= '0' && b <= '9':
		return []int{int(b-'0') + 4}
	case b >= 'a' && b <= 'z':
		return []int{int(b-'a') + 14}
	case b >= 0x21 && b <= 0x2f:
		return []int{1, int(b - 0x21)}
	case b >= 0x3a && b <= 0x40:
		return []int{1, int(b-0x3a) + 15}
	case b >= 0x5b && b <= 0x5f:
		return []int{1, int(b-0x5b) + 22}
	case b == 0x60:
		return []int{2, 0}
	case b >= 'A' && b <= 'Z':
		return []int{2, int(b-'A') + 1}
	default: // 0x7B..0x7F
		return []int{2, int(b-0x7b) + 27}
	}
}

// encodedChar is one input byte together with the shift-value sequence it
// expands to under the active C40/Text mapper.
type encodedChar struct {
	shifts []int
}

// spareCodewords returns how many data codewords the tentative symbol for
// the current output (assuming flatLen shift values are eventually flushed
// as complete triplets) has left over.
func spareCodewords(s *encodingState, flatLen int) int {
	curCount := s.codewordCount() + (flatLen/3)*2
	info, err := Lookup(curCount, s.form)
	if err != nil {
		return 0
	}
	return info.MaxDataCodewords - curCount
}

// packC40Text implements the shared C40/Text triplet packer: three shift
// values pack into two codewords, with look-ahead consulted after every
// complete triplet and the end-of-data rollback/padding rules of
// ISO/IEC 16022 §5.2.5.
func packC40Text(s *encodingState, mapper shiftMapper) {
	var chars []encodedChar
	flatLen := func() int {
		n := 0
		for _, c := range chars {
			n += len(c.shifts)
		}
		return n
	}

	for s.hasMore() {
		b := s.consume()
		chars = append(chars, encodedChar{shifts: mapper(b)})
		if flatLen()%3 == 0 {
			if chooseMode(s.input, s.pos, s.mode) != s.mode {
				break
			}
		}
	}

	forcedSwitch := false
	for flatLen()%3 == 1 && len(chars) > 0 && spareCodewords(s, flatLen()) > 1 {
		chars = chars[:len(chars)-1]
		s.pushBack()
		forcedSwitch = true
	}

	var values []int
	for _, c := range chars {
		values = append(values, c.shifts...)
	}

	k := 0
	for k+3 <= len(values) {
		v := 1600*values[k] + 40*values[k+1] + values[k+2] + 1
		s.emit(byte(v/256), byte(v%256))
		k += 3
	}

	switch len(values) - k {
	case 2:
		v := 1600*values[k] + 40*values[k+1] + 1
		s.emit(byte(v/256), byte(v%256))
	case 1:
		v := 1600*values[k] + 1
		s.emit(byte(v / 256))
	}

	if forcedSwitch {
		s.emit(unlatchAscii)
		s.mode = ModeAscii
	}
}
