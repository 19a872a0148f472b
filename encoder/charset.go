// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isExtendedASCII reports whether b lies in the upper half of the byte
// range, requiring the Upper Shift (235) prefix in ASCII mode.
func isExtendedASCII(b byte) bool {
	return b >= 0x80
}

// isNativeC40 reports whether b belongs to C40's Set 0 alphabet
// (space, digits, uppercase letters).
func isNativeC40(b byte) bool {
	return b == ' ' || isDigit(b) || (b >= 'A' && b <= 'Z')
}

// isNativeText reports whether b belongs to Text's Set 0 alphabet
// (space, digits, lowercase letters).
func isNativeText(b byte) bool {
	return b == ' ' || isDigit(b) || (b >= 'a' && b <= 'z')
}

// isNativeX12 reports whether b can be packed directly in X12 mode.
func isNativeX12(b byte) bool {
	return isSpecialToX12(b) || b == ' ' || isDigit(b) || (b >= 'A' && b <= 'Z')
}

// isSpecialToX12 reports whether b is one of X12's three punctuation
// characters (carriage return, asterisk, greater-than).
func isSpecialToX12(b byte) bool {
	return b == 0x0D || b == '*' || b == '>'
}

// isNativeEdifact reports whether b lies in EDIFACT's native 6-bit range.
func isNativeEdifact(b byte) bool {
	return b >= 0x20 && b <= 0x5E
}
