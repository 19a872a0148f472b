package encoder

import "testing"

func TestChooseModeAllDigitsPrefersASCII(t *testing.T) {
	mode := chooseMode([]byte("123456789012"), 0, ModeAscii)
	if mode != ModeAscii {
		t.Errorf("chooseMode(digits) = %v, want ModeAscii", mode)
	}
}

func TestChooseModeMixedAlphaPrefersC40(t *testing.T) {
	mode := chooseMode([]byte("ABCDEFGHIJKL"), 0, ModeAscii)
	if mode != ModeC40 {
		t.Errorf("chooseMode(uppercase run) = %v, want ModeC40", mode)
	}
}

func TestChooseModeEmptyInputKeepsCurrent(t *testing.T) {
	mode := chooseMode(nil, 0, ModeC40)
	if mode != ModeC40 {
		t.Errorf("chooseMode(empty) = %v, want current mode preserved", mode)
	}
}

func TestChooseModeExtendedASCIIRunPrefersBase256(t *testing.T) {
	data := []byte{0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87}
	mode := chooseMode(data, 0, ModeAscii)
	if mode != ModeBase256 {
		t.Errorf("chooseMode(extended ASCII run) = %v, want ModeBase256", mode)
	}
}
