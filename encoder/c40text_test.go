package encoder

import "testing"

func TestC40ShiftsNativeAlphabet(t *testing.T) {
	if got := c40Shifts(' '); len(got) != 1 || got[0] != 3 {
		t.Errorf("c40Shifts(' ') = %v, want [3]", got)
	}
	if got := c40Shifts('0'); len(got) != 1 || got[0] != 4 {
		t.Errorf("c40Shifts('0') = %v, want [4]", got)
	}
	if got := c40Shifts('A'); len(got) != 1 || got[0] != 14 {
		t.Errorf("c40Shifts('A') = %v, want [14]", got)
	}
}

func TestC40ShiftsLowercaseUsesShift3(t *testing.T) {
	got := c40Shifts('a')
	if len(got) != 2 || got[0] != 2 {
		t.Errorf("c40Shifts('a') = %v, want shift-2 prefix", got)
	}
}

func TestC40ShiftsUpperHalfRecurses(t *testing.T) {
	got := c40Shifts(0xC1) // 0x80 + 'A'
	if len(got) != 3 || got[0] != 1 || got[1] != 0x1e || got[2] != 14 {
		t.Errorf("c40Shifts(0xC1) = %v, want Upper Shift prefix then value shifts", got)
	}
}

func TestTextShiftsSwapsCase(t *testing.T) {
	if got := textShifts('a'); len(got) != 1 || got[0] != 14 {
		t.Errorf("textShifts('a') = %v, want [14]", got)
	}
	got := textShifts('A')
	if len(got) != 2 || got[0] != 2 {
		t.Errorf("textShifts('A') = %v, want shift-2 prefix", got)
	}
}

func TestPackC40TripleLatchedRun(t *testing.T) {
	s := &encodingState{input: []byte("ABC"), form: Square, mode: ModeC40}
	packC40Text(s, c40Shifts)
	if s.hasMore() {
		t.Fatalf("expected all three bytes consumed, %d remaining", s.remaining())
	}
	if len(s.codewords) != 2 {
		t.Fatalf("codewords = %v, want 2 codewords for one full triplet", s.codewords)
	}
	v := int(s.codewords[0])*256 + int(s.codewords[1])
	wantV := 1600*14 + 40*15 + 16 + 1 // A=14, B=15, C=16
	if v != wantV {
		t.Errorf("triplet value = %d, want %d", v, wantV)
	}
}
