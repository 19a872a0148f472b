package encoder

import "testing"

func TestRandomize256Roundtrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, b := range []byte{0, 1, 127, 255} {
			r := randomize256(b, n)
			offset := (n*149)%254 + 1
			back := (int(r) - offset) % 256
			if back < 0 {
				back += 256
			}
			if byte(back) != b {
				t.Errorf("randomize256(%d, %d) did not invert cleanly: got %d back, want %d", b, n, back, b)
			}
		}
	}
}

func TestPackBase256ShortRunLengthHeader(t *testing.T) {
	s := &encodingState{input: []byte{0x01, 0x02, 0x03}, form: Square, mode: ModeBase256}
	if err := packBase256(s); err != nil {
		t.Fatalf("packBase256: %v", err)
	}
	if len(s.codewords) != 4 {
		t.Fatalf("codewords = %v, want 1 length byte + 3 payload bytes", s.codewords)
	}
	if s.remaining() != 0 {
		t.Errorf("expected all input consumed, remaining = %d", s.remaining())
	}
}

func TestPackBase256OverflowFails(t *testing.T) {
	run := make([]byte, 1751)
	for i := range run {
		run[i] = 0x80
	}
	s := &encodingState{input: run, form: PreferRectangular, mode: ModeBase256}
	err := packBase256(s)
	if err != ErrOutOfSpace {
		t.Fatalf("err = %v, want ErrOutOfSpace", err)
	}
}
