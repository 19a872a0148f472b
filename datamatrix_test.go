package datamatrix

import "testing"

func TestEncodeStringRoundTripSize(t *testing.T) {
	sym, err := EncodeString("HELLO WORLD", Default, Square)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if sym.Columns() != sym.Info.Columns || sym.Rows() != sym.Info.Rows {
		t.Fatal("Symbol accessor mismatch with underlying SymbolInfo")
	}
	if len(sym.Codewords) != sym.Info.MaxDataCodewords+sym.Info.ErrorCodewords {
		t.Fatalf("len(Codewords) = %d, want %d", len(sym.Codewords),
			sym.Info.MaxDataCodewords+sym.Info.ErrorCodewords)
	}
	wantStride := (sym.Info.Columns + 7) / 8
	if sym.Bitmap.Stride != wantStride {
		t.Errorf("Bitmap.Stride = %d, want %d", sym.Bitmap.Stride, wantStride)
	}
	if len(sym.Bitmap.Bits) != wantStride*sym.Info.Rows {
		t.Errorf("len(Bitmap.Bits) = %d, want %d", len(sym.Bitmap.Bits), wantStride*sym.Info.Rows)
	}
}

func TestEncodeEmptyPayloadSucceeds(t *testing.T) {
	sym, err := Encode(nil, Default, Square)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(sym.Codewords) != sym.Info.MaxDataCodewords+sym.Info.ErrorCodewords {
		t.Errorf("len(Codewords) = %d, want %d", len(sym.Codewords),
			sym.Info.MaxDataCodewords+sym.Info.ErrorCodewords)
	}
}

func TestEncodeRectangularShape(t *testing.T) {
	sym, err := EncodeString("12345", Default, Rectangular)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if !sym.Rectangular() {
		t.Error("expected a rectangular symbol when Rectangular form is requested")
	}
}

func TestEncodeFinderPatternPresent(t *testing.T) {
	sym, err := EncodeString("A", Default, Square)
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	// The bottom-left finder module is always dark (bit cleared).
	stride := sym.Bitmap.Stride
	lastRow := sym.Info.Rows - 1
	if sym.Bitmap.Bits[lastRow*stride]&0x80 != 0 {
		t.Error("expected the top-left-most bit of the bottom finder row to be dark")
	}
}
