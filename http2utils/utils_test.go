package http2utils

import (
	"bytes"
	"testing"
)

func TestUint24RoundTrip(t *testing.T) {
	b := make([]byte, 3)
	Uint24ToBytes(b, 0xABCDEF)
	if got := BytesToUint24(b); got != 0xABCDEF {
		t.Fatalf("got 0x%x", got)
	}
}

func TestUint32RoundTrip(t *testing.T) {
	b := make([]byte, 4)
	Uint32ToBytes(b, 0xDEADBEEF)
	if got := BytesToUint32(b); got != 0xDEADBEEF {
		t.Fatalf("got 0x%x", got)
	}
}

func TestAppendUint32Bytes(t *testing.T) {
	got := AppendUint32Bytes([]byte{0xFF}, 0x01020304)
	want := []byte{0xFF, 0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestPackStreamDependencyPreservesExclusiveBit(t *testing.T) {
	packed := PackStreamDependency(true, 0x7FFFFFFF)
	exclusive, id := UnpackStreamDependency(packed)
	if !exclusive || id != 0x7FFFFFFF {
		t.Fatalf("exclusive=%v id=0x%x", exclusive, id)
	}

	packed = PackStreamDependency(false, 42)
	exclusive, id = UnpackStreamDependency(packed)
	if exclusive || id != 42 {
		t.Fatalf("exclusive=%v id=%d", exclusive, id)
	}
}

func TestPackStreamDependencyIgnoresHighBitOfID(t *testing.T) {
	// an id with the high bit set must not leak into the exclusive flag.
	packed := PackStreamDependency(false, 0xFFFFFFFF)
	exclusive, id := UnpackStreamDependency(packed)
	if exclusive {
		t.Fatal("expected exclusive=false even though id's high bit was set")
	}
	if id != 0x7FFFFFFF {
		t.Fatalf("expected id masked to 31 bits, got 0x%x", id)
	}
}

func TestResizeGrowsAndTruncates(t *testing.T) {
	b := make([]byte, 0, 10)
	b = Resize(b, 5)
	if len(b) != 5 {
		t.Fatalf("expected length 5, got %d", len(b))
	}

	b = Resize(b, 2)
	if len(b) != 2 {
		t.Fatalf("expected length 2, got %d", len(b))
	}
}

func TestCutPaddingStripsTrailingBytes(t *testing.T) {
	payload := []byte{2, 'h', 'i', 0, 0}
	got, err := CutPadding(payload)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hi" {
		t.Fatalf("got %q", got)
	}
}

func TestCutPaddingRejectsOutOfRange(t *testing.T) {
	_, err := CutPadding([]byte{5, 'h', 'i'})
	if err != ErrPaddingOutOfRange {
		t.Fatalf("expected ErrPaddingOutOfRange, got %v", err)
	}
}

func TestCutPaddingRejectsEmptyPayload(t *testing.T) {
	_, err := CutPadding(nil)
	if err != ErrPaddingOutOfRange {
		t.Fatalf("expected ErrPaddingOutOfRange, got %v", err)
	}
}

func TestAddPaddingThenCutPaddingRoundTrips(t *testing.T) {
	original := []byte("round trip me")
	padded := AddPadding(original)

	stripped, err := CutPadding(padded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(stripped, original) {
		t.Fatalf("got %q want %q", stripped, original)
	}
}
