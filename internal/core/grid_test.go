package core

import (
	"slices"
	"testing"
)

func TestFrameRows(t *testing.T) {
	f := NewFrame(3, 2)
	f.SetRow(1, []uint8{1, 0, 1})

	if !slices.Equal(f.Row(0), []uint8{0, 0, 0}) {
		t.Fatalf("row 0: got %v", f.Row(0))
	}
	if !slices.Equal(f.Row(1), []uint8{1, 0, 1}) {
		t.Fatalf("row 1: got %v", f.Row(1))
	}
	if f.Row(2) != nil || f.Row(-1) != nil {
		t.Fatal("out-of-range rows must be nil")
	}

	// Wrong-length and out-of-range writes are ignored.
	f.SetRow(0, []uint8{1})
	f.SetRow(5, []uint8{1, 1, 1})
	if !slices.Equal(f.Row(0), []uint8{0, 0, 0}) {
		t.Fatalf("row 0 modified: %v", f.Row(0))
	}

	f.Clear()
	if !slices.Equal(f.Row(1), []uint8{0, 0, 0}) {
		t.Fatalf("clear left %v", f.Row(1))
	}
}

func TestNewFrameClampsDimensions(t *testing.T) {
	f := NewFrame(0, -1)
	if f.W != 1 || f.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", f.W, f.H)
	}
	if len(f.Cells()) != 1 {
		t.Fatalf("backing slice has %d cells", len(f.Cells()))
	}
}
