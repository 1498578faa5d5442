package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{R: 50, G: 50, B: 50, A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		255, 255, 255, 255,
		50, 50, 50, 255,
		255, 255, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}
