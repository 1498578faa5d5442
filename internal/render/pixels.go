package render

import "image/color"

// fillBinaryRGBA converts live/dead cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	live := rgba(on)
	dead := rgba(off)
	for i, alive := range cells {
		px := dead
		if alive {
			px = live
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
