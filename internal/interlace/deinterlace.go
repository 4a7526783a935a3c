// Package interlace reassembles a GIF interlaced image, whose rows arrive
// LZW-decoded in four passes rather than top-to-bottom order, into normal
// row-major order.
package interlace

// passStride and passStart give, for each of the four interlace passes,
// the row spacing and the first row index. A pass visits rows
// start, start+stride, start+2*stride, ... until it runs off the bottom.
var (
	passStride = [4]int{8, 8, 4, 2}
	passStart  = [4]int{0, 4, 2, 1}
)

// Deinterlace reorders src (rows stored pass-by-pass, each pass's rows
// contiguous within src in the order the LZW stream produced them) into
// dst in top-to-bottom row order. src and dst must each have length
// width*height and must not overlap; rowBytes is the number of bytes per
// row (normally equal to width, one palette index per pixel).
func Deinterlace(dst, src []byte, height, rowBytes int) {
	srcRow := 0
	for pass := 0; pass < 4; pass++ {
		for row := passStart[pass]; row < height; row += passStride[pass] {
			copy(dst[row*rowBytes:(row+1)*rowBytes], src[srcRow*rowBytes:(srcRow+1)*rowBytes])
			srcRow++
		}
	}
}
