package blend

import "encoding/binary"

// Deep (>8-bit) planes store one little-endian uint16 per sample, with
// the sample value in the low Depth bits of the word (e.g. a 10-bit
// sample spans 0..1023), matching the pixel formats this package's
// callers describe via frame.Desc.Depth.

func getSample16(data []byte, i int) uint16 {
	return binary.LittleEndian.Uint16(data[2*i:])
}

func putSample16(data []byte, i int, v uint16) {
	binary.LittleEndian.PutUint16(data[2*i:], v)
}

// bswapByte mirrors av_bswap16 applied to a single byte value widened to
// uint16 (0x00vv -> 0xvv00): it is equivalent to shifting the byte into
// the high byte of a 16-bit word, i.e. multiplying by 256, not by the
// expected 1<<shift. Used verbatim by semiPlanar1x (§9 open question);
// never by planar1x.
func bswapByte(v uint8) uint32 { return uint32(v) << 8 }
