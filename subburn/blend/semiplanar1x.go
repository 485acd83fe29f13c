package blend

import "github.com/ausocean/av/subburn/frame"

// semiPlanar1x blends an 8-bit YUVA overlay into a deep (>8-bit)
// semi-planar destination. Unless noSwap is set, Y/U/V source samples
// are byte-swapped (bswapByte) rather than shifted by (depth-8) before
// blending — a quirk carried over verbatim from the original (§9 open
// question); alpha is never swapped, only shifted.
type semiPlanar1x struct {
	noSwap bool
}

func (b semiPlanar1x) widen(v uint8, shift uint) uint32 {
	if b.noSwap {
		return uint32(v) << shift
	}
	return bswapByte(v)
}

func (b semiPlanar1x) Blend(dst, src *frame.Frame, left, top int) {
	x0, y0, w1, h1 := clip(dst.Width, dst.Height, src.Width, src.Height, left, top)
	if w1 <= x0 || h1 <= y0 {
		return
	}

	dd, _ := dst.PixFmt.Descriptor()
	shift := uint(dd.Depth - 8)
	maxv := uint32((256 << shift) - 1)

	yIn, yOut, aIn := src.Planes[0], dst.Planes[0], src.Planes[3]
	for yy := y0; yy < h1; yy++ {
		inRow := yIn.Data[yy*yIn.Stride:]
		aRow := aIn.Data[yy*aIn.Stride:]
		outBase := (yy + top) * yOut.Stride
		for xx := x0; xx < w1; xx++ {
			a := uint32(aRow[xx]) << shift
			d := left + xx
			cur := uint32(getSample16(yOut.Data[outBase:], d))
			val := b.widen(inRow[xx], shift)
			putSample16(yOut.Data[outBase:], d, uint16((cur*(maxv-a)+val*a)/maxv))
		}
	}

	wshift, hshift := dd.WShift, dd.HShift
	uIn, vIn := src.Planes[1], src.Planes[2]
	uvOut := dst.Planes[1]
	for yy := y0 >> hshift; yy < h1>>hshift; yy++ {
		uInRow := uIn.Data[yy*uIn.Stride:]
		vInRow := vIn.Data[yy*vIn.Stride:]
		aRow := aIn.Data[(yy<<hshift)*aIn.Stride:]
		uvOutBase := (yy + (top >> hshift)) * uvOut.Stride
		for xx := x0 >> wshift; xx < w1>>wshift; xx++ {
			a := uint32(aRow[xx<<wshift]) << shift
			d := ((left >> wshift) + xx) * 2

			curU := uint32(getSample16(uvOut.Data[uvOutBase:], d))
			valU := b.widen(uInRow[xx], shift)
			putSample16(uvOut.Data[uvOutBase:], d, uint16((curU*(maxv-a)+valU*a)/maxv))

			curV := uint32(getSample16(uvOut.Data[uvOutBase:], d+1))
			valV := b.widen(vInRow[xx], shift)
			putSample16(uvOut.Data[uvOutBase:], d+1, uint16((curV*(maxv-a)+valV*a)/maxv))
		}
	}
}
