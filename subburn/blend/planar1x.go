package blend

import "github.com/ausocean/av/subburn/frame"

// planar1x blends an 8-bit YUVA overlay into a deep (>8-bit) planar
// destination. Source samples are shifted left by (depth-8) to reach the
// destination's bit depth; unlike semiPlanar1x, this variant never
// byte-swaps.
type planar1x struct{}

func (planar1x) Blend(dst, src *frame.Frame, left, top int) {
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
			val := uint32(inRow[xx]) << shift
			putSample16(yOut.Data[outBase:], d, uint16((cur*(maxv-a)+val*a)/maxv))
		}
	}

	wshift, hshift := dd.WShift, dd.HShift
	uIn, vIn := src.Planes[1], src.Planes[2]
	uOut, vOut := dst.Planes[1], dst.Planes[2]
	for yy := y0 >> hshift; yy < h1>>hshift; yy++ {
		uInRow := uIn.Data[yy*uIn.Stride:]
		vInRow := vIn.Data[yy*vIn.Stride:]
		aRow := aIn.Data[(yy<<hshift)*aIn.Stride:]
		uOutBase := (yy + (top >> hshift)) * uOut.Stride
		vOutBase := (yy + (top >> hshift)) * vOut.Stride
		for xx := x0 >> wshift; xx < w1>>wshift; xx++ {
			a := uint32(aRow[xx<<wshift]) << shift
			d := (left >> wshift) + xx

			curU := uint32(getSample16(uOut.Data[uOutBase:], d))
			valU := uint32(uInRow[xx]) << shift
			putSample16(uOut.Data[uOutBase:], d, uint16((curU*(maxv-a)+valU*a)/maxv))

			curV := uint32(getSample16(vOut.Data[vOutBase:], d))
			valV := uint32(vInRow[xx]) << shift
			putSample16(vOut.Data[vOutBase:], d, uint16((curV*(maxv-a)+valV*a)/maxv))
		}
	}
}
