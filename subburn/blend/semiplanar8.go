package blend

import "github.com/ausocean/av/subburn/frame"

// semiPlanar8 blends an 8-bit YUVA overlay (always planar: separate U and
// V planes) into an 8-bit semi-planar destination, whose plane[1] holds
// interleaved U/V samples. Both chroma writes address dst.Planes[1];
// dst.Planes[2] is never referenced, matching the original — a
// semi-planar frame only has two real planes, so a frame.Frame describing
// one simply leaves Planes[2] unset.
type semiPlanar8 struct{}

func (semiPlanar8) Blend(dst, src *frame.Frame, left, top int) {
	x0, y0, w1, h1 := clip(dst.Width, dst.Height, src.Width, src.Height, left, top)
	if w1 <= x0 || h1 <= y0 {
		return
	}

	yIn, yOut, aIn := src.Planes[0], dst.Planes[0], src.Planes[3]
	for yy := y0; yy < h1; yy++ {
		inRow := yIn.Data[yy*yIn.Stride:]
		aRow := aIn.Data[yy*aIn.Stride:]
		outRow := yOut.Data[(yy+top)*yOut.Stride:]
		for xx := x0; xx < w1; xx++ {
			a := uint16(aRow[xx])
			d := left + xx
			outRow[d] = uint8((uint16(outRow[d])*(255-a) + uint16(inRow[xx])*a) / 255)
		}
	}

	dd, _ := dst.PixFmt.Descriptor()
	wshift, hshift := dd.WShift, dd.HShift

	uIn, vIn := src.Planes[1], src.Planes[2]
	uvOut := dst.Planes[1]
	for yy := y0 >> hshift; yy < h1>>hshift; yy++ {
		uInRow := uIn.Data[yy*uIn.Stride:]
		vInRow := vIn.Data[yy*vIn.Stride:]
		aRow := aIn.Data[(yy<<hshift)*aIn.Stride:]
		uvOutRow := uvOut.Data[(yy+(top>>hshift))*uvOut.Stride:]
		for xx := x0 >> wshift; xx < w1>>wshift; xx++ {
			a := uint16(aRow[xx<<wshift])
			d := ((left >> wshift) + xx) * 2
			uvOutRow[d] = uint8((uint16(uvOutRow[d])*(255-a) + uint16(uInRow[xx])*a) / 255)
			uvOutRow[d+1] = uint8((uint16(uvOutRow[d+1])*(255-a) + uint16(vInRow[xx])*a) / 255)
		}
	}
}
