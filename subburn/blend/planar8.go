package blend

import "github.com/ausocean/av/subburn/frame"

// planar8 blends an 8-bit YUVA overlay into an 8-bit planar (3+ plane)
// destination.
type planar8 struct{}

func (planar8) Blend(dst, src *frame.Frame, left, top int) {
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
	uOut, vOut := dst.Planes[1], dst.Planes[2]
	for yy := y0 >> hshift; yy < h1>>hshift; yy++ {
		uInRow := uIn.Data[yy*uIn.Stride:]
		vInRow := vIn.Data[yy*vIn.Stride:]
		aRow := aIn.Data[(yy<<hshift)*aIn.Stride:]
		uOutRow := uOut.Data[(yy+(top>>hshift))*uOut.Stride:]
		vOutRow := vOut.Data[(yy+(top>>hshift))*vOut.Stride:]
		for xx := x0 >> wshift; xx < w1>>wshift; xx++ {
			a := uint16(aRow[xx<<wshift])
			d := (left >> wshift) + xx
			uOutRow[d] = uint8((uint16(uOutRow[d])*(255-a) + uint16(uInRow[xx])*a) / 255)
			vOutRow[d] = uint8((uint16(vOutRow[d])*(255-a) + uint16(vInRow[xx])*a) / 255)
		}
	}
}
