package compose

import (
	"github.com/ausocean/av/subburn/external"
	"github.com/ausocean/av/subburn/frame"
)

// scratch holds one packed (Y,U,V,A) byte quadruple per pixel before
// chroma subsampling, mirroring the original compo[] working buffer.
type scratch struct {
	w, h   int
	stride int
	pix    []byte
}

func newScratch(w, h int) *scratch {
	return &scratch{w: w, h: h, stride: w * 4, pix: make([]byte, w*h*4)}
}

// div255 performs x/255 with round-to-nearest, matching the original's
// div255 macro.
func div255(x uint32) uint32 { return ((x + ((x + 128) >> 8)) + 128) >> 8 }

// alphaBlend implements the over operator's per-channel numerator:
// (srcA*srcC + dstC*dstAc + outA/2) / outA.
func alphaBlend(srcA, srcC, dstAc, dstC, outA uint32) uint32 {
	return (srcA*srcC + dstC*dstAc + outA/2) / outA
}

// Compose flattens frags (already positioned in overlay-relative
// coordinates) into a single planar YUVA overlay Frame covering the
// (x, y, w, h) bounding rectangle, chroma-subsampled per wshift/hshift
// using coeffs. Each fragment's Color carries the glyph's RGB and its own
// transparency in the low byte (0 = opaque); glyph coverage (Bitmap)
// scales the resulting opacity per pixel.
func Compose(frags []external.Fragment, x, y, w, h, wshift, hshift int, coeffs Coeffs, overlayFmt frame.PixFmt) *frame.Frame {
	s := newScratch(w, h)

	for _, fr := range frags {
		if fr.W == 0 || fr.H == 0 {
			continue
		}
		yy0, uu0, vv0 := external.RGBToYUVBT709(fr.Color >> 8)
		transparency := fr.Color & 0xff

		base := (fr.DstX-x)*4 + (fr.DstY-y)*s.stride
		for ry := 0; ry < fr.H; ry++ {
			fx := base + ry*s.stride
			srcRow := ry * fr.Stride
			for rx := 0; rx < fr.W; rx++ {
				glyphA := uint32(fr.Bitmap[srcRow+rx])
				a := div255((255 - transparency) * glyphA)
				if a != 0 {
					if s.pix[fx+3] != 0 {
						dstA := uint32(s.pix[fx+3])
						srcA := a * 255
						dstAc := dstA * (255 - a)
						outA := srcA + dstAc
						s.pix[fx] = uint8(alphaBlend(srcA, uint32(yy0), dstAc, uint32(s.pix[fx]), outA))
						s.pix[fx+1] = uint8(alphaBlend(srcA, uint32(uu0), dstAc, uint32(s.pix[fx+1]), outA))
						s.pix[fx+2] = uint8(alphaBlend(srcA, uint32(vv0), dstAc, uint32(s.pix[fx+2]), outA))
						s.pix[fx+3] = uint8(div255(outA))
					} else {
						s.pix[fx] = yy0
						s.pix[fx+1] = uu0
						s.pix[fx+2] = vv0
						s.pix[fx+3] = uint8(a)
					}
				}
				fx += 4
			}
		}
	}

	return subsample(s, x, y, w, h, wshift, hshift, coeffs, overlayFmt)
}

func subsample(s *scratch, ox, oy, w, h, wshift, hshift int, coeffs Coeffs, overlayFmt frame.PixFmt) *frame.Frame {
	cw := (w + (1 << wshift) - 1) >> wshift
	ch := (h + (1 << hshift) - 1) >> hshift

	out := newOverlayFrame(overlayFmt, w, h, cw, ch)
	out.X, out.Y = ox, oy

	yOut, aOut := out.Planes[0], out.Planes[3]
	uOut, vOut := out.Planes[1], out.Planes[2]

	for yv := 0; yv < h; yv++ {
		srcRow := yv * s.stride
		yDstRow := yv * yOut.Stride
		aDstRow := yv * aOut.Stride
		for xv := 0; xv < w; xv++ {
			yOut.Data[yDstRow+xv] = s.pix[srcRow+xv*4]
			aOut.Data[aDstRow+xv] = s.pix[srcRow+xv*4+3]
		}

		if yv&((1<<hshift)-1) != 0 {
			continue
		}
		ys := yv >> hshift
		uDstRow := ys * uOut.Stride
		vDstRow := ys * vOut.Stride

		for xv := 0; xv < w; xv += 1 << wshift {
			xs := xv >> wshift
			var accU, accV, accC uint32
			for yz := 0; yz < (1<<hshift) && yz+yv < h; yz++ {
				for xz := 0; xz < (1<<wshift) && xz+xv < w; xz++ {
					p := srcRow + yz*s.stride + (xv+xz)*4
					coeff := coeffs.X[xz] * coeffs.Y[yz] * uint32(s.pix[p+3])
					accU += coeff * uint32(s.pix[p+1])
					accV += coeff * uint32(s.pix[p+2])
					accC += coeff
				}
			}
			if accC > 0 {
				uOut.Data[uDstRow+xs] = uint8((accU + accC - 1) / accC)
				vOut.Data[vDstRow+xs] = uint8((accV + accC - 1) / accC)
			}
		}
	}
	return out
}

func newOverlayFrame(pf frame.PixFmt, w, h, cw, ch int) *frame.Frame {
	f := &frame.Frame{Width: w, Height: h, PixFmt: pf}
	f.Planes[0] = frame.Plane{Data: make([]byte, w*h), Stride: w, Width: w, Height: h}
	f.Planes[1] = frame.Plane{Data: make([]byte, cw*ch), Stride: cw, Width: cw, Height: ch}
	f.Planes[2] = frame.Plane{Data: make([]byte, cw*ch), Stride: cw, Width: cw, Height: ch}
	f.Planes[3] = frame.Plane{Data: make([]byte, w*h), Stride: w, Width: w, Height: h}
	return f
}
