/*
NAME
  place.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package place implements the placement and rescale policy (§4.C):
// scaling a subtitle overlay, authored against its own reference window,
// up or down to the destination video's dimensions, then placing it
// within the video's safe (crop-margined) region.
package place

import (
	"github.com/ausocean/av/subburn/external"
	"github.com/ausocean/av/subburn/frame"
)

// passThroughTolerance is how close a computed scale factor must be to
// 1.0 before rescaling is skipped entirely.
const passThroughTolerance = 0.01

// Geometry describes the destination video frame's full dimensions and
// the crop margins placement must keep clear of.
type Geometry struct {
	VideoWidth, VideoHeight int

	CropTop, CropBottom int
	CropLeft, CropRight int
}

// ScaleFactor returns the factor a subtitle declaring a windowW x
// windowH reference window should be scaled by to match g's video
// dimensions, taking the larger of the horizontal/vertical ratios so
// pixel aspect ratio is preserved (the overlay is never stretched
// non-uniformly). Crop margins play no part in this: the original scales
// against the full video dimensions, not the post-crop display area
// (rendersub.c:485-497).
func (g Geometry) ScaleFactor(windowW, windowH int) float64 {
	xfactor := float64(g.VideoWidth) / float64(windowW)
	yfactor := float64(g.VideoHeight) / float64(windowH)
	if xfactor > yfactor {
		return xfactor
	}
	return yfactor
}

// RoundEven rounds v to the nearest multiple of 1<<shift, the way the
// original rounds scaled subtitle dimensions so chroma planes stay
// integral (§4 supplement 1).
func RoundEven(v, shift int) int {
	step := 1 << uint(shift)
	return ((v + step/2) / step) * step
}

// Rescale scales src, a subtitle overlay authored against a windowW x
// windowH reference window, to match g's video dimensions, returning the
// scaled overlay and its (x, y) position scaled by the same factor.
//
// If the subtitle declares no reference window (windowW == windowH ==
// 0), or one already matching g's video dimensions, or g's scale factor
// is within passThroughTolerance of 1.0, src is returned unchanged at
// its own position (invariant 7). maxShift is the larger of the
// destination format's wshift/hshift, used to round the target
// dimensions to an even multiple per supplement 1.
func Rescale(s external.Scaler, src *frame.Frame, windowW, windowH int, g Geometry, maxShift int) (scaled *frame.Frame, x, y int, err error) {
	if windowW == 0 && windowH == 0 {
		return src, src.X, src.Y, nil
	}
	if windowW == g.VideoWidth && windowH == g.VideoHeight {
		return src, src.X, src.Y, nil
	}

	factor := g.ScaleFactor(windowW, windowH)
	if abs(factor-1.0) <= passThroughTolerance {
		return src, src.X, src.Y, nil
	}

	dstW := RoundEven(int(float64(src.Width)*factor), maxShift)
	dstH := RoundEven(int(float64(src.Height)*factor), maxShift)
	if dstW <= 0 || dstH <= 0 {
		return nil, 0, 0, errEmptyScale
	}

	scaled, err = s.Scale(src, dstW, dstH)
	if err != nil {
		return nil, 0, 0, err
	}
	x = int(float64(src.X)*factor + 0.5)
	y = int(float64(src.Y)*factor + 0.5)
	return scaled, x, y, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
