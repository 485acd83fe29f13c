/*
NAME
  position.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package place

// Position computes the (x, y) offset at which a w x h overlay currently
// sitting at (x, y) should be blended into g's video frame, applying
// §4.C's conditional placement (rendersub.c:563-606): an overlay too
// large to fit within its axis's safe region is centered; one straying
// outside the crop-margined safe region is pushed back inside it; one
// already within bounds is left untouched (invariant 6 — placement
// monotonicity).
func Position(g Geometry, x, y, w, h int) (int, int) {
	return horizontal(g, x, w), vertical(g, y, h)
}

// vertical margin is min(20px, 2% of the uncropped video height), per
// §4.C.
func vertical(g Geometry, y, h int) int {
	region := g.VideoHeight - g.CropTop - g.CropBottom

	margin := 20
	if m := int(0.02 * float64(region)); m < margin {
		margin = m
	}

	if h > region-2*margin {
		return g.CropTop + (region-h)/2
	}

	lo := g.CropTop + margin
	hi := g.VideoHeight - g.CropBottom - margin - h
	switch {
	case y < lo:
		return lo
	case y > hi:
		return hi
	default:
		return y
	}
}

// horizontal margin is a fixed 20px, per §4.C.
func horizontal(g Geometry, x, w int) int {
	const margin = 20
	region := g.VideoWidth - g.CropLeft - g.CropRight

	if w > region-2*margin {
		return g.CropLeft + (region-w)/2
	}

	lo := g.CropLeft + margin
	hi := g.VideoWidth - g.CropRight - margin - w
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
