/*
NAME
  coeffs.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package compose implements the chroma-aware composer (§4.B): flattening
// positioned glyph fragments into a packed YUVA buffer, then chroma
// subsampling it with a position-weighted 4-tap kernel derived from the
// destination's chroma siting.
package compose

import "github.com/ausocean/av/subburn/frame"

// baseKernel is the 7-tap weight table the 4-tap per-axis kernel is
// sliced out of, indexed by chroma offset.
var baseKernel = [7]uint32{1, 3, 9, 27, 9, 3, 1}

// Coeffs holds the horizontal and vertical weighted-average kernels used
// to subsample a packed overlay's chroma, one per subsampling axis. Only
// indices [0, 1<<shift) of each axis are read by Compose for the
// subsampling factors this package supports (1 or 2); higher indices are
// computed for completeness but never consulted.
type Coeffs struct {
	X [4]uint32
	Y [4]uint32
}

// DeriveCoeffs builds Coeffs for a chroma siting and subsampling shifts,
// following the same base-offset-plus-siting-adjustment derivation as
// the decoder's chroma location table, including its BOTTOM/BOTTOMLEFT
// fall-through (§9 open question): both share TOP's vertical offset
// rather than BOTTOM getting its own distinct one. This is preserved
// verbatim, not fixed.
func DeriveCoeffs(loc frame.ChromaLocation, wshift, hshift int) Coeffs {
	wX := 4 - (1 << wshift)
	wY := 4 - (1 << hshift)

	switch loc {
	case frame.ChromaTopLeft:
		wX += (1 << wshift) - 1
		fallthrough
	case frame.ChromaTop:
		wY += (1 << hshift) - 1
	case frame.ChromaLeft:
		wX += (1 << wshift) - 1
	case frame.ChromaBottomLeft:
		wX += (1 << wshift) - 1
		fallthrough
	case frame.ChromaBottom:
		// Reuses TOP's vertical offset rather than a distinct BOTTOM one;
		// the decoder table this is ported from has the same
		// fall-through, so this is a likely latent bug carried forward
		// on purpose rather than silently corrected.
		wY += (1 << hshift) - 1
	case frame.ChromaCenter, frame.ChromaUnspecified:
	}

	var c Coeffs
	for x := 0; x < 4; x++ {
		c.X[x] = axisWeight(x, wX)
		c.Y[x] = axisWeight(x, wY)
	}
	return c
}

func axisWeight(x, w int) uint32 {
	extra := 0
	if w&1 == 0 {
		extra = 1
	}
	return (baseKernel[x+w] + baseKernel[x+w+extra]) >> 1
}
