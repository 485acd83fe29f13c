/*
NAME
  blend.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package blend implements the four pixel-blender variants (§4.A) that
// alpha-composite a planar YUVA overlay frame into a destination video
// frame: planar/semi-planar, each in an 8-bit and a deep (>8-bit) form.
package blend

import "github.com/ausocean/av/subburn/frame"

// Variant identifies which of the four blend loops a destination pixel
// format requires.
type Variant int

const (
	Planar8 Variant = iota
	SemiPlanar8
	Planar1x
	SemiPlanar1x
)

// SelectVariant picks the blend Variant for a destination format's
// descriptor, by depth (8 vs. deep) and plane layout (planar vs.
// semi-planar).
func SelectVariant(d frame.Desc) Variant {
	deep := d.Depth > 8
	semi := d.PlaneCount == 2
	switch {
	case !deep && !semi:
		return Planar8
	case !deep && semi:
		return SemiPlanar8
	case deep && !semi:
		return Planar1x
	default:
		return SemiPlanar1x
	}
}

// Blender alpha-composites src, an 8-bit planar YUVA overlay frame
// positioned at (left, top) in dst's coordinate space, into dst.
type Blender interface {
	Blend(dst, src *frame.Frame, left, top int)
}

// Options configures blend-variant construction.
type Options struct {
	// NoDeepSwapWorkaround disables the byte-swap SemiPlanar1x applies to
	// source Y/U/V samples in place of shifting them to the destination's
	// bit depth; when set, SemiPlanar1x shifts them as Planar1x does.
	// Default false preserves the original behaviour (§9 open question);
	// Planar1x never swaps regardless of this flag.
	NoDeepSwapWorkaround bool
}

// New returns the Blender for v.
func New(v Variant, opts Options) Blender {
	switch v {
	case SemiPlanar8:
		return semiPlanar8{}
	case Planar1x:
		return planar1x{}
	case SemiPlanar1x:
		return semiPlanar1x{noSwap: opts.NoDeepSwapWorkaround}
	default:
		return planar8{}
	}
}

// clip computes the valid overlay-space iteration window [x0,w1) x
// [y0,h1) for a src of size srcW x srcH placed at (left, top) within a
// dst of size dstW x dstH. left/top may be negative (overlay starts
// off-screen) and src may overhang the opposite edge.
//
// The final two clamps are a Go-port safety margin beyond the original
// C formula: when left/top is negative and src simultaneously overhangs
// the opposite edge, the unclamped formula can compute a window that
// still writes past dst's bounds. C silently overruns the buffer in that
// case; Go would panic on the out-of-bounds slice index, so this clamps
// w1/h1 a second time against dst's actual extent.
func clip(dstW, dstH, srcW, srcH, left, top int) (x0, y0, w1, h1 int) {
	if left < 0 {
		x0 = -left
	}
	if top < 0 {
		y0 = -top
	}

	w1 = srcW
	if srcW-x0 > dstW-left {
		w1 = dstW - left + x0
	}
	h1 = srcH
	if srcH-y0 > dstH-top {
		h1 = dstH - top + y0
	}

	if left+w1 > dstW {
		w1 = dstW - left
	}
	if top+h1 > dstH {
		h1 = dstH - top
	}
	if w1 < x0 {
		w1 = x0
	}
	if h1 < y0 {
		h1 = y0
	}
	return
}
