/*
NAME
  frame.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame defines the planar pixel buffer and pixel-format
// descriptors shared by subburn's blend, compose, place and track
// packages.
package frame

import "fmt"

// Flags marks properties of a Frame relevant to the burn-in pipeline.
type Flags uint32

const (
	// FlagWritable indicates the frame's planes may be mutated in place.
	// A non-writable frame must be duplicated before blending into it.
	FlagWritable Flags = 1 << iota

	// FlagEOF marks the synthetic end-of-stream frame used to flush any
	// pending open-ended text-track subtitle (§4.E); Filter.Work passes
	// such a frame through without compositing.
	FlagEOF
)

// Has reports whether b is set in f.
func (f Flags) Has(b Flags) bool { return f&b != 0 }

// ChromaLocation describes where a chroma sample sits relative to the
// luma samples it represents, matching the AVCHROMA_LOC_* enumeration
// used by the decoder that hands frames to this filter.
type ChromaLocation int

const (
	ChromaUnspecified ChromaLocation = iota
	ChromaLeft
	ChromaCenter
	ChromaTopLeft
	ChromaTop
	ChromaBottomLeft
	ChromaBottom
)

func (c ChromaLocation) String() string {
	switch c {
	case ChromaLeft:
		return "left"
	case ChromaCenter:
		return "center"
	case ChromaTopLeft:
		return "topleft"
	case ChromaTop:
		return "top"
	case ChromaBottomLeft:
		return "bottomleft"
	case ChromaBottom:
		return "bottom"
	default:
		return "unspecified"
	}
}

// PixFmt identifies a planar or semi-planar YUV pixel layout.
type PixFmt int

const (
	PixFmtNone PixFmt = iota

	PixFmtYUV420P
	PixFmtYUV422P
	PixFmtYUV444P
	PixFmtYUV420P10
	PixFmtYUV420P12
	PixFmtYUV420P16
	PixFmtYUV422P10
	PixFmtYUV422P12
	PixFmtYUV422P16
	PixFmtYUV444P10
	PixFmtYUV444P12
	PixFmtYUV444P16

	PixFmtNV12
	PixFmtNV16
	PixFmtNV24
	PixFmtP010
	PixFmtP012
	PixFmtP016
	PixFmtP210
	PixFmtP212
	PixFmtP216
	PixFmtP410
	PixFmtP412
	PixFmtP416

	// Planar 8-bit YUVA overlay formats produced by compose.Compose, keyed
	// by chroma subsampling to match the destination frame they'll be
	// blended into.
	PixFmtYUVA420P
	PixFmtYUVA422P
	PixFmtYUVA444P
)

// Desc describes the geometry of a PixFmt: its per-sample bit depth, its
// chroma subsampling shifts and its plane count (2 for semi-planar, 3 for
// planar, 4 for the planar YUVA overlay formats).
type Desc struct {
	Depth      int
	WShift     int
	HShift     int
	PlaneCount int
}

var descs = map[PixFmt]Desc{
	PixFmtYUV420P:   {8, 1, 1, 3},
	PixFmtYUV422P:   {8, 1, 0, 3},
	PixFmtYUV444P:   {8, 0, 0, 3},
	PixFmtYUV420P10: {10, 1, 1, 3},
	PixFmtYUV420P12: {12, 1, 1, 3},
	PixFmtYUV420P16: {16, 1, 1, 3},
	PixFmtYUV422P10: {10, 1, 0, 3},
	PixFmtYUV422P12: {12, 1, 0, 3},
	PixFmtYUV422P16: {16, 1, 0, 3},
	PixFmtYUV444P10: {10, 0, 0, 3},
	PixFmtYUV444P12: {12, 0, 0, 3},
	PixFmtYUV444P16: {16, 0, 0, 3},

	PixFmtNV12: {8, 1, 1, 2},
	PixFmtNV16: {8, 1, 0, 2},
	PixFmtNV24: {8, 0, 0, 2},
	PixFmtP010: {10, 1, 1, 2},
	PixFmtP012: {12, 1, 1, 2},
	PixFmtP016: {16, 1, 1, 2},
	PixFmtP210: {10, 1, 0, 2},
	PixFmtP212: {12, 1, 0, 2},
	PixFmtP216: {16, 1, 0, 2},
	PixFmtP410: {10, 0, 0, 2},
	PixFmtP412: {12, 0, 0, 2},
	PixFmtP416: {16, 0, 0, 2},

	PixFmtYUVA420P: {8, 1, 1, 4},
	PixFmtYUVA422P: {8, 1, 0, 4},
	PixFmtYUVA444P: {8, 0, 0, 4},
}

// Descriptor returns the geometry of pf and whether pf is known.
func (pf PixFmt) Descriptor() (Desc, bool) {
	d, ok := descs[pf]
	return d, ok
}

// OverlayFormat picks the YUVA overlay PixFmt matching a destination
// frame's chroma subsampling, so the composed overlay can be blended into
// it plane-for-plane.
func OverlayFormat(d Desc) PixFmt {
	switch {
	case d.WShift == 1 && d.HShift == 1:
		return PixFmtYUVA420P
	case d.WShift == 1 && d.HShift == 0:
		return PixFmtYUVA422P
	default:
		return PixFmtYUVA444P
	}
}

// Plane is one component plane of a Frame (or, for semi-planar formats,
// one interleaved chroma plane shared by two components).
type Plane struct {
	Data   []byte
	Stride int
	Width  int
	Height int
}

// Frame is a decoded video frame, or a composed subtitle overlay, as a
// set of up to four Planes. Subtitle overlays use X/Y/WindowWidth/
// WindowHeight to describe where they belong within the video frame they
// will be blended into; decoded video frames leave those at zero.
type Frame struct {
	Width, Height int
	PixFmt        PixFmt
	Planes        [4]Plane

	// PTS and Stop are presentation/stop times in milliseconds. Bitmap
	// tracks only compare them; the text track also adds millisecond
	// durations to them (tick slices and the end-of-stream tail).
	PTS, Stop int64

	Flags Flags

	// X, Y, WindowWidth and WindowHeight place a subtitle overlay frame
	// within the video frame it will be composited onto.
	X, Y                      int
	WindowWidth, WindowHeight int
}

// Writable reports whether f's planes may be mutated in place.
func (f *Frame) Writable() bool { return f.Flags.Has(FlagWritable) }

// CropRect describes the margin, in pixels, cropped from each edge of a
// video frame before placement computations (§4.C) run.
type CropRect struct {
	Top, Bottom, Left, Right int
}

// Validate reports an error if c crops the full width or height of a
// width x height frame, or more.
func (c CropRect) Validate(width, height int) error {
	if c.Top+c.Bottom >= height {
		return fmt.Errorf("crop top+bottom (%d) exceeds frame height (%d)", c.Top+c.Bottom, height)
	}
	if c.Left+c.Right >= width {
		return fmt.Errorf("crop left+right (%d) exceeds frame width (%d)", c.Left+c.Right, width)
	}
	return nil
}
