/*
NAME
  external.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package external declares the collaborator interfaces subburn delegates
// to (§4.G): a geometric scaler, a styled-text renderer, and a frame
// allocator, plus an RGB->YUV helper shared by the composer and the text
// renderer. Each interface ships a concrete default implementation (the
// scaler and text renderer built from golang.org/x/image, the allocator
// from sync.Pool) so the rest of subburn is exercisable without a
// production-grade libass/swscale binding wired in.
package external

import "github.com/ausocean/av/subburn/frame"

// Scaler resizes a frame to dstW x dstH, used by place.Rescale (§4.C).
type Scaler interface {
	Scale(src *frame.Frame, dstW, dstH int) (*frame.Frame, error)
}

// FrameAllocator allocates a zeroed Frame of the given format and
// dimensions. Used wherever subburn needs a new buffer: duplicating a
// non-writable destination frame before blending into it, or allocating a
// rescaled subtitle overlay.
type FrameAllocator interface {
	Alloc(pf frame.PixFmt, w, h int) (*frame.Frame, error)
}

// Fragment is one positioned, rasterised glyph bitmap returned by a
// TextTrackHandle's RenderFrame, matching the ASS_Image linked-list node
// the styled-text renderer would otherwise hand back.
type Fragment struct {
	W, H, Stride int
	DstX, DstY   int
	Bitmap       []byte // 8-bit coverage, one byte per pixel, row-major.

	// Color is 0xRRGGBBAA. The low byte is the fragment's own
	// transparency (0 = opaque, 255 = fully transparent), matching the
	// styled-text renderer's own colour-with-alpha convention.
	Color uint32
}

// Hinting selects a font hinting mode, mirroring libass's ASS_Hinting.
type Hinting int

const (
	HintingNone Hinting = iota
	HintingLight
	HintingNormal
	HintingNative
)

// TextTrackHandle is one subtitle track within a TextSession.
type TextTrackHandle interface {
	// ProcessChunk feeds one subtitle event's raw payload (its text, plus
	// any styling) starting at startMS for durMS milliseconds.
	ProcessChunk(data []byte, startMS, durMS int64) error

	// RenderFrame rasterises the track's state at timeMS. changed
	// reports whether the returned fragments differ from the previous
	// call, letting the caller skip re-compositing identical output.
	RenderFrame(timeMS int64) (frags []Fragment, changed bool)
}

// TextSession is a styled-text rendering engine instance, configured once
// per subtitle track's postInit (§4.E) and then driven per-frame.
type TextSession interface {
	AddFont(name string, data []byte) error
	SetFontScale(scale float64)
	SetHinting(h Hinting)
	SetLineSpacing(scale float64)
	SetFrameSize(w, h int)
	SetStorageSize(w, h int)

	// SetPlainStyle forwards the PlainStyle session option (§4 supplement
	// 3): when true, style/markup information in events is ignored and
	// text renders with the session's default font/size only.
	SetPlainStyle(plain bool)

	NewTrack() TextTrackHandle

	// ProcessCodecPrivate feeds a track's script header (an SSA/ASS
	// [Script Info] + [V4+ Styles] block, or a synthesized one for
	// formats that don't carry their own, per frame.NeedsSynthesizedHeader).
	ProcessCodecPrivate(data []byte) error
}

// LogFunc receives one log line from a TextSession at the given libass-
// style severity (0 = most severe). Severities >= external.LogForwardFloor
// are dropped before reaching the caller's logging.Logger (§5).
type LogFunc func(level int8, format string, args ...interface{})

// LogForwardFloor is the severity threshold above which TextSession log
// messages are suppressed (§5: "messages from the external renderer below
// severity 5 are forwarded").
const LogForwardFloor = 5

// Forward invokes fn with format/args only if level is below
// LogForwardFloor.
func Forward(fn LogFunc, level int8, format string, args ...interface{}) {
	if fn == nil || level >= LogForwardFloor {
		return
	}
	fn(level, format, args...)
}
