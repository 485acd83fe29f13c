/*
NAME
  subburn.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package subburn

import (
	"github.com/pkg/errors"

	"github.com/ausocean/av/subburn/blend"
	"github.com/ausocean/av/subburn/compose"
	"github.com/ausocean/av/subburn/external"
	"github.com/ausocean/av/subburn/frame"
	"github.com/ausocean/av/subburn/place"
	"github.com/ausocean/av/subburn/track"
)

// Sentinel errors returned by Filter's lifecycle methods.
var (
	ErrNotInitialized   = errors.New("subburn: filter not initialized")
	ErrAlreadyClosed    = errors.New("subburn: filter already closed")
	ErrUnknownPixFmt    = errors.New("subburn: unknown destination pixel format")
	ErrNotBitmapTrack   = errors.New("subburn: filter is not a bitmap track")
	ErrNotTextTrack     = errors.New("subburn: filter is not a text track")
	ErrTextNeedsSession = errors.New("subburn: text format requires a TextSession")
)

// Filter is the subtitle burn-in dispatcher (§4.F). Each Filter owns
// exactly one subtitle track — bitmap (VOBSUB/PGS/DVB) or text
// (SSA/SRT/TX3G/CC608/UTF8) — selected by its Format, and composites
// that track's active content into every video frame passed to Work.
//
// Its lifecycle mirrors the original dispatcher's init/postInit/work/
// close stages: Init learns the destination video's pixel format and
// geometry, PostInit wires the external collaborators once the
// subtitle's authored (storage) resolution is known, Work runs per
// video frame, and Close flushes any still-open text event.
type Filter struct {
	cfg    Config
	format frame.Format

	dstFmt     frame.PixFmt
	dstDesc    frame.Desc
	overlayFmt frame.PixFmt
	blender    blend.Blender
	coeffs     compose.Coeffs

	scaler external.Scaler
	alloc  external.FrameAllocator

	bitmap *track.Bitmap
	text   *track.Text

	geom     place.Geometry
	maxShift int

	initialized bool
	closed      bool
}

// New returns a Filter for the given subtitle format. cfg's zero-valued
// fields are defaulted in place.
func New(format frame.Format, cfg Config) *Filter {
	cfg.setDefaults()
	return &Filter{format: format, cfg: cfg}
}

// Init is the dispatcher's init stage: it learns the destination video's
// pixel format, display window and crop margins, and from them selects
// the blend variant and derives the chroma subsampling coefficients.
func (f *Filter) Init(dstFmt frame.PixFmt, windowW, windowH int, crop frame.CropRect) error {
	d, ok := dstFmt.Descriptor()
	if !ok {
		return ErrUnknownPixFmt
	}
	if err := crop.Validate(windowW, windowH); err != nil {
		return errors.Wrap(err, "subburn: invalid crop rectangle")
	}

	f.dstFmt = dstFmt
	f.dstDesc = d
	f.overlayFmt = frame.OverlayFormat(d)
	f.blender = blend.New(blend.SelectVariant(d), blend.Options{NoDeepSwapWorkaround: f.cfg.NoDeepSwapWorkaround})
	f.coeffs = compose.DeriveCoeffs(f.cfg.ChromaLocation, d.WShift, d.HShift)

	f.geom.VideoWidth, f.geom.VideoHeight = windowW, windowH
	f.geom.CropTop, f.geom.CropBottom = crop.Top, crop.Bottom
	f.geom.CropLeft, f.geom.CropRight = crop.Left, crop.Right

	f.maxShift = d.WShift
	if d.HShift > f.maxShift {
		f.maxShift = d.HShift
	}

	if frame.IsBitmap(f.format) {
		f.bitmap = track.NewBitmap(f.format)
	}

	f.initialized = true
	return nil
}

// PostInit is the dispatcher's postInit stage: it records the subtitle's
// authored (storage) resolution, wires the scaler and frame allocator,
// and — for text formats — configures a text track against session,
// synthesizing a script header first if the format needs one.
func (f *Filter) PostInit(storageW, storageH int, scaler external.Scaler, alloc external.FrameAllocator, session external.TextSession) error {
	if !f.initialized {
		return ErrNotInitialized
	}
	f.scaler, f.alloc = scaler, alloc

	if !frame.IsText(f.format) {
		return nil
	}
	if session == nil {
		return ErrTextNeedsSession
	}

	session.SetFrameSize(f.geom.VideoWidth, f.geom.VideoHeight)
	session.SetStorageSize(storageW, storageH)
	if frame.NeedsSynthesizedHeader(f.format) {
		if err := session.ProcessCodecPrivate(track.SynthesizedHeader(f.format, f.geom.VideoHeight)); err != nil {
			return errors.Wrap(err, "subburn: processing synthesized header")
		}
	}

	f.text = track.NewTextTrack(session, track.TextConfig{
		FontScale:   f.cfg.FontScale,
		LineSpacing: f.cfg.LineSpacing,
		PlainStyle:  f.cfg.PlainStyle,
	}, f.cfg.EOFFlushDuration)
	return nil
}

// PushBitmap queues a newly-arrived bitmap subtitle event. Valid only for
// a Filter constructed with a bitmap format.
func (f *Filter) PushBitmap(e track.Entry) error {
	if f.bitmap == nil {
		return ErrNotBitmapTrack
	}
	f.bitmap.Push(e)
	return nil
}

// PushText queues a newly-arrived text subtitle event. Valid only for a
// Filter constructed with a text format.
func (f *Filter) PushText(e track.TextEvent) error {
	if f.text == nil {
		return ErrNotTextTrack
	}
	return f.text.Push(e)
}

// Work is the dispatcher's work stage: it composites whatever subtitle
// content is active at dst's PTS into dst, duplicating dst first (via
// the configured FrameAllocator) if it isn't already writable. A frame
// flagged frame.FlagEOF is returned unchanged after any still-open text
// event has been flushed.
func (f *Filter) Work(dst *frame.Frame) (*frame.Frame, error) {
	if !f.initialized {
		return nil, ErrNotInitialized
	}
	if f.closed {
		return nil, ErrAlreadyClosed
	}
	if dst.Flags.Has(frame.FlagEOF) {
		if f.text != nil {
			if err := f.text.Flush(); err != nil {
				return nil, errors.Wrap(err, "subburn: flushing text event at end of stream")
			}
		}
		return dst, nil
	}

	out := dst
	if !dst.Writable() {
		dup, err := f.alloc.Alloc(dst.PixFmt, dst.Width, dst.Height)
		if err != nil {
			return nil, errors.Wrap(err, "subburn: duplicating non-writable destination frame")
		}
		copyPlanes(dup, dst)
		dup.PTS, dup.Stop = dst.PTS, dst.Stop
		out = dup
	}

	switch {
	case f.bitmap != nil:
		if err := f.blendBitmap(out, dst.PTS); err != nil {
			return nil, err
		}
	case f.text != nil:
		if err := f.blendText(out, dst.PTS); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Close is the dispatcher's close stage: it flushes any still-open text
// event using the end-of-stream tail duration (Config.EOFFlushDuration).
func (f *Filter) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.text == nil {
		return nil
	}
	return errors.Wrap(f.text.Flush(), "subburn: flushing trailing text event")
}

// blendBitmap blends every active bitmap buffer at pts into dst. Per
// §4.D, a bitmap subtitle's compositing routes through §4.C (rescale
// then place) before the blend: a VOBSUB/PGS overlay authored against a
// reference window different from the video's dimensions must be scaled
// up or down to match, and its position pushed back inside the
// crop-margined safe region if it strays outside it.
func (f *Filter) blendBitmap(dst *frame.Frame, pts int64) error {
	for _, b := range f.bitmap.Active(pts) {
		if f.cfg.ForcedOnly && f.format == frame.FormatPGS && !b.Forced {
			continue
		}
		if b.Overlay == nil {
			continue
		}

		scaled, x, y, err := place.Rescale(f.scaler, b.Overlay, b.Overlay.WindowWidth, b.Overlay.WindowHeight, f.geom, f.maxShift)
		if err != nil {
			if f.cfg.Logger != nil {
				f.cfg.Logger.Warning("subburn: skipping bitmap overlay, rescale failed", "error", err.Error())
			}
			continue
		}

		x, y = place.Position(f.geom, x, y, scaled.Width, scaled.Height)
		f.blender.Blend(dst, scaled, x, y)
	}
	return nil
}

// blendText blends the text track's composed overlay at pts into dst.
// Per §4.E, a text overlay is already rendered in video coordinates by
// the external text session, so it is composited via §4.A directly, with
// no rescaling or placement: the only adjustment is padding its
// bounding-box origin down to the destination's chroma sampling grid and
// translating it by the crop origin (rendersub.c:942-943).
func (f *Filter) blendText(dst *frame.Frame, pts int64) error {
	if err := f.text.Tick(pts); err != nil {
		return errors.Wrap(err, "subburn: extending open-ended text event")
	}

	frags, _ := f.text.RenderFrame(pts)
	if len(frags) == 0 {
		return nil
	}

	x0, y0, x1, y1 := fragmentBounds(frags)
	x0 = alignToChromaGrid(x0, f.geom.CropLeft, f.dstDesc.WShift)
	y0 = alignToChromaGrid(y0, f.geom.CropTop, f.dstDesc.HShift)
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return nil
	}

	overlay := compose.Compose(frags, x0, y0, w, h, f.dstDesc.WShift, f.dstDesc.HShift, f.coeffs, f.overlayFmt)
	f.blender.Blend(dst, overlay, x0+f.geom.CropLeft, y0+f.geom.CropTop)
	return nil
}

// fragmentBounds returns the smallest rectangle, in overlay-relative
// coordinates, covering every fragment in frags.
func fragmentBounds(frags []external.Fragment) (x0, y0, x1, y1 int) {
	x0, y0 = frags[0].DstX, frags[0].DstY
	x1, y1 = x0+frags[0].W, y0+frags[0].H
	for _, fr := range frags[1:] {
		if fr.DstX < x0 {
			x0 = fr.DstX
		}
		if fr.DstY < y0 {
			y0 = fr.DstY
		}
		if fr.DstX+fr.W > x1 {
			x1 = fr.DstX + fr.W
		}
		if fr.DstY+fr.H > y1 {
			y1 = fr.DstY + fr.H
		}
	}
	return x0, y0, x1, y1
}

// alignToChromaGrid pads pos down so that pos+cropOrigin lands on a
// multiple of 1<<shift, the chroma subsampling grid the destination
// frame's chroma planes are aligned to (§4.E, invariant 5).
func alignToChromaGrid(pos, cropOrigin, shift int) int {
	return pos - (pos+cropOrigin)%(1<<uint(shift))
}

// copyPlanes copies src's plane data into dst, which must share src's
// pixel format and dimensions (guaranteed by allocating dst from them).
func copyPlanes(dst, src *frame.Frame) {
	for i := range dst.Planes {
		n := len(src.Planes[i].Data)
		if n == 0 || len(dst.Planes[i].Data) < n {
			continue
		}
		copy(dst.Planes[i].Data, src.Planes[i].Data)
	}
}
