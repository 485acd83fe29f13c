package external

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BasicTextRenderer is the default TextSession: a minimal rasteriser
// using the fixed basicfont.Face7x13 face. It satisfies the
// styled-text-renderer collaborator contract (§6) well enough to render
// plain UTF-8/SRT/TX3G/CC608 payloads without a production ASS engine
// wired in; SSA markup beyond plain text is not interpreted.
type BasicTextRenderer struct {
	mu         sync.Mutex
	face       font.Face
	scale      float64
	frameW     int
	frameH     int
	plainStyle bool
}

// NewBasicTextRenderer returns a ready-to-use BasicTextRenderer.
func NewBasicTextRenderer() *BasicTextRenderer {
	return &BasicTextRenderer{face: basicfont.Face7x13, scale: 1}
}

func (r *BasicTextRenderer) AddFont(name string, data []byte) error { return nil }
func (r *BasicTextRenderer) SetFontScale(scale float64)             { r.mu.Lock(); r.scale = scale; r.mu.Unlock() }
func (r *BasicTextRenderer) SetHinting(h Hinting)                   {}
func (r *BasicTextRenderer) SetLineSpacing(scale float64)           {}
func (r *BasicTextRenderer) SetPlainStyle(plain bool)               { r.mu.Lock(); r.plainStyle = plain; r.mu.Unlock() }

func (r *BasicTextRenderer) SetFrameSize(w, h int) {
	r.mu.Lock()
	r.frameW, r.frameH = w, h
	r.mu.Unlock()
}

func (r *BasicTextRenderer) SetStorageSize(w, h int) {}

func (r *BasicTextRenderer) ProcessCodecPrivate(data []byte) error { return nil }

// NewTrack returns a track rendering against the session's current font
// scale and frame size.
func (r *BasicTextRenderer) NewTrack() TextTrackHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &basicTrack{face: r.face, scale: r.scale, frameW: r.frameW, frameH: r.frameH}
}

type basicEvent struct {
	text           string
	startMS, stopMS int64
}

type basicTrack struct {
	mu     sync.Mutex
	face   font.Face
	scale  float64
	frameW int
	frameH int

	events   []basicEvent
	last     string
	rendered bool
}

func (t *basicTrack) ProcessChunk(data []byte, startMS, durMS int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, basicEvent{text: string(data), startMS: startMS, stopMS: startMS + durMS})
	return nil
}

// RenderFrame rasterises the active event (if any) at timeMS into a
// single Fragment positioned at the bottom-center of the frame; text
// overlays are composited where they are rendered, with no §4.C
// placement. The first call always reports changed.
func (t *basicTrack) RenderFrame(timeMS int64) (frags []Fragment, changed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var active string
	for _, e := range t.events {
		if timeMS >= e.startMS && timeMS < e.stopMS {
			active = e.text
			break
		}
	}

	changed = !t.rendered || active != t.last
	t.rendered = true
	t.last = active
	if active == "" {
		return nil, changed
	}

	advance := font.MeasureString(t.face, active)
	w := advance.Ceil()
	h := t.face.Metrics().Height.Ceil()
	if w <= 0 || h <= 0 {
		return nil, changed
	}

	bitmap := make([]byte, w*h)
	drawer := &glyphCollector{face: t.face, w: w, h: h, bitmap: bitmap}
	drawer.drawString(active)

	dstX := (t.frameW - w) / 2
	dstY := t.frameH - h - h/2
	if dstX < 0 {
		dstX = 0
	}
	if dstY < 0 {
		dstY = 0
	}

	return []Fragment{{
		W: w, H: h, Stride: w,
		DstX: dstX, DstY: dstY,
		Bitmap: bitmap,
		Color:  0xffffff00, // opaque white: zero transparency byte.
	}}, changed
}

// glyphCollector rasterises a string into an 8-bit coverage bitmap by
// walking basicfont's glyph masks directly, since font.Face doesn't
// expose a plain alpha-mask drawing entry point outside image/draw's
// full Image machinery.
type glyphCollector struct {
	face   font.Face
	w, h   int
	bitmap []byte
}

func (g *glyphCollector) drawString(s string) {
	dot := fixed.P(0, g.h-g.face.Metrics().Descent.Ceil())
	for _, r := range s {
		dr, mask, maskp, advance, ok := g.face.Glyph(dot, r)
		if !ok {
			continue
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			if y < 0 || y >= g.h {
				continue
			}
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= g.w {
					continue
				}
				_, _, _, a := mask.At(maskp.X+(x-dr.Min.X), maskp.Y+(y-dr.Min.Y)).RGBA()
				g.bitmap[y*g.w+x] = uint8(a >> 8)
			}
		}
		dot.X += advance
	}
}
