/*
NAME
  text.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package track

import (
	"time"

	"github.com/ausocean/av/subburn/external"
)

// TextEvent is one subtitle cue as it arrives from the upstream decoder:
// a payload and a start time, with Stop possibly unresolved (0) until a
// successor event arrives, a per-frame tick extends it, or end-of-stream
// flushes it.
type TextEvent struct {
	Data        []byte
	Start, Stop int64
}

// TextConfig carries per-track construction options forwarded to the
// external styled-text-renderer session.
type TextConfig struct {
	FontScale   float64
	Hinting     external.Hinting
	LineSpacing float64

	// PlainStyle forwards the plain-text-only override (§4 supplement 3):
	// style/markup in events is ignored, rendering with the session's
	// default font/size only.
	PlainStyle bool
}

// Text is the open-ended-duration text track (§4.E). SRT/TX3G/CC608/UTF8
// events and SSA events whose duration isn't yet known are held in
// current until a successor event, a per-frame Tick, or Flush resolves
// their stop time.
type Text struct {
	handle  external.TextTrackHandle
	current *TextEvent
	eofTail int64 // milliseconds
}

// NewTextTrack configures session per cfg and wraps the track it returns.
// eofTail is the synthesized tail duration applied to a still-open event
// at end-of-stream (§9 open question; default 10s, see Config.EOFFlushDuration).
func NewTextTrack(session external.TextSession, cfg TextConfig, eofTail time.Duration) *Text {
	fontScale := cfg.FontScale
	if fontScale == 0 {
		fontScale = 1
	}
	lineSpacing := cfg.LineSpacing
	if lineSpacing == 0 {
		lineSpacing = 1
	}

	session.SetFontScale(fontScale)
	session.SetHinting(cfg.Hinting)
	session.SetLineSpacing(lineSpacing)
	session.SetPlainStyle(cfg.PlainStyle)

	return &Text{handle: session.NewTrack(), eofTail: eofTail.Milliseconds()}
}

// Push processes a newly-arrived event. If a prior event is still
// open-ended, its stop is resolved to e's start before e itself is
// queued. An event with no payload is treated as an explicit
// end-of-segment marker: it closes any open current event but never
// itself becomes one.
func (t *Text) Push(e TextEvent) error {
	if t.current != nil {
		t.current.Stop = e.Start
		if err := t.submit(*t.current); err != nil {
			return err
		}
		t.current = nil
	}

	if len(e.Data) == 0 {
		return nil
	}

	if e.Stop == 0 {
		cp := e
		t.current = &cp
		return nil
	}
	return t.submit(e)
}

// Tick extends a still-open current event forward by one frame slice
// once its previously-submitted bounded window has elapsed, so the
// renderer keeps reporting it active at inStartMS without prematurely
// closing it.
func (t *Text) Tick(inStartMS int64) error {
	if t.current == nil || t.current.Stop > inStartMS {
		return nil
	}
	t.current.Start = t.current.Stop
	t.current.Stop = inStartMS + 1
	return t.submit(*t.current)
}

// Flush closes a still-open current event at end-of-stream, synthesizing
// its stop as its own start plus eofTail (rendersub.c:1216).
func (t *Text) Flush() error {
	if t.current == nil {
		return nil
	}
	t.current.Stop = t.current.Start + t.eofTail
	err := t.submit(*t.current)
	t.current = nil
	return err
}

// RenderFrame delegates to the underlying TextTrackHandle.
func (t *Text) RenderFrame(timeMS int64) ([]external.Fragment, bool) {
	return t.handle.RenderFrame(timeMS)
}

func (t *Text) submit(e TextEvent) error {
	return t.handle.ProcessChunk(e.Data, e.Start, e.Stop-e.Start)
}
