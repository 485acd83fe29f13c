/*
NAME
  bitmap.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package track implements subburn's two subtitle track state machines
// (§4.D, §4.E): Bitmap for VOBSUB/PGS/DVB pre-rasterised events, and
// Text for script-driven SSA/SRT/TX3G/CC608/UTF8 events with open-ended
// durations.
package track

import "github.com/ausocean/av/subburn/frame"

// Buffer is one pre-rasterised bitmap overlay belonging to a subtitle
// event. A single event may carry more than one Buffer: a DVB region
// composed of several objects (§4 supplement 4), or a run of chained
// VOBSUB fragments. Bitmap composites every Buffer in an active Entry
// together when blending.
type Buffer struct {
	Overlay *frame.Frame

	// Forced carries the PGS forced-subtitle flag through from the
	// incoming event (§4 supplement 2). The track itself never acts on
	// it; a forced-only burn policy is a dispatcher-level decision.
	Forced bool
}

// Entry is one subtitle event on the active list: a time span and the
// buffer chain composited for it. Stop == 0 means "unbounded" — VOBSUB's
// continuation convention, where an entry is evicted only once a
// successor's start time (or an explicit stop) supersedes it.
type Entry struct {
	Start, Stop int64
	Buffers     []Buffer
}

// Bitmap is the active-list bitmap track used by VOBSUB, PGS and DVB
// subtitle streams.
type Bitmap struct {
	format frame.Format
	list   []Entry
}

// NewBitmap returns an empty Bitmap track for the given format.
func NewBitmap(f frame.Format) *Bitmap {
	return &Bitmap{format: f}
}

// Push appends a newly-arrived event to the active list.
func (b *Bitmap) Push(e Entry) {
	b.list = append(b.list, e)
}

// Active returns the buffer chain that should be composited for a video
// frame beginning at frameStart, applying this track's format-specific
// eviction/supersession policy and mutating the active list accordingly.
func (b *Bitmap) Active(frameStart int64) []Buffer {
	if b.format == frame.FormatVOBSUB {
		return b.activeVOBSUB(frameStart)
	}
	return b.activeSupersede(frameStart)
}

// activeVOBSUB implements overlap-permitted eviction: every entry whose
// stop (explicit, or implied by the next entry's start when unbounded)
// has not yet passed stays active and is composited; everything else is
// dropped from the list.
func (b *Bitmap) activeVOBSUB(frameStart int64) []Buffer {
	kept := b.list[:0:0]
	var out []Buffer

	for i, e := range b.list {
		stop := e.Stop
		if stop == 0 && i+1 < len(b.list) {
			stop = b.list[i+1].Start
		}
		if stop != 0 && stop <= frameStart {
			continue
		}

		kept = append(kept, e)
		if e.Start <= frameStart {
			out = append(out, e.Buffers...)
		}
	}
	b.list = kept
	return out
}

// activeSupersede implements PGS/DVB's last-wins policy: walk backward
// from the end of the list to find the newest entry whose start has
// arrived, drop everything strictly older than it, then drop any
// leading zero-buffer "clear" entries before deciding whether to
// composite the head.
func (b *Bitmap) activeSupersede(frameStart int64) []Buffer {
	newest := -1
	for i := len(b.list) - 1; i > 0; i-- {
		if b.list[i].Start <= frameStart {
			newest = i
			break
		}
	}
	if newest > 0 {
		b.list = b.list[newest:]
	}

	for len(b.list) > 0 && len(b.list[0].Buffers) == 0 {
		b.list = b.list[1:]
	}

	if len(b.list) == 0 || b.list[0].Start > frameStart {
		return nil
	}
	return b.list[0].Buffers
}
