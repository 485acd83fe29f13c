package track

import (
	"testing"

	"github.com/ausocean/av/subburn/frame"
)

func buf() []Buffer { return []Buffer{{Overlay: &frame.Frame{}}} }

func TestVOBSUBOverlapPermitted(t *testing.T) {
	b := NewBitmap(frame.FormatVOBSUB)
	b.Push(Entry{Start: 0, Stop: 5000, Buffers: buf()})
	b.Push(Entry{Start: 1000, Stop: 3000, Buffers: buf()})

	active := b.Active(2000)
	if len(active) != 2 {
		t.Fatalf("got %d active buffers at t=2000, want 2 (both overlapping)", len(active))
	}
}

func TestVOBSUBEvictionByStop(t *testing.T) {
	b := NewBitmap(frame.FormatVOBSUB)
	b.Push(Entry{Start: 0, Stop: 1000, Buffers: buf()})

	if active := b.Active(500); len(active) != 1 {
		t.Fatalf("got %d active at t=500, want 1", len(active))
	}
	if active := b.Active(1500); len(active) != 0 {
		t.Fatalf("got %d active at t=1500, want 0 (past stop)", len(active))
	}
}

func TestVOBSUBUnboundedEvictedByNextStart(t *testing.T) {
	b := NewBitmap(frame.FormatVOBSUB)
	b.Push(Entry{Start: 0, Stop: 0, Buffers: buf()})
	b.Push(Entry{Start: 1000, Stop: 0, Buffers: buf()})

	active := b.Active(1500)
	if len(active) != 1 {
		t.Fatalf("got %d active at t=1500, want 1 (first entry implicitly closed by second's start)", len(active))
	}
}

func TestPGSLastWinsSupersession(t *testing.T) {
	b := NewBitmap(frame.FormatPGS)
	b.Push(Entry{Start: 0, Buffers: buf()})
	b.Push(Entry{Start: 1000, Buffers: buf()})
	b.Push(Entry{Start: 2000, Buffers: buf()})

	active := b.Active(2500)
	if len(active) != 1 {
		t.Fatalf("got %d active buffers, want 1 (only the newest entry)", len(active))
	}
}

func TestPGSDropsLeadingClearEntries(t *testing.T) {
	b := NewBitmap(frame.FormatPGS)
	b.Push(Entry{Start: 0, Buffers: nil}) // leading "clear" entry
	b.Push(Entry{Start: 1000, Buffers: buf()})

	active := b.Active(1500)
	if len(active) != 1 {
		t.Fatalf("got %d active, want 1", len(active))
	}
}

func TestPGSNoActiveBeforeFirstStart(t *testing.T) {
	b := NewBitmap(frame.FormatPGS)
	b.Push(Entry{Start: 1000, Buffers: buf()})

	if active := b.Active(500); len(active) != 0 {
		t.Fatalf("got %d active before first entry starts, want 0", len(active))
	}
}

func TestDVBUsesSameSupersessionAsPGS(t *testing.T) {
	b := NewBitmap(frame.FormatDVB)
	b.Push(Entry{Start: 0, Buffers: buf()})
	b.Push(Entry{Start: 1000, Buffers: buf()})

	active := b.Active(1500)
	if len(active) != 1 {
		t.Fatalf("got %d active, want 1", len(active))
	}
}
