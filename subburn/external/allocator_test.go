package external

import (
	"testing"

	"github.com/ausocean/av/subburn/frame"
)

func TestPooledAllocatorAlloc(t *testing.T) {
	a := NewPooledAllocator()
	f, err := a.Alloc(frame.PixFmtYUV420P, 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 16 || f.Height != 8 {
		t.Fatalf("got %dx%d, want 16x8", f.Width, f.Height)
	}
	if len(f.Planes[0].Data) != 16*8 {
		t.Errorf("luma plane len = %d, want %d", len(f.Planes[0].Data), 16*8)
	}
	if len(f.Planes[1].Data) != 8*4 {
		t.Errorf("chroma plane len = %d, want %d", len(f.Planes[1].Data), 8*4)
	}
	if !f.Writable() {
		t.Error("expected allocated frame to be writable")
	}

	f.Planes[0].Data[0] = 42
	a.Release(f)

	f2, err := a.Alloc(frame.PixFmtYUV420P, 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if f2.Planes[0].Data[0] != 0 {
		t.Error("expected reused buffer to be zeroed")
	}
}

func TestPooledAllocatorUnknownFormat(t *testing.T) {
	a := NewPooledAllocator()
	if _, err := a.Alloc(frame.PixFmtNone, 1, 1); err == nil {
		t.Error("expected error for unknown pixel format")
	}
}
