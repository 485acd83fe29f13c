package filter

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/ausocean/av/subburn"
	"github.com/ausocean/av/subburn/external"
	"github.com/ausocean/av/subburn/frame"
	"github.com/ausocean/av/subburn/track"
)

func solidJPEG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding test jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestSubburnFilterBurnsBitmapIntoMJPEGStream(t *testing.T) {
	const w, h = 200, 160

	sf := subburn.New(frame.FormatPGS, subburn.Config{})
	if err := sf.Init(frame.PixFmtYUV444P, w, h, frame.CropRect{}); err != nil {
		t.Fatal(err)
	}
	alloc := external.NewPooledAllocator()
	if err := sf.PostInit(w, h, nil, alloc, nil); err != nil {
		t.Fatal(err)
	}

	// Declares a reference window matching the video (no rescale) and
	// sits well inside the safe margins, so §4.C leaves it at (40, 40)
	// unchanged (invariant 6).
	overlay := &frame.Frame{Width: 4, Height: 4, PixFmt: frame.PixFmtYUVA444P, X: 40, Y: 40, WindowWidth: w, WindowHeight: h}
	overlay.Planes[0] = frame.Plane{Data: bytes.Repeat([]byte{235}, 16), Stride: 4, Width: 4, Height: 4}
	overlay.Planes[1] = frame.Plane{Data: bytes.Repeat([]byte{128}, 16), Stride: 4, Width: 4, Height: 4}
	overlay.Planes[2] = frame.Plane{Data: bytes.Repeat([]byte{128}, 16), Stride: 4, Width: 4, Height: 4}
	overlay.Planes[3] = frame.Plane{Data: bytes.Repeat([]byte{255}, 16), Stride: 4, Width: 4, Height: 4}
	if err := sf.PushBitmap(track.Entry{Start: 0, Stop: 100000, Buffers: []track.Buffer{{Overlay: overlay}}}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	nf := NewSubburn(&nopWriteCloser{&out}, sf, 25)

	src := solidJPEG(t, w, h, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	if _, err := nf.Write(src); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := nf.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	img, err := jpeg.Decode(&out)
	if err != nil {
		t.Fatalf("decoding burned-in output: %v", err)
	}
	r, g, b, _ := img.At(41, 41).RGBA()
	if r>>8 < 150 || g>>8 < 150 || b>>8 < 150 {
		t.Errorf("expected a bright overlay pixel at (41,41), got rgb=(%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	corner, _, _, _ := img.At(w-1, h-1).RGBA()
	if corner>>8 > 60 {
		t.Errorf("expected the source's dark background outside the overlay to survive, got %d", corner>>8)
	}
}

type nopWriteCloser struct{ w *bytes.Buffer }

func (n *nopWriteCloser) Write(p []byte) (int, error) { return n.w.Write(p) }
func (n *nopWriteCloser) Close() error                 { return nil }
