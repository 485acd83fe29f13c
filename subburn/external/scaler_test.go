package external

import (
	"testing"

	"github.com/ausocean/av/subburn/frame"
)

func TestLanczosScalerScale(t *testing.T) {
	src := &frame.Frame{Width: 8, Height: 8, PixFmt: frame.PixFmtYUVA420P}
	src.Planes[0] = frame.Plane{Data: make([]byte, 8*8), Stride: 8, Width: 8, Height: 8}
	src.Planes[1] = frame.Plane{Data: make([]byte, 4*4), Stride: 4, Width: 4, Height: 4}
	src.Planes[2] = frame.Plane{Data: make([]byte, 4*4), Stride: 4, Width: 4, Height: 4}
	src.Planes[3] = frame.Plane{Data: make([]byte, 8*8), Stride: 8, Width: 8, Height: 8}
	for i := range src.Planes[0].Data {
		src.Planes[0].Data[i] = 200
	}

	s := NewLanczosScaler()
	dst, err := s.Scale(src, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Width != 16 || dst.Height != 16 {
		t.Fatalf("got %dx%d, want 16x16", dst.Width, dst.Height)
	}
	if len(dst.Planes[0].Data) != 16*16 {
		t.Errorf("luma plane len = %d, want %d", len(dst.Planes[0].Data), 16*16)
	}
	if len(dst.Planes[1].Data) != 8*8 {
		t.Errorf("chroma plane len = %d, want %d", len(dst.Planes[1].Data), 8*8)
	}
}
