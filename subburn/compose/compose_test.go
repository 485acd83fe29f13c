package compose

import (
	"testing"

	"github.com/ausocean/av/subburn/external"
	"github.com/ausocean/av/subburn/frame"
)

func TestComposeSingleOpaqueFragment(t *testing.T) {
	frag := external.Fragment{
		W: 2, H: 2, Stride: 2,
		DstX: 0, DstY: 0,
		Bitmap: []byte{255, 255, 255, 255},
		Color:  0xffffff00, // opaque white
	}
	coeffs := DeriveCoeffs(frame.ChromaCenter, 1, 1)
	out := Compose([]external.Fragment{frag}, 0, 0, 2, 2, 1, 1, coeffs, frame.PixFmtYUVA420P)

	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", out.Width, out.Height)
	}
	for i, v := range out.Planes[0].Data {
		if v != 255 {
			t.Errorf("luma[%d] = %d, want 255", i, v)
		}
	}
	for i, v := range out.Planes[3].Data {
		if v != 255 {
			t.Errorf("alpha[%d] = %d, want 255", i, v)
		}
	}
	if len(out.Planes[1].Data) != 1 || len(out.Planes[2].Data) != 1 {
		t.Fatalf("expected single-pixel chroma planes, got u=%d v=%d", len(out.Planes[1].Data), len(out.Planes[2].Data))
	}
	if out.Planes[1].Data[0] < 120 || out.Planes[1].Data[0] > 136 {
		t.Errorf("u = %d, want approx 128", out.Planes[1].Data[0])
	}
}

func TestComposeEmptyFragmentSkipped(t *testing.T) {
	frag := external.Fragment{W: 0, H: 0}
	coeffs := DeriveCoeffs(frame.ChromaCenter, 1, 1)
	out := Compose([]external.Fragment{frag}, 0, 0, 4, 4, 1, 1, coeffs, frame.PixFmtYUVA420P)
	for i, v := range out.Planes[3].Data {
		if v != 0 {
			t.Fatalf("alpha[%d] = %d, want 0 (no fragment drawn)", i, v)
		}
	}
}

func TestComposeTransparentGlyphLeavesNoTrace(t *testing.T) {
	frag := external.Fragment{
		W: 1, H: 1, Stride: 1,
		DstX: 0, DstY: 0,
		Bitmap: []byte{255},
		Color:  0x000000ff, // fully transparent
	}
	coeffs := DeriveCoeffs(frame.ChromaCenter, 0, 0)
	out := Compose([]external.Fragment{frag}, 0, 0, 1, 1, 0, 0, coeffs, frame.PixFmtYUVA444P)
	if out.Planes[3].Data[0] != 0 {
		t.Errorf("alpha = %d, want 0 for fully transparent fragment", out.Planes[3].Data[0])
	}
}

func TestComposeOverlappingFragmentsBlend(t *testing.T) {
	bottom := external.Fragment{W: 2, H: 1, Stride: 2, Bitmap: []byte{255, 255}, Color: 0xff000000}
	top := external.Fragment{W: 1, H: 1, Stride: 1, DstX: 0, DstY: 0, Bitmap: []byte{128}, Color: 0x0000ff00}
	coeffs := DeriveCoeffs(frame.ChromaCenter, 0, 0)
	out := Compose([]external.Fragment{bottom, top}, 0, 0, 2, 1, 0, 0, coeffs, frame.PixFmtYUVA444P)

	if out.Planes[3].Data[0] == 0 {
		t.Error("expected non-zero accumulated alpha where fragments overlap")
	}
	if out.Planes[3].Data[1] == 0 {
		t.Error("expected non-zero alpha under the bottom-only fragment")
	}
}
