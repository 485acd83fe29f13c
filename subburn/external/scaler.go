package external

import (
	"image"
	"math"
	"sync"

	"golang.org/x/image/draw"

	"github.com/ausocean/av/subburn/frame"
)

// lanczos3 is a 3-lobe Lanczos resampling kernel, built directly on
// draw.Kernel's separable-convolution machinery since x/image/draw ships
// only NearestNeighbor/ApproxBiLinear/BiLinear/CatmullRom as predefined
// kernels.
var lanczos3 = draw.Kernel{Support: 3, At: lanczosAt}

func lanczosAt(t float64) float64 {
	if t == 0 {
		return 1
	}
	if t < -3 || t > 3 {
		return 0
	}
	x := math.Pi * t
	return 3 * math.Sin(x) * math.Sin(x/3) / (x * x)
}

// LanczosScaler is the default Scaler: a per-plane Lanczos resample via
// golang.org/x/image/draw, driven one component plane at a time since a
// YUVA overlay frame's planes are independent 8-bit grayscale images
// at two different resolutions (luma/alpha at full size, chroma
// subsampled).
//
// dims remembers the last requested destination size purely to mirror
// the original resampler's "recreate the scaling context only when the
// destination size changes" shape; golang.org/x/image/draw's Kernel is
// itself stateless, so this buys no behavioural difference, only the
// same cheap-no-op-on-repeat call pattern callers of the original relied
// on.
type LanczosScaler struct {
	mu   sync.Mutex
	dims [2]int
}

// NewLanczosScaler returns a ready-to-use LanczosScaler.
func NewLanczosScaler() *LanczosScaler { return &LanczosScaler{} }

// Scale resamples src to dstW x dstH using a 3-lobe Lanczos kernel,
// rounding the dest PixFmt's chroma plane sizes down per its subsampling
// shifts.
func (s *LanczosScaler) Scale(src *frame.Frame, dstW, dstH int) (*frame.Frame, error) {
	s.mu.Lock()
	s.dims = [2]int{dstW, dstH}
	s.mu.Unlock()

	d, ok := src.PixFmt.Descriptor()
	if !ok {
		return nil, errUnknownPixFmt(src.PixFmt)
	}

	out := &frame.Frame{Width: dstW, Height: dstH, PixFmt: src.PixFmt}
	for i := 0; i < d.PlaneCount; i++ {
		pw, ph := dstW, dstH
		if i == 1 || i == 2 {
			pw, ph = dstW>>d.WShift, dstH>>d.HShift
		}
		srcGray := planeToGray(src.Planes[i])
		dstGray := image.NewGray(image.Rect(0, 0, pw, ph))
		lanczos3.Scale(dstGray, dstGray.Bounds(), srcGray, srcGray.Bounds(), draw.Src, nil)
		out.Planes[i] = frame.Plane{Data: dstGray.Pix, Stride: dstGray.Stride, Width: pw, Height: ph}
	}
	return out, nil
}

func planeToGray(p frame.Plane) *image.Gray {
	return &image.Gray{
		Pix:    p.Data,
		Stride: p.Stride,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

type errUnknownPixFmt frame.PixFmt

func (e errUnknownPixFmt) Error() string { return "external: unknown pixel format" }
