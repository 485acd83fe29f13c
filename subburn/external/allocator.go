package external

import (
	"sync"

	"github.com/ausocean/av/subburn/frame"
)

// PooledAllocator is the default FrameAllocator: a sync.Pool keyed by
// (PixFmt, width, height), cutting allocator churn for the common case of
// repeatedly allocating same-sized overlay/scratch frames frame after
// frame. No third-party object-pool library in the pack matches this
// shape (ausocean/utils/pool is a byte ring buffer for streaming I/O
// backpressure, not an object pool), so this is a deliberate, narrow use
// of the standard library.
type PooledAllocator struct {
	mu    sync.Mutex
	pools map[poolKey]*sync.Pool
}

type poolKey struct {
	pf   frame.PixFmt
	w, h int
}

// NewPooledAllocator returns a ready-to-use PooledAllocator.
func NewPooledAllocator() *PooledAllocator {
	return &PooledAllocator{pools: make(map[poolKey]*sync.Pool)}
}

// Alloc returns a zeroed w x h Frame of format pf, reusing a previously
// released buffer of the same key when one is available.
func (a *PooledAllocator) Alloc(pf frame.PixFmt, w, h int) (*frame.Frame, error) {
	d, ok := pf.Descriptor()
	if !ok {
		return nil, errUnknownPixFmt(pf)
	}

	key := poolKey{pf, w, h}
	a.mu.Lock()
	pool, ok := a.pools[key]
	if !ok {
		pool = &sync.Pool{New: func() interface{} { return newFrame(pf, d, w, h) }}
		a.pools[key] = pool
	}
	a.mu.Unlock()

	f := pool.Get().(*frame.Frame)
	for i := 0; i < d.PlaneCount; i++ {
		for j := range f.Planes[i].Data {
			f.Planes[i].Data[j] = 0
		}
	}
	f.PTS, f.Stop, f.Flags = 0, 0, frame.FlagWritable
	return f, nil
}

// Release returns f to its pool for reuse by a future Alloc call with the
// same format and dimensions.
func (a *PooledAllocator) Release(f *frame.Frame) {
	d, ok := f.PixFmt.Descriptor()
	if !ok {
		return
	}
	key := poolKey{f.PixFmt, f.Width, f.Height}
	a.mu.Lock()
	pool, ok := a.pools[key]
	a.mu.Unlock()
	if !ok {
		return
	}
	_ = d
	pool.Put(f)
}

func newFrame(pf frame.PixFmt, d frame.Desc, w, h int) *frame.Frame {
	bytesPerSample := 1
	if d.Depth > 8 {
		bytesPerSample = 2
	}

	f := &frame.Frame{Width: w, Height: h, PixFmt: pf}
	for i := 0; i < d.PlaneCount; i++ {
		pw, ph := w, h
		if i == 1 || i == 2 {
			pw = w >> d.WShift
			ph = h >> d.HShift
		}
		stride := pw * bytesPerSample
		if d.PlaneCount == 2 && i == 1 {
			stride = pw * 2 * bytesPerSample // semi-planar: pw interleaved U/V pairs
		}
		f.Planes[i] = frame.Plane{Data: make([]byte, stride*ph), Stride: stride, Width: pw, Height: ph}
	}
	return f
}
