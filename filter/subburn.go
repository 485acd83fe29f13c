/*
NAME
  subburn.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package filter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"github.com/ausocean/av/subburn"
	"github.com/ausocean/av/subburn/external"
	"github.com/ausocean/av/subburn/frame"
)

// Subburn adapts subburn.Filter, which composites subtitle content into
// decoded planar YUV Frames, to this package's lexed-MJPEG-stream
// convention: each Write decodes one MJPEG frame, converts it to a 4:4:4
// planar Frame, burns in whatever subtitle content is active at that
// frame's position in the stream, and re-encodes the result before
// forwarding it to dst.
//
// f must already have had Init called with frame.PixFmtYUV444P (matching
// the conversion this filter performs), PostInit called, and its
// subtitle events pushed via f.PushBitmap/f.PushText, before the stream
// starts.
type Subburn struct {
	dst        io.WriteCloser
	f          *subburn.Filter
	alloc      external.FrameAllocator
	msPerFrame int64
	frameNum   int64
	quality    int
}

// NewSubburn returns a Subburn filter writing to dst. fps is the stream's
// frame rate, used to derive each frame's presentation time for f's track
// lookups, since MJPEG frames carry no timestamp of their own.
func NewSubburn(dst io.WriteCloser, f *subburn.Filter, fps float64) *Subburn {
	ms := int64(1000 / fps)
	if ms <= 0 {
		ms = 1
	}
	return &Subburn{dst: dst, f: f, alloc: external.NewPooledAllocator(), msPerFrame: ms, quality: jpeg.DefaultQuality}
}

// Close flushes any still-open text event in f's track.
func (s *Subburn) Close() error {
	return s.f.Close()
}

// Write decodes one MJPEG frame, burns in active subtitle content, and
// forwards the re-encoded result to dst.
func (s *Subburn) Write(b []byte) (int, error) {
	img, err := jpeg.Decode(bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("subburn filter: decoding frame: %w", err)
	}

	in := imageToFrame(img, s.frameNum*s.msPerFrame)
	out, err := s.f.Work(in)
	if err != nil {
		return 0, fmt.Errorf("subburn filter: compositing: %w", err)
	}
	s.frameNum++

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frameToImage(out), &jpeg.Options{Quality: s.quality}); err != nil {
		return 0, fmt.Errorf("subburn filter: encoding frame: %w", err)
	}
	return s.dst.Write(buf.Bytes())
}

// imageToFrame converts a decoded image to a writable planar 4:4:4 Frame,
// the destination format this adapter burns subtitles into.
func imageToFrame(img image.Image, pts int64) *frame.Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	f := &frame.Frame{Width: w, Height: h, PixFmt: frame.PixFmtYUV444P, PTS: pts, Flags: frame.FlagWritable}
	f.Planes[0] = frame.Plane{Data: make([]byte, w*h), Stride: w, Width: w, Height: h}
	f.Planes[1] = frame.Plane{Data: make([]byte, w*h), Stride: w, Width: w, Height: h}
	f.Planes[2] = frame.Plane{Data: make([]byte, w*h), Stride: w, Width: w, Height: h}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			rgb := uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(bl>>8)
			yy, uu, vv := external.RGBToYUVBT709(rgb)
			i := y*w + x
			f.Planes[0].Data[i] = yy
			f.Planes[1].Data[i] = uu
			f.Planes[2].Data[i] = vv
		}
	}
	return f
}

// frameToImage converts a planar 4:4:4 Frame back to an image for JPEG
// re-encoding.
func frameToImage(f *frame.Frame) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := y*f.Width + x
			out.Set(x, y, color.YCbCr{
				Y:  f.Planes[0].Data[i],
				Cb: f.Planes[1].Data[i],
				Cr: f.Planes[2].Data[i],
			})
		}
	}
	return out
}
