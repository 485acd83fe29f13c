/*
DESCRIPTION
  subburn-demo exercises the subburn subtitle burn-in filter end to end
  against a synthetic video stream, using the package's default external
  collaborators (a pooled frame allocator, a Lanczos-3 scaler and a basic
  text renderer).

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is a command-line exerciser for the subburn package.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/av/subburn"
	"github.com/ausocean/av/subburn/external"
	"github.com/ausocean/av/subburn/frame"
	"github.com/ausocean/av/subburn/track"
	"github.com/ausocean/utils/logging"
)

// Logging configuration, matching cmd/rv's rotation policy.
const (
	logPath      = "subburn-demo.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 7 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

// Synthetic stream parameters.
const (
	frameWidth  = 320
	frameHeight = 240
	frameCount  = 30
	frameStepMS = 40 // ~25fps
)

func main() {
	text := flag.String("text", "subburn demo", "subtitle text to burn in")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stdout), logSuppress)
	log.Info("starting subburn-demo")

	if err := run(log, *text); err != nil {
		log.Error("subburn-demo failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("subburn-demo finished")
}

func run(log logging.Logger, text string) error {
	f := subburn.New(frame.FormatSRT, subburn.Config{Logger: log})

	if err := f.Init(frame.PixFmtYUV420P, frameWidth, frameHeight, frame.CropRect{}); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	alloc := external.NewPooledAllocator()
	scaler := external.NewLanczosScaler()
	session := external.NewBasicTextRenderer()
	if err := f.PostInit(frameWidth, frameHeight, scaler, alloc, session); err != nil {
		return fmt.Errorf("postInit: %w", err)
	}

	if err := f.PushText(track.TextEvent{Data: []byte(text), Start: 0, Stop: int64(frameCount * frameStepMS)}); err != nil {
		return fmt.Errorf("push text: %w", err)
	}

	for i := 0; i < frameCount; i++ {
		pts := int64(i * frameStepMS)

		dst := syntheticFrame(pts)
		out, err := f.Work(dst)
		if err != nil {
			return fmt.Errorf("work at pts=%d: %w", pts, err)
		}
		log.Debug("rendered frame", "pts", pts, "luma[0]", out.Planes[0].Data[0])
	}

	return f.Close()
}

// syntheticFrame builds a flat grey 4:2:0 frame standing in for a
// decoded video frame.
func syntheticFrame(pts int64) *frame.Frame {
	w, h := frameWidth, frameHeight
	cw, ch := w/2, h/2

	out := &frame.Frame{Width: w, Height: h, PixFmt: frame.PixFmtYUV420P, PTS: pts, Flags: frame.FlagWritable}
	out.Planes[0] = frame.Plane{Data: flat(w*h, 96), Stride: w, Width: w, Height: h}
	out.Planes[1] = frame.Plane{Data: flat(cw*ch, 128), Stride: cw, Width: cw, Height: ch}
	out.Planes[2] = frame.Plane{Data: flat(cw*ch, 128), Stride: cw, Width: cw, Height: ch}
	return out
}

func flat(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
