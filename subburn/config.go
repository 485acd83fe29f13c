/*
NAME
  config.go

AUTHORS
  Ella Pietraroia <ella@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package subburn implements the subtitle burn-in compositor: a
// dispatcher (§4.F) that composites bitmap or styled-text subtitle
// events into decoded video frames, built from the blend, compose,
// place and track packages.
package subburn

import (
	"time"

	"github.com/ausocean/av/subburn/frame"
)

const (
	defaultEOFFlushDuration = 10 * time.Second
	defaultFontScale        = 1.0
	defaultLineSpacing      = 1.0
)

// Config configures a Filter, in the style of revid/config.Config:
// exported fields with a Logger-backed default-substitution helper for
// anything left unset or invalid.
type Config struct {
	// Logger receives non-fatal diagnostics from the filter itself.
	// Log messages of the external styled-text-renderer collaborator are
	// not routed to it: the TextSession interface has no logging hook.
	Logger Logger

	// ChromaLocation is the destination video's chroma siting, consulted
	// by the composer's subsampling kernel (§4.B).
	ChromaLocation frame.ChromaLocation

	// EOFFlushDuration is the synthesized tail duration applied to a
	// still-open text event at end-of-stream. Defaults to 10s, matching
	// the original (§9 open question).
	EOFFlushDuration time.Duration

	// NoDeepSwapWorkaround disables the byte-swap the deep semi-planar
	// blend variant applies to source samples in place of shifting them
	// to the destination bit depth. Defaults to false: the original's
	// behaviour (§9 open question).
	NoDeepSwapWorkaround bool

	// ForcedOnly burns only PGS entries flagged Buffer.Forced
	// (§4 supplement 2). Has no effect on VOBSUB/DVB tracks.
	ForcedOnly bool

	// PlainStyle forwards to the text session's SetPlainStyle option,
	// disabling style/markup interpretation (§4 supplement 3).
	PlainStyle bool

	// FontScale and LineSpacing are forwarded to the text session
	// unchanged; both default to 1.0.
	FontScale   float64
	LineSpacing float64
}

// Logger is the subset of github.com/ausocean/utils/logging.Logger this
// package depends on, declared locally so callers can supply any
// compatible logger without importing the ausocean logging package
// directly if they don't need to.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
	SetLevel(level int8)
	Log(level int8, msg string, args ...interface{})
}

func (c *Config) setDefaults() {
	if c.EOFFlushDuration <= 0 {
		c.LogInvalidField("EOFFlushDuration", defaultEOFFlushDuration)
		c.EOFFlushDuration = defaultEOFFlushDuration
	}
	if c.FontScale <= 0 {
		c.LogInvalidField("FontScale", defaultFontScale)
		c.FontScale = defaultFontScale
	}
	if c.LineSpacing <= 0 {
		c.LogInvalidField("LineSpacing", defaultLineSpacing)
		c.LineSpacing = defaultLineSpacing
	}
}

// LogInvalidField logs a defaulted configuration field, matching
// revid/config.Config.LogInvalidField.
func (c *Config) LogInvalidField(name string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
