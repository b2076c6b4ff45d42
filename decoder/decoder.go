/*
NAME
  decoder.go defines the common Decoder interface implemented by each
  vendor format's state machine, and a no-op logger used when callers
  don't supply one.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

// Package decoder implements the per-format event-camera RAW decoder
// state machines (EVT2, EVT2.1, EVT3). Each Decoder owns its own small
// piece of cross-word state and is not safe for concurrent use.
package decoder

import (
	"github.com/ausocean/utils/logging"

	"github.com/ausocean/evtraw/internal/ringqueue"
)

// Decoder converts a buffer of whole raw words for one vendor format
// into logical events, appended to q in the order the bytes dictate.
type Decoder interface {
	// WordSize is the fixed byte width of this format's raw word.
	WordSize() int
	// Decode consumes buf, whose length must be a multiple of
	// WordSize, and appends the resulting events to q.
	Decode(buf []byte, q *ringqueue.Queue)
}

// Resetter is implemented by decoders whose cross-word state can be
// cleared back to its zero value in place. This is equivalent to
// reconstructing the decoder and lets Reader.Reset avoid knowing each
// concrete decoder's constructor.
type Resetter interface {
	ResetState()
}

// noopLogger discards everything; used when a decoder or reader is
// constructed without an explicit logging.Logger.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{})   {}
func (noopLogger) Info(string, ...interface{})    {}
func (noopLogger) Warning(string, ...interface{}) {}
func (noopLogger) Error(string, ...interface{})   {}
func (noopLogger) Fatal(string, ...interface{})   {}

var _ logging.Logger = noopLogger{}

// defaultLogger returns l if non-nil, otherwise a no-op logger.
func defaultLogger(l logging.Logger) logging.Logger {
	if l == nil {
		return noopLogger{}
	}
	return l
}
