/*
NAME
  tracelog.go wires an optional rotating file sink for decode
  diagnostics, in the same lumberjack-backed logging.New setup
  cmd/rv uses for its own file logging.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package rawfile

import (
	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/evtraw/stream"
)

// TraceLogConfig configures the rotating trace log file NewWithTraceLog
// attaches to a Reader's decoder and stream diagnostics.
type TraceLogConfig struct {
	// Filename is the trace log's path.
	Filename string
	// MaxSizeMB is the size in megabytes a log file is allowed to reach
	// before it gets rotated.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int
	// MaxAgeDays is the number of days to retain rotated files.
	MaxAgeDays int
}

// NewWithTraceLog opens path like Open, but routes decoder and reader
// diagnostics to a rotating file sink instead of the silent default.
// This is for diagnosing a misbehaving vendor stream after the fact,
// not for routine use: every dropped word and time-base wrap is logged
// at debug level.
func NewWithTraceLog(path string, trace TraceLogConfig, opts ...stream.Option) (*Reader, error) {
	fileLog := &lumberjack.Logger{
		Filename:   trace.Filename,
		MaxSize:    trace.MaxSizeMB,
		MaxBackups: trace.MaxBackups,
		MaxAge:     trace.MaxAgeDays,
	}
	log := logging.New(logging.Debug, fileLog, false)
	return Open(path, append(opts, stream.WithLogger(log))...)
}
