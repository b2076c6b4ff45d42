/*
NAME
  config.go collects the Reader's tunables, in the plain-struct,
  functional-option style used by revid/config.Config.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package stream

import (
	"github.com/ausocean/utils/logging"

	"github.com/ausocean/evtraw/internal/ringqueue"
)

// Config holds the tunables for a Reader.
type Config struct {
	// BufferSize is the byte size of the aligned chunk buffer. It need
	// not be a multiple of the word size; any remainder carries over
	// to the next fill. 0 selects a default sized from the host page
	// size.
	BufferSize int

	// QueueCapacity bounds the decoder's event queue. 0 selects
	// ringqueue.DefaultCapacity.
	QueueCapacity int

	// Log receives decoder and reader diagnostics. nil is a no-op.
	Log logging.Logger
}

// NewConfig returns a Config with defaults applied, mirroring the
// zero-value-then-override convention revid/config.Config uses.
func NewConfig() Config {
	return Config{
		BufferSize:    defaultBufferSize(),
		QueueCapacity: ringqueue.DefaultCapacity,
	}
}

func defaultBufferSize() int {
	// A handful of pages keeps syscall overhead low without holding an
	// unreasonable amount of unread stream in memory.
	const pages = 8
	return pageSize() * pages
}

// Option configures a Reader at construction.
type Option func(*Config)

// WithBufferSize overrides the chunk buffer size.
func WithBufferSize(n int) Option {
	return func(c *Config) { c.BufferSize = n }
}

// WithQueueCapacity overrides the bounded event queue's capacity.
func WithQueueCapacity(n int) Option {
	return func(c *Config) { c.QueueCapacity = n }
}

// WithLogger attaches a logger to the Reader. rawfile.Open also hands
// it to the decoder it constructs; a decoder passed to NewReader keeps
// the logger it was built with.
func WithLogger(log logging.Logger) Option {
	return func(c *Config) { c.Log = log }
}
