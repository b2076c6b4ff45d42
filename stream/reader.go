/*
NAME
  reader.go is the framed adapter that pulls bytes from an arbitrary
  io.Reader into an aligned buffer, hands whole raw words to a format
  decoder and yields the resulting logical events lazily.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

// Package stream provides the framed byte-stream adapter that drives a
// decoder.Decoder over an io.Reader and exposes the decoded events as
// a lazy, forward-only sequence.
package stream

import (
	"io"
	"iter"

	"github.com/pkg/errors"

	"github.com/ausocean/evtraw/decoder"
	"github.com/ausocean/evtraw/event"
	"github.com/ausocean/evtraw/internal/ringqueue"
)

// ErrNotSeekable is returned by Reset when the underlying source isn't
// an io.Seeker.
var ErrNotSeekable = errors.New("stream: source does not support reset")

// Reader adapts a byte-oriented io.Reader into a sequence of decoded
// events for one vendor format. It is not safe for concurrent use: a
// single Reader is a single-threaded, pull-driven producer, matching
// the decoder it drives.
type Reader struct {
	src io.Reader
	dec decoder.Decoder

	buf []byte
	n   int // bytes currently held in buf[:n]

	queue *ringqueue.Queue
	eof   bool
	err   error

	cfg Config
}

// NewReader returns a Reader that decodes src with dec.
func NewReader(src io.Reader, dec decoder.Decoder, opts ...Option) *Reader {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bufSize := cfg.BufferSize
	if bufSize <= 0 {
		bufSize = defaultBufferSize()
	}
	if ws := dec.WordSize(); bufSize < ws {
		bufSize = ws
	}

	return &Reader{
		src:   src,
		dec:   dec,
		buf:   make([]byte, bufSize),
		queue: ringqueue.New(cfg.QueueCapacity),
		cfg:   cfg,
	}
}

// Next returns the next decoded event, or ok=false once the stream is
// exhausted and no further events remain queued. Once false is
// returned, Next continues to return false.
func (r *Reader) Next() (event.Event, bool) {
	for {
		if e, ok := r.queue.Pop(); ok {
			return e, true
		}
		if r.eof || r.err != nil {
			return event.Event{}, false
		}
		if err := r.cycle(); err != nil {
			r.err = err
			return event.Event{}, false
		}
	}
}

// Events returns a lazy, single-pass, forward-only sequence of the
// Reader's decoded events.
func (r *Reader) Events() iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		for {
			e, ok := r.Next()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Err returns the first non-EOF read error encountered, if any.
func (r *Reader) Err() error { return r.err }

// Close releases the underlying source if it implements io.Closer.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Reset rewinds the underlying source and reinitializes decoder state,
// equivalent to reconstructing the Reader. It requires the source to
// be an io.Seeker and the decoder to implement decoder.Resetter;
// otherwise it returns ErrNotSeekable or leaves decoder state
// untouched and returns an error, respectively.
func (r *Reader) Reset() error {
	seeker, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "stream: seek to start failed")
	}
	rs, ok := r.dec.(decoder.Resetter)
	if !ok {
		return errors.New("stream: decoder does not support reset")
	}
	rs.ResetState()

	r.n = 0
	r.eof = false
	r.err = nil
	for {
		if _, ok := r.queue.Pop(); !ok {
			break
		}
	}
	return nil
}

// cycle fills the buffer as far as possible, decodes every whole word
// currently held, and carries any byte remainder forward.
func (r *Reader) cycle() error {
	if err := r.fill(); err != nil {
		return err
	}

	ws := r.dec.WordSize()
	usable := (r.n / ws) * ws
	if usable == 0 {
		return nil
	}

	r.dec.Decode(r.buf[:usable], r.queue)

	remainder := r.n - usable
	if remainder != 0 && r.cfg.Log != nil {
		r.cfg.Log.Warning("stream: read left a partial word", "bytes", remainder)
	}
	copy(r.buf, r.buf[usable:r.n])
	r.n = remainder
	return nil
}

// fill reads into buf[n:] until the buffer is full, the source is
// exhausted, or a read returns no progress.
func (r *Reader) fill() error {
	for r.n < len(r.buf) {
		m, err := r.src.Read(r.buf[r.n:])
		if m > 0 {
			r.n += m
		}
		if err != nil {
			if err == io.EOF {
				r.eof = true
				return nil
			}
			return errors.Wrap(err, "stream: read failed")
		}
		if m == 0 {
			return nil
		}
	}
	return nil
}
