/*
NAME
  rawfile.go is the top-level entry point: open a RAW event file,
  parse its header, dispatch to the right decoder, and expose the
  resulting logical-event sequence.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

// Package rawfile ties header parsing, format dispatch and the framed
// stream reader together behind the library's public surface: Open,
// Reader.Events and Reader.Reset.
package rawfile

import (
	"bufio"
	"iter"
	"os"

	"github.com/pkg/errors"

	"github.com/ausocean/evtraw/event"
	"github.com/ausocean/evtraw/header"
	"github.com/ausocean/evtraw/stream"
)

// Reader is a RAW event file opened for decoding. It is not safe for
// concurrent use.
type Reader struct {
	path   string
	file   *os.File
	header header.Header
	stream *stream.Reader
	opts   []stream.Option
}

// Open opens path, parses its header and constructs the matching
// decoder. The returned Reader owns the file and must be Closed.
func Open(path string, opts ...stream.Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}

	r, err := newReader(path, f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func newReader(path string, f *os.File, opts []stream.Option) (*Reader, error) {
	br := bufio.NewReader(f)
	h, err := header.Parse(br)
	if err != nil {
		switch {
		case err == header.ErrFormatNotFound:
			return nil, &FormatNotFoundError{}
		case errors.Cause(err) == header.ErrHeaderRead:
			return nil, &HeaderReadError{Err: err}
		default:
			return nil, &HeaderParseError{Err: err}
		}
	}

	cfg := stream.NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dec, err := header.Dispatch(h.Tag, cfg.Log)
	if err != nil {
		switch e := err.(type) {
		case *header.UnsupportedFormatError:
			return nil, &UnsupportedFormatError{Tag: e.Tag}
		default:
			return nil, &UnknownFormatError{Tag: h.Tag}
		}
	}

	return &Reader{
		path:   path,
		file:   f,
		header: h,
		stream: stream.NewReader(br, dec, opts...),
		opts:   opts,
	}, nil
}

// Header returns the parsed header fields and resolved format tag.
func (r *Reader) Header() header.Header { return r.header }

// Events returns a lazy, single-pass, forward-only sequence of the
// file's decoded events.
func (r *Reader) Events() iter.Seq[event.Event] { return r.stream.Events() }

// Next returns the next decoded event directly, for callers that don't
// want range-over-func.
func (r *Reader) Next() (event.Event, bool) { return r.stream.Next() }

// Err returns the first non-EOF read error encountered, if any.
func (r *Reader) Err() error { return r.stream.Err() }

// Reset reopens the file from the start and re-parses its header,
// since the decoded sequence is forward-only and not restartable
// in place. This is required rather than a bare seek-and-rewind
// because the format dispatch and decoder state both need to be
// rebuilt from the header onward.
func (r *Reader) Reset() error {
	nr, err := Open(r.path, r.opts...)
	if err != nil {
		return err
	}
	r.file.Close()
	*r = *nr
	return nil
}

// Close releases the underlying file.
func (r *Reader) Close() error { return r.file.Close() }
