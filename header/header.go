/*
NAME
  header.go scans the ASCII header lines preceding a RAW event stream
  and resolves the format tag the core decoder dispatch keys off.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

// Package header parses the textual header that precedes a vendor RAW
// event stream and dispatches to the matching decoder.Decoder.
package header

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
)

// Errors surfaced while reading or parsing a header. ErrHeaderRead is
// the Cause of any wrapped I/O failure while scanning header lines, so
// callers that need to discriminate it from other errors should
// compare against errors.Cause(err), not err itself.
var (
	ErrHeaderRead     = errors.New("header: failed to read header line")
	ErrFormatNotFound = errors.New("header: no evt or format key present")
)

// Header holds the parsed header key/value pairs and the resolved
// format tag.
type Header struct {
	Fields map[string]string
	Tag    string // resolved, semicolon-segment-stripped format tag
}

// Parse reads header lines from r — every line beginning with '%' —
// until the first byte that isn't '%', leaving r positioned at the
// start of the binary event words. Keys recognized by the core are
// "evt" and "format"; "format" takes precedence when both are
// present, and a ";"-decorated value ("EVT21;endianness=little;...")
// is split on ";" with the leading segment used as the tag.
func Parse(r *bufio.Reader) (Header, error) {
	fields := make(map[string]string)
	var evtTag, formatTag string
	var haveEvt, haveFormat bool

	for {
		b, err := r.Peek(1)
		if err != nil {
			return Header{}, errors.Wrap(ErrHeaderRead, err.Error())
		}
		if b[0] != '%' {
			break
		}

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return Header{}, errors.Wrap(ErrHeaderRead, err.Error())
		}

		trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "%"))
		if trimmed == "" {
			continue
		}
		parts := strings.SplitN(trimmed, " ", 2)
		key := parts[0]
		if len(parts) != 2 {
			continue
		}
		value := strings.TrimSpace(parts[1])

		switch key {
		case "evt":
			evtTag, haveEvt = value, true
		case "format":
			formatTag, haveFormat = value, true
		}
		fields[key] = value
	}

	var raw string
	switch {
	case haveFormat:
		raw = formatTag
	case haveEvt:
		raw = evtTag
	default:
		return Header{}, ErrFormatNotFound
	}

	tag := raw
	if idx := strings.IndexByte(raw, ';'); idx >= 0 {
		tag = raw[:idx]
	}

	return Header{Fields: fields, Tag: tag}, nil
}
