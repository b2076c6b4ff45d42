/*
NAME
  dispatch.go maps a resolved format tag to a concrete decoder.Decoder.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package header

import (
	"fmt"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/evtraw/decoder"
)

// UnknownFormatError is returned when the format tag isn't recognized
// at all.
type UnknownFormatError struct{ Tag string }

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("header: unknown format tag %q", e.Tag)
}

// UnsupportedFormatError is returned when the format tag is recognized
// but no decoder is implemented for it (currently EVT4).
type UnsupportedFormatError struct{ Tag string }

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("header: unsupported format tag %q", e.Tag)
}

// Dispatch resolves tag (already semicolon-stripped by Parse, or any
// bare tag a caller constructs directly) to a ready decoder.Decoder.
// The mapping from tag string to format family is part of the
// external wire contract and must not change:
//
//	"2.0", "EVT2"   -> EVT2
//	"2.1", "EVT21"  -> EVT2.1
//	"3.0", "EVT3"   -> EVT3
//	"4.0", "EVT4"   -> EVT4 (recognized, unimplemented)
func Dispatch(tag string, log logging.Logger) (decoder.Decoder, error) {
	switch tag {
	case "2.0", "EVT2":
		return decoder.NewEvt2(log), nil
	case "2.1", "EVT21":
		return decoder.NewEvt21(log), nil
	case "3.0", "EVT3":
		return decoder.NewEvt3(log), nil
	case "4.0", "EVT4":
		return nil, &UnsupportedFormatError{Tag: tag}
	default:
		return nil, &UnknownFormatError{Tag: tag}
	}
}
