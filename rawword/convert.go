/*
NAME
  convert.go reinterprets a byte buffer as a slice of fixed-width raw
  words.

DESCRIPTION
  The design favours an unsafe zero-copy cast on platforms where
  alignment is guaranteed, but a plain byte-buffer is not always
  suitably aligned for wider integer types, and the portable
  little-endian decode here costs nothing next to the per-word decode
  logic that follows it. Each Append* call copies one word into a
  register-sized local, matching the documented fallback for platforms
  where a bare reinterpret-cast would be undefined.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package rawword

import "encoding/binary"

// SizeEvt2 is the width in bytes of one EVT2 word.
const SizeEvt2 = 4

// SizeEvt21 is the width in bytes of one EVT2.1 word.
const SizeEvt21 = 8

// SizeEvt3 is the width in bytes of one EVT3 word.
const SizeEvt3 = 2

// AppendEvt2 decodes the little-endian words in buf and appends them to
// dst. A trailing partial word (len(buf) not a multiple of SizeEvt2) is
// ignored.
func AppendEvt2(dst []Evt2Word, buf []byte) []Evt2Word {
	for i := 0; i+SizeEvt2 <= len(buf); i += SizeEvt2 {
		dst = append(dst, Evt2Word(binary.LittleEndian.Uint32(buf[i:])))
	}
	return dst
}

// AppendEvt21 decodes the little-endian words in buf and appends them
// to dst. A trailing partial word (len(buf) not a multiple of
// SizeEvt21) is ignored.
func AppendEvt21(dst []Evt21Word, buf []byte) []Evt21Word {
	for i := 0; i+SizeEvt21 <= len(buf); i += SizeEvt21 {
		dst = append(dst, Evt21Word(binary.LittleEndian.Uint64(buf[i:])))
	}
	return dst
}

// AppendEvt3 decodes the little-endian words in buf and appends them to
// dst. A trailing partial word (len(buf) not a multiple of SizeEvt3) is
// ignored.
func AppendEvt3(dst []Evt3Word, buf []byte) []Evt3Word {
	for i := 0; i+SizeEvt3 <= len(buf); i += SizeEvt3 {
		dst = append(dst, Evt3Word(binary.LittleEndian.Uint16(buf[i:])))
	}
	return dst
}
