/*
NAME
  evt21.go defines the EVT2.1 raw word layout: a 64-bit little-endian
  word whose top nibble discriminates pos/neg CD vectors, time-high and
  trigger events.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package rawword

import "github.com/ausocean/evtraw/bits"

// Evt21Word is a single 64-bit EVT2.1 word, discriminant in bits 63..60.
type Evt21Word uint64

// EVT2.1 type codes (bits 63..60).
const (
	Evt21Neg        Evt21Word = 0x0
	Evt21Pos        Evt21Word = 0x1
	Evt21TimeHigh   Evt21Word = 0x8
	Evt21ExtTrigger Evt21Word = 0xA
)

// Type returns the 4-bit discriminant in bits 63..60.
func (w Evt21Word) Type() Evt21Word { return bits.Extract[Evt21Word](uint64(w), 60, 63) }

// Time returns bits 59..54, the low timestamp of a CD or trigger word.
func (w Evt21Word) Time() uint32 { return bits.Extract[uint32](uint64(w), 54, 59) }

// X returns bits 53..43 of an EVT_POS/EVT_NEG word.
func (w Evt21Word) X() uint16 { return bits.Extract[uint16](uint64(w), 43, 53) }

// Y returns bits 42..32 of an EVT_POS/EVT_NEG word.
func (w Evt21Word) Y() uint16 { return bits.Extract[uint16](uint64(w), 32, 42) }

// ValidMask returns bits 31..0, the per-offset fan-out mask of an
// EVT_POS/EVT_NEG word.
func (w Evt21Word) ValidMask() uint32 { return bits.Extract[uint32](uint64(w), 0, 31) }

// TimeHigh returns bits 59..32 of an EVT_TIME_HIGH word.
func (w Evt21Word) TimeHigh() uint32 { return bits.Extract[uint32](uint64(w), 32, 59) }

// TriggerID returns bits 44..40 of an EXT_TRIGGER word.
func (w Evt21Word) TriggerID() uint8 { return bits.Extract[uint8](uint64(w), 40, 44) }

// TriggerPolarity returns bit 32 of an EXT_TRIGGER word.
func (w Evt21Word) TriggerPolarity() uint8 {
	if bits.Bit(uint64(w), 32) {
		return 1
	}
	return 0
}
