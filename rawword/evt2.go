/*
NAME
  evt2.go defines the EVT2 raw word layout: a 32-bit little-endian word
  whose top nibble discriminates CD, time-high and trigger events.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package rawword

import "github.com/ausocean/evtraw/bits"

// Evt2Word is a single 32-bit EVT2 word, discriminant in bits 31..28.
type Evt2Word uint32

// EVT2 type codes (bits 31..28).
const (
	Evt2CDOff      Evt2Word = 0x0
	Evt2CDOn       Evt2Word = 0x1
	Evt2TimeHigh   Evt2Word = 0x8
	Evt2ExtTrigger Evt2Word = 0xA
)

// NumBitsInTimestampLSB is the width of the low timestamp field carried
// by CD words; the high field shifts left by this amount to align.
const NumBitsInTimestampLSB = 6

// Type returns the 4-bit discriminant in bits 31..28.
func (w Evt2Word) Type() Evt2Word { return bits.Extract[Evt2Word](uint32(w), 28, 31) }

// TimeLow returns bits 27..22 of a CD word.
func (w Evt2Word) TimeLow() uint32 { return bits.Extract[uint32](uint32(w), 22, 27) }

// X returns bits 21..11 of a CD word.
func (w Evt2Word) X() uint16 { return bits.Extract[uint16](uint32(w), 11, 21) }

// Y returns bits 10..0 of a CD word.
func (w Evt2Word) Y() uint16 { return bits.Extract[uint16](uint32(w), 0, 10) }

// TimeHigh returns bits 27..0 of an EVT_TIME_HIGH word.
func (w Evt2Word) TimeHigh() uint32 { return bits.Extract[uint32](uint32(w), 0, 27) }

// TriggerID returns bits 12..8 of an EXT_TRIGGER word.
func (w Evt2Word) TriggerID() uint8 { return bits.Extract[uint8](uint32(w), 8, 12) }

// TriggerPolarity returns bits 1..0 of an EXT_TRIGGER word.
func (w Evt2Word) TriggerPolarity() uint8 { return bits.Extract[uint8](uint32(w), 0, 1) }
