/*
NAME
  evt3.go defines the EVT3 raw word layout: a 16-bit little-endian word
  whose top nibble discriminates address, vector, time and trigger
  events.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package rawword

import "github.com/ausocean/evtraw/bits"

// Evt3Word is a single 16-bit EVT3 word, discriminant in bits 15..12.
type Evt3Word uint16

// EVT3 type codes (bits 15..12).
const (
	Evt3AddrY      Evt3Word = 0x0
	Evt3AddrX      Evt3Word = 0x2
	Evt3VectBaseX  Evt3Word = 0x3
	Evt3Vect12     Evt3Word = 0x4
	Evt3Vect8      Evt3Word = 0x5
	Evt3TimeLow    Evt3Word = 0x6
	Evt3TimeHigh   Evt3Word = 0x8
	Evt3ExtTrigger Evt3Word = 0xA
)

// Type returns the 4-bit discriminant in bits 15..12.
func (w Evt3Word) Type() Evt3Word { return bits.Extract[Evt3Word](uint16(w), 12, 15) }

// Y returns bits 10..0 of an EVT_ADDR_Y word.
func (w Evt3Word) Y() uint16 { return bits.Extract[uint16](uint16(w), 0, 10) }

// X returns bits 10..0 of an EVT_ADDR_X / VECT_BASE_X word.
func (w Evt3Word) X() uint16 { return bits.Extract[uint16](uint16(w), 0, 10) }

// Pol returns bit 11 of an EVT_ADDR_X / VECT_BASE_X word.
func (w Evt3Word) Pol() uint8 {
	if bits.Bit(uint16(w), 11) {
		return 1
	}
	return 0
}

// Valid12 returns bits 11..0, the 12-bit fan-out mask of a VECT_12 word.
func (w Evt3Word) Valid12() uint16 { return bits.Extract[uint16](uint16(w), 0, 11) }

// Valid8 returns bits 7..0, the 8-bit fan-out mask of a VECT_8 word.
func (w Evt3Word) Valid8() uint16 { return bits.Extract[uint16](uint16(w), 0, 7) }

// Time returns bits 11..0 of an EVT_TIME_LOW / EVT_TIME_HIGH word.
func (w Evt3Word) Time() uint16 { return bits.Extract[uint16](uint16(w), 0, 11) }

// TriggerID returns bits 11..8 of an EXT_TRIGGER word.
func (w Evt3Word) TriggerID() uint8 { return bits.Extract[uint8](uint16(w), 8, 11) }

// TriggerPolarity returns bit 0 of an EXT_TRIGGER word.
func (w Evt3Word) TriggerPolarity() uint8 { return bits.Extract[uint8](uint16(w), 0, 0) }
