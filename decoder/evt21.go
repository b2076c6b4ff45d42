/*
NAME
  evt21.go implements the EVT2.1 state machine: 64-bit words, a single
  time-base field, and valid-mask fan-out for CD events.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package decoder

import (
	"github.com/ausocean/utils/logging"

	"github.com/ausocean/evtraw/bits"
	"github.com/ausocean/evtraw/event"
	"github.com/ausocean/evtraw/internal/ringqueue"
	"github.com/ausocean/evtraw/rawword"
)

// Evt21 decodes the EVT2.1 vendor format. The zero value is ready to
// use.
type Evt21 struct {
	timeBase uint64
	haveBase bool

	log logging.Logger
}

// NewEvt21 returns a ready Evt21 decoder. log may be nil.
func NewEvt21(log logging.Logger) *Evt21 {
	return &Evt21{log: defaultLogger(log)}
}

// WordSize implements Decoder.
func (d *Evt21) WordSize() int { return rawword.SizeEvt21 }

// ResetState implements decoder.Resetter.
func (d *Evt21) ResetState() {
	d.timeBase = 0
	d.haveBase = false
}

// Decode implements Decoder.
func (d *Evt21) Decode(buf []byte, q *ringqueue.Queue) {
	if d.log == nil {
		d.log = noopLogger{}
	}
	words := rawword.AppendEvt21(nil, buf)
	for _, w := range words {
		d.decodeWord(w, q)
	}
}

func (d *Evt21) decodeWord(w rawword.Evt21Word, q *ringqueue.Queue) {
	switch w.Type() {
	case rawword.Evt21TimeHigh:
		d.timeBase = uint64(w.TimeHigh()) << rawword.NumBitsInTimestampLSB
		d.haveBase = true

	case rawword.Evt21Pos, rawword.Evt21Neg:
		if !d.haveBase {
			d.log.Debug("evt21: dropping CD vector before first time-high")
			return
		}
		t := d.timeBase | uint64(w.Time())
		p := uint8(w.Type() & 1)
		x, y := w.X(), w.Y()
		mask := w.ValidMask()
		for mask != 0 {
			k := bits.TrailingZeros32(mask)
			q.Push(event.CD(x+uint16(k), y, p, t))
			mask &= mask - 1
		}

	case rawword.Evt21ExtTrigger:
		if !d.haveBase {
			d.log.Debug("evt21: dropping trigger before first time-high")
			return
		}
		t := d.timeBase | uint64(w.Time())
		q.Push(event.ExternalTrigger(w.TriggerID(), w.TriggerPolarity(), t))

	default:
		d.log.Debug("evt21: unknown discriminant", "type", uint64(w.Type()))
		q.Push(event.Unknown())
	}
}
