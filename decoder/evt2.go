/*
NAME
  evt2.go implements the EVT2 state machine: 32-bit words, a single
  time-base field, CD and trigger events.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package decoder

import (
	"github.com/ausocean/utils/logging"

	"github.com/ausocean/evtraw/event"
	"github.com/ausocean/evtraw/internal/ringqueue"
	"github.com/ausocean/evtraw/rawword"
)

// Evt2 decodes the EVT2 vendor format. The zero value is ready to use.
type Evt2 struct {
	timeBase uint64
	haveBase bool

	log logging.Logger
}

// NewEvt2 returns a ready Evt2 decoder. log may be nil.
func NewEvt2(log logging.Logger) *Evt2 {
	return &Evt2{log: defaultLogger(log)}
}

// WordSize implements Decoder.
func (d *Evt2) WordSize() int { return rawword.SizeEvt2 }

// ResetState implements decoder.Resetter.
func (d *Evt2) ResetState() {
	d.timeBase = 0
	d.haveBase = false
}

// Decode implements Decoder.
func (d *Evt2) Decode(buf []byte, q *ringqueue.Queue) {
	if d.log == nil {
		d.log = noopLogger{}
	}
	words := rawword.AppendEvt2(nil, buf)
	for _, w := range words {
		d.decodeWord(w, q)
	}
}

func (d *Evt2) decodeWord(w rawword.Evt2Word, q *ringqueue.Queue) {
	switch w.Type() {
	case rawword.Evt2TimeHigh:
		d.timeBase = uint64(w.TimeHigh()) << rawword.NumBitsInTimestampLSB
		d.haveBase = true

	case rawword.Evt2CDOff, rawword.Evt2CDOn:
		if !d.haveBase {
			d.log.Debug("evt2: dropping CD before first time-high")
			return
		}
		t := d.timeBase | uint64(w.TimeLow())
		q.Push(event.CD(w.X(), w.Y(), uint8(w.Type()&1), t))

	case rawword.Evt2ExtTrigger:
		// Unlike CD_ON/CD_OFF, EXT_TRIGGER is not gated on time-base
		// presence: it carries no low timestamp field of its own, so
		// its timestamp is always the established time base, 0 before
		// the first time-high.
		q.Push(event.ExternalTrigger(w.TriggerID(), w.TriggerPolarity(), d.timeBase))

	default:
		d.log.Debug("evt2: unknown discriminant", "type", uint32(w.Type()))
		q.Push(event.Unknown())
	}
}
