/*
NAME
  evt3.go implements the EVT3 state machine: 16-bit words, 24-bit
  wrapping time-high/time-low, row/column addressing and vector
  fan-out.

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

// MaxTimestampBase is the largest representable 24-bit time-high value,
// shifted to its final bit position: ((1<<12)-1)<<12 = 16,773,120us.
const MaxTimestampBase = ((uint64(1) << 12) - 1) << 12

// TimeLoopDurationUS is the period of the 24-bit time-high counter:
// MaxTimestampBase + (1<<12) = 16,777,216us = 2^24.
const TimeLoopDurationUS = MaxTimestampBase + (1 << 12)

// LoopThreshold is the guard band used to disambiguate a genuine
// 24-bit wrap from ordinary jitter between consecutive time-highs.
const LoopThreshold = 10 << 12

// Evt3 decodes the EVT3 vendor format. The zero value is ready to use.
type Evt3 struct {
	time           uint64
	timeBase       uint64
	haveBase       bool
	timeHighLoopNb uint32
	lastY          uint16
	vectX          uint16
	vectPol        uint8

	log logging.Logger
}

// NewEvt3 returns a ready Evt3 decoder. log may be nil.
func NewEvt3(log logging.Logger) *Evt3 {
	return &Evt3{log: defaultLogger(log)}
}

// WordSize implements Decoder.
func (d *Evt3) WordSize() int { return rawword.SizeEvt3 }

// ResetState implements decoder.Resetter.
func (d *Evt3) ResetState() {
	*d = Evt3{log: d.log}
}

// Decode implements Decoder.
func (d *Evt3) Decode(buf []byte, q *ringqueue.Queue) {
	if d.log == nil {
		d.log = noopLogger{}
	}
	words := rawword.AppendEvt3(nil, buf)
	for _, w := range words {
		d.decodeWord(w, q)
	}
}

func (d *Evt3) decodeWord(w rawword.Evt3Word, q *ringqueue.Queue) {
	switch w.Type() {
	case rawword.Evt3AddrY:
		d.lastY = w.Y()

	case rawword.Evt3AddrX:
		if !d.haveBase {
			d.log.Debug("evt3: dropping ADDR_X before first time-high")
			return
		}
		q.Push(event.CD(w.X(), d.lastY, w.Pol(), d.time))

	case rawword.Evt3VectBaseX:
		d.vectPol = w.Pol()
		d.vectX = w.X()

	case rawword.Evt3Vect12:
		d.handleVector(w.Valid12(), 12, q)

	case rawword.Evt3Vect8:
		d.handleVector(w.Valid8(), 8, q)

	case rawword.Evt3TimeLow:
		if !d.haveBase {
			d.log.Debug("evt3: dropping TIME_LOW before first time-high")
			return
		}
		d.time = d.timeBase + uint64(w.Time())

	case rawword.Evt3TimeHigh:
		d.handleTimeHigh(w.Time())

	case rawword.Evt3ExtTrigger:
		if !d.haveBase {
			d.log.Debug("evt3: dropping trigger before first time-high")
			return
		}
		q.Push(event.ExternalTrigger(w.TriggerID(), w.TriggerPolarity(), d.time))

	default:
		d.log.Debug("evt3: unknown discriminant", "type", uint16(w.Type()))
		q.Push(event.Unknown())
	}
}

// handleVector expands a VECT_8/VECT_12 word's mask into per-pixel CD
// events at vectX+i for each set bit i, ascending, then advances vectX
// by n regardless of the bit pattern so a following VECT_* word
// without its own VECT_BASE_X tiles the same row.
func (d *Evt3) handleVector(mask uint16, n int, q *ringqueue.Queue) {
	if !d.haveBase {
		d.log.Debug("evt3: dropping vector before first time-high")
		d.vectX += uint16(n)
		return
	}
	for i := 0; i < n; i++ {
		if mask&1 == 1 {
			q.Push(event.CD(d.vectX+uint16(i), d.lastY, d.vectPol, d.time))
		}
		mask >>= 1
	}
	d.vectX += uint16(n)
}

// handleTimeHigh commits a new 24-bit time-high field, detecting and
// counting wraps of the counter.
func (d *Evt3) handleTimeHigh(field uint16) {
	if !d.haveBase {
		d.timeBase = uint64(field) << 12
		d.time = d.timeBase
		d.haveBase = true
		return
	}

	candidate := uint64(field)<<12 + uint64(d.timeHighLoopNb)*TimeLoopDurationUS
	if d.timeBase > candidate && d.timeBase-candidate >= MaxTimestampBase-LoopThreshold {
		candidate += TimeLoopDurationUS
		d.timeHighLoopNb++
		d.log.Debug("evt3: time-high wrapped", "loop_nb", d.timeHighLoopNb)
	}
	d.timeBase = candidate
	d.time = d.timeBase
}
