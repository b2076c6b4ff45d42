/*
DESCRIPTION
  evt2_test.go checks the EVT2 state machine, including the corrected
  trigger-timestamp behavior (REDESIGN FLAG, spec 9).

AUTHORS
  Scott Vance
*/
package decoder

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/evtraw/event"
	"github.com/ausocean/evtraw/internal/ringqueue"
	"github.com/ausocean/evtraw/rawword"
)

func evt2Buf(words ...uint32) []byte {
	buf := make([]byte, 0, len(words)*rawword.SizeEvt2)
	for _, w := range words {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], w)
		buf = append(buf, b[:]...)
	}
	return buf
}

func evt2Word(typ rawword.Evt2Word, payload uint32) uint32 {
	return uint32(typ)<<28 | payload
}

// S4: EVT2 trigger.
func TestEvt2Trigger(t *testing.T) {
	d := NewEvt2(nil)
	q := ringqueue.New(0)

	timeHigh := evt2Word(rawword.Evt2TimeHigh, 5)
	trigger := evt2Word(rawword.Evt2ExtTrigger, 7<<8|1)
	d.Decode(evt2Buf(timeHigh, trigger), q)

	got := drain(q)
	want := []event.Event{event.ExternalTrigger(7, 1, 5<<rawword.NumBitsInTimestampLSB)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEvt2TriggerBeforeBaseNotDropped(t *testing.T) {
	d := NewEvt2(nil)
	q := ringqueue.New(0)
	trigger := evt2Word(rawword.Evt2ExtTrigger, 3<<8|0)
	d.Decode(evt2Buf(trigger), q)

	got := drain(q)
	want := []event.Event{event.ExternalTrigger(3, 0, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEvt2CDBeforeBaseDropped(t *testing.T) {
	d := NewEvt2(nil)
	q := ringqueue.New(0)
	cd := evt2Word(rawword.Evt2CDOn, 15<<11|10)
	d.Decode(evt2Buf(cd), q)
	if got := drain(q); len(got) != 0 {
		t.Fatalf("got %d events, want 0: %+v", len(got), got)
	}
}

func TestEvt2CDPolarity(t *testing.T) {
	d := NewEvt2(nil)
	q := ringqueue.New(0)
	timeHigh := evt2Word(rawword.Evt2TimeHigh, 1)
	off := evt2Word(rawword.Evt2CDOff, 5<<11|6)
	on := evt2Word(rawword.Evt2CDOn, 7<<11|8)
	d.Decode(evt2Buf(timeHigh, off, on), q)

	got := drain(q)
	want := []event.Event{
		event.CD(5, 6, 0, 1<<rawword.NumBitsInTimestampLSB),
		event.CD(7, 8, 1, 1<<rawword.NumBitsInTimestampLSB),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEvt2UnknownDiscriminant(t *testing.T) {
	d := NewEvt2(nil)
	q := ringqueue.New(0)
	timeHigh := evt2Word(rawword.Evt2TimeHigh, 1)
	unknown := evt2Word(0x3, 0)
	d.Decode(evt2Buf(timeHigh, unknown), q)

	got := drain(q)
	if len(got) != 1 || got[0].Kind != event.KindUnknown {
		t.Fatalf("got %+v, want exactly one Unknown event", got)
	}
}
