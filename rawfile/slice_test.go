/*
DESCRIPTION
  slice_test.go checks SliceEvents' three window modes against
  synthetic event sequences, including the treatment of events with
  no timestamp.

AUTHORS
  Scott Vance
*/
package rawfile

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/evtraw/event"
)

func seqOf(events ...event.Event) func(func(event.Event) bool) {
	return func(yield func(event.Event) bool) {
		for _, e := range events {
			if !yield(e) {
				return
			}
		}
	}
}

func collectWindows(t *testing.T, windows func(func([]event.Event) bool)) [][]event.Event {
	t.Helper()
	var got [][]event.Event
	for w := range windows {
		got = append(got, slices.Clone(w))
	}
	return got
}

func TestSliceByCount(t *testing.T) {
	events := []event.Event{
		event.CD(0, 0, 0, 0),
		event.CD(1, 0, 0, 1),
		event.CD(2, 0, 0, 2),
		event.CD(3, 0, 0, 3),
		event.CD(4, 0, 0, 4),
	}
	got := collectWindows(t, SliceEvents(seqOf(events...), SliceByCount(2)))
	want := [][]event.Event{
		{events[0], events[1]},
		{events[2], events[3]},
		{events[4]},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceByCountIncludesUntimed(t *testing.T) {
	events := []event.Event{
		event.CD(0, 0, 0, 0),
		event.Unknown(),
		event.CD(2, 0, 0, 2),
	}
	got := collectWindows(t, SliceEvents(seqOf(events...), SliceByCount(3)))
	want := [][]event.Event{events}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceByTime(t *testing.T) {
	events := []event.Event{
		event.CD(0, 0, 0, 0),
		event.CD(1, 0, 0, 50),
		event.CD(2, 0, 0, 99),
		event.CD(3, 0, 0, 100),
		event.CD(4, 0, 0, 250),
	}
	got := collectWindows(t, SliceEvents(seqOf(events...), SliceByTime(100)))
	want := [][]event.Event{
		{events[0], events[1], events[2]},
		{events[3]},
		{events[4]},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceByTimeSkipsUntimedAsFirst(t *testing.T) {
	events := []event.Event{
		event.Unknown(),
		event.CD(0, 0, 0, 10),
		event.CD(1, 0, 0, 20),
	}
	got := collectWindows(t, SliceEvents(seqOf(events...), SliceByTime(100)))
	want := [][]event.Event{{events[1], events[2]}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceByTimeDropsUntimedMidWindow(t *testing.T) {
	events := []event.Event{
		event.CD(0, 0, 0, 10),
		event.Unknown(),
		event.CD(1, 0, 0, 20),
	}
	got := collectWindows(t, SliceEvents(seqOf(events...), SliceByTime(100)))
	want := [][]event.Event{{events[0], events[2]}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceByBoth(t *testing.T) {
	events := []event.Event{
		event.CD(0, 0, 0, 0),
		event.CD(1, 0, 0, 10),
		event.CD(2, 0, 0, 20),
		event.CD(3, 0, 0, 30),
		event.CD(4, 0, 0, 200),
	}
	// The count bound (2) closes the first two windows before the time
	// bound (100) is reached; the last window holds the one remaining
	// event and closes at the end of the input.
	got := collectWindows(t, SliceEvents(seqOf(events...), SliceByBoth(100, 2)))
	want := [][]event.Event{
		{events[0], events[1]},
		{events[2], events[3]},
		{events[4]},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceEventsEmpty(t *testing.T) {
	got := collectWindows(t, SliceEvents(seqOf(), SliceByCount(4)))
	if got != nil {
		t.Errorf("got %v, want no windows", got)
	}
}

func TestSliceEventsAllUntimed(t *testing.T) {
	got := collectWindows(t, SliceEvents(seqOf(event.Unknown(), event.Unknown()), SliceByTime(100)))
	if got != nil {
		t.Errorf("got %v, want no windows", got)
	}
}
