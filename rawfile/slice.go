/*
NAME
  slice.go groups a decoded event sequence into windows by time,
  count, or whichever bound is hit first.

AUTHORS
  Scott Vance

LICENSE
  Copyright (C) 2026 the evtraw authors. All Rights Reserved.
*/

package rawfile

import (
	"iter"

	"github.com/ausocean/evtraw/event"
)

type sliceMode int

const (
	sliceByTime sliceMode = iota
	sliceByCount
	sliceByBoth
)

// SliceBy selects how SliceEvents partitions an event sequence.
type SliceBy struct {
	mode   sliceMode
	micros uint64
	count  int
}

// SliceByTime groups events into windows of the given duration in
// microseconds, measured from each window's first timestamped event.
func SliceByTime(micros uint64) SliceBy { return SliceBy{mode: sliceByTime, micros: micros} }

// SliceByCount groups events into fixed-size windows of n events.
func SliceByCount(n int) SliceBy { return SliceBy{mode: sliceByCount, count: n} }

// SliceByBoth closes a window at whichever of the time or count bound
// is reached first.
func SliceByBoth(micros uint64, n int) SliceBy {
	return SliceBy{mode: sliceByBoth, micros: micros, count: n}
}

// SliceEvents groups events from src into windows according to by.
// Events with no timestamp (event.KindUnknown) are skipped when
// looking for a window's first event, but are not otherwise filtered
// out once a window is open if by is count-bounded; under a time
// bound only timestamped events can be evaluated against the window
// end, so untimed events are dropped from time-bounded windows.
func SliceEvents(src iter.Seq[event.Event], by SliceBy) iter.Seq[[]event.Event] {
	return func(yield func([]event.Event) bool) {
		next, stop := iter.Pull(src)
		defer stop()

		// A window boundary is only visible once its first out-of-window
		// event has been pulled, so that event is buffered here and
		// handed back as the next window's first read, instead of being
		// silently dropped on the floor.
		var pending event.Event
		havePending := false
		read := func() (event.Event, bool) {
			if havePending {
				havePending = false
				return pending, true
			}
			return next()
		}
		unread := func(e event.Event) {
			pending, havePending = e, true
		}

		for {
			var first event.Event
			var haveFirst bool
			for {
				e, ok := read()
				if !ok {
					return
				}
				if _, hasTS := e.Timestamp(); hasTS {
					first = e
					haveFirst = true
					break
				}
			}
			if !haveFirst {
				return
			}

			firstTS, _ := first.Timestamp()
			window := make([]event.Event, 0, windowCapacity(by))
			window = append(window, first)

			switch by.mode {
			case sliceByCount:
				for i := 1; i < by.count; i++ {
					e, ok := read()
					if !ok {
						break
					}
					window = append(window, e)
				}

			case sliceByTime:
				end := firstTS + by.micros
				for {
					e, ok := read()
					if !ok {
						break
					}
					ts, hasTS := e.Timestamp()
					if !hasTS {
						continue
					}
					if ts >= end {
						unread(e)
						break
					}
					window = append(window, e)
				}

			case sliceByBoth:
				end := firstTS + by.micros
				for len(window) < by.count {
					e, ok := read()
					if !ok {
						break
					}
					ts, hasTS := e.Timestamp()
					if !hasTS {
						continue
					}
					if ts >= end {
						unread(e)
						break
					}
					window = append(window, e)
				}
			}

			if !yield(window) {
				return
			}
		}
	}
}

func windowCapacity(by SliceBy) int {
	switch by.mode {
	case sliceByCount:
		return by.count
	case sliceByBoth:
		return by.count
	default:
		return 1024
	}
}
