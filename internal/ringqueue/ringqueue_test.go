package ringqueue

import (
	"testing"

	"github.com/ausocean/evtraw/event"
)

func TestPushPopOrder(t *testing.T) {
	q := New(4)
	for i := uint16(0); i < 4; i++ {
		q.Push(event.CD(i, 0, 0, 0))
	}
	if q.Len() != 4 {
		t.Fatalf("len = %d, want 4", q.Len())
	}
	for i := uint16(0); i < 4; i++ {
		e, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if x, _ := e.CoordX(); x != i {
			t.Errorf("pop %d: got x=%d, want %d", i, x, i)
		}
	}
	if !q.Empty() {
		t.Fatal("queue should be empty")
	}
}

func TestWrapAround(t *testing.T) {
	q := New(2)
	q.Push(event.CD(1, 0, 0, 0))
	q.Push(event.CD(2, 0, 0, 0))
	q.Pop()
	q.Push(event.CD(3, 0, 0, 0))
	e, _ := q.Pop()
	if x, _ := e.CoordX(); x != 2 {
		t.Errorf("got x=%d, want 2", x)
	}
	e, _ = q.Pop()
	if x, _ := e.CoordX(); x != 3 {
		t.Errorf("got x=%d, want 3", x)
	}
}

func TestPushFullPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic pushing to a full queue")
		}
	}()
	q := New(1)
	q.Push(event.CD(0, 0, 0, 0))
	q.Push(event.CD(0, 0, 0, 0))
}

func TestDefaultCapacity(t *testing.T) {
	q := New(0)
	if cap(q.buf) != DefaultCapacity {
		t.Fatalf("got cap %d, want %d", cap(q.buf), DefaultCapacity)
	}
}
