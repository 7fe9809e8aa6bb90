package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banksim/banksim/sim/internal/testutil"
)

func arrivalAt(id int, t float64) *ArrivalEvent {
	return NewArrivalEvent(&Customer{ID: id, ArrivalTime: t})
}

// TestEventQueue_TimestampOrdering tests that events are extracted in timestamp order
func TestEventQueue_TimestampOrdering(t *testing.T) {
	q := NewEventQueue()
	q.Insert(arrivalAt(1, 100))
	q.Insert(arrivalAt(2, 50))
	q.Insert(arrivalAt(3, 150))

	want := []float64{50, 100, 150}
	for i, w := range want {
		ev, ok := q.ExtractMin()
		require.True(t, ok, "extract %d", i)
		assert.Equal(t, w, ev.Timestamp(), "extract %d", i)
	}
	assert.Equal(t, 0, q.Len())
}

// TestEventQueue_EqualTimes_InsertionOrder tests that ties extract first-inserted-first
// regardless of event kind.
func TestEventQueue_EqualTimes_InsertionOrder(t *testing.T) {
	// GIVEN three events of different kinds at the same time, inserted T, S, A
	q := NewEventQueue()
	teller := &Teller{ID: 1}
	c := &Customer{ID: 7, ArrivalTime: 10}
	q.Insert(NewTellerActionEvent(10, teller))
	q.Insert(NewServiceEndEvent(10, c))
	q.Insert(NewArrivalEvent(c))

	// WHEN all are extracted
	var kinds []EventKind
	for {
		ev, ok := q.ExtractMin()
		if !ok {
			break
		}
		kinds = append(kinds, ev.Kind())
	}

	// THEN they come out in insertion order
	assert.Equal(t, []EventKind{TellerAction, ServiceEnd, Arrival}, kinds)
}

// TestEventQueue_RandomInsertions_NonDecreasingAndStable checks the ordering
// contract over many insertions with frequent ties.
func TestEventQueue_RandomInsertions_NonDecreasingAndStable(t *testing.T) {
	rng := testutil.SeededRand(7)
	q := NewEventQueue()
	const n = 500
	for i := 0; i < n; i++ {
		// small integer times so ties are common
		q.Insert(arrivalAt(i, float64(rng.Intn(20))))
	}

	prevTime := -1.0
	prevID := -1
	count := 0
	for {
		ev, ok := q.ExtractMin()
		if !ok {
			break
		}
		count++
		id := ev.(*ArrivalEvent).Customer.ID
		require.GreaterOrEqual(t, ev.Timestamp(), prevTime, "time went backwards")
		if ev.Timestamp() == prevTime {
			require.Greater(t, id, prevID, "tie at %v extracted out of insertion order", prevTime)
		}
		prevTime, prevID = ev.Timestamp(), id
	}
	assert.Equal(t, n, count)
}

// TestEventQueue_InterleavedInsertAfterExtract keeps FIFO ties across a pop.
func TestEventQueue_InterleavedInsertAfterExtract(t *testing.T) {
	q := NewEventQueue()
	q.Insert(arrivalAt(1, 5))
	q.Insert(arrivalAt(2, 10))
	ev, _ := q.ExtractMin()
	require.Equal(t, 1, ev.(*ArrivalEvent).Customer.ID)

	// an event inserted later at an existing time goes behind it
	q.Insert(arrivalAt(3, 10))
	first, _ := q.ExtractMin()
	second, _ := q.ExtractMin()
	assert.Equal(t, 2, first.(*ArrivalEvent).Customer.ID)
	assert.Equal(t, 3, second.(*ArrivalEvent).Customer.ID)
}

func TestEventQueue_Empty_ExtractAndPeekReportEmpty(t *testing.T) {
	q := NewEventQueue()

	ev, ok := q.ExtractMin()
	assert.False(t, ok)
	assert.Nil(t, ev)

	ev, ok = q.Peek()
	assert.False(t, ok)
	assert.Nil(t, ev)
}

func TestEventQueue_Peek_DoesNotRemove(t *testing.T) {
	q := NewEventQueue()
	q.Insert(arrivalAt(1, 3))
	q.Insert(arrivalAt(2, 1))

	ev, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1.0, ev.Timestamp())
	assert.Equal(t, 2, q.Len())
}

func TestEventQueue_Drain_ReleasesEverything(t *testing.T) {
	// GIVEN a queue with three pending events
	q := NewEventQueue()
	for i := 0; i < 3; i++ {
		q.Insert(arrivalAt(i, float64(i)))
	}

	// WHEN drained
	n := q.Drain()

	// THEN all three are reported and the queue is empty and reusable
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, q.Len())
	q.Insert(arrivalAt(9, 1))
	ev, ok := q.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 9, ev.(*ArrivalEvent).Customer.ID)
}

func TestEventQueue_InsertNil_Panics(t *testing.T) {
	q := NewEventQueue()
	assert.Panics(t, func() { q.Insert(nil) })
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "Arrival", Arrival.String())
	assert.Equal(t, "ServiceEnd", ServiceEnd.String())
	assert.Equal(t, "TellerAction", TellerAction.String())
	assert.Equal(t, "EventKind(9)", EventKind(9).String())
}
