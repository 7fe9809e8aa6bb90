package sim

import "container/heap"

// eventEntry wraps an Event with a sequence ID for FIFO tie-breaking when
// timestamps are equal.
type eventEntry struct {
	event Event
	seqID int64
}

// eventHeap is a min-heap ordered by (Timestamp, seqID).
// Implements heap.Interface.
type eventHeap []eventEntry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Timestamp() != h[j].event.Timestamp() {
		return h[i].event.Timestamp() < h[j].event.Timestamp()
	}
	return h[i].seqID < h[j].seqID
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(eventEntry))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = eventEntry{}
	*h = old[:n-1]
	return item
}

// EventQueue holds pending events in time order. Events with equal
// timestamps are extracted in the order they were inserted.
type EventQueue struct {
	events  eventHeap
	nextSeq int64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make(eventHeap, 0)}
}

// Insert adds ev after every queued event with time <= ev's time.
func (q *EventQueue) Insert(ev Event) {
	if ev == nil {
		panic("EventQueue.Insert: event must not be nil")
	}
	heap.Push(&q.events, eventEntry{event: ev, seqID: q.nextSeq})
	q.nextSeq++
}

// ExtractMin removes and returns the earliest event.
// Returns false if the queue is empty.
func (q *EventQueue) ExtractMin() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	return heap.Pop(&q.events).(eventEntry).event, true
}

// Peek returns the earliest event without removing it.
func (q *EventQueue) Peek() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	return q.events[0].event, true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain drops every pending event without running it and returns how many
// were dropped.
func (q *EventQueue) Drain() int {
	n := len(q.events)
	clear(q.events)
	q.events = q.events[:0]
	return n
}
