// Implements the teller lines customers wait in, and the line-selection and
// work-stealing rules that operate across them.

package sim

import (
	"fmt"
	"strings"
)

// TellerQueue is a FIFO line of waiting customers.
//
// Customers live in an owner slice; head is the offset of the front customer.
// The consumed prefix is reclaimed once it outgrows the live part, so both
// Enqueue and Dequeue are O(1) amortized.
type TellerQueue struct {
	ID        int // 1-based
	customers []*Customer
	head      int
}

// NewTellerQueue returns an empty line.
func NewTellerQueue(id int) *TellerQueue {
	return &TellerQueue{ID: id}
}

// Enqueue adds a customer to the back of the line.
func (q *TellerQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	q.customers = append(q.customers, c)
}

// Dequeue removes and returns the customer at the front of the line.
// Returns nil if the line is empty.
func (q *TellerQueue) Dequeue() *Customer {
	if q.Len() == 0 {
		return nil
	}
	c := q.customers[q.head]
	q.customers[q.head] = nil
	q.head++
	if q.head == len(q.customers) {
		q.customers = q.customers[:0]
		q.head = 0
	} else if q.head > len(q.customers)/2 {
		n := copy(q.customers, q.customers[q.head:])
		clear(q.customers[n:])
		q.customers = q.customers[:n]
		q.head = 0
	}
	return c
}

// Peek returns the front customer without removing it, or nil if empty.
func (q *TellerQueue) Peek() *Customer {
	if q.Len() == 0 {
		return nil
	}
	return q.customers[q.head]
}

// Len returns the number of waiting customers.
func (q *TellerQueue) Len() int {
	return len(q.customers) - q.head
}

// Items returns the waiting customers front to back.
// The returned slice aliases the line's storage and MUST NOT be modified.
func (q *TellerQueue) Items() []*Customer {
	return q.customers[q.head:]
}

// Release drops every waiting customer and returns how many there were.
func (q *TellerQueue) Release() int {
	n := q.Len()
	clear(q.customers)
	q.customers = nil
	q.head = 0
	return n
}

func (q *TellerQueue) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "L%d[", q.ID)
	for i, c := range q.Items() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Lines is the set of teller lines for one run: one per teller in
// SeparateQueues mode, a single shared one in SingleQueue mode.
type Lines struct {
	mode  QueueMode
	lines []*TellerQueue
}

// NewLines builds the lines for numTellers tellers under mode.
func NewLines(mode QueueMode, numTellers int) *Lines {
	n := numTellers
	if mode == SingleQueue {
		n = 1
	}
	lines := make([]*TellerQueue, n)
	for i := range lines {
		lines[i] = NewTellerQueue(i + 1)
	}
	return &Lines{mode: mode, lines: lines}
}

// Mode returns the queueing discipline.
func (l *Lines) Mode() QueueMode { return l.mode }

// Len returns the number of lines.
func (l *Lines) Len() int { return len(l.lines) }

// At returns the line at index i.
func (l *Lines) At(i int) *TellerQueue { return l.lines[i] }

// For returns the line teller t serves from: its own line, or the shared one.
func (l *Lines) For(t *Teller) *TellerQueue {
	if l.mode == SingleQueue {
		return l.lines[0]
	}
	return l.lines[t.ID-1]
}

// ShortestLine picks the line for a newly arriving customer.
//
// Lines are scanned in index order. A strictly shorter line replaces the
// candidate; an equally short one replaces it when coin() returns true. The
// coin is flipped once per tie as it is observed, so the choice is
// sequential rather than uniform over the whole tied set.
// In SingleQueue mode the shared line is returned without flipping.
func (l *Lines) ShortestLine(coin func() bool) *TellerQueue {
	shortest := l.lines[0]
	if l.mode == SingleQueue {
		return shortest
	}
	for _, line := range l.lines[1:] {
		switch {
		case line.Len() < shortest.Len():
			shortest = line
		case line.Len() == shortest.Len():
			if coin() {
				shortest = line
			}
		}
	}
	return shortest
}

// Steal removes and returns the front customer of the first non-empty line
// other than except, scanning in index order. Returns nil when every other
// line is empty, and always in SingleQueue mode.
func (l *Lines) Steal(except *TellerQueue) (*Customer, *TellerQueue) {
	if l.mode == SingleQueue {
		return nil, nil
	}
	for _, line := range l.lines {
		if line != except && line.Len() > 0 {
			return line.Dequeue(), line
		}
	}
	return nil, nil
}

// Waiting returns the total number of queued customers across all lines.
func (l *Lines) Waiting() int {
	total := 0
	for _, line := range l.lines {
		total += line.Len()
	}
	return total
}

// Lengths returns the current length of every line, in index order.
func (l *Lines) Lengths() []int {
	out := make([]int, len(l.lines))
	for i, line := range l.lines {
		out[i] = line.Len()
	}
	return out
}

// Release empties every line and returns the number of customers dropped.
func (l *Lines) Release() int {
	total := 0
	for _, line := range l.lines {
		total += line.Release()
	}
	return total
}
