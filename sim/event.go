package sim

import "fmt"

// EventKind tags the three event variants that drive the bank model.
type EventKind int

const (
	// Arrival puts a customer into a line.
	Arrival EventKind = iota
	// ServiceEnd records a customer's departure.
	ServiceEnd
	// TellerAction is a teller's decision point: serve someone or idle again.
	TellerAction
)

func (k EventKind) String() string {
	switch k {
	case Arrival:
		return "Arrival"
	case ServiceEnd:
		return "ServiceEnd"
	case TellerAction:
		return "TellerAction"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a scheduled unit of work. The set of variants is closed: only
// ArrivalEvent, ServiceEndEvent and TellerActionEvent implement it, and the
// Simulator dispatches on the concrete type.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	sealed()
}

// ArrivalEvent represents a customer walking into the bank.
type ArrivalEvent struct {
	time     float64
	Customer *Customer
}

// NewArrivalEvent schedules c's arrival at c.ArrivalTime.
func NewArrivalEvent(c *Customer) *ArrivalEvent {
	return &ArrivalEvent{time: c.ArrivalTime, Customer: c}
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }
func (e *ArrivalEvent) Kind() EventKind    { return Arrival }
func (e *ArrivalEvent) sealed()            {}

// ServiceEndEvent represents a customer finishing at a teller.
type ServiceEndEvent struct {
	time     float64
	Customer *Customer
}

// NewServiceEndEvent schedules the end of c's service at time t.
func NewServiceEndEvent(t float64, c *Customer) *ServiceEndEvent {
	return &ServiceEndEvent{time: t, Customer: c}
}

func (e *ServiceEndEvent) Timestamp() float64 { return e.time }
func (e *ServiceEndEvent) Kind() EventKind    { return ServiceEnd }
func (e *ServiceEndEvent) sealed()            {}

// TellerActionEvent represents a teller looking for its next customer.
type TellerActionEvent struct {
	time   float64
	Teller *Teller
}

// NewTellerActionEvent schedules teller's next decision at time t.
func NewTellerActionEvent(t float64, teller *Teller) *TellerActionEvent {
	return &TellerActionEvent{time: t, Teller: teller}
}

func (e *TellerActionEvent) Timestamp() float64 { return e.time }
func (e *TellerActionEvent) Kind() EventKind    { return TellerAction }
func (e *TellerActionEvent) sealed()            {}
