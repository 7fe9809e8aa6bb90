package sim

import "fmt"

// Customer is a bank visitor. Its time fields are filled in as it moves
// through arrival → service start → departure.
type Customer struct {
	ID               int     // 1-based
	ArrivalTime      float64 // minutes
	ServiceStartTime float64 // minutes; valid once a teller picks the customer up
	DepartureTime    float64 // minutes; valid once service ends
}

func (c *Customer) String() string {
	return fmt.Sprintf("C%d", c.ID)
}

// WaitTime is the time spent queued before service started.
func (c *Customer) WaitTime() float64 {
	return c.ServiceStartTime - c.ArrivalTime
}

// ServiceDuration is the time spent at the teller.
func (c *Customer) ServiceDuration() float64 {
	return c.DepartureTime - c.ServiceStartTime
}

// TimeInBank is departure minus service start. It equals ServiceDuration and
// excludes the wait; reports keep this definition for comparability with the
// historical figures. Sojourn gives the arrival-to-departure span.
func (c *Customer) TimeInBank() float64 {
	return c.DepartureTime - c.ServiceStartTime
}

// Sojourn is the full time from arrival to departure.
func (c *Customer) Sojourn() float64 {
	return c.DepartureTime - c.ArrivalTime
}

// Teller serves customers. It carries no state beyond its identity; whether it
// is busy or idle is implied by the TellerAction event pending for it.
type Teller struct {
	ID int // 1-based; the teller's own line is index ID-1
}

func (t *Teller) String() string {
	return fmt.Sprintf("T%d", t.ID)
}
