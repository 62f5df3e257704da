// Defines the Customer struct that models one vehicle's service request in the simulation.
// Tracks arrival time, requested volume and grade, and the precomputed departure time.

package sim

import (
	"fmt"
)

// CustomerState represents the lifecycle state of a customer.
type CustomerState string

const (
	StatePending  CustomerState = "pending"
	StateServed   CustomerState = "served" // occupies a pump slot; waiting and fueling are not distinguished
	StateDeparted CustomerState = "departed"
	StateRejected CustomerState = "rejected"
)

// IsTerminal reports whether no further transition is possible from s.
func (s CustomerState) IsTerminal() bool {
	return s == StateDeparted || s == StateRejected
}

type Customer struct {
	ID int // Sequence number, 1-based in arrival order

	ArrivalTime   int64 // Minutes since midnight
	Volume        int   // Requested liters
	Grade         Grade // Requested fuel grade
	DepartureTime int64 // ArrivalTime + service duration, fixed when the customer is prepared

	State  CustomerState
	PumpID int // Pump the customer was allocated to (0 while pending or when rejected)
}

// NewCustomer creates a Customer in the pending state.
// Panics if departure is not strictly after arrival.
func NewCustomer(id int, arrival int64, volume int, grade Grade, departure int64) *Customer {
	if departure <= arrival {
		panic(fmt.Sprintf("NewCustomer: departure %d not after arrival %d for customer %d", departure, arrival, id))
	}
	return &Customer{
		ID:            id,
		ArrivalTime:   arrival,
		Volume:        volume,
		Grade:         grade,
		DepartureTime: departure,
		State:         StatePending,
	}
}

// ServiceDuration returns how long the customer occupies a pump slot.
func (c *Customer) ServiceDuration() int64 {
	return c.DepartureTime - c.ArrivalTime
}

// This method returns a human-readable string representation of a Customer.
func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %d, State: %s, Grade: %s, Volume: %d, ArrivalTime: %s)",
		c.ID, c.State, c.Grade, c.Volume, FormatClock(c.ArrivalTime))
}
