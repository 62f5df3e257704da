package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in minutes) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Execute(*Simulator)
}

// ArrivalEvent represents a vehicle pulling into the station.
type ArrivalEvent struct {
	time     int64     // Simulation time of arrival
	Customer *Customer // The arriving customer
}

// NewArrivalEvent schedules c at its arrival time.
func NewArrivalEvent(c *Customer) *ArrivalEvent {
	return &ArrivalEvent{time: c.ArrivalTime, Customer: c}
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() int64 {
	return e.time
}

// Execute asks the allocator for a pump and either admits or rejects the customer.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: customer %d (%s, %d L) at %s", e.Customer.ID, e.Customer.Grade, e.Customer.Volume, FormatClock(e.time))
	sim.handleArrival(e)
}

// DepartureEvent represents a served customer leaving its pump.
type DepartureEvent struct {
	time     int64
	Customer *Customer
	PumpID   int // Pump the customer was admitted to
}

// NewDepartureEvent schedules c's departure from pump at its precomputed time.
func NewDepartureEvent(c *Customer, pumpID int) *DepartureEvent {
	return &DepartureEvent{time: c.DepartureTime, Customer: c, PumpID: pumpID}
}

// Timestamp returns the scheduled time of the DepartureEvent.
func (e *DepartureEvent) Timestamp() int64 {
	return e.time
}

// Execute releases the pump slot and books the sale.
func (e *DepartureEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Departure: customer %d from pump %d at %s", e.Customer.ID, e.PumpID, FormatClock(e.time))
	sim.handleDeparture(e)
}
