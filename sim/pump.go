package sim

import (
	"fmt"
	"slices"
)

// Pump is a fuel dispenser with a bounded queue and a fixed set of grades.
// Occupancy is the length of the active customer list; customers are kept
// in arrival order.
type Pump struct {
	ID       int
	Capacity int
	Grades   []Grade // ascending

	customers []*Customer
}

// NewPump creates an empty pump from its configuration.
func NewPump(cfg PumpConfig) *Pump {
	grades := slices.Clone(cfg.Grades)
	slices.Sort(grades)
	return &Pump{
		ID:       cfg.ID,
		Capacity: cfg.Capacity,
		Grades:   grades,
	}
}

// Supports reports whether the pump dispenses grade g.
func (p *Pump) Supports(g Grade) bool {
	_, found := slices.BinarySearch(p.Grades, g)
	return found
}

// Occupancy returns the number of customers queued or being served.
func (p *Pump) Occupancy() int {
	return len(p.customers)
}

// HasCapacity reports whether another customer fits in the queue.
func (p *Pump) HasCapacity() bool {
	return len(p.customers) < p.Capacity
}

// Customers returns the active customers in arrival order.
func (p *Pump) Customers() []*Customer {
	return p.customers
}

// admit appends c to the active list.
// Panics if the pump is full or does not dispense c's grade.
func (p *Pump) admit(c *Customer) {
	if !p.Supports(c.Grade) {
		panic(fmt.Sprintf("pump %d: customer %d requests unsupported grade %s", p.ID, c.ID, c.Grade))
	}
	if !p.HasCapacity() {
		panic(fmt.Sprintf("pump %d: admitting customer %d exceeds capacity %d", p.ID, c.ID, p.Capacity))
	}
	p.customers = append(p.customers, c)
}

// release removes c from the active list by identity.
// Panics if c is not present: occupancy bookkeeping would be inconsistent.
func (p *Pump) release(c *Customer) {
	idx := slices.Index(p.customers, c)
	if idx < 0 {
		panic(fmt.Sprintf("pump %d: departing customer %d not found in active list", p.ID, c.ID))
	}
	p.customers = slices.Delete(p.customers, idx, idx+1)
}

// PumpSnapshot is a read-only copy of a pump's state at one instant.
type PumpSnapshot struct {
	ID          int
	Capacity    int
	Grades      []Grade
	Occupancy   int
	CustomerIDs []int
}

// Snapshot captures the pump's current state.
func (p *Pump) Snapshot() PumpSnapshot {
	ids := make([]int, len(p.customers))
	for i, c := range p.customers {
		ids[i] = c.ID
	}
	return PumpSnapshot{
		ID:          p.ID,
		Capacity:    p.Capacity,
		Grades:      p.Grades,
		Occupancy:   len(p.customers),
		CustomerIDs: ids,
	}
}
