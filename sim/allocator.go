package sim

import "fmt"

// CandidatePump is an eligible pump considered by an allocation decision.
type CandidatePump struct {
	PumpID    int
	Occupancy int
	Capacity  int
}

// AllocationDecision encapsulates the allocator's answer for one arrival.
type AllocationDecision struct {
	PumpID     int             // Chosen pump (meaningful only when OK)
	OK         bool            // false means the customer is rejected
	Reason     string          // Human-readable explanation
	Candidates []CandidatePump // Eligible pumps in ascending id order (nil when none)
}

// Allocator decides which pump serves an arriving customer.
// pumps are in ascending id order; implementations must not mutate them.
type Allocator interface {
	FindPump(grade Grade, pumps []*Pump) AllocationDecision
}

// eligiblePumps returns the pumps that dispense grade and have a free slot.
func eligiblePumps(grade Grade, pumps []*Pump) []CandidatePump {
	var out []CandidatePump
	for _, p := range pumps {
		if p.Supports(grade) && p.HasCapacity() {
			out = append(out, CandidatePump{PumpID: p.ID, Occupancy: p.Occupancy(), Capacity: p.Capacity})
		}
	}
	return out
}

// rejection explains why no pump qualified.
func rejection(grade Grade, pumps []*Pump) AllocationDecision {
	for _, p := range pumps {
		if p.Supports(grade) {
			return AllocationDecision{Reason: fmt.Sprintf("all pumps dispensing %s are full", grade)}
		}
	}
	return AllocationDecision{Reason: fmt.Sprintf("no pump dispenses %s", grade)}
}

// LeastOccupied picks the eligible pump with the fewest customers.
// Ties are broken by the smallest pump id (first occurrence in id order).
type LeastOccupied struct{}

// FindPump implements Allocator for LeastOccupied.
func (lo *LeastOccupied) FindPump(grade Grade, pumps []*Pump) AllocationDecision {
	candidates := eligiblePumps(grade, pumps)
	if len(candidates) == 0 {
		return rejection(grade, pumps)
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Occupancy < best.Occupancy {
			best = c
		}
	}
	return AllocationDecision{
		PumpID:     best.PumpID,
		OK:         true,
		Reason:     fmt.Sprintf("least-occupied (occupancy=%d/%d)", best.Occupancy, best.Capacity),
		Candidates: candidates,
	}
}

// FirstAvailable picks the eligible pump with the smallest id regardless of load.
// Baseline for comparing against LeastOccupied.
type FirstAvailable struct{}

// FindPump implements Allocator for FirstAvailable.
func (fa *FirstAvailable) FindPump(grade Grade, pumps []*Pump) AllocationDecision {
	candidates := eligiblePumps(grade, pumps)
	if len(candidates) == 0 {
		return rejection(grade, pumps)
	}
	first := candidates[0]
	return AllocationDecision{
		PumpID:     first.PumpID,
		OK:         true,
		Reason:     fmt.Sprintf("first-available (occupancy=%d/%d)", first.Occupancy, first.Capacity),
		Candidates: candidates,
	}
}

// ValidAllocators is the set of recognized allocator names.
var ValidAllocators = map[string]bool{"": true, "least-occupied": true, "first-available": true}

// IsValidAllocator returns true if name is a recognized allocator.
func IsValidAllocator(name string) bool {
	return ValidAllocators[name]
}

// NewAllocator creates an allocator by name.
// Empty string defaults to least-occupied.
// Panics on unrecognized names.
func NewAllocator(name string) Allocator {
	if !IsValidAllocator(name) {
		panic(fmt.Sprintf("unknown allocator %q", name))
	}
	switch name {
	case "", "least-occupied":
		return &LeastOccupied{}
	case "first-available":
		return &FirstAvailable{}
	default:
		panic(fmt.Sprintf("unhandled allocator %q", name))
	}
}
