// Package trace provides decision-trace recording for pump allocation analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// CandidatePump captures an eligible pump's load at decision time.
type CandidatePump struct {
	PumpID    int
	Occupancy int
	Capacity  int
}

// AllocationRecord captures a single allocator decision.
type AllocationRecord struct {
	CustomerID int
	Clock      int64
	Grade      int
	Allocated  bool
	ChosenPump int // 0 when rejected
	Reason     string
	Candidates []CandidatePump // eligible pumps in ascending id order (nil when rejected)
}

// Regret is the chosen pump's occupancy minus the least occupancy among
// candidates; 0 when the least-occupied pump was chosen or the customer was rejected.
func (r AllocationRecord) Regret() int {
	if !r.Allocated || len(r.Candidates) == 0 {
		return 0
	}
	least := r.Candidates[0].Occupancy
	chosen := least
	for _, c := range r.Candidates {
		least = min(least, c.Occupancy)
		if c.PumpID == r.ChosenPump {
			chosen = c.Occupancy
		}
	}
	return chosen - least
}
