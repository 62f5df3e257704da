package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions   int
	AllocatedCount   int
	RejectedCount    int
	MeanRegret       float64
	MaxRegret        int
	UniquePumps      int
	PumpDistribution map[int]int // pump ID → customers allocated
	RejectedByGrade  map[int]int // grade → customers rejected
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		PumpDistribution: make(map[int]int),
		RejectedByGrade:  make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Allocations)
	totalRegret := 0
	for _, a := range st.Allocations {
		if !a.Allocated {
			summary.RejectedCount++
			summary.RejectedByGrade[a.Grade]++
			continue
		}
		summary.AllocatedCount++
		summary.PumpDistribution[a.ChosenPump]++
		r := a.Regret()
		totalRegret += r
		summary.MaxRegret = max(summary.MaxRegret, r)
	}
	if summary.AllocatedCount > 0 {
		summary.MeanRegret = float64(totalRegret) / float64(summary.AllocatedCount)
	}
	summary.UniquePumps = len(summary.PumpDistribution)

	return summary
}
