package station

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/fuel-sim/sim"
	"github.com/inference-sim/fuel-sim/sim/internal/testutil"
)

// TestSimulator_GoldenDataset runs each golden station day from parsed setup
// and arrival text through to the end-of-day summary.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			pumps, err := ParsePumps(strings.NewReader(strings.Join(tc.Pumps, "\n")), tc.Name+"/setup")
			require.NoError(t, err)
			records, err := ParseArrivals(strings.NewReader(strings.Join(tc.Arrivals, "\n")), tc.Name+"/input")
			require.NoError(t, err)
			require.NotEmpty(t, tc.Seeds)

			for _, seed := range tc.Seeds {
				rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemService)
				s := sim.NewSimulator(sim.SimConfig{
					Station:   sim.StationConfig{Pumps: pumps, Prices: sim.DefaultPrices.Clone()},
					Allocator: tc.Allocator,
				}, sim.PrepareCustomers(records, rng))
				got := s.Run()

				want := tc.Metrics
				assert.Equal(t, want.Served, got.Served, "served (seed=%d)", seed)
				assert.Equal(t, want.Rejected, got.Rejected, "rejected (seed=%d)", seed)
				assert.Equal(t, want.ServedByPump, got.ServedByPump, "served by pump (seed=%d)", seed)
				for _, g := range sim.AllGrades {
					assert.Equal(t, want.LitersByGrade[g.String()], got.LitersSold[g], "%s liters (seed=%d)", g, seed)
				}
				testutil.AssertFloat64Equal(t, "revenue", want.Revenue, got.Revenue, 1e-9)
			}
		})
	}
}
