package sim

import (
	"testing"
)

// scenarioStation is the three-pump layout used throughout the tests:
// pump 1 serves AI-80 (capacity 3), pump 2 AI-92 (capacity 2),
// pump 3 AI-92/95/98 (capacity 4).
func scenarioStation() StationConfig {
	return StationConfig{
		Pumps: []PumpConfig{
			{ID: 1, Capacity: 3, Grades: []Grade{Grade80}},
			{ID: 2, Capacity: 2, Grades: []Grade{Grade92}},
			{ID: 3, Capacity: 4, Grades: []Grade{Grade92, Grade95, Grade98}},
		},
		Prices: DefaultPrices.Clone(),
	}
}

// clock parses an HH:MM label or fails the test.
func clock(t *testing.T, hhmm string) int64 {
	t.Helper()
	m, err := ParseClock(hhmm)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", hhmm, err)
	}
	return m
}

// recorder collects notifications in processing order.
type recorder struct {
	notes []Notification
}

func (r *recorder) Observe(n Notification) {
	r.notes = append(r.notes, n)
}

func (r *recorder) kinds() []NotificationKind {
	out := make([]NotificationKind, len(r.notes))
	for i, n := range r.notes {
		out[i] = n.Kind
	}
	return out
}

// testRecords builds a pseudo-random arrival list spread over a day.
func testRecords(seed int64, n int) []ArrivalRecord {
	rng := NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemWorkload)
	records := make([]ArrivalRecord, n)
	for i := range records {
		records[i] = ArrivalRecord{
			Time:   int64(6*60 + rng.Intn(14*60)),
			Volume: 5 + rng.Intn(80),
			Grade:  AllGrades[rng.Intn(len(AllGrades))],
		}
	}
	return records
}

// runScenario prepares customers from records with seed and runs them on station.
func runScenario(station StationConfig, records []ArrivalRecord, seed int64) (*Simulator, *recorder, Summary) {
	rec := &recorder{}
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	customers := PrepareCustomers(records, rng.ForSubsystem(SubsystemService))
	s := NewSimulator(SimConfig{Station: station, Observers: []Observer{rec}}, customers)
	summary := s.Run()
	return s, rec, summary
}
