package workload

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/fuel-sim/sim"
)

// scheduleDay anchors cron schedules; only the minute of day is kept.
// It is a Monday, so day-of-week fields evaluate against Monday.
var scheduleDay = time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC)

// weightedGrade is one entry of a stream's grade distribution.
type weightedGrade struct {
	grade  sim.Grade
	weight float64
}

// GenerateArrivals creates an arrival list from a FleetSpec.
// Deterministic given the same spec and seed.
// Returns records sorted by time; ties keep stream order.
func GenerateArrivals(spec *FleetSpec) ([]sim.ArrivalRecord, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fleet spec: %w", err)
	}
	start, end, _ := spec.window()

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	workloadRNG := rng.ForSubsystem(sim.SubsystemWorkload)

	var all []sim.ArrivalRecord
	for i := range spec.Streams {
		stream := &spec.Streams[i]
		// Create per-stream RNG (derived from main RNG for isolation)
		streamRNG := rand.New(rand.NewSource(workloadRNG.Int63()))

		records, err := generateStream(stream, start, end, streamRNG)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("stream %q: %d vehicles", stream.ID, len(records))
		all = append(all, records...)
	}

	slices.SortStableFunc(all, func(a, b sim.ArrivalRecord) int {
		return int(a.Time - b.Time)
	})
	return all, nil
}

func generateStream(stream *StreamSpec, start, end int64, rng *rand.Rand) ([]sim.ArrivalRecord, error) {
	sched, err := cron.ParseStandard(stream.Schedule)
	if err != nil {
		return nil, fmt.Errorf("stream %q: %w", stream.ID, err)
	}
	grades := gradeWeights(stream.Grades)
	probability := 1.0
	if stream.Probability != nil {
		probability = *stream.Probability
	}

	windowStart := scheduleDay.Add(time.Duration(start) * time.Minute)
	windowEnd := scheduleDay.Add(time.Duration(end) * time.Minute)

	var records []sim.ArrivalRecord
	// Next returns times strictly after its argument; step back so a tick at
	// windowStart itself is included. Cron ticks land on whole minutes, but
	// @every ticks carry the step-back and land a second early, so each tick
	// is rounded to the nearest minute.
	for next := sched.Next(windowStart.Add(-time.Nanosecond)); !next.IsZero(); next = sched.Next(next) {
		at := next.Round(time.Minute)
		if !at.Before(windowEnd) {
			break
		}
		if probability < 1 && rng.Float64() >= probability {
			continue
		}
		minute := int64(at.Sub(scheduleDay) / time.Minute)
		records = append(records, sim.ArrivalRecord{
			Time:   minute,
			Volume: stream.Volume.Min + rng.Intn(stream.Volume.Max-stream.Volume.Min+1),
			Grade:  pickGrade(grades, rng),
		})
	}
	return records, nil
}

// gradeWeights orders a stream's grade map so sampling is deterministic.
func gradeWeights(labels map[string]float64) []weightedGrade {
	out := make([]weightedGrade, 0, len(labels))
	for label, w := range labels {
		g, _ := sim.ParseGrade(label) // validated
		out = append(out, weightedGrade{grade: g, weight: w})
	}
	slices.SortFunc(out, func(a, b weightedGrade) int { return int(a.grade) - int(b.grade) })
	return out
}

func pickGrade(grades []weightedGrade, rng *rand.Rand) sim.Grade {
	total := 0.0
	for _, g := range grades {
		total += g.weight
	}
	r := rng.Float64() * total
	for _, g := range grades {
		if r < g.weight {
			return g.grade
		}
		r -= g.weight
	}
	return grades[len(grades)-1].grade
}
