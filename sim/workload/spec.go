// Package workload generates synthetic arrival lists from a fleet spec:
// streams of vehicles whose arrival minutes follow cron schedules.
package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/fuel-sim/sim"
)

// FleetSpec is the top-level workload configuration.
// Loaded from YAML via LoadFleetSpec(path).
type FleetSpec struct {
	Version  string       `yaml:"version"`
	Seed     int64        `yaml:"seed"`
	DayStart string       `yaml:"day_start,omitempty"` // "HH:MM", default "00:00"
	DayEnd   string       `yaml:"day_end,omitempty"`   // "HH:MM" exclusive, default end of day
	Streams  []StreamSpec `yaml:"streams"`
}

// StreamSpec defines one group of vehicles sharing a schedule and fuel habits.
type StreamSpec struct {
	ID          string             `yaml:"id"`
	Schedule    string             `yaml:"schedule"`              // five-field cron expression or descriptor
	Grades      map[string]float64 `yaml:"grades"`                // grade label → relative weight
	Volume      VolumeSpec         `yaml:"volume"`                // liters, uniform in [min, max]
	Probability *float64           `yaml:"probability,omitempty"` // chance a schedule tick produces a vehicle (default 1)
}

// VolumeSpec bounds the liters requested by a stream's vehicles.
type VolumeSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// LoadFleetSpec reads and parses a YAML fleet spec. Unknown fields are rejected.
func LoadFleetSpec(path string) (*FleetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet spec: %w", err)
	}
	var spec FleetSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing fleet spec: %w", err)
	}
	return &spec, nil
}

// window returns the generation window in minutes since midnight.
func (s *FleetSpec) window() (start, end int64, err error) {
	start, end = 0, sim.MinutesPerDay
	if s.DayStart != "" {
		if start, err = sim.ParseClock(s.DayStart); err != nil {
			return 0, 0, fmt.Errorf("day_start: %w", err)
		}
	}
	if s.DayEnd != "" {
		if end, err = sim.ParseClock(s.DayEnd); err != nil {
			return 0, 0, fmt.Errorf("day_end: %w", err)
		}
	}
	if end <= start {
		return 0, 0, fmt.Errorf("day_end %s must be after day_start %s", sim.FormatClock(end), sim.FormatClock(start))
	}
	return start, end, nil
}

// Validate checks that all fields of the fleet spec are valid.
func (s *FleetSpec) Validate() error {
	if _, _, err := s.window(); err != nil {
		return err
	}
	if len(s.Streams) == 0 {
		return fmt.Errorf("at least one stream required")
	}
	ids := make(map[string]bool, len(s.Streams))
	for i := range s.Streams {
		st := &s.Streams[i]
		if st.ID == "" {
			return fmt.Errorf("stream %d: id required", i)
		}
		if ids[st.ID] {
			return fmt.Errorf("duplicate stream id %q", st.ID)
		}
		ids[st.ID] = true
		if _, err := cron.ParseStandard(st.Schedule); err != nil {
			return fmt.Errorf("stream %q: invalid schedule %q: %w", st.ID, st.Schedule, err)
		}
		if len(st.Grades) == 0 {
			return fmt.Errorf("stream %q: at least one grade required", st.ID)
		}
		grades := make(map[sim.Grade]bool, len(st.Grades))
		for label, w := range st.Grades {
			g, err := sim.ParseGrade(label)
			if err != nil {
				return fmt.Errorf("stream %q: %w", st.ID, err)
			}
			if grades[g] {
				return fmt.Errorf("stream %q: grade %s listed twice", st.ID, g)
			}
			grades[g] = true
			if w <= 0 {
				return fmt.Errorf("stream %q: weight for %s must be positive, got %f", st.ID, label, w)
			}
		}
		if st.Volume.Min <= 0 || st.Volume.Max < st.Volume.Min {
			return fmt.Errorf("stream %q: volume range [%d, %d] invalid; need 0 < min <= max", st.ID, st.Volume.Min, st.Volume.Max)
		}
		if st.Volume.Max > sim.MaxVolume {
			return fmt.Errorf("stream %q: volume max %d exceeds the %d L limit", st.ID, st.Volume.Max, sim.MaxVolume)
		}
		if st.Probability != nil && (*st.Probability <= 0 || *st.Probability > 1) {
			return fmt.Errorf("stream %q: probability must be in (0, 1], got %f", st.ID, *st.Probability)
		}
	}
	return nil
}
