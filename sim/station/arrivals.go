package station

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/inference-sim/fuel-sim/sim"
)

// LoadArrivals reads an arrival list file. See ParseArrivals for the format.
func LoadArrivals(path string) ([]sim.ArrivalRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading arrivals: %w", err)
	}
	defer f.Close()
	records, err := ParseArrivals(f, path)
	if err != nil {
		return nil, fmt.Errorf("parsing arrivals: %w", err)
	}
	return records, nil
}

// ParseArrivals parses one vehicle per line: "<HH:MM> <liters> <grade>".
// Lines need not be sorted. Volume must be an integer in [1, sim.MaxVolume].
func ParseArrivals(r io.Reader, name string) ([]sim.ArrivalRecord, error) {
	var records []sim.ArrivalRecord
	err := scanRecords(r, func(lineNo int, fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("%s:%d: want \"<HH:MM> <liters> <grade>\", got %d fields", name, lineNo, len(fields))
		}
		at, err := sim.ParseClock(fields[0])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		volume, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%s:%d: invalid volume %q", name, lineNo, fields[1])
		}
		if volume <= 0 {
			return fmt.Errorf("%s:%d: volume must be positive, got %d", name, lineNo, volume)
		}
		if volume > sim.MaxVolume {
			return fmt.Errorf("%s:%d: volume %d exceeds the %d L limit", name, lineNo, volume, sim.MaxVolume)
		}
		grade, err := sim.ParseGrade(fields[2])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		records = append(records, sim.ArrivalRecord{Time: at, Volume: volume, Grade: grade, Line: lineNo})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// WriteArrivals writes records in the format ParseArrivals reads.
func WriteArrivals(w io.Writer, records []sim.ArrivalRecord) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "%s %d %d\n", sim.FormatClock(rec.Time), rec.Volume, int(rec.Grade)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
