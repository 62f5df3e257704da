// Package station reads and writes the station's input files: pump setup,
// arrival lists and price tables.
package station

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inference-sim/fuel-sim/sim"
)

// LoadPumps reads a pump setup file. See ParsePumps for the format.
func LoadPumps(path string) ([]sim.PumpConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading pump setup: %w", err)
	}
	defer f.Close()
	pumps, err := ParsePumps(f, path)
	if err != nil {
		return nil, fmt.Errorf("parsing pump setup: %w", err)
	}
	return pumps, nil
}

// ParsePumps parses one pump per line: "<id> <capacity> <grade>+", e.g.
//
//	1 3 АИ-80
//	3 4 АИ-92 АИ-95 АИ-98
//
// Blank lines and lines starting with '#' are skipped. name prefixes errors.
func ParsePumps(r io.Reader, name string) ([]sim.PumpConfig, error) {
	var pumps []sim.PumpConfig
	err := scanRecords(r, func(lineNo int, fields []string) error {
		if len(fields) < 3 {
			return fmt.Errorf("%s:%d: want \"<id> <capacity> <grade>...\", got %d fields", name, lineNo, len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%s:%d: invalid pump id %q", name, lineNo, fields[0])
		}
		capacity, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%s:%d: invalid capacity %q", name, lineNo, fields[1])
		}
		grades := make([]sim.Grade, 0, len(fields)-2)
		for _, label := range fields[2:] {
			g, err := sim.ParseGrade(label)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", name, lineNo, err)
			}
			grades = append(grades, g)
		}
		pumps = append(pumps, sim.PumpConfig{ID: id, Capacity: capacity, Grades: grades})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pumps) == 0 {
		return nil, fmt.Errorf("%s: no pumps defined", name)
	}
	return pumps, nil
}

// scanRecords calls fn with the whitespace-separated fields of every
// non-blank, non-comment line.
func scanRecords(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNo, strings.Fields(line)); err != nil {
			return err
		}
	}
	return sc.Err()
}
