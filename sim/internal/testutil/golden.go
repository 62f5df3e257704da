// Package testutil provides shared test infrastructure for the fuel station simulator.
// It holds the golden dataset types and assertion helpers used by the sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one station day whose outcome does not depend on the
// service-duration seed: every listed seed must reproduce Metrics exactly.
type GoldenTestCase struct {
	Name      string        `json:"name"`
	Pumps     []string      `json:"pumps"`    // setup file lines
	Arrivals  []string      `json:"arrivals"` // arrival list lines
	Allocator string        `json:"allocator"`
	Seeds     []int64       `json:"seeds"`
	Metrics   GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected end-of-day summary of a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	Served        int              `json:"served"`
	Rejected      int              `json:"rejected"`
	LitersByGrade map[string]int64 `json:"liters_by_grade"`
	ServedByPump  map[int]int      `json:"served_by_pump"`

	// Accumulated in arrival order, compared with relative tolerance
	Revenue float64 `json:"revenue"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
