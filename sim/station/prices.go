package station

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/fuel-sim/sim"
)

// PriceFile is the YAML layout of a price table:
//
//	prices:
//	  AI-92: 60.53
//	  AI-95: 64.97
type PriceFile struct {
	Prices map[string]float64 `yaml:"prices"`
}

// LoadPrices reads a YAML price table. An empty path returns sim.DefaultPrices.
func LoadPrices(path string) (sim.PriceTable, error) {
	if path == "" {
		return sim.DefaultPrices.Clone(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading price table: %w", err)
	}
	table, err := ParsePrices(data)
	if err != nil {
		return nil, fmt.Errorf("parsing price table %s: %w", path, err)
	}
	return table, nil
}

// ParsePrices decodes a YAML price table; grade keys accept any ParseGrade label.
func ParsePrices(data []byte) (sim.PriceTable, error) {
	var pf PriceFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, err
	}
	if len(pf.Prices) == 0 {
		return nil, fmt.Errorf("no prices defined")
	}
	table := make(sim.PriceTable, len(pf.Prices))
	for label, price := range pf.Prices {
		g, err := sim.ParseGrade(label)
		if err != nil {
			return nil, err
		}
		if _, dup := table[g]; dup {
			return nil, fmt.Errorf("duplicate price for %s", g)
		}
		if price < 0 {
			return nil, fmt.Errorf("price for %s must be non-negative, got %f", g, price)
		}
		table[g] = price
	}
	return table, nil
}

// LoadStation reads the pump setup and price table and validates them together.
func LoadStation(pumpsPath, pricesPath string) (sim.StationConfig, error) {
	pumps, err := LoadPumps(pumpsPath)
	if err != nil {
		return sim.StationConfig{}, err
	}
	prices, err := LoadPrices(pricesPath)
	if err != nil {
		return sim.StationConfig{}, err
	}
	cfg := sim.StationConfig{Pumps: pumps, Prices: prices}
	if err := cfg.Validate(); err != nil {
		return sim.StationConfig{}, fmt.Errorf("invalid station: %w", err)
	}
	return cfg, nil
}
