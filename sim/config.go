package sim

import (
	"fmt"
	"slices"

	"github.com/inference-sim/fuel-sim/sim/trace"
)

// PumpConfig describes one pump as listed in the station setup.
type PumpConfig struct {
	ID       int     // unique, > 0
	Capacity int     // maximum queue length (must be > 0)
	Grades   []Grade // grades dispensed (at least one, no duplicates)
}

// PriceTable maps a grade to its unit price per liter.
type PriceTable map[Grade]float64

// DefaultPrices is used when no price file is supplied.
var DefaultPrices = PriceTable{
	Grade80: 54.23,
	Grade92: 60.53,
	Grade95: 64.97,
	Grade98: 85.05,
}

// Clone returns an independent copy of the table.
func (pt PriceTable) Clone() PriceTable {
	out := make(PriceTable, len(pt))
	for g, p := range pt {
		out[g] = p
	}
	return out
}

// StationConfig is the static description of the station for one run.
type StationConfig struct {
	Pumps  []PumpConfig
	Prices PriceTable
}

// Validate checks pump definitions and that every dispensed grade has a price.
func (c StationConfig) Validate() error {
	if len(c.Pumps) == 0 {
		return fmt.Errorf("at least one pump required")
	}
	seen := make(map[int]bool, len(c.Pumps))
	for _, p := range c.Pumps {
		if p.ID <= 0 {
			return fmt.Errorf("pump id must be positive, got %d", p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate pump id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Capacity <= 0 {
			return fmt.Errorf("pump %d: capacity must be positive, got %d", p.ID, p.Capacity)
		}
		if len(p.Grades) == 0 {
			return fmt.Errorf("pump %d: at least one grade required", p.ID)
		}
		grades := make(map[Grade]bool, len(p.Grades))
		for _, g := range p.Grades {
			if !g.IsValid() {
				return fmt.Errorf("pump %d: unknown grade %d", p.ID, int(g))
			}
			if grades[g] {
				return fmt.Errorf("pump %d: duplicate grade %s", p.ID, g)
			}
			grades[g] = true
			if _, ok := c.Prices[g]; !ok {
				return fmt.Errorf("pump %d: no price for grade %s", p.ID, g)
			}
		}
	}
	for g, price := range c.Prices {
		if price < 0 {
			return fmt.Errorf("price for %s must be non-negative, got %f", g, price)
		}
	}
	return nil
}

// SimConfig groups everything a Simulator needs besides the customers.
type SimConfig struct {
	Station   StationConfig
	Allocator string // "least-occupied" (default) or "first-available"
	Observers []Observer
	Trace     trace.TraceConfig
}

// sortedPumps builds pumps in ascending id order.
func sortedPumps(cfgs []PumpConfig) []*Pump {
	pumps := make([]*Pump, 0, len(cfgs))
	for _, pc := range cfgs {
		pumps = append(pumps, NewPump(pc))
	}
	slices.SortFunc(pumps, func(a, b *Pump) int { return a.ID - b.ID })
	return pumps
}
