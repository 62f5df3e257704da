// Tracks end-of-day sales statistics: liters per grade, revenue, rejections.

package sim

import "maps"

// Statistics aggregates sales and rejections for the final report.
// Mutated only by the Simulator; there is no rollback path.
type Statistics struct {
	LitersSold   map[Grade]int64 // Liters dispensed per grade
	Revenue      float64         // Sum of volume × unit price over departed customers
	Rejected     int             // Customers turned away at arrival
	Served       int             // Customers that departed after fueling
	ServedByPump map[int]int     // Pump id → departed customers
}

// NewStatistics returns zeroed statistics.
func NewStatistics() *Statistics {
	return &Statistics{
		LitersSold:   make(map[Grade]int64),
		ServedByPump: make(map[int]int),
	}
}

// RecordSale books volume liters of grade sold at price per liter.
func (s *Statistics) RecordSale(grade Grade, volume int, price float64) {
	s.LitersSold[grade] += int64(volume)
	s.Revenue += float64(volume) * price
	s.Served++
}

// RecordRejection counts one rejected customer.
func (s *Statistics) RecordRejection() {
	s.Rejected++
}

// recordPumpService attributes a departure to its pump.
func (s *Statistics) recordPumpService(pumpID int) {
	s.ServedByPump[pumpID]++
}

// Summary is the read-only end-of-run view of Statistics.
type Summary struct {
	LitersSold   map[Grade]int64
	Revenue      float64
	Rejected     int
	Served       int
	Arrivals     int
	ServedByPump map[int]int
}

// TotalLiters sums liters over all grades.
func (s Summary) TotalLiters() int64 {
	var total int64
	for _, l := range s.LitersSold {
		total += l
	}
	return total
}

// Summary returns a copy of the running totals.
func (s *Statistics) Summary() Summary {
	return Summary{
		LitersSold:   maps.Clone(s.LitersSold),
		Revenue:      s.Revenue,
		Rejected:     s.Rejected,
		Served:       s.Served,
		Arrivals:     s.Rejected + s.Served,
		ServedByPump: maps.Clone(s.ServedByPump),
	}
}
