// Package report renders the simulation's human-readable event log.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/inference-sim/fuel-sim/sim"
)

// LogWriter is a sim.Observer that writes one line per event followed by a
// snapshot of every pump. Write errors are sticky: the first one stops
// further output and is returned by Err.
type LogWriter struct {
	w   io.Writer
	err error
}

// NewLogWriter returns a LogWriter appending to w.
func NewLogWriter(w io.Writer) *LogWriter {
	return &LogWriter{w: w}
}

// Err returns the first write error, if any.
func (lw *LogWriter) Err() error {
	return lw.err
}

func (lw *LogWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

// WriteSetup logs the station layout before the first event.
func (lw *LogWriter) WriteSetup(cfg sim.StationConfig) {
	lw.printf("=== Station setup ===\n")
	pumps := slices.Clone(cfg.Pumps)
	slices.SortFunc(pumps, func(a, b sim.PumpConfig) int { return a.ID - b.ID })
	for _, p := range pumps {
		lw.printf("pump %d: max queue %d, grades %s\n", p.ID, p.Capacity, gradeList(p.Grades))
	}
	grades := make([]sim.Grade, 0, len(cfg.Prices))
	for g := range cfg.Prices {
		grades = append(grades, g)
	}
	slices.Sort(grades)
	for _, g := range grades {
		lw.printf("price %s: %.2f\n", g, cfg.Prices[g])
	}
}

// Observe implements sim.Observer.
func (lw *LogWriter) Observe(n sim.Notification) {
	c := n.Customer
	at := sim.FormatClock(n.Clock)
	switch n.Kind {
	case sim.NotifyArrival:
		lw.printf("%s arrival   vehicle %d: %s %d L -> pump %d\n", at, c.ID, c.Grade, c.Volume, n.PumpID)
	case sim.NotifyRejection:
		lw.printf("%s rejected  vehicle %d: %s %d L, %s\n", at, c.ID, c.Grade, c.Volume, n.Reason)
	case sim.NotifyDeparture:
		lw.printf("%s departure vehicle %d: %s %d L <- pump %d\n", at, c.ID, c.Grade, c.Volume, n.PumpID)
	default:
		lw.printf("%s %s vehicle %d\n", at, n.Kind, c.ID)
	}
	for _, p := range n.Pumps {
		lw.printf("  pump %d  max %d  %-20s %s\n", p.ID, p.Capacity, gradeList(p.Grades), OccupancyBar(p.Occupancy, p.Capacity))
	}
}

// WriteReport logs the end-of-day totals.
func (lw *LogWriter) WriteReport(s sim.Summary) {
	lw.printf("=== End of day ===\n")
	for _, g := range sim.AllGrades {
		lw.printf("%s sold: %d L\n", g, s.LitersSold[g])
	}
	lw.printf("Total sold: %d L\n", s.TotalLiters())
	lw.printf("Revenue: %.2f\n", s.Revenue)
	lw.printf("Vehicles served: %d\n", s.Served)
	lw.printf("Vehicles rejected: %d\n", s.Rejected)
}

// OccupancyBar draws one '*' per occupied slot and '.' per free slot.
func OccupancyBar(occupancy, capacity int) string {
	free := max(capacity-occupancy, 0)
	return "[" + strings.Repeat("*", occupancy) + strings.Repeat(".", free) + "]"
}

func gradeList(grades []sim.Grade) string {
	labels := make([]string, len(grades))
	for i, g := range grades {
		labels[i] = g.String()
	}
	return strings.Join(labels, ",")
}
