// Package observability exports simulation activity as Prometheus metrics.
package observability

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/inference-sim/fuel-sim/sim"
)

// Collector bundles the station's Prometheus metrics and implements
// sim.Observer so it can be attached to a Simulator.
type Collector struct {
	gatherer prometheus.Gatherer

	Arrivals        *prometheus.CounterVec
	Rejections      *prometheus.CounterVec
	Departures      *prometheus.CounterVec
	LitersSold      *prometheus.CounterVec
	Revenue         prometheus.Counter
	PumpOccupancy   *prometheus.GaugeVec
	ServiceDuration prometheus.Histogram

	prices sim.PriceTable
}

// NewCollector registers the station metrics against reg, defaulting to the
// global Prometheus registry when nil. prices values departures for the
// revenue counter.
func NewCollector(reg prometheus.Registerer, prices sim.PriceTable) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		prices:   prices.Clone(),
		Arrivals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelsim_arrivals_total",
			Help: "Vehicles admitted to a pump, labeled by grade.",
		}, []string{"grade"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelsim_rejections_total",
			Help: "Vehicles turned away because no eligible pump had a free slot, labeled by grade.",
		}, []string{"grade"}),
		Departures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelsim_departures_total",
			Help: "Vehicles that finished fueling, labeled by pump.",
		}, []string{"pump"}),
		LitersSold: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fuelsim_liters_sold_total",
			Help: "Liters dispensed, labeled by grade.",
		}, []string{"grade"}),
		Revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fuelsim_revenue_total",
			Help: "Revenue from completed sales.",
		}),
		PumpOccupancy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fuelsim_pump_occupancy",
			Help: "Vehicles currently queued at a pump after the last processed event.",
		}, []string{"pump"}),
		ServiceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fuelsim_service_duration_minutes",
			Help:    "Minutes a served vehicle occupied its pump slot.",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
	}

	for name, col := range map[string]prometheus.Collector{
		"fuelsim_arrivals_total":           c.Arrivals,
		"fuelsim_rejections_total":         c.Rejections,
		"fuelsim_departures_total":         c.Departures,
		"fuelsim_liters_sold_total":        c.LitersSold,
		"fuelsim_revenue_total":            c.Revenue,
		"fuelsim_pump_occupancy":           c.PumpOccupancy,
		"fuelsim_service_duration_minutes": c.ServiceDuration,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
	}
	return c, nil
}

// Observe implements sim.Observer.
func (c *Collector) Observe(n sim.Notification) {
	grade := n.Customer.Grade.String()
	switch n.Kind {
	case sim.NotifyArrival:
		c.Arrivals.WithLabelValues(grade).Inc()
	case sim.NotifyRejection:
		c.Rejections.WithLabelValues(grade).Inc()
	case sim.NotifyDeparture:
		c.Departures.WithLabelValues(strconv.Itoa(n.PumpID)).Inc()
		c.LitersSold.WithLabelValues(grade).Add(float64(n.Customer.Volume))
		c.Revenue.Add(float64(n.Customer.Volume) * c.prices[n.Customer.Grade])
		c.ServiceDuration.Observe(float64(n.Customer.ServiceDuration()))
	}
	for _, p := range n.Pumps {
		c.PumpOccupancy.WithLabelValues(strconv.Itoa(p.ID)).Set(float64(p.Occupancy))
	}
}

// WriteTextfile writes every gathered metric to path in the Prometheus text
// format, for the node exporter's textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
