// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/fuel-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, station state, and the event loop.
// One Simulator serves exactly one run; nothing it mutates is shared with other runs.
type Simulator struct {
	Clock int64
	// EventQueue has all pending arrival and departure events
	EventQueue *EventQueue
	// Pumps in ascending id order
	Pumps     []*Pump
	pumpByID  map[int]*Pump
	Prices    PriceTable
	Allocator Allocator
	Stats     *Statistics
	Customers []*Customer
	// Trace is nil unless decision tracing is enabled
	Trace     *trace.SimulationTrace
	observers []Observer
}

// NewSimulator builds a run over customers, which must come from PrepareCustomers
// (or otherwise be pending with valid departure times).
// Panics if the station config is invalid or the allocator name is unknown;
// callers validate input first.
func NewSimulator(cfg SimConfig, customers []*Customer) *Simulator {
	if err := cfg.Station.Validate(); err != nil {
		panic(fmt.Sprintf("NewSimulator: %v", err))
	}
	pumps := sortedPumps(cfg.Station.Pumps)
	byID := make(map[int]*Pump, len(pumps))
	for _, p := range pumps {
		byID[p.ID] = p
	}

	s := &Simulator{
		Clock:      0,
		EventQueue: NewEventQueue(),
		Pumps:      pumps,
		pumpByID:   byID,
		Prices:     cfg.Station.Prices.Clone(),
		Allocator:  NewAllocator(cfg.Allocator),
		Stats:      NewStatistics(),
		Customers:  customers,
		observers:  cfg.Observers,
	}
	if cfg.Trace.Level == trace.TraceLevelDecisions {
		s.Trace = trace.NewSimulationTrace(cfg.Trace)
	}

	for _, c := range customers {
		if c.State != StatePending {
			panic(fmt.Sprintf("NewSimulator: customer %d is %s, want %s", c.ID, c.State, StatePending))
		}
		s.Schedule(NewArrivalEvent(c))
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	sim.EventQueue.Schedule(ev)
}

// Pump returns the pump with the given id, or nil.
func (sim *Simulator) Pump(id int) *Pump {
	return sim.pumpByID[id]
}

// Run processes events until the queue drains and returns the final statistics.
func (sim *Simulator) Run() Summary {
	for {
		ev := sim.EventQueue.PopNext()
		if ev == nil {
			break
		}
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[%s] Executing %T", FormatClock(sim.Clock), ev)
		ev.Execute(sim)
	}
	sim.checkDrained()
	summary := sim.Stats.Summary()
	logrus.Infof("[%s] Simulation ended: %d served, %d rejected, revenue %.2f",
		FormatClock(sim.Clock), summary.Served, summary.Rejected, summary.Revenue)
	return summary
}

func (sim *Simulator) handleArrival(e *ArrivalEvent) {
	c := e.Customer
	if c.State != StatePending {
		panic(fmt.Sprintf("arrival for customer %d in state %s", c.ID, c.State))
	}
	decision := sim.Allocator.FindPump(c.Grade, sim.Pumps)
	sim.recordDecision(c, decision)

	if !decision.OK {
		c.State = StateRejected
		sim.Stats.RecordRejection()
		logrus.Debugf("[%s] customer %d rejected: %s", FormatClock(sim.Clock), c.ID, decision.Reason)
		sim.notify(Notification{Kind: NotifyRejection, Clock: sim.Clock, Customer: c, Reason: decision.Reason})
		return
	}

	pump := sim.pumpByID[decision.PumpID]
	if pump == nil {
		panic(fmt.Sprintf("allocator returned unknown pump %d for customer %d", decision.PumpID, c.ID))
	}
	pump.admit(c)
	c.State = StateServed
	c.PumpID = pump.ID
	sim.Schedule(NewDepartureEvent(c, pump.ID))
	sim.notify(Notification{Kind: NotifyArrival, Clock: sim.Clock, Customer: c, PumpID: pump.ID, Reason: decision.Reason})
}

func (sim *Simulator) handleDeparture(e *DepartureEvent) {
	c := e.Customer
	if c.State != StateServed {
		panic(fmt.Sprintf("departure for customer %d in state %s", c.ID, c.State))
	}
	pump := sim.pumpByID[e.PumpID]
	if pump == nil {
		panic(fmt.Sprintf("departure for customer %d bound to unknown pump %d", c.ID, e.PumpID))
	}
	pump.release(c)

	price, ok := sim.Prices[c.Grade]
	if !ok {
		panic(fmt.Sprintf("no price for %s sold at pump %d", c.Grade, pump.ID))
	}
	sim.Stats.RecordSale(c.Grade, c.Volume, price)
	sim.Stats.recordPumpService(pump.ID)
	c.State = StateDeparted
	sim.notify(Notification{Kind: NotifyDeparture, Clock: sim.Clock, Customer: c, PumpID: pump.ID})
}

// Snapshot returns the state of every pump in ascending id order.
func (sim *Simulator) Snapshot() []PumpSnapshot {
	out := make([]PumpSnapshot, len(sim.Pumps))
	for i, p := range sim.Pumps {
		out[i] = p.Snapshot()
	}
	return out
}

func (sim *Simulator) notify(n Notification) {
	if len(sim.observers) == 0 {
		return
	}
	n.Pumps = sim.Snapshot()
	for _, o := range sim.observers {
		o.Observe(n)
	}
}

func (sim *Simulator) recordDecision(c *Customer, d AllocationDecision) {
	if sim.Trace == nil {
		return
	}
	candidates := make([]trace.CandidatePump, len(d.Candidates))
	for i, cp := range d.Candidates {
		candidates[i] = trace.CandidatePump{PumpID: cp.PumpID, Occupancy: cp.Occupancy, Capacity: cp.Capacity}
	}
	sim.Trace.RecordAllocation(trace.AllocationRecord{
		CustomerID: c.ID,
		Clock:      sim.Clock,
		Grade:      int(c.Grade),
		Allocated:  d.OK,
		ChosenPump: d.PumpID,
		Reason:     d.Reason,
		Candidates: candidates,
	})
}

// checkDrained panics if any customer or pump is left mid-service.
func (sim *Simulator) checkDrained() {
	for _, c := range sim.Customers {
		if !c.State.IsTerminal() {
			panic(fmt.Sprintf("simulation ended with customer %d in state %s", c.ID, c.State))
		}
	}
	for _, p := range sim.Pumps {
		if p.Occupancy() != 0 {
			panic(fmt.Sprintf("simulation ended with pump %d still holding %d customers", p.ID, p.Occupancy()))
		}
	}
}
