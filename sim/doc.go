// Package sim provides the discrete-event simulation engine for fuel-sim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (pending → served → departed, or pending → rejected)
//   - event.go: Event types that drive the simulation (Arrival, Departure)
//   - simulator.go: The event loop and the arrival/departure handlers
//
// # Architecture
//
// The sim package holds the engine and its data model; I/O lives in sub-packages:
//   - sim/station/: pump setup, arrival list and price table files
//   - sim/report/: the human-readable event log
//   - sim/trace/: allocation decision trace recording
//   - sim/observability/: Prometheus metrics fed by engine notifications
//   - sim/workload/: synthetic arrival lists from cron-scheduled vehicle streams
//
// # Key Interfaces
//
//   - Allocator: select the pump for an arriving customer (least-occupied, first-available)
//   - Observer: receive arrival, rejection and departure notifications in processing order
//
// Time is logical: one tick is one minute since midnight, and the clock only
// moves when the next event is popped from the EventQueue.
package sim
