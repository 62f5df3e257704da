package sim

// NotificationKind labels a status notification.
type NotificationKind string

const (
	NotifyArrival   NotificationKind = "arrival"
	NotifyRejection NotificationKind = "rejection"
	NotifyDeparture NotificationKind = "departure"
)

// Notification is emitted once per processed event, after state has changed.
type Notification struct {
	Kind     NotificationKind
	Clock    int64
	Customer *Customer
	PumpID   int            // 0 for rejections
	Reason   string         // allocation reason or rejection cause
	Pumps    []PumpSnapshot // every pump, ascending id, after the event
}

// Observer receives notifications in processing order.
// Customer and Pumps are read-only for observers.
type Observer interface {
	Observe(n Notification)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(n Notification)

// Observe implements Observer.
func (f ObserverFunc) Observe(n Notification) { f(n) }
