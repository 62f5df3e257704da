package sim

import (
	"math/rand"
	"slices"
)

// LitersPerMinute is the nominal dispensing rate.
const LitersPerMinute = 10

// MaxVolume is the largest request a single vehicle may make, in liters.
// Input files asking for more are rejected as malformed.
const MaxVolume = 10000

// ArrivalRecord is one raw line of the arrival list.
type ArrivalRecord struct {
	Time   int64 // Minutes since midnight
	Volume int   // Liters, > 0
	Grade  Grade
	Line   int // Source line number (0 when generated)
}

// ServiceDuration returns the minutes needed to dispense volume liters:
// ceil(volume / LitersPerMinute) perturbed by -1, 0 or +1, never below 1.
func ServiceDuration(volume int, rng *rand.Rand) int64 {
	base := int64(volume / LitersPerMinute)
	if volume%LitersPerMinute != 0 {
		base++
	}
	d := base + int64(rng.Intn(3)-1)
	return max(1, d)
}

// PrepareCustomers turns raw records into pending customers ordered by arrival.
// Records with equal times keep their input order. Customers are numbered from 1
// in that order and each service duration is drawn exactly once from rng.
func PrepareCustomers(records []ArrivalRecord, rng *rand.Rand) []*Customer {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b ArrivalRecord) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	customers := make([]*Customer, 0, len(sorted))
	for i, rec := range sorted {
		departure := rec.Time + ServiceDuration(rec.Volume, rng)
		customers = append(customers, NewCustomer(i+1, rec.Time, rec.Volume, rec.Grade, departure))
	}
	return customers
}
