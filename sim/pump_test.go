package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPump_SortsGrades(t *testing.T) {
	p := NewPump(PumpConfig{ID: 3, Capacity: 4, Grades: []Grade{Grade98, Grade92, Grade95}})
	assert.Equal(t, []Grade{Grade92, Grade95, Grade98}, p.Grades)
	assert.True(t, p.Supports(Grade95))
	assert.False(t, p.Supports(Grade80))
}

func TestPump_AdmitRelease_TracksOccupancy(t *testing.T) {
	p := NewPump(PumpConfig{ID: 1, Capacity: 2, Grades: []Grade{Grade92}})
	a := NewCustomer(1, 0, 10, Grade92, 2)
	b := NewCustomer(2, 1, 10, Grade92, 3)

	p.admit(a)
	p.admit(b)
	assert.Equal(t, 2, p.Occupancy())
	assert.False(t, p.HasCapacity())

	// Removal is by identity, not position
	p.release(a)
	assert.Equal(t, []*Customer{b}, p.Customers())
	assert.Equal(t, []int{2}, p.Snapshot().CustomerIDs)
}

func TestPump_InvariantViolations_Panic(t *testing.T) {
	p := NewPump(PumpConfig{ID: 1, Capacity: 1, Grades: []Grade{Grade92}})

	assert.Panics(t, func() { p.admit(NewCustomer(1, 0, 10, Grade80, 1)) }, "unsupported grade")

	p.admit(NewCustomer(2, 0, 10, Grade92, 1))
	assert.Panics(t, func() { p.admit(NewCustomer(3, 0, 10, Grade92, 1)) }, "over capacity")
	assert.Panics(t, func() { p.release(NewCustomer(4, 0, 10, Grade92, 1)) }, "unknown customer")
}
