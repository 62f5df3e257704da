package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_RecordSaleAndRejection(t *testing.T) {
	// GIVEN empty statistics
	s := NewStatistics()

	// WHEN sales and rejections are recorded
	s.RecordSale(Grade92, 40, 60.53)
	s.RecordSale(Grade92, 10, 60.53)
	s.RecordSale(Grade98, 20, 85.05)
	s.RecordRejection()

	// THEN the summary reflects every entry
	sum := s.Summary()
	assert.Equal(t, map[Grade]int64{Grade92: 50, Grade98: 20}, sum.LitersSold)
	assert.InDelta(t, 50*60.53+20*85.05, sum.Revenue, 1e-9)
	assert.Equal(t, 1, sum.Rejected)
	assert.Equal(t, 3, sum.Served)
	assert.Equal(t, 4, sum.Arrivals)
	assert.Equal(t, int64(70), sum.TotalLiters())
}

func TestStatistics_SummaryIsACopy(t *testing.T) {
	s := NewStatistics()
	s.RecordSale(Grade80, 5, 1)
	sum := s.Summary()

	s.RecordSale(Grade80, 5, 1)

	assert.Equal(t, int64(5), sum.LitersSold[Grade80])
}
