package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationConfig_Validate(t *testing.T) {
	valid := scenarioStation()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *StationConfig)
		errMsg string
	}{
		{"no pumps", func(c *StationConfig) { c.Pumps = nil }, "at least one pump"},
		{"zero id", func(c *StationConfig) { c.Pumps[0].ID = 0 }, "must be positive"},
		{"duplicate id", func(c *StationConfig) { c.Pumps[1].ID = 1 }, "duplicate pump id 1"},
		{"zero capacity", func(c *StationConfig) { c.Pumps[0].Capacity = 0 }, "capacity must be positive"},
		{"no grades", func(c *StationConfig) { c.Pumps[0].Grades = nil }, "at least one grade"},
		{"unknown grade", func(c *StationConfig) { c.Pumps[0].Grades = []Grade{91} }, "unknown grade 91"},
		{"duplicate grade", func(c *StationConfig) { c.Pumps[2].Grades = []Grade{Grade95, Grade95} }, "duplicate grade AI-95"},
		{"missing price", func(c *StationConfig) { delete(c.Prices, Grade98) }, "no price for grade AI-98"},
		{"negative price", func(c *StationConfig) { c.Prices[Grade80] = -1 }, "must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scenarioStation()
			tt.mutate(&c)
			err := c.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestPriceTable_Clone_Independent(t *testing.T) {
	c := DefaultPrices.Clone()
	c[Grade80] = 1
	assert.Equal(t, 54.23, DefaultPrices[Grade80])
}
