package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrade(t *testing.T) {
	tests := []struct {
		label   string
		want    Grade
		wantErr bool
	}{
		{"80", Grade80, false},
		{"AI-92", Grade92, false},
		{"ai-95", Grade95, false},
		{"АИ-98", Grade98, false},
		{"аи-80", Grade80, false},
		{" 92 ", Grade92, false},
		{"AI92", Grade92, false},
		{"93", 0, true},
		{"AI-100", 0, true},
		{"diesel", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseGrade(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrade_String(t *testing.T) {
	assert.Equal(t, "AI-95", Grade95.String())
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("10:36")
	require.NoError(t, err)
	assert.Equal(t, int64(636), m)

	for _, bad := range []string{"25:00", "10:60", "1036", "ten", ""} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatClock_PastMidnight(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "10:36", FormatClock(636))
	assert.Equal(t, "24:05", FormatClock(MinutesPerDay+5))
}
