package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAliasesCaseInsensitive(t *testing.T) {
	r, ok := Record(map[string]string{
		"DATE":       "2025-06-07",
		"Event":      "Coastal Sounds",
		"Market":     "West",
		"Source":     "social",
		"Cost":       "$78,000",
		"Sales":      "120000",
		"Orders":     "7200",
		"ATTENDANCE": "8500",
	})
	require.True(t, ok)
	assert.Equal(t, "Coastal Sounds", r.Festival)
	assert.Equal(t, "West", r.Region)
	assert.Equal(t, "social", r.Channel)
	assert.Equal(t, 78000.0, r.Spend)
	assert.Equal(t, 120000.0, r.Revenue)
	assert.Equal(t, 7200, r.Tickets)
	assert.Equal(t, 8500, r.Visitors)
	assert.Equal(t, "2025-06-07", r.Date.Format("2006-01-02"))
}

func TestRecordAliasPriorityOrder(t *testing.T) {
	// "spend" outranks "cost" when both are present
	r, ok := Record(map[string]string{
		"date": "2025-01-01", "festival": "A",
		"spend": "10", "cost": "99",
	})
	require.True(t, ok)
	assert.Equal(t, 10.0, r.Spend)
}

func TestRecordNumericCoercionFallsBackToZero(t *testing.T) {
	r, ok := Record(map[string]string{
		"date": "2025-01-01", "festival": "A",
		"spend": "not-a-number", "revenue": "", "ltv": "  ",
		"tickets": "-5",
	})
	require.True(t, ok)
	assert.Zero(t, r.Spend)
	assert.Zero(t, r.Revenue)
	assert.Zero(t, r.LTV)
	assert.Zero(t, r.Tickets)
}

func TestRecordDroppedWithoutDateOrFestival(t *testing.T) {
	_, ok := Record(map[string]string{"festival": "A", "spend": "10"})
	assert.False(t, ok)

	_, ok = Record(map[string]string{"date": "2025-01-01", "festival": "   "})
	assert.False(t, ok)

	_, ok = Record(map[string]string{"date": "01-01-2025", "festival": "A"})
	assert.False(t, ok, "unparseable date counts as missing")
}

func TestRecordSlashDateLayout(t *testing.T) {
	r, ok := Record(map[string]string{"date": "2025/06/07", "festival": "A"})
	require.True(t, ok)
	assert.Equal(t, "2025-06-07", r.Date.Format("2006-01-02"))
}

func TestRecordsExcludesMalformed(t *testing.T) {
	rows := []map[string]string{
		{"date": "2025-01-01", "festival": "A"},
		{"date": "", "festival": "B"},
		{"date": "2025-01-02", "festival": "C"},
	}
	out := Records(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Festival)
	assert.Equal(t, "C", out[1].Festival)
}
