package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/festroi/festroi/internal/models"
)

func sampleSet() []models.Record {
	return []models.Record{
		{Date: day(1), Festival: "Spring Lights", Region: "North", Channel: "social"},
		{Date: day(5), Festival: "Coastal Sounds", Region: "West", Channel: "search"},
		{Date: day(9), Festival: "Harvest Gala", Region: "East", Channel: "social"},
		{Date: day(12), Festival: "Winter Village", Region: "North", Channel: "email"},
	}
}

func TestFilterUnsetMatchesAll(t *testing.T) {
	in := sampleSet()
	out := ApplyFilter(in, models.Filter{})
	assert.Equal(t, in, out)

	out = ApplyFilter(in, models.Filter{Festival: "All", Channel: "All"})
	assert.Equal(t, in, out)
}

func TestFilterDateWindowInclusive(t *testing.T) {
	out := ApplyFilter(sampleSet(), models.Filter{DateStart: day(5), DateEnd: day(9)})
	assert.Len(t, out, 2)
	assert.Equal(t, "Coastal Sounds", out[0].Festival)
	assert.Equal(t, "Harvest Gala", out[1].Festival)
}

func TestFilterConjunction(t *testing.T) {
	out := ApplyFilter(sampleSet(), models.Filter{Region: "North", Channel: "social"})
	assert.Len(t, out, 1)
	assert.Equal(t, "Spring Lights", out[0].Festival)
}

func TestFilterFreeTextCaseInsensitive(t *testing.T) {
	out := ApplyFilter(sampleSet(), models.Filter{FreeText: "coastal"})
	assert.Len(t, out, 1)
	assert.Equal(t, "Coastal Sounds", out[0].Festival)

	// matches across the festival+region+channel concatenation
	out = ApplyFilter(sampleSet(), models.Filter{FreeText: "EMAIL"})
	assert.Len(t, out, 1)
	assert.Equal(t, "Winter Village", out[0].Festival)
}

func TestFilterPreservesOrder(t *testing.T) {
	in := sampleSet()
	out := ApplyFilter(in, models.Filter{Channel: "social"})
	assert.Len(t, out, 2)
	assert.True(t, out[0].Date.Before(out[1].Date))
}

func TestFilterEmptyResult(t *testing.T) {
	out := ApplyFilter(sampleSet(), models.Filter{Festival: "Nope", DateStart: time.Time{}})
	assert.Empty(t, out)
}
