package ingest

import (
	"time"

	"github.com/festroi/festroi/internal/models"
)

// SampleRecords is a bundled dataset so the workflow can be validated before
// an operator uploads their own.
func SampleRecords() []models.Record {
	return []models.Record{
		{Date: day(2025, 4, 12), Festival: "Spring Lights", Region: "North", Channel: "social",
			Spend: 45000, Revenue: 86000, Impressions: 520000, Clicks: 18200, Visits: 9100, Tickets: 4100, Visitors: 5000, LTV: 38},
		{Date: day(2025, 4, 19), Festival: "Spring Lights", Region: "North", Channel: "search",
			Spend: 12000, Revenue: 21000, Impressions: 140000, Clicks: 7600, Visits: 4000, Tickets: 900, Visitors: 1100, LTV: 35},
		{Date: day(2025, 6, 7), Festival: "Coastal Sounds", Region: "West", Channel: "social",
			Spend: 78000, Revenue: 120000, Impressions: 910000, Clicks: 30500, Visits: 15800, Tickets: 7200, Visitors: 8500, LTV: 44},
		{Date: day(2025, 6, 14), Festival: "Coastal Sounds", Region: "West", Channel: "email",
			Spend: 6000, Revenue: 14500, Impressions: 80000, Clicks: 9800, Visits: 5200, Tickets: 1300, Visitors: 1500, LTV: 41},
		{Date: day(2025, 9, 20), Festival: "Harvest Gala", Region: "East", Channel: "search",
			Spend: 30000, Revenue: 41000, Impressions: 260000, Clicks: 10400, Visits: 5500, Tickets: 3100, Visitors: 3600, LTV: 29},
		{Date: day(2025, 12, 6), Festival: "Winter Village", Region: "North", Channel: "social",
			Spend: 90000, Revenue: 99000, Impressions: 1200000, Clicks: 36000, Visits: 17500, Tickets: 8000, Visitors: 9200, LTV: 26},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
