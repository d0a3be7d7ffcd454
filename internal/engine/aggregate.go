package engine

import (
	"strings"

	"github.com/festroi/festroi/internal/models"
)

// Aggregate groups records by one or more dimensions and sums every counter
// per group. Groups appear in first-seen order of their key values; ratios
// are computed on the summed totals, never averaged per record.
func Aggregate(records []models.Record, dims ...models.Dimension) []models.AggRow {
	if len(dims) == 0 {
		dims = []models.Dimension{models.DimFestival}
	}

	index := make(map[string]int)
	rows := make([]models.AggRow, 0)

	for _, r := range records {
		key := groupKey(r, dims)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, newRow(key, r, dims))
		}
		rows[i].Spend += r.Spend
		rows[i].Revenue += r.Revenue
		rows[i].Impressions += r.Impressions
		rows[i].Clicks += r.Clicks
		rows[i].Visits += r.Visits
		rows[i].Tickets += r.Tickets
		rows[i].Visitors += r.Visitors
		if rows[i].Region == "" {
			rows[i].Region = r.Region
		}
	}

	for i := range rows {
		rows[i].ROI = safeDiv(rows[i].Revenue-rows[i].Spend, rows[i].Spend)
		rows[i].ROAS = safeDiv(rows[i].Revenue, rows[i].Spend)
		rows[i].CAC = safeDiv(rows[i].Spend, float64(rows[i].Tickets))
	}
	return rows
}

func groupKey(r models.Record, dims []models.Dimension) string {
	parts := make([]string, 0, len(dims))
	for _, d := range dims {
		parts = append(parts, dimValue(r, d))
	}
	return strings.Join(parts, " / ")
}

func newRow(key string, r models.Record, dims []models.Dimension) models.AggRow {
	row := models.AggRow{Key: key}
	for _, d := range dims {
		switch d {
		case models.DimDate:
			row.Date = dimValue(r, d)
		case models.DimChannel:
			row.Channel = r.Channel
		case models.DimFestival:
			row.Festival = r.Festival
		}
	}
	return row
}

func dimValue(r models.Record, d models.Dimension) string {
	switch d {
	case models.DimDate:
		return r.Date.Format("2006-01-02")
	case models.DimChannel:
		return r.Channel
	case models.DimFestival:
		return r.Festival
	}
	return ""
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
