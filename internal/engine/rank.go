package engine

import (
	"sort"

	"github.com/festroi/festroi/internal/models"
)

// Rank returns a copy of rows ordered by the named field. The sort is stable:
// equal keys keep their prior relative order, and direction "none" returns the
// rows untouched. Unknown field names compare as 0 for every row, which by
// stability also preserves the input order.
func Rank(rows []models.AggRow, key string, dir models.SortDirection) []models.AggRow {
	out := make([]models.AggRow, len(rows))
	copy(out, rows)
	if dir == models.SortNone || dir == "" {
		return out
	}

	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == models.SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key string) func(a, b models.AggRow) bool {
	switch key {
	case "festival", "region", "channel", "date", "key":
		return func(a, b models.AggRow) bool { return stringField(a, key) < stringField(b, key) }
	}
	return func(a, b models.AggRow) bool { return numericField(a, key) < numericField(b, key) }
}

func stringField(r models.AggRow, key string) string {
	switch key {
	case "festival":
		return r.Festival
	case "region":
		return r.Region
	case "channel":
		return r.Channel
	case "date":
		return r.Date
	case "key":
		return r.Key
	}
	return ""
}

// numericField resolves a sortable numeric field by name; missing or unknown
// fields compare as 0.
func numericField(r models.AggRow, key string) float64 {
	switch key {
	case "spend":
		return r.Spend
	case "revenue":
		return r.Revenue
	case "impressions":
		return float64(r.Impressions)
	case "clicks":
		return float64(r.Clicks)
	case "visits":
		return float64(r.Visits)
	case "tickets":
		return float64(r.Tickets)
	case "visitors":
		return float64(r.Visitors)
	case "roi":
		return r.ROI
	case "roas":
		return r.ROAS
	case "cac":
		return r.CAC
	}
	return 0
}

// NextSort advances the sort state for a clicked column: the same key cycles
// desc, asc, none and back to desc; a different key resets to desc on that key.
func NextSort(cur models.SortState, key string) models.SortState {
	if cur.Key != key {
		return models.SortState{Key: key, Direction: models.SortDesc}
	}
	switch cur.Direction {
	case models.SortDesc:
		return models.SortState{Key: key, Direction: models.SortAsc}
	case models.SortAsc:
		return models.SortState{Key: key, Direction: models.SortNone}
	default:
		return models.SortState{Key: key, Direction: models.SortDesc}
	}
}

// TopN returns the first n rows of a descending rank by key.
func TopN(rows []models.AggRow, key string, n int) []models.AggRow {
	return headN(Rank(rows, key, models.SortDesc), n)
}

// BottomN returns the first n rows of an ascending rank by key.
func BottomN(rows []models.AggRow, key string, n int) []models.AggRow {
	return headN(Rank(rows, key, models.SortAsc), n)
}

// Underperformers returns the rows whose ROI falls below target, in input
// order.
func Underperformers(rows []models.AggRow, target float64) []models.AggRow {
	out := make([]models.AggRow, 0)
	for _, r := range rows {
		if r.ROI < target {
			out = append(out, r)
		}
	}
	return out
}

func headN(rows []models.AggRow, n int) []models.AggRow {
	if n < 0 {
		n = 0
	}
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}
