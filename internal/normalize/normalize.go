package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/festroi/festroi/internal/models"
)

// aliases maps each canonical field to its accepted header spellings, in
// priority order. Lookup is case-insensitive after trimming.
var aliases = map[string][]string{
	"date":        {"date", "day", "event_date"},
	"festival":    {"festival", "festival_name", "event", "name"},
	"region":      {"region", "market", "location"},
	"channel":     {"channel", "marketing_channel", "source"},
	"spend":       {"spend", "cost", "ad_spend"},
	"revenue":     {"revenue", "sales", "income"},
	"impressions": {"impressions", "impression"},
	"clicks":      {"clicks", "click"},
	"visits":      {"visits", "visit", "sessions"},
	"tickets":     {"tickets", "ticket", "orders"},
	"visitors":    {"visitors", "visitor", "attendance"},
	"ltv":         {"ltv", "lifetime_value"},
}

var dateLayouts = []string{"2006-01-02", "2006/01/02"}

// Record converts one raw row into a typed Record. The second return is false
// when date or festival is empty after trimming; such rows are dropped.
func Record(row map[string]string) (models.Record, bool) {
	lowered := make(map[string]string, len(row))
	for k, v := range row {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}

	d, ok := parseDate(lookup(lowered, "date"))
	festival := lookup(lowered, "festival")
	if !ok || festival == "" {
		return models.Record{}, false
	}

	return models.Record{
		Date:        d,
		Festival:    festival,
		Region:      lookup(lowered, "region"),
		Channel:     lookup(lowered, "channel"),
		Spend:       nonNeg(toFloat(lookup(lowered, "spend"))),
		Revenue:     toFloat(lookup(lowered, "revenue")),
		Impressions: toCount(lookup(lowered, "impressions")),
		Clicks:      toCount(lookup(lowered, "clicks")),
		Visits:      toCount(lookup(lowered, "visits")),
		Tickets:     toCount(lookup(lowered, "tickets")),
		Visitors:    toCount(lookup(lowered, "visitors")),
		LTV:         toFloat(lookup(lowered, "ltv")),
	}, true
}

// Records normalizes a row sequence, excluding rows missing date or festival.
func Records(rows []map[string]string) []models.Record {
	out := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		if r, ok := Record(row); ok {
			out = append(out, r)
		}
	}
	return out
}

func lookup(lowered map[string]string, field string) string {
	for _, a := range aliases[field] {
		if v, ok := lowered[a]; ok {
			v = strings.TrimSpace(v)
			if v != "" {
				return v
			}
		}
	}
	return ""
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toFloat coerces a numeric string to float64, tolerating a currency prefix
// and thousands separators. Anything unparseable becomes 0.
func toFloat(s string) float64 {
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func toCount(s string) int {
	return int(nonNeg(toFloat(s)))
}

func nonNeg(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
