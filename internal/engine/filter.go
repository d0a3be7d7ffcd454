package engine

import (
	"strings"

	"github.com/festroi/festroi/internal/models"
)

// ApplyFilter returns the records matching every set predicate, preserving
// input order. Unset predicates impose no constraint; categorical values of
// "" or "All" count as unset.
func ApplyFilter(records []models.Record, f models.Filter) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.Record, f models.Filter) bool {
	if !f.DateStart.IsZero() && r.Date.Before(f.DateStart) {
		return false
	}
	if !f.DateEnd.IsZero() && r.Date.After(f.DateEnd) {
		return false
	}
	if set(f.Festival) && r.Festival != f.Festival {
		return false
	}
	if set(f.Region) && r.Region != f.Region {
		return false
	}
	if set(f.Channel) && r.Channel != f.Channel {
		return false
	}
	if q := strings.TrimSpace(f.FreeText); q != "" {
		haystack := strings.ToLower(r.Festival + " " + r.Region + " " + r.Channel)
		if !strings.Contains(haystack, strings.ToLower(q)) {
			return false
		}
	}
	return true
}

func set(v string) bool {
	return v != "" && v != "All"
}
