package engine

import (
	"sort"
	"strings"

	"github.com/festroi/festroi/internal/models"
)

const maxTerms = 25

// WeighTerms counts token frequencies across the records' categorical fields:
// channel, region, and each whitespace-delimited token of the festival name.
// Output is sorted by descending weight, ties kept in first-seen order, and
// truncated to the top 25. Plain frequency counts; no stemming or stop words.
func WeighTerms(records []models.Record) []models.TermWeight {
	counts := make(map[string]int)
	order := make([]string, 0)

	bump := func(tok string) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	for _, r := range records {
		bump(r.Channel)
		bump(r.Region)
		for _, tok := range strings.Fields(r.Festival) {
			bump(tok)
		}
	}

	out := make([]models.TermWeight, 0, len(order))
	for _, tok := range order {
		out = append(out, models.TermWeight{Term: tok, Weight: counts[tok]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	if len(out) > maxTerms {
		out = out[:maxTerms]
	}
	return out
}
