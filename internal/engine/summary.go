package engine

import "github.com/festroi/festroi/internal/models"

// Summarize computes the dataset-level rollup over a filtered record set.
// AvgROI and AvgLTV are simple per-record means; the funnel rates are ratios
// of the summed counts. An empty set yields the zero summary.
func Summarize(records []models.Record) models.Summary {
	var s models.Summary
	s.Records = len(records)
	if s.Records == 0 {
		return s
	}

	var roiSum, ltvSum float64
	var impressions, clicks, visits int
	for _, r := range records {
		s.TotalSpend += r.Spend
		s.TotalRevenue += r.Revenue
		s.TotalTickets += r.Tickets
		s.TotalVisitors += r.Visitors
		impressions += r.Impressions
		clicks += r.Clicks
		visits += r.Visits
		roiSum += safeDiv(r.Revenue-r.Spend, r.Spend)
		ltvSum += r.LTV
	}

	n := float64(s.Records)
	s.TotalProfit = s.TotalRevenue - s.TotalSpend
	s.AvgROI = roiSum / n
	s.AvgLTV = ltvSum / n
	s.CostPerVisitor = safeDiv(s.TotalSpend, float64(s.TotalVisitors))
	s.CTR = safeDiv(float64(clicks), float64(impressions))
	s.VisitRate = safeDiv(float64(visits), float64(clicks))
	s.TicketRate = safeDiv(float64(s.TotalTickets), float64(visits))
	return s
}
