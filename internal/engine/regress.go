package engine

import "github.com/festroi/festroi/internal/models"

// Fit computes an ordinary least-squares line over the points. The
// denominator is floored at 1 so a constant-x input degrades to a flat-ish
// line instead of dividing by zero; that floor is an approximation, not true
// degenerate-case handling. An empty input yields {0, 0}.
func Fit(points []models.TrendPoint) models.Trend {
	n := float64(len(points))
	if n == 0 {
		return models.Trend{}
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}

	den := n*sumXX - sumX*sumX
	if den < 1 {
		den = 1
	}
	slope := (n*sumXY - sumX*sumY) / den
	intercept := sumY/n - slope*sumX/n
	return models.Trend{Intercept: intercept, Slope: slope}
}

// Segment evaluates the fitted line at the min and max x of the input,
// producing the two endpoints of a display overlay. With no points the
// default domain [0, 1] is used.
func Segment(t models.Trend, points []models.TrendPoint) [2]models.TrendPoint {
	lo, hi := 0.0, 1.0
	if len(points) > 0 {
		lo, hi = points[0].X, points[0].X
		for _, p := range points[1:] {
			if p.X < lo {
				lo = p.X
			}
			if p.X > hi {
				hi = p.X
			}
		}
	}
	return [2]models.TrendPoint{
		{X: lo, Y: t.Intercept + t.Slope*lo},
		{X: hi, Y: t.Intercept + t.Slope*hi},
	}
}

// TrendPoints projects records onto (spend, revenue) regression inputs.
func TrendPoints(records []models.Record) []models.TrendPoint {
	out := make([]models.TrendPoint, 0, len(records))
	for _, r := range records {
		out = append(out, models.TrendPoint{X: r.Spend, Y: r.Revenue})
	}
	return out
}
