package models

import "time"

// Record is one normalized spend/revenue observation for a festival on a day.
type Record struct {
	Date        time.Time
	Festival    string
	Region      string
	Channel     string
	Spend       float64
	Revenue     float64
	Impressions int
	Clicks      int
	Visits      int
	Tickets     int
	Visitors    int
	LTV         float64
}

// Filter is a conjunction of predicates over records. Zero values impose no
// constraint; categorical fields also treat "All" as unset.
type Filter struct {
	DateStart time.Time
	DateEnd   time.Time
	Festival  string
	Region    string
	Channel   string
	FreeText  string
}

// Dimension is a grouping key for aggregation.
type Dimension string

const (
	DimDate     Dimension = "date"
	DimChannel  Dimension = "channel"
	DimFestival Dimension = "festival"
)

// AggRow is one aggregated group: summed counters plus ratios computed on the
// sums. Region carries the first-seen non-empty region of the group so ranked
// rows can be exported with the festival,region,... schema.
type AggRow struct {
	Key         string  `json:"key"`
	Date        string  `json:"date,omitempty"`
	Channel     string  `json:"channel,omitempty"`
	Festival    string  `json:"festival,omitempty"`
	Region      string  `json:"region,omitempty"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Visits      int     `json:"visits"`
	Tickets     int     `json:"tickets"`
	Visitors    int     `json:"visitors"`
	ROI         float64 `json:"roi"`
	ROAS        float64 `json:"roas"`
	CAC         float64 `json:"cac"`
}

// Summary is the dataset-level rollup over a filtered record set.
type Summary struct {
	Records        int     `json:"records"`
	TotalSpend     float64 `json:"total_spend"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalProfit    float64 `json:"total_profit"`
	TotalTickets   int     `json:"total_tickets"`
	TotalVisitors  int     `json:"total_visitors"`
	AvgROI         float64 `json:"avg_roi"`
	AvgLTV         float64 `json:"avg_ltv"`
	CostPerVisitor float64 `json:"cost_per_visitor"`
	CTR            float64 `json:"ctr"`
	VisitRate      float64 `json:"visit_rate"`
	TicketRate     float64 `json:"ticket_rate"`
}

// Trend is a fitted least-squares line y = Intercept + Slope*x.
type Trend struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// TrendPoint is one (x, y) regression input or segment endpoint.
type TrendPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TermWeight is one token and its frequency weight.
type TermWeight struct {
	Term   string `json:"term"`
	Weight int    `json:"weight"`
}

// SortDirection is the three-state sort toggle.
type SortDirection string

const (
	SortDesc SortDirection = "desc"
	SortAsc  SortDirection = "asc"
	SortNone SortDirection = "none"
)

// SortState is the current rank key and direction.
type SortState struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}
