package report

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/festroi/festroi/internal/engine"
	"github.com/festroi/festroi/internal/models"
	"github.com/festroi/festroi/internal/store"
)

// Defaults are the report parameters applied when the query omits them.
type Defaults struct {
	Top       int
	Bottom    int
	ROITarget float64
}

// Service recomputes the full analysis from the current record set on every
// call. Nothing is cached; a changed filter or dataset simply produces a
// fresh report.
type Service struct {
	st  *store.MemoryStore
	def Defaults
}

func NewService(st *store.MemoryStore, def Defaults) *Service {
	return &Service{st: st, def: def}
}

// Report is the full render-ready analysis payload.
type Report struct {
	Summary         models.Summary       `json:"summary"`
	Sort            models.SortState     `json:"sort"`
	Groups          []models.AggRow      `json:"groups"`
	Trend           models.Trend         `json:"trend"`
	TrendSegment    [2]models.TrendPoint `json:"trend_segment"`
	Terms           []models.TermWeight  `json:"terms"`
	Top             []models.AggRow      `json:"top"`
	Bottom          []models.AggRow      `json:"bottom"`
	ROITarget       float64              `json:"roi_target"`
	Underperformers []models.AggRow      `json:"underperformers"`
}

// Build runs the whole pipeline for one query: filter, aggregate, rank,
// plus trend, term weights, and the top/bottom/underperformer breakdowns.
func (s *Service) Build(v url.Values) Report {
	filter := parseFilter(v)
	dims := parseDims(v.Get("group"))
	sortState := parseSort(v)
	// "click" advances the three-state toggle from the submitted sort state;
	// direction "none" then falls back to first-seen aggregation order.
	if clicked := strings.ToLower(strings.TrimSpace(v.Get("click"))); clicked != "" {
		sortState = engine.NextSort(sortState, clicked)
	}

	records := engine.ApplyFilter(s.st.All(), filter)
	rows := engine.Aggregate(records, dims...)
	points := engine.TrendPoints(records)
	trend := engine.Fit(points)
	target := floatDef(v.Get("roi_target"), s.def.ROITarget)

	return Report{
		Summary:         engine.Summarize(records),
		Sort:            sortState,
		Groups:          roundRows(engine.Rank(rows, sortState.Key, sortState.Direction)),
		Trend:           trend,
		TrendSegment:    engine.Segment(trend, points),
		Terms:           engine.WeighTerms(records),
		Top:             roundRows(engine.TopN(rows, sortState.Key, intDef(v.Get("top"), s.def.Top))),
		Bottom:          roundRows(engine.BottomN(rows, sortState.Key, intDef(v.Get("bottom"), s.def.Bottom))),
		ROITarget:       target,
		Underperformers: roundRows(engine.Underperformers(rows, target)),
	}
}

// Ranked returns just the ranked aggregated rows for a query, used by the
// delimited-text export.
func (s *Service) Ranked(v url.Values) []models.AggRow {
	filter := parseFilter(v)
	dims := parseDims(v.Get("group"))
	sortState := parseSort(v)

	records := engine.ApplyFilter(s.st.All(), filter)
	rows := engine.Aggregate(records, dims...)
	return roundRows(engine.Rank(rows, sortState.Key, sortState.Direction))
}

func parseFilter(v url.Values) models.Filter {
	f := models.Filter{
		Festival: strings.TrimSpace(v.Get("festival")),
		Region:   strings.TrimSpace(v.Get("region")),
		Channel:  strings.TrimSpace(v.Get("channel")),
		FreeText: v.Get("q"),
	}
	if t, err := time.Parse("2006-01-02", v.Get("from")); err == nil {
		f.DateStart = t
	}
	if t, err := time.Parse("2006-01-02", v.Get("to")); err == nil {
		f.DateEnd = t
	}
	return f
}

func parseDims(s string) []models.Dimension {
	var dims []models.Dimension
	for _, p := range strings.Split(s, ",") {
		switch models.Dimension(strings.ToLower(strings.TrimSpace(p))) {
		case models.DimDate:
			dims = append(dims, models.DimDate)
		case models.DimChannel:
			dims = append(dims, models.DimChannel)
		case models.DimFestival:
			dims = append(dims, models.DimFestival)
		}
	}
	if len(dims) == 0 {
		dims = []models.Dimension{models.DimFestival}
	}
	return dims
}

func parseSort(v url.Values) models.SortState {
	key := strings.ToLower(strings.TrimSpace(v.Get("rank")))
	if key == "" {
		key = "roi"
	}
	dir := models.SortDirection(strings.ToLower(v.Get("dir")))
	switch dir {
	case models.SortAsc, models.SortNone:
	default:
		dir = models.SortDesc
	}
	return models.SortState{Key: key, Direction: dir}
}

func intDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return d
	}
	return v
}

func floatDef(s string, d float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return d
	}
	return v
}

func roundRows(rows []models.AggRow) []models.AggRow {
	for i := range rows {
		rows[i].Spend = round2(rows[i].Spend)
		rows[i].Revenue = round2(rows[i].Revenue)
		rows[i].ROI = round3(rows[i].ROI)
		rows[i].ROAS = round3(rows[i].ROAS)
		rows[i].CAC = round2(rows[i].CAC)
	}
	return rows
}

func round2(f float64) float64 { return float64(int64(f*100+sign(f)*0.5)) / 100 }
func round3(f float64) float64 { return float64(int64(f*1000+sign(f)*0.5)) / 1000 }

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
