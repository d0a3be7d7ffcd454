package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/festroi/festroi/internal/models"
)

// exportHeader is the fixed column order of the delimited-text export.
var exportHeader = []string{"festival", "region", "spend", "revenue", "roi", "roas", "tickets", "visitors", "cac"}

// WriteCSV writes ranked rows as delimited text in the export column order.
func WriteCSV(w io.Writer, rows []models.AggRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Festival,
			r.Region,
			ftoa(r.Spend),
			ftoa(r.Revenue),
			ftoa(r.ROI),
			ftoa(r.ROAS),
			strconv.Itoa(r.Tickets),
			strconv.Itoa(r.Visitors),
			ftoa(r.CAC),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
