package ingest

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/festroi/festroi/internal/models"
	"github.com/festroi/festroi/internal/normalize"
)

var ErrNoValidRows = errors.New("no valid rows")

// ReadRows decodes a delimited-text document into raw header→value rows.
// The first record is the header; short rows are tolerated.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadRecords decodes and normalizes a delimited-text document. It returns
// ErrNoValidRows when every row was dropped during normalization; the
// malformed rows themselves are excluded silently.
func LoadRecords(r io.Reader) ([]models.Record, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	records := normalize.Records(rows)
	if len(records) == 0 {
		return nil, ErrNoValidRows
	}
	return records, nil
}
