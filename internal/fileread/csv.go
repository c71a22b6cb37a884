package fileread

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// readCSV reads a comma-delimited rendition of the export. A UTF-8 BOM on
// the header, as written by spreadsheet tools, is tolerated.
func readCSV(path string) ([]string, []model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	var rows []model.RawRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}
		row := make(model.RawRow, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(rec) || rec[i] == "" {
				continue
			}
			row[h] = rec[i]
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return headers, rows, nil
}
