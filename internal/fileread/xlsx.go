package fileread

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// readXLSX reads the first sheet of an Excel workbook. The first row is the
// header; every later row becomes a RawRow keyed by header label. Cells come
// back as display strings, which is what the date and amount parsers expect.
func readXLSX(path string) ([]string, []model.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	headers := cells[0]
	rows := make([]model.RawRow, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(model.RawRow, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(line) || line[i] == "" {
				continue
			}
			row[h] = line[i]
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return headers, rows, nil
}
