// Package fileread loads the agenda system's session export into raw rows.
// The export is natively XLSX; CSV and Parquet renditions of the same table
// are accepted as well. Readers only resolve headers and cells — all typing
// and filtering happens in normalize.
package fileread

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/model"
)

// ReadRows opens the file at path and returns its header labels and data
// rows. The reader is picked by file extension. Any failure here is an
// ingestion-level failure: the caller reports it once and produces no report.
func ReadRows(path string) ([]string, []model.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".csv":
		return readCSV(path)
	case ".parquet":
		return readParquet(path)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q (want .xlsx, .csv or .parquet)", filepath.Ext(path))
	}
}
