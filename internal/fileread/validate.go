package fileread

import (
	"fmt"
	"strings"

	"github.com/AlexHeisinger09/dashboard-nutricion/internal/config"
)

// ValidateColumns checks that the header row carries the labels the
// normalizer cannot work without. Labels are matched exactly; a renamed
// column in the upstream export fails the whole ingestion rather than
// silently dropping every row.
func ValidateColumns(headers []string, cols config.Columns) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, required := range []string{cols.PatientID, cols.SessionDate, cols.Amount} {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
