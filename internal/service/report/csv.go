package report

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/medidash/clinic-api/pkg/errors"
)

// MarshalCSV renders an export document: the header row is the column names
// joined bare, every data field is double-quoted with embedded quotes
// doubled, rows are newline-joined. An empty record set is an export
// failure and produces no document.
//
// This is deliberately not encoding/csv: the dashboard's export format
// quotes every field unconditionally while leaving the header bare, which
// the standard writer cannot be made to emit.
func MarshalCSV(columns []string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", apperrors.NewExport("no data to export")
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))
	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, field := range row {
			quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return strings.Join(lines, "\n"), nil
}

// Stringify coerces a field value the way the dashboard did: absent values
// and zero numbers collapse to the empty string.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		if val == 0 {
			return ""
		}
		return strconv.Itoa(val)
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(time.RFC3339)
	default:
		return ""
	}
}
