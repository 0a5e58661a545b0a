package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/xcrowfinance/stream-read-xbrl"
)

// WriteCSV writes rows to w in the fixed catalog column order, header
// first. Column order comes from the `csv` struct tags on xbrl.Row, so
// it can never drift from the struct's field order.
func WriteCSV(w io.Writer, rows []xbrl.Row) error {
	csvWriter := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(csvWriter)

	for _, row := range rows {
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("pipeline: encode row: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
