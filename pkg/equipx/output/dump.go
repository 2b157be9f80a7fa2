package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fleetworks/equipx/pkg/equipx/models"
)

// WriteDump writes one "Row <index>: [values]" line per row, for inspecting
// an unfamiliar sheet layout.
func WriteDump(w io.Writer, rows []models.RawRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "Row %d: %s\n", row.Index, formatValues(row.Values)); err != nil {
			return err
		}
	}
	return nil
}

func formatValues(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
