package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/fleetworks/equipx/pkg/equipx/models"
	"github.com/xuri/excelize/v2"
)

// rawObject is a JSON object that keeps its keys in column order.
type rawObject struct {
	keys   []string
	values []interface{}
}

func (o rawObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RawToJSON renders every data row as an object keyed by column label.
// Blank labels fall back to the column letter; repeated labels get a ".N" suffix.
// Numeric cells become numbers and empty cells become null, so a blank row
// is an object of nulls.
func RawToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	width := len(sheet.Header.Labels)
	for _, row := range sheet.Rows {
		if len(row.Values) > width {
			width = len(row.Values)
		}
	}
	keys := columnKeys(sheet.Header.Labels, width)

	objects := make([]rawObject, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		obj := rawObject{keys: keys, values: make([]interface{}, width)}
		for col := 0; col < width; col++ {
			if cell := row.Cell(col); cell != "" {
				obj.values[col] = parseValue(cell)
			}
		}
		objects = append(objects, obj)
	}
	return marshal(objects, pretty)
}

func columnKeys(labels []string, width int) []string {
	keys := make([]string, width)
	seen := make(map[string]int, width)
	for col := 0; col < width; col++ {
		key := ""
		if col < len(labels) {
			key = labels[col]
		}
		if key == "" {
			key, _ = excelize.ColumnNumberToName(col + 1)
		}
		if n, ok := seen[key]; ok {
			seen[key] = n + 1
			key = key + "." + strconv.Itoa(n+1)
		} else {
			seen[key] = 0
		}
		keys[col] = key
	}
	return keys
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
