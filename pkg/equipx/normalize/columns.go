package normalize

import (
	"fmt"
	"strings"

	"github.com/fleetworks/equipx/pkg/equipx/models"
)

// Workbook column labels, as they read after trimming.
const (
	ColumnEquipmentType  = "EQUIPMENT TYPE"
	ColumnMake           = "MAKE"
	ColumnModel          = "MODEL"
	ColumnPlateNumber    = "PLATE NO."
	ColumnAssetNumber    = "ASSET NO."
	ColumnNewAssetNumber = "NEW ASSET NO."
	ColumnSerialNumber   = "MACHINE SERIAL NO."
	ColumnLocation       = "CURRENT LOCATION"
)

// DefaultColumns maps each record field to its workbook column label.
func DefaultColumns() map[string]string {
	return map[string]string{
		models.FieldEquipmentType:  ColumnEquipmentType,
		models.FieldMake:           ColumnMake,
		models.FieldModel:          ColumnModel,
		models.FieldPlateNumber:    ColumnPlateNumber,
		models.FieldAssetNumber:    ColumnAssetNumber,
		models.FieldNewAssetNumber: ColumnNewAssetNumber,
		models.FieldSerialNumber:   ColumnSerialNumber,
		models.FieldLocation:       ColumnLocation,
	}
}

// MergeColumns overlays overrides on the default column labels.
// Unknown field names are rejected.
func MergeColumns(overrides map[string]string) (map[string]string, error) {
	columns := DefaultColumns()
	for field, label := range overrides {
		if _, ok := columns[field]; !ok {
			return nil, fmt.Errorf("unknown record field %q", field)
		}
		columns[field] = strings.TrimSpace(label)
	}
	return columns, nil
}

// resolve reads the column mapped to field. An unmapped field, a column missing
// from the sheet and an empty cell all yield "".
func resolve(row models.RawRow, columns map[string]string, field string) string {
	label, ok := columns[field]
	if !ok || label == "" {
		return ""
	}
	v, _ := row.Get(label)
	return strings.TrimSpace(v)
}
