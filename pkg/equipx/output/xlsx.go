package output

import (
	"os"
	"path/filepath"

	"github.com/fleetworks/equipx/pkg/equipx/models"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX saves records to a new workbook at outputPath, one header row of
// field names followed by one row per record.
func WriteXLSX(records []models.EquipmentRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range models.RecordFields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, rec := range records {
		r := i + 2
		for col, v := range rec.Values() {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
