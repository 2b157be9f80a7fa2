// Package parser provides workbook sheet reading utilities.
package parser

import (
	"errors"
	"fmt"

	"github.com/fleetworks/equipx/pkg/equipx/models"
	"github.com/xuri/excelize/v2"
)

// ErrHeaderRowOutOfRange indicates the header row lies beyond the last sheet row.
var ErrHeaderRowOutOfRange = errors.New("header row out of range")

// ReadRows loads every row of a sheet with its zero-based index.
// Values are the formatted cell strings as excelize renders them.
func ReadRows(f *excelize.File, sheetName string) ([]models.RawRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([]models.RawRow, 0, len(rows))
	for rowIdx, row := range rows {
		result = append(result, models.RawRow{
			Index:  rowIdx,
			Values: row,
		})
	}
	return result, nil
}

// SplitHeader turns the row at headerRow into column labels and returns
// the rows below it bound to that header. Labels are trimmed and their
// inner spacing collapsed, so "CURRENT LOCATION " reads as "CURRENT LOCATION".
func SplitHeader(sheetName string, rows []models.RawRow, headerRow int) (*models.SheetData, error) {
	if headerRow < 0 || headerRow >= len(rows) {
		return nil, fmt.Errorf("%w: row %d, sheet has %d rows", ErrHeaderRowOutOfRange, headerRow, len(rows))
	}

	raw := rows[headerRow].Values
	labels := make([]string, len(raw))
	for i, label := range raw {
		labels[i] = models.CleanLabel(label)
	}
	header := models.NewHeader(labels)

	data := make([]models.RawRow, 0, len(rows)-headerRow-1)
	for _, row := range rows[headerRow+1:] {
		row.Header = header
		data = append(data, row)
	}

	return &models.SheetData{
		Name:      sheetName,
		HeaderRow: headerRow,
		Header:    header,
		Rows:      data,
	}, nil
}
