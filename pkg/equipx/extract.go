package equipx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fleetworks/equipx/pkg/equipx/models"
	"github.com/fleetworks/equipx/pkg/equipx/normalize"
	"github.com/fleetworks/equipx/pkg/equipx/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Extract reads one sheet of an inventory workbook and returns the
// normalized equipment records in sheet order.
func Extract(path string, opts Options) (*models.InventoryData, error) {
	n, err := normalize.New(opts.normalizeConfig(), opts.logger())
	if err != nil {
		return nil, NewExtractionError(opts.Sheet, "config", err)
	}

	sheet, err := readSheet(path, opts, n.TypeColumn())
	if err != nil {
		return nil, err
	}
	if err := n.Check(sheet.Header); err != nil {
		return nil, NewExtractionError(sheet.Name, "columns", err)
	}

	records, stats := n.NormalizeAll(sheet.Rows)
	opts.logger().Debug("sheet normalized",
		zap.String("sheet", sheet.Name),
		zap.Int("header_row", sheet.HeaderRow),
		zap.Int("rows", stats.Rows),
		zap.Int("emitted", stats.Emitted))

	return &models.InventoryData{
		BookName:  filepath.Base(path),
		SheetName: sheet.Name,
		HeaderRow: sheet.HeaderRow,
		Records:   records,
		Stats:     stats,
	}, nil
}

// Raw reads one sheet split at its header row without filtering.
func Raw(path string, opts Options) (*models.SheetData, error) {
	columns, err := normalize.MergeColumns(opts.Columns)
	if err != nil {
		return nil, NewExtractionError(opts.Sheet, "config", err)
	}
	return readSheet(path, opts, columns[models.FieldEquipmentType])
}

// Dump returns the first limit rows of a sheet, ignoring any header.
// A limit of zero or less returns every row.
func Dump(path string, opts Options, limit int) ([]models.RawRow, error) {
	rows, _, err := loadRows(path, opts)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

// Scan returns the rows of a sheet containing any keyword, ignoring case.
func Scan(path string, opts Options, keywords []string) ([]models.RawRow, error) {
	rows, _, err := loadRows(path, opts)
	if err != nil {
		return nil, err
	}

	needles := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			needles = append(needles, kw)
		}
	}

	var matched []models.RawRow
	for _, row := range rows {
		text := strings.ToLower(strings.Join(row.Values, " "))
		for _, kw := range needles {
			if strings.Contains(text, kw) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched, nil
}

func readSheet(path string, opts Options, typeColumn string) (*models.SheetData, error) {
	rows, sheetName, err := loadRows(path, opts)
	if err != nil {
		return nil, err
	}

	headerRow := opts.HeaderRow
	if opts.ShouldDetectHeader() {
		headerRow, err = parser.DetectHeaderRow(rows, typeColumn, parser.DefaultHeaderParams())
		if err != nil {
			return nil, NewExtractionError(sheetName, "header", err)
		}
		opts.logger().Debug("header row detected", zap.String("sheet", sheetName), zap.Int("row", headerRow))
	}

	sheet, err := parser.SplitHeader(sheetName, rows, headerRow)
	if err != nil {
		return nil, NewExtractionError(sheetName, "header", err)
	}
	return sheet, nil
}

func loadRows(path string, opts Options) ([]models.RawRow, string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, "", NewExtractionError(opts.Sheet, "sheet", err)
	}

	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		return nil, "", NewExtractionError(sheetName, "rows", err)
	}
	return rows, sheetName, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}

func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}
