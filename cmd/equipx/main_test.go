package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fleetworks/equipx/pkg/equipx/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeMasterList(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"EQUIPMENT MASTER LIST"},
		{},
		{},
		{},
		{"NO", "EQUIPMENT TYPE", "MAKE", "MODEL", "PLATE NO.", "ASSET NO.", "NEW ASSET NO.", "MACHINE SERIAL NO.", "CURRENT LOCATION "},
		{1, " DOZER", "CAT", "D8", "DZ-01", "EMM 01-02", "", "", "Adama"},
		{2, "Wheel loader", "", "950"},
		{3, "EXCAVATOR", "KOMATSU", "PC300"},
		{4, "WHEEL LOADER", "CAT", "966H", "", "VEH 01-20"},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "master.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// run executes the CLI from an empty working directory so no .env is picked up.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()
	t.Setenv("EQUIPX_CONFIG", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestExtractCmd(t *testing.T) {
	path := writeMasterList(t)

	out, err := run(t, "extract", path)
	require.NoError(t, err)

	var records []models.EquipmentRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, models.EquipmentRecord{
		EquipmentType: "DOZER",
		Make:          "CAT",
		Model:         "D8",
		PlateNumber:   "DZ-01",
		AssetNumber:   "EMM 01-02",
		Location:      "Adama",
	}, records[0])
	assert.Equal(t, "WHEEL LOADER", records[1].EquipmentType)
	assert.True(t, strings.HasPrefix(out, "[\n  {"), "pretty output by default")
}

func TestExtractCmdFlags(t *testing.T) {
	path := writeMasterList(t)

	out, err := run(t, "extract", path,
		"--require-essential=false",
		"--exclude-asset", "VEH 01-20",
		"--pretty=false")
	require.NoError(t, err)

	var records []models.EquipmentRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "950", records[1].Model)
	assert.Equal(t, "", records[1].Make)
	assert.False(t, strings.Contains(out, "\n  "))
}

func TestExtractCmdTypeFilter(t *testing.T) {
	path := writeMasterList(t)

	out, err := run(t, "extract", path, "--type", "wheel  LOADER")
	require.NoError(t, err)

	var records []models.EquipmentRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "966H", records[0].Model)
}

func TestExtractCmdXLSX(t *testing.T) {
	path := writeMasterList(t)
	dest := filepath.Join(t.TempDir(), "export", "equipment.xlsx")

	out, err := run(t, "extract", path, "--format", "xlsx", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExtractCmdErrors(t *testing.T) {
	path := writeMasterList(t)

	_, err := run(t, "extract", filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.ErrorContains(t, err, "file not found")

	_, err = run(t, "extract", path, "--header-row", "0")
	assert.ErrorContains(t, err, "required column missing")

	_, err = run(t, "extract", path, "--format", "xlsx")
	assert.ErrorContains(t, err, "output path")

	_, err = run(t, "extract")
	assert.ErrorContains(t, err, "no workbook given")
}

func TestDumpCmd(t *testing.T) {
	path := writeMasterList(t)

	out, err := run(t, "dump", path, "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "First 2 rows:\nRow 0: [\"EQUIPMENT MASTER LIST\"]\nRow 1: []\n", out)
}

func TestScanCmd(t *testing.T) {
	path := writeMasterList(t)

	out, err := run(t, "scan", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Row 6: "))
	assert.True(t, strings.HasPrefix(lines[1], "Row 8: "))
}

func TestRawCmd(t *testing.T) {
	path := writeMasterList(t)

	out, err := run(t, "raw", path, "--compact")
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "Adama", rows[0]["CURRENT LOCATION"])
	assert.Equal(t, float64(1), rows[0]["NO"])
}

func TestInspectCmdsValidateConfig(t *testing.T) {
	path := writeMasterList(t)

	for _, name := range []string{"dump", "scan", "raw"} {
		_, err := run(t, name, path, "--header-row", "-5")
		assert.ErrorContains(t, err, "header row must be", name)
	}

	t.Setenv("EQUIPX_TYPES", " , ")
	_, err := run(t, "raw", path)
	assert.NoError(t, err, "blank EQUIPX_TYPES keeps the default filter")
}
