package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fleetworks/equipx/pkg/equipx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp keeps a stray .env in the repo root out of Load.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("EQUIPX_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, equipx.DefaultHeaderRow, cfg.HeaderRow)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "equipx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
workbook: master.xlsx
header_row: 0
types: ["DUMP TRUCK"]
require_essential: false
exclude_assets: ["VEH 01-20", "VEH 01-36"]
columns:
  serialNumber: "CHASSIS NO."
output:
  format: xlsx
  path: out/trucks.xlsx
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "master.xlsx", cfg.Workbook)
	assert.Equal(t, 0, cfg.HeaderRow)
	assert.Equal(t, []string{"DUMP TRUCK"}, cfg.Types)
	assert.False(t, cfg.RequireEssential)
	assert.Equal(t, []string{"VEH 01-20", "VEH 01-36"}, cfg.ExcludeAssets)
	assert.Equal(t, "CHASSIS NO.", cfg.Columns["serialNumber"])
	assert.Equal(t, FormatXLSX, cfg.Output.Format)
	assert.True(t, cfg.Output.Pretty, "unset keys keep their defaults")
	assert.Equal(t, 20, cfg.DumpLimit)
	assert.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, 0, opts.HeaderRow)
	assert.Equal(t, cfg.ExcludeAssets, opts.ExcludeAssets)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("EQUIPX_CONFIG", "")
	t.Setenv("EQUIPX_WORKBOOK", "/data/list.xlsx")
	t.Setenv("EQUIPX_HEADER_ROW", "-1")
	t.Setenv("EQUIPX_TYPES", " DOZER,Wheel loader, ")
	t.Setenv("EQUIPX_REQUIRE_ESSENTIAL", "off")
	t.Setenv("EQUIPX_OUTPUT_FORMAT", "JSON")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/list.xlsx", cfg.Workbook)
	assert.Equal(t, equipx.DetectHeader, cfg.HeaderRow)
	assert.Equal(t, []string{" DOZER", "Wheel loader"}, cfg.Types)
	assert.False(t, cfg.RequireEssential)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoadEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"EQUIPX_HEADER_ROW", "abc"},
		{"EQUIPX_HEADER_ROW", "4.5"},
		{"EQUIPX_REQUIRE_ESSENTIAL", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv("EQUIPX_CONFIG", "")
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("EQUIPX_CONFIG", "")
	t.Setenv("EQUIPX_SHEET", "")
	os.Unsetenv("EQUIPX_SHEET")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EQUIPX_SHEET=Plant\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Plant", cfg.Sheet)
}

func TestLoadErrors(t *testing.T) {
	dir := chdirTemp(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("header_row: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"detect header", func(c *Config) { c.HeaderRow = -1 }, true},
		{"negative header", func(c *Config) { c.HeaderRow = -2 }, false},
		{"empty types", func(c *Config) { c.Types = []string{" "} }, false},
		{"unknown column field", func(c *Config) { c.Columns = map[string]string{"colour": "X"} }, false},
		{"xlsx without path", func(c *Config) { c.Output.Format = FormatXLSX }, false},
		{"xlsx with path", func(c *Config) { c.Output.Format = FormatXLSX; c.Output.Path = "out.xlsx" }, true},
		{"csv", func(c *Config) { c.Output.Format = "csv" }, false},
		{"negative dump limit", func(c *Config) { c.DumpLimit = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestValidateInputIgnoresOutput(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = FormatXLSX
	assert.NoError(t, cfg.ValidateInput())
	assert.Error(t, cfg.Validate())

	cfg.HeaderRow = -5
	assert.Error(t, cfg.ValidateInput())
}
