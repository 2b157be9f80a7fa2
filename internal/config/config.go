package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fleetworks/equipx/pkg/equipx"
	"github.com/fleetworks/equipx/pkg/equipx/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

type Config struct {
	Workbook         string            `yaml:"workbook"`
	Sheet            string            `yaml:"sheet"`
	HeaderRow        int               `yaml:"header_row"`
	Types            []string          `yaml:"types"`
	RequireEssential bool              `yaml:"require_essential"`
	ExcludeAssets    []string          `yaml:"exclude_assets"`
	Columns          map[string]string `yaml:"columns"`
	Output           OutputConfig      `yaml:"output"`
	DumpLimit        int               `yaml:"dump_limit"`
	Keywords         []string          `yaml:"keywords"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
	Pretty bool   `yaml:"pretty"`
}

func Default() Config {
	return Config{
		HeaderRow:        equipx.DefaultHeaderRow,
		Types:            append([]string(nil), equipx.DefaultTypes...),
		RequireEssential: true,
		Output: OutputConfig{
			Format: FormatJSON,
			Pretty: true,
		},
		DumpLimit: 20,
		Keywords:  []string{"loader"},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment (including a .env file in the working directory), in that order.
// An empty path falls back to EQUIPX_CONFIG.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = getEnv("EQUIPX_CONFIG", "")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	var err error
	cfg.Workbook = getEnv("EQUIPX_WORKBOOK", cfg.Workbook)
	cfg.Sheet = getEnv("EQUIPX_SHEET", cfg.Sheet)
	if cfg.HeaderRow, err = getEnvInt("EQUIPX_HEADER_ROW", cfg.HeaderRow); err != nil {
		return Config{}, err
	}
	cfg.Types = getEnvList("EQUIPX_TYPES", cfg.Types)
	if cfg.RequireEssential, err = getEnvBool("EQUIPX_REQUIRE_ESSENTIAL", cfg.RequireEssential); err != nil {
		return Config{}, err
	}
	cfg.ExcludeAssets = getEnvList("EQUIPX_EXCLUDE_ASSETS", cfg.ExcludeAssets)
	cfg.Output.Format = strings.ToLower(getEnv("EQUIPX_OUTPUT_FORMAT", cfg.Output.Format))
	cfg.Output.Path = getEnv("EQUIPX_OUTPUT", cfg.Output.Path)

	return cfg, nil
}

// Validate reports the first problem that would make a run meaningless.
func (c Config) Validate() error {
	if err := c.ValidateInput(); err != nil {
		return err
	}
	switch c.Output.Format {
	case FormatJSON:
	case FormatXLSX:
		if strings.TrimSpace(c.Output.Path) == "" {
			return errors.New("xlsx output requires an output path")
		}
	default:
		return fmt.Errorf("invalid output format: %s (must be json or xlsx)", c.Output.Format)
	}
	return nil
}

// ValidateInput checks the settings every command reads the workbook with.
func (c Config) ValidateInput() error {
	if c.HeaderRow < equipx.DetectHeader {
		return fmt.Errorf("header row must be %d (detect) or a zero-based row index, got %d", equipx.DetectHeader, c.HeaderRow)
	}
	if len(nonBlank(c.Types)) == 0 {
		return errors.New("type filter is empty")
	}
	for field := range c.Columns {
		if !isRecordField(field) {
			return fmt.Errorf("unknown column mapping field %q", field)
		}
	}
	if c.DumpLimit < 0 {
		return fmt.Errorf("dump limit must not be negative, got %d", c.DumpLimit)
	}
	return nil
}

// Options converts the configuration to extraction options.
func (c Config) Options() equipx.Options {
	return equipx.Options{
		Sheet:            c.Sheet,
		HeaderRow:        c.HeaderRow,
		Types:            c.Types,
		Columns:          c.Columns,
		RequireEssential: c.RequireEssential,
		ExcludeAssets:    c.ExcludeAssets,
	}
}

func isRecordField(name string) bool {
	for _, f := range models.RecordFields {
		if f == name {
			return true
		}
	}
	return false
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s=%q: want an integer", key, value)
	}
	return parsed, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback, nil
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true, nil
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false, nil
	}
	return fallback, fmt.Errorf("invalid %s=%q: want true or false", key, value)
}

// getEnvList splits a comma-separated value. Entries keep their inner spacing.
func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
