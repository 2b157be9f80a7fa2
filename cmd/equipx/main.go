// Package main provides the CLI entry point for equipx.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fleetworks/equipx/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool
	sheet      string
	headerRow  int

	// Resolved once per run in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "equipx",
		Short: "Extract dozer and wheel loader records from equipment master lists",
		Long: `equipx reads a heavy-equipment inventory workbook, keeps the rows whose
equipment type is in the type filter, and prints them as canonical JSON records.

The dump, scan and raw commands help with unfamiliar sheet layouts.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: $EQUIPX_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped rows and other debug output")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Sheet name (default: first sheet)")
	rootCmd.PersistentFlags().IntVar(&headerRow, "header-row", 4, "Zero-based header row, -1 to detect")

	rootCmd.AddCommand(newExtractCmd(), newDumpCmd(), newScanCmd(), newRawCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	// Initialize logger
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet = sheet
	}
	if cmd.Flags().Changed("header-row") {
		cfg.HeaderRow = headerRow
	}
	return cfg.ValidateInput()
}

// workbookPath picks the positional argument over the configured workbook.
func workbookPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Workbook != "" {
		return cfg.Workbook, nil
	}
	return "", errors.New("no workbook given: pass a path or set workbook in the config")
}
