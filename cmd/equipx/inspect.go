package main

import (
	"fmt"

	"github.com/fleetworks/equipx/pkg/equipx"
	"github.com/fleetworks/equipx/pkg/equipx/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	limit    int
	keywords []string
	compact  bool
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [workbook.xlsx]",
		Short: "Print the first rows of a sheet to locate its header row",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDump,
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of rows to print, 0 for all")
	return cmd
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [workbook.xlsx]",
		Short: "Print every row that mentions a keyword",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	cmd.Flags().StringArrayVar(&keywords, "keyword", nil, "Keyword to look for, case-insensitive, repeatable (default: loader)")
	return cmd
}

func newRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw [workbook.xlsx]",
		Short: "Print every row below the header as JSON keyed by column label",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRaw,
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "Print JSON without indentation")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("limit") {
		cfg.DumpLimit = limit
	}
	if cfg.DumpLimit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", cfg.DumpLimit)
	}

	inputPath, err := workbookPath(args)
	if err != nil {
		return err
	}

	rows, err := equipx.Dump(inputPath, inspectOptions(), cfg.DumpLimit)
	if err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "First %d rows:\n", len(rows))
	return output.WriteDump(cmd.OutOrStdout(), rows)
}

func runScan(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("keyword") {
		cfg.Keywords = keywords
	}

	inputPath, err := workbookPath(args)
	if err != nil {
		return err
	}

	rows, err := equipx.Scan(inputPath, inspectOptions(), cfg.Keywords)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	logger.Debug("scan complete", zap.Strings("keywords", cfg.Keywords), zap.Int("matched", len(rows)))
	return output.WriteDump(cmd.OutOrStdout(), rows)
}

func runRaw(cmd *cobra.Command, args []string) error {
	inputPath, err := workbookPath(args)
	if err != nil {
		return err
	}

	sheetData, err := equipx.Raw(inputPath, inspectOptions())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.RawToJSON(sheetData, !compact)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func inspectOptions() equipx.Options {
	opts := cfg.Options()
	opts.Logger = logger
	return opts
}
