package main

import (
	"fmt"
	"os"

	"github.com/fleetworks/equipx/internal/config"
	"github.com/fleetworks/equipx/pkg/equipx"
	"github.com/fleetworks/equipx/pkg/equipx/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	types            []string
	requireEssential bool
	excludeAssets    []string
	format           string
	outputPath       string
	pretty           bool
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [workbook.xlsx]",
		Short: "Print normalized equipment records",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}

	cmd.Flags().StringArrayVar(&types, "type", nil, "Accepted equipment type, repeatable (default: dozer and wheel loader spellings)")
	cmd.Flags().BoolVar(&requireEssential, "require-essential", true, "Skip rows without both make and model")
	cmd.Flags().StringArrayVar(&excludeAssets, "exclude-asset", nil, "Asset number to leave out, repeatable")
	cmd.Flags().StringVar(&format, "format", config.FormatJSON, "Output format: json, xlsx")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout, required for xlsx)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Types = types
	}
	if flags.Changed("require-essential") {
		cfg.RequireEssential = requireEssential
	}
	if flags.Changed("exclude-asset") {
		cfg.ExcludeAssets = excludeAssets
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := workbookPath(args)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts.Logger = logger

	inv, err := equipx.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Info("extraction complete",
		zap.String("workbook", inv.BookName),
		zap.String("sheet", inv.SheetName),
		zap.Int("header_row", inv.HeaderRow),
		zap.Int("rows", inv.Stats.Rows),
		zap.Int("emitted", inv.Stats.Emitted),
		zap.Int("skipped_type", inv.Stats.SkippedType),
		zap.Int("skipped_incomplete", inv.Stats.SkippedIncomplete),
		zap.Int("excluded", inv.Stats.Excluded))

	if cfg.Output.Format == config.FormatXLSX {
		if err := output.WriteXLSX(inv.Records, cfg.Output.Path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	jsonData, err := output.ToJSON(inv.Records, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if cfg.Output.Path != "" {
		if err := os.WriteFile(cfg.Output.Path, append(jsonData, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
