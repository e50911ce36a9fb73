// Package main provides the CLI entry point for rowcoder.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/config"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

var (
	configPath   string
	verbose      bool
	outputPath   string
	formatName   string
	startUncoded bool

	cfg    *config.Config
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowcoder",
		Short: "Code AI responses row by row",
		Long: `rowcoder loads a CSV or Excel file, lets you tick the coding labels of
each row while reading its conversation context, and exports the
augmented table as CSV or Excel.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./rowcoder.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	codeCmd := &cobra.Command{
		Use:   "code [input]",
		Short: "Code rows interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runCode,
	}
	codeCmd.Flags().BoolVar(&startUncoded, "start-uncoded", false, "Start at the first row with no label set")
	codeCmd.Flags().StringVar(&formatName, "format", "", "Export format for the export key: xlsx or csv (default from config)")
	codeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Export file path (default: <input>_coded.<ext>)")

	exportCmd := &cobra.Command{
		Use:   "export [input]",
		Short: "Add missing label columns and write the table out",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&formatName, "format", "", "Output format: xlsx or csv (default from config)")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>_coded.<ext>)")

	statsCmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Show coding progress for a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	rootCmd.AddCommand(codeCmd, exportCmd, statsCmd)
	return rootCmd
}

// setup loads the config and builds the logger. interactive commands log
// to the configured file only, never to the terminal.
func setup(interactive bool) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err = newLogger(cfg.Logging, verbose, interactive)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// exportFormat resolves --format over the configured default.
func exportFormat() (models.Format, error) {
	if formatName == "" {
		return cfg.ExportFormat(), nil
	}
	return models.ParseFormat(formatName)
}

func openSession(path string) (*rowcoder.Session, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	opts := rowcoder.Options{
		StartAtUncoded: startUncoded || cfg.Session.StartAtUncoded,
		SheetName:      cfg.Export.SheetName,
		Logger:         logger,
	}
	return rowcoder.Open(path, opts)
}
