package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runExport(cmd *cobra.Command, args []string) error {
	if err := setup(false); err != nil {
		return err
	}
	defer logger.Sync()

	format, err := exportFormat()
	if err != nil {
		return err
	}

	session, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	path := outputPath
	if path == "" {
		path = session.SuggestedOutput(format, cfg.Export.Directory)
	}
	if err := session.Export(path, format); err != nil {
		return err
	}

	if len(session.AddedLabels) > 0 {
		logger.Info("Added label columns", zap.Int("count", len(session.AddedLabels)))
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
