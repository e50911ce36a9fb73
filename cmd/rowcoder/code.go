package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/tui"
)

func runCode(cmd *cobra.Command, args []string) error {
	if err := setup(true); err != nil {
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

	opts := tui.Options{
		ExportFormat:       format,
		ExportPath:         outputPath,
		ExportDir:          cfg.Export.Directory,
		AutosaveOnNavigate: cfg.Session.AutosaveOnNavigate,
		Logger:             logger,
	}
	if err := tui.Run(session, opts); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
