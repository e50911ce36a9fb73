package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

func runStats(cmd *cobra.Command, args []string) error {
	if err := setup(false); err != nil {
		return err
	}
	defer logger.Sync()

	session, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer session.Close()

	coder := session.Coder()
	p := coder.Progress()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "file:              %s (%s)\n", session.Name(), session.Format)
	fmt.Fprintf(out, "rows:              %d\n", p.Total)
	fmt.Fprintf(out, "rows w/ any code:  %d\n", p.Coded)
	if idx, ok := coder.FirstUncoded(); ok {
		fmt.Fprintf(out, "first uncoded row: %d\n", idx+1)
	} else {
		fmt.Fprintf(out, "first uncoded row: none\n")
	}

	counts := labelCounts(coder)
	for _, l := range models.Labels {
		fmt.Fprintf(out, "  %-32s %d\n", l, counts[l])
	}
	if len(session.AddedLabels) > 0 {
		fmt.Fprintf(out, "missing label columns: %d (added blank)\n", len(session.AddedLabels))
		for _, l := range session.AddedLabels {
			fmt.Fprintf(out, "  %s\n", l)
		}
	}
	return nil
}

// labelCounts counts rows whose label reads as set.
func labelCounts(coder *rowcoder.Coder) map[models.Label]int {
	counts := make(map[models.Label]int, len(models.Labels))
	for i := 0; i < coder.Len(); i++ {
		row, err := coder.ReadRow(i)
		if err != nil {
			continue
		}
		for _, l := range models.Labels {
			if row.Labels[l] == models.LabelSet {
				counts[l]++
			}
		}
	}
	return counts
}
