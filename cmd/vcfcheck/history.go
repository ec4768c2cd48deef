package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codefitz/vcf-validation/internal/duckdb"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent validation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")

	return cmd
}

func runHistory(limit int) error {
	historyPath := viper.GetString("history.path")
	if historyPath == "" {
		return fmt.Errorf("no history path configured (set history.path)")
	}
	if _, err := os.Stat(historyPath); err != nil {
		fmt.Println("No validation runs recorded yet.")
		return nil
	}

	store, err := duckdb.Open(historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No validation runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tFILE\tSIZE\tSTRICT\tRESULT\tVIOLATIONS")
	for _, r := range runs {
		result := "PASS"
		if !r.Passed {
			result = "FAIL"
		}
		strict := "yes"
		if !r.Strict {
			strict = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\n",
			r.RunAt.Format("2006-01-02 15:04:05"), r.Path, r.FileSize,
			strict, result, r.ViolationCount)
	}
	return w.Flush()
}
