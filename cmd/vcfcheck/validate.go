package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/codefitz/vcf-validation/internal/duckdb"
	"github.com/codefitz/vcf-validation/internal/output"
	"github.com/codefitz/vcf-validation/internal/validate"
	"github.com/codefitz/vcf-validation/internal/vcf"
)

func newValidateCmd() *cobra.Command {
	var (
		quiet     bool
		verbose   bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a VCF or gzipped VCF file",
		Long: `Validate a VCF file against the VCF v4.2 structural rules and, in strict
mode, the Congenica CNV rules. Gzip and bgzip compression is detected
automatically. Use '-' to read from stdin.`,
		Example: `  vcfcheck validate sample.vcf
  vcfcheck validate sample.vcf.gz
  vcfcheck validate --strict=false sample.vcf
  zcat sample.vcf.gz | vcfcheck validate -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], quiet, verbose, noHistory)
		},
	}

	cmd.Flags().Bool("strict", true, "Check the Congenica strict CNV rules")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the pass/fail summary line")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history store")
	viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))

	return cmd
}

func runValidate(path string, quiet, verbose, noHistory bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
	}

	reader, err := vcf.NewReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	strict := viper.GetBool("strict")

	v := validate.New()
	v.SetStrict(strict)
	v.SetLogger(logger)

	report, err := v.Validate(reader)
	if err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	w := output.NewReportWriter(os.Stdout, quiet)
	if err := w.WriteReport(path, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !noHistory && path != "-" {
		if err := recordRun(path, strict, report); err != nil {
			// History is best effort; never fail a validation over it.
			fmt.Fprintf(os.Stderr, "Warning: could not record run history: %v\n", err)
		}
	}

	if !report.OK() {
		return errValidationFailed
	}
	return nil
}

func recordRun(path string, strict bool, report *validate.Report) error {
	historyPath := viper.GetString("history.path")
	if historyPath == "" {
		return nil
	}

	store, err := duckdb.Open(historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(duckdb.Run{
		RunAt:          time.Now(),
		Path:           path,
		FileSize:       duckdb.StatFile(path),
		Strict:         strict,
		Passed:         report.OK(),
		ViolationCount: len(report.Violations),
		Violations:     report.Messages(),
	})
}
