// Package main provides the vcfcheck command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitInvalid = 1
	ExitError   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errValidationFailed marks a completed run over an invalid file, as
// opposed to an operational error.
var errValidationFailed = errors.New("validation failed")

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if errors.Is(err, errValidationFailed) {
			// The report writer already printed the FAIL summary.
			return ExitInvalid
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vcfcheck",
		Short:   "Validate VCF files against VCF v4.2 and Congenica strict CNV rules",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if !viper.GetBool("color") {
				color.NoColor = true
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.vcfcheck.yaml if present and sets defaults.
func initConfig() error {
	viper.SetDefault("strict", true)
	viper.SetDefault("color", true)
	viper.SetDefault("history.path", defaultHistoryPath())

	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory; run on defaults only.
		return nil
	}
	viper.SetConfigName(".vcfcheck")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.vcfcheck/history.duckdb"
}
