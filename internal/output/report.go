// Package output renders validation reports for humans.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/codefitz/vcf-validation/internal/validate"
)

// ReportWriter writes a validation report: one line per violation plus a
// final pass/fail summary line.
type ReportWriter struct {
	w     *bufio.Writer
	quiet bool // suppress per-violation lines, keep the summary

	pass *color.Color
	fail *color.Color
	kind *color.Color
}

// NewReportWriter creates a report writer. Color output follows the
// fatih/color global NoColor setting, so it degrades to plain text when
// stdout is not a terminal.
func NewReportWriter(w io.Writer, quiet bool) *ReportWriter {
	return &ReportWriter{
		w:     bufio.NewWriter(w),
		quiet: quiet,
		pass:  color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
		kind:  color.New(color.FgYellow),
	}
}

// WriteReport writes every violation line followed by the summary.
func (rw *ReportWriter) WriteReport(path string, report *validate.Report) error {
	if !rw.quiet {
		for _, v := range report.Violations {
			if v.Line > 0 {
				fmt.Fprintf(rw.w, "line %d: %s: %s\n", v.Line, rw.kind.Sprint(string(v.Kind)), v.Message)
			} else {
				fmt.Fprintf(rw.w, "%s: %s\n", rw.kind.Sprint(string(v.Kind)), v.Message)
			}
		}
	}

	if report.OK() {
		fmt.Fprintf(rw.w, "%s: %s conforms to VCF v4.2 + strict CNV rules\n", rw.pass.Sprint("PASS"), path)
	} else {
		fmt.Fprintf(rw.w, "%s: %s: %d violation(s)\n", rw.fail.Sprint("FAIL"), path, len(report.Violations))
	}

	return rw.w.Flush()
}
