package validate

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/codefitz/vcf-validation/internal/vcf"
)

// LineSource yields the lines of a VCF file in order.
// vcf.Reader implements this interface.
type LineSource interface {
	// Next returns the next line, or io.EOF when input is exhausted.
	Next() (string, error)

	// LineNumber returns the number of the most recently returned line.
	LineNumber() int
}

// Validator checks a VCF line sequence against the structural rules and,
// when strict mode is on, the Congenica CNV rules. A Validator is stateless
// across runs: validating the same input twice yields identical reports.
type Validator struct {
	strict bool
	logger *zap.Logger
}

// New creates a Validator with strict mode enabled.
func New() *Validator {
	return &Validator{
		strict: true,
		logger: zap.NewNop(),
	}
}

// SetStrict configures whether the Congenica CNV rules are checked.
func (v *Validator) SetStrict(strict bool) {
	v.strict = strict
}

// SetLogger sets the logger for progress and diagnostic messages.
func (v *Validator) SetLogger(l *zap.Logger) {
	v.logger = l
}

// Validate consumes src to exhaustion and returns the accumulated report.
// Every check contributes independently; only an unusable header line stops
// record checking early. The returned error reflects I/O failures from src,
// never rule violations.
func (v *Validator) Validate(src LineSource) (*Report, error) {
	report := NewReport()

	header, err := v.validateHeader(src, report)
	if err != nil {
		return nil, err
	}
	if header == nil {
		// Missing or structurally unusable header; record checks would
		// be meaningless against unknown column alignment.
		return report, nil
	}

	records := 0
	for {
		line, err := src.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if line == "" {
			continue
		}
		if vcf.IsMeta(line) {
			if strings.HasPrefix(line, "##contig") {
				checkContigMeta(line, src.LineNumber(), report)
			}
			continue
		}
		v.validateRecord(vcf.ParseRecord(line, src.LineNumber()), header, report)
		records++
	}

	v.logger.Debug("validation complete",
		zap.Int("records", records),
		zap.Int("violations", len(report.Violations)))

	return report, nil
}

// validateHeader consumes metadata lines up to and including the #CHROM
// header line and checks its column structure. Returns nil (with violations
// recorded) when no usable header exists.
func (v *Validator) validateHeader(src LineSource, report *Report) (*vcf.Header, error) {
	fileformatFound := false

	for {
		line, err := src.Next()
		if err != nil {
			if err == io.EOF {
				report.Add(MissingHeader, 0, "no #CHROM header line found")
				return nil, nil
			}
			return nil, err
		}

		if vcf.IsMeta(line) {
			if strings.HasPrefix(line, "##fileformat") {
				fileformatFound = true
			}
			if strings.HasPrefix(line, "##contig") {
				checkContigMeta(line, src.LineNumber(), report)
			}
			continue
		}

		if !vcf.IsHeader(line) {
			report.Add(MissingHeader, src.LineNumber(), "expected #CHROM header line, found data")
			return nil, nil
		}

		if !fileformatFound {
			report.Add(MissingFileformat, 0, "missing ##fileformat metadata line")
		}

		header := vcf.ParseHeader(line, src.LineNumber())
		v.logger.Debug("header line parsed",
			zap.Int("line", header.Line),
			zap.Int("columns", len(header.Columns)),
			zap.Strings("samples", header.Samples()))

		if !checkHeaderColumns(header, report) {
			return nil, nil
		}
		checkSampleIDs(header, report)
		return header, nil
	}
}

// checkHeaderColumns verifies the fixed column names and the FORMAT column.
// Returns false when column alignment is unusable for record checks.
func checkHeaderColumns(h *vcf.Header, report *Report) bool {
	for i, want := range vcf.MandatoryColumns {
		if i >= len(h.Columns) || h.Columns[i] != want {
			got := "missing"
			if i < len(h.Columns) {
				got = h.Columns[i]
			}
			report.Add(HeaderColumnMismatch, h.Line, "column %d must be %s, got %s", i+1, want, got)
			return false
		}
	}
	if !h.HasFormat() {
		report.Add(MissingFormatColumn, h.Line, "header has %d columns, FORMAT column required", len(h.Columns))
		return false
	}
	if h.Columns[8] != "FORMAT" {
		report.Add(InvalidFormatColumnName, h.Line, "column 9 must be FORMAT, got %q", h.Columns[8])
		return false
	}
	return true
}

// checkSampleIDs reports duplicate sample column names. Duplicates do not
// stop record checking; the column count is still well defined.
func checkSampleIDs(h *vcf.Header, report *Report) {
	seen := make(map[string]bool)
	for _, name := range h.Samples() {
		if seen[name] {
			report.Add(DuplicateSampleID, h.Line, "duplicate sample ID %q", name)
		}
		seen[name] = true
	}
}

// validateRecord applies the structural and strict rules to one data line.
func (v *Validator) validateRecord(rec *vcf.Record, header *vcf.Header, report *Report) {
	if len(rec.Fields) != len(header.Columns) {
		report.Add(MalformedRecord, rec.Line, "expected %d columns, found %d", len(header.Columns), len(rec.Fields))
		if len(rec.Fields) < 9 {
			// Too few fields to align against the fixed columns.
			return
		}
	}

	checkFields(rec, report)
	if v.strict {
		checkStrict(rec, report)
	}
}
