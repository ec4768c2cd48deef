// Package validate implements the VCF v4.2 structural checks and the
// Congenica strict CNV rules.
package validate

import "fmt"

// Kind identifies a validation rule failure.
type Kind string

// Header violations.
const (
	MissingHeader           Kind = "MissingHeader"
	HeaderColumnMismatch    Kind = "HeaderColumnMismatch"
	MissingFormatColumn     Kind = "MissingFormatColumn"
	InvalidFormatColumnName Kind = "InvalidFormatColumnName"
	DuplicateSampleID       Kind = "DuplicateSampleID"
)

// Metadata violations.
const (
	MissingFileformat Kind = "MissingFileformat"
	ContigChrPrefix   Kind = "ContigChrPrefix"
)

// Record violations. The first group is structural; the second group is
// checked only in strict mode.
const (
	MalformedRecord Kind = "MalformedRecord"
	InvalidChrom    Kind = "InvalidChrom"
	InvalidPos      Kind = "InvalidPos"
	InvalidIDSyntax Kind = "InvalidIDSyntax"
	InvalidRef      Kind = "InvalidRef"
	InvalidQual     Kind = "InvalidQual"
	InvalidFilter   Kind = "InvalidFilter"

	InvalidContig     Kind = "InvalidContig"
	MissingSVTYPE     Kind = "MissingSVTYPE"
	InvalidALTForCNV  Kind = "InvalidALTForCNV"
	InvalidIDContent  Kind = "InvalidIDContent"
	MissingCNSubfield Kind = "MissingCNSubfield"
)

// Violation is a single rule failure at a line.
type Violation struct {
	Kind    Kind
	Line    int // 1-based line number; 0 when no line applies (e.g. missing header)
	Message string
}

func (v Violation) String() string {
	if v.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", v.Line, v.Kind, v.Message)
	}
	return fmt.Sprintf("%s: %s", v.Kind, v.Message)
}

// Report is the accumulated outcome of one validation run.
type Report struct {
	Violations []Violation
	seen       map[string]struct{}
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{seen: make(map[string]struct{})}
}

// Add appends a violation, dropping exact repeats so the report holds
// distinct messages.
func (r *Report) Add(kind Kind, line int, format string, args ...interface{}) {
	v := Violation{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
	key := v.String()
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.Violations = append(r.Violations, v)
}

// OK reports whether the input passed every check.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Messages returns the formatted violation lines in accumulation order.
func (r *Report) Messages() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.String()
	}
	return out
}
