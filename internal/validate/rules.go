package validate

import (
	"regexp"
	"strings"

	"github.com/codefitz/vcf-validation/internal/vcf"
)

// Field syntax patterns per the VCF v4.2 specification.
var (
	chromPattern  = regexp.MustCompile(`^[0-9A-Za-z_]+$`)
	posPattern    = regexp.MustCompile(`^[0-9]+$`)
	idPattern     = regexp.MustCompile(`^([A-Za-z0-9:_.]+(;[A-Za-z0-9_.]+)*)?$`)
	refPattern    = regexp.MustCompile(`^[ACGTN]+$`)
	qualPattern   = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	filterPattern = regexp.MustCompile(`^([A-Za-z0-9_]+(;[A-Za-z0-9_]+)*)?$`)

	// Bare autosomal contig names 1-22, disallowed under strict rules.
	bareAutosome = regexp.MustCompile(`^([1-9]|1[0-9]|2[0-2])$`)
)

// checkFields applies the structural per-field syntax rules to a record.
func checkFields(rec *vcf.Record, report *Report) {
	if !chromPattern.MatchString(rec.Chrom()) {
		report.Add(InvalidChrom, rec.Line, "invalid chromosome %q", rec.Chrom())
	}
	if !posPattern.MatchString(rec.Pos()) {
		report.Add(InvalidPos, rec.Line, "invalid position %q", rec.Pos())
	}
	if !idPattern.MatchString(rec.ID()) {
		report.Add(InvalidIDSyntax, rec.Line, "invalid ID %q", rec.ID())
	}
	if !refPattern.MatchString(rec.Ref()) {
		report.Add(InvalidRef, rec.Line, "invalid reference allele %q", rec.Ref())
	}
	if q := rec.Qual(); q != "." && !qualPattern.MatchString(q) {
		report.Add(InvalidQual, rec.Line, "invalid quality %q", q)
	}
	if f := rec.Filter(); f != "." && !filterPattern.MatchString(f) {
		report.Add(InvalidFilter, rec.Line, "invalid filter %q", f)
	}
}

// checkStrict applies the Congenica strict CNV rules to a record.
func checkStrict(rec *vcf.Record, report *Report) {
	// The documented rule rejects the common contig naming conventions
	// (bare 1-22 and chr-prefixed names) rather than requiring them.
	// Implemented as documented; polarity is suspect (see DESIGN.md).
	chrom := rec.Chrom()
	if bareAutosome.MatchString(chrom) || strings.HasPrefix(strings.ToLower(chrom), "chr") {
		report.Add(InvalidContig, rec.Line, "contig %q uses a disallowed naming convention", chrom)
	}

	if !rec.HasInfoToken("SVTYPE=CNV") {
		report.Add(MissingSVTYPE, rec.Line, "INFO field lacks SVTYPE=CNV")
	}

	if rec.Alt() != "<CNV>" {
		report.Add(InvalidALTForCNV, rec.Line, "ALT must be <CNV> for copy number variants, got %q", rec.Alt())
	}

	if !idContainsLossOrGain(rec) {
		report.Add(InvalidIDContent, rec.Line, "ID %q does not contain LOSS or GAIN", rec.ID())
	}

	if !rec.HasFormatKey("CN") {
		report.Add(MissingCNSubfield, rec.Line, "FORMAT field lacks CN subfield")
	}
}

// idContainsLossOrGain reports whether any semicolon-delimited sub-ID
// contains LOSS or GAIN (case-sensitive substring match).
func idContainsLossOrGain(rec *vcf.Record) bool {
	for _, id := range rec.IDs() {
		if strings.Contains(id, "LOSS") || strings.Contains(id, "GAIN") {
			return true
		}
	}
	return false
}

// checkContigMeta checks a ##contig metadata line for a chr-prefixed ID.
func checkContigMeta(line string, lineNumber int, report *Report) {
	id := vcf.ContigID(line)
	if strings.HasPrefix(id, "chr") {
		report.Add(ContigChrPrefix, lineNumber, "contig ID %q starts with 'chr'", id)
	}
}
