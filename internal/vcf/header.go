package vcf

import "strings"

// MandatoryColumns are the 8 fixed columns of the VCF v4.2 header line, in order.
var MandatoryColumns = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

// HeaderPrefix marks the column header line.
const HeaderPrefix = "#CHROM"

// MetaPrefix marks metadata lines preceding the column header.
const MetaPrefix = "##"

// Header is the parsed #CHROM column header line.
type Header struct {
	Columns []string // all column names, tab order preserved
	Line    int      // line number of the header line in the file
}

// ParseHeader splits a #CHROM line into its column names.
func ParseHeader(line string, lineNumber int) *Header {
	return &Header{
		Columns: strings.Split(line, "\t"),
		Line:    lineNumber,
	}
}

// HasFormat reports whether a FORMAT column position exists (9+ columns).
func (h *Header) HasFormat() bool {
	return len(h.Columns) > 8
}

// Samples returns the sample ID columns following FORMAT.
// Returns nil if no sample columns are present.
func (h *Header) Samples() []string {
	if len(h.Columns) <= 9 {
		return nil
	}
	return h.Columns[9:]
}

// IsMeta reports whether line is a ## metadata line.
func IsMeta(line string) bool {
	return strings.HasPrefix(line, MetaPrefix)
}

// IsHeader reports whether line is the #CHROM column header line.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, HeaderPrefix)
}

// ContigID extracts the ID value from a ##contig=<...> metadata line.
// Returns "" if the line has no angle-bracketed ID entry.
func ContigID(line string) string {
	open := strings.Index(line, "<")
	if open < 0 {
		return ""
	}
	body := line[open+1:]
	if close := strings.Index(body, ">"); close >= 0 {
		body = body[:close]
	}
	for _, kv := range strings.Split(body, ",") {
		if strings.HasPrefix(kv, "ID=") {
			return strings.TrimPrefix(kv, "ID=")
		}
	}
	return ""
}
