package vcf

import "strings"

// Record is a single tab-delimited VCF data line, positionally aligned to
// the header columns. Fields are kept as raw strings; the validator checks
// text, it never needs typed values.
type Record struct {
	Fields []string
	Line   int // line number in the file
}

// ParseRecord splits a data line into its tab-delimited fields.
func ParseRecord(line string, lineNumber int) *Record {
	return &Record{
		Fields: strings.Split(line, "\t"),
		Line:   lineNumber,
	}
}

func (r *Record) field(i int) string {
	if i < len(r.Fields) {
		return r.Fields[i]
	}
	return ""
}

// Accessors for the fixed columns. They return "" when the record is too
// short, so rule checks stay total on malformed input.

func (r *Record) Chrom() string { return r.field(0) }

func (r *Record) Pos() string { return r.field(1) }

func (r *Record) ID() string { return r.field(2) }

func (r *Record) Ref() string { return r.field(3) }

func (r *Record) Alt() string { return r.field(4) }

func (r *Record) Qual() string { return r.field(5) }

func (r *Record) Filter() string { return r.field(6) }

func (r *Record) Info() string { return r.field(7) }

func (r *Record) Format() string { return r.field(8) }

// InfoTokens splits the INFO field into its semicolon-delimited KEY or
// KEY=VALUE tokens. A "." INFO field yields no tokens.
func (r *Record) InfoTokens() []string {
	info := r.Info()
	if info == "" || info == "." {
		return nil
	}
	return strings.Split(info, ";")
}

// HasInfoToken reports whether the INFO field contains token as an exact
// semicolon-delimited entry (not a substring of another token).
func (r *Record) HasInfoToken(token string) bool {
	for _, t := range r.InfoTokens() {
		if t == token {
			return true
		}
	}
	return false
}

// FormatKeys splits the FORMAT field into its colon-delimited subfield keys.
func (r *Record) FormatKeys() []string {
	format := r.Format()
	if format == "" || format == "." {
		return nil
	}
	return strings.Split(format, ":")
}

// HasFormatKey reports whether the FORMAT field contains key as an exact
// colon-delimited subfield.
func (r *Record) HasFormatKey(key string) bool {
	for _, k := range r.FormatKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// IDs splits the ID field on semicolons. A single undelimited ID yields a
// one-element slice.
func (r *Record) IDs() []string {
	return strings.Split(r.ID(), ";")
}
