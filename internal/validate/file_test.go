package validate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codefitz/vcf-validation/internal/vcf"
)

func validateFile(t *testing.T, name string) *Report {
	t.Helper()

	r, err := vcf.NewReader(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer r.Close()

	report, err := New().Validate(r)
	require.NoError(t, err)
	return report
}

func TestValidate_File_Valid(t *testing.T) {
	report := validateFile(t, "valid_cnv.vcf")
	assert.True(t, report.OK(), "%v", report.Messages())
}

func TestValidate_File_GzipMatchesPlain(t *testing.T) {
	plain := validateFile(t, "valid_cnv.vcf")
	gzipped := validateFile(t, "valid_cnv.vcf.gz")

	assert.Equal(t, plain.Messages(), gzipped.Messages())
	assert.True(t, gzipped.OK())
}

func TestValidate_File_Invalid(t *testing.T) {
	report := validateFile(t, "bad_cnv.vcf")

	assert.Equal(t, []Kind{
		InvalidContig,
		MissingSVTYPE,
		InvalidALTForCNV,
		InvalidIDContent,
		MissingCNSubfield,
	}, kinds(report))
	for _, v := range report.Violations {
		assert.Equal(t, 3, v.Line)
	}
}
