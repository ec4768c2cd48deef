package vcf

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReader_PlainFile(t *testing.T) {
	testFile := findTestFile(t, "valid_cnv.vcf")

	r, err := NewReader(testFile)
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer r.Close()

	lines := readAll(t, r)

	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	if lines[0] != "##fileformat=VCFv4.2" {
		t.Errorf("Expected fileformat line first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "#CHROM\tPOS") {
		t.Errorf("Expected header line third, got %q", lines[2])
	}
	if r.LineNumber() != 5 {
		t.Errorf("Expected line number 5, got %d", r.LineNumber())
	}
}

func TestReader_GzipFile(t *testing.T) {
	plain := findTestFile(t, "valid_cnv.vcf")
	gzipped := findTestFile(t, "valid_cnv.vcf.gz")

	rp, err := NewReader(plain)
	if err != nil {
		t.Fatalf("Failed to open plain file: %v", err)
	}
	defer rp.Close()

	rg, err := NewReader(gzipped)
	if err != nil {
		t.Fatalf("Failed to open gzip file: %v", err)
	}
	defer rg.Close()

	plainLines := readAll(t, rp)
	gzipLines := readAll(t, rg)

	if len(plainLines) != len(gzipLines) {
		t.Fatalf("Line count mismatch: plain %d, gzip %d", len(plainLines), len(gzipLines))
	}
	for i := range plainLines {
		if plainLines[i] != gzipLines[i] {
			t.Errorf("Line %d differs: plain %q, gzip %q", i+1, plainLines[i], gzipLines[i])
		}
	}
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader("does_not_exist.vcf")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestReader_NoTrailingNewline(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("line one\nline two"))

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Failed to read first line: %v", err)
	}
	if first != "line one" {
		t.Errorf("Expected %q, got %q", "line one", first)
	}

	second, err := r.Next()
	if err != nil {
		t.Fatalf("Failed to read final line: %v", err)
	}
	if second != "line two" {
		t.Errorf("Expected %q, got %q", "line two", second)
	}
	if r.LineNumber() != 2 {
		t.Errorf("Expected line number 2, got %d", r.LineNumber())
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestReader_CRLF(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("##fileformat=VCFv4.2\r\ndata\r\n"))

	line, err := r.Next()
	if err != nil {
		t.Fatalf("Failed to read line: %v", err)
	}
	if line != "##fileformat=VCFv4.2" {
		t.Errorf("Expected CR stripped, got %q", line)
	}
}

func readAll(t *testing.T, r *Reader) []string {
	t.Helper()

	var lines []string
	for {
		line, err := r.Next()
		if err == io.EOF {
			return lines
		}
		if err != nil {
			t.Fatalf("Error reading line: %v", err)
		}
		lines = append(lines, line)
	}
}

func findTestFile(t *testing.T, name string) string {
	t.Helper()

	paths := []string{
		filepath.Join("testdata", name),
		filepath.Join("..", "..", "testdata", name),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	t.Fatalf("Test file not found: %s", name)
	return ""
}
