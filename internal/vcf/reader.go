// Package vcf provides line-oriented reading of VCF files and parsing of
// their header and record structure.
package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader yields the lines of a VCF file in order, transparently
// decompressing gzip/bgzip input. Compression is detected from the gzip
// magic bytes, not the filename, so callers never branch on format.
type Reader struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewReader opens the given path for reading.
// Supports plain VCF and gzipped VCF (.vcf.gz / bgzip) files; "-" reads stdin.
func NewReader(path string) (*Reader, error) {
	if path == "-" {
		return NewReaderFrom(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	r := &Reader{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read vcf file: %w", err)
	}

	// Seek back to beginning
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	// Gzip magic number (0x1f, 0x8b); bgzip is a gzip variant
	if n == 2 && buf[0] == 0x1f && buf[1] == 0x8b {
		r.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r.reader = bufio.NewReader(r.gzipReader)
	} else {
		r.reader = bufio.NewReader(file)
	}

	return r, nil
}

// NewReaderFrom creates a Reader over an io.Reader (e.g. stdin or a buffer).
// The input is assumed to be already decompressed.
func NewReaderFrom(rd io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(rd)}
}

// Next returns the next line with trailing newline characters removed.
// Returns io.EOF when the input is exhausted.
func (r *Reader) Next() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line == "" {
				return "", io.EOF
			}
			// Final line without trailing newline
			r.lineNumber++
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read line %d: %w", r.lineNumber+1, err)
	}
	r.lineNumber++
	return strings.TrimRight(line, "\r\n"), nil
}

// LineNumber returns the number of the most recently returned line.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
