package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// FileFormat is the kind of file a word list was recognized as.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line
)

// ErrUnsupportedFormat is returned for files that are not plain text.
var ErrUnsupportedFormat = errors.New("unsupported word list format")

// sniffSize is how much of a file is inspected to decide its format.
const sniffSize = 1024

var textExtensions = map[string]bool{
	"":      true,
	".txt":  true,
	".dict": true,
	".lst":  true,
}

// DetectFileFormat inspects the start of a file. Text files have a known
// extension (or none), no NUL bytes and valid UTF-8.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !textExtensions[ext] {
		return FormatUnknown, fmt.Errorf("%w: %s has extension %q", ErrUnsupportedFormat, filename, ext)
	}

	file, err := os.Open(filename)
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, filename, err)
	}
	defer file.Close()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return FormatUnknown, fmt.Errorf("%w: %s: %w", ErrSourceRead, filename, err)
	}
	head = head[:n]

	if bytes.IndexByte(head, 0) >= 0 {
		return FormatUnknown, fmt.Errorf("%w: %s looks binary", ErrUnsupportedFormat, filename)
	}
	// the sniffed block may end in the middle of a rune
	for i := 0; i < utf8.UTFMax && len(head) > 0 && !utf8.Valid(head); i++ {
		head = head[:len(head)-1]
	}
	if !utf8.Valid(head) {
		return FormatUnknown, fmt.Errorf("%w: %s is not UTF-8", ErrUnsupportedFormat, filename)
	}
	return FormatText, nil
}

// ValidateFileFormat checks that filename exists, is a regular file and holds
// a text word list.
func ValidateFileFormat(filename string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, filename, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, filename)
	}
	if _, err := DetectFileFormat(filename); err != nil {
		return err
	}
	log.Debugf("Word list %s validated (%d bytes)", filename, info.Size())
	return nil
}
