package assimilate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Document is a loaded brain dump.
type Document struct {
	Path string
	Text string
}

// ValidationError reports a brain-dump path that cannot be used.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "invalid brain dump path: " + e.Reason
	}
	return fmt.Sprintf("invalid brain dump %s: %s", e.Path, e.Reason)
}

// Validate checks that path names a readable regular file.
func Validate(path string) error {
	if path == "" {
		return &ValidationError{Reason: "empty path"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return &ValidationError{Path: path, Reason: err.Error()}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return &ValidationError{Path: path, Reason: "not a valid file"}
	}
	if !info.Mode().IsRegular() {
		return &ValidationError{Path: path, Reason: "not a regular file"}
	}
	if !readable(abs) {
		return &ValidationError{Path: path, Reason: "file not readable"}
	}
	return nil
}

// Load validates and reads path. Invalid UTF-8 sequences are replaced with
// U+FFFD instead of failing.
func Load(path string) (*Document, error) {
	if err := Validate(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ValidationError{Path: path, Reason: err.Error()}
	}
	defer f.Close()

	b, err := io.ReadAll(transform.NewReader(f, unicode.UTF8.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("cannot read brain dump %s: %w", path, err)
	}
	return &Document{Path: path, Text: string(b)}, nil
}
