// Package writer performs the scaffolder's file I/O: creating, appending and
// keeping track of what was touched so callers can report and fingerprint it.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Writer creates files and folders under a project tree.
//
// In Safe mode existing files are never overwritten. In DryRun mode nothing
// touches the disk and every path is recorded in Planned instead.
type Writer struct {
	Safe   bool
	DryRun bool

	log     *zap.Logger
	written map[string]bool
	skipped []string
	planned []string
}

// New returns a Writer logging to log. A nil logger discards output.
func New(log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{log: log, written: map[string]bool{}}
}

// WriteFile writes content trimmed of surrounding whitespace plus a final
// newline, creating parent directories as needed.
func (w *Writer) WriteFile(path, content string) error {
	return w.write(path, strings.TrimSpace(content)+"\n")
}

// WriteVerbatim writes content exactly as given.
func (w *Writer) WriteVerbatim(path, content string) error {
	return w.write(path, content)
}

// WriteExecutable is WriteFile with mode 0755.
func (w *Writer) WriteExecutable(path, content string) error {
	if err := w.WriteFile(path, content); err != nil {
		return err
	}
	if w.DryRun {
		return nil
	}
	return os.Chmod(path, 0o755)
}

func (w *Writer) write(path, content string) error {
	if w.DryRun {
		w.planned = append(w.planned, path)
		return nil
	}
	if w.Safe {
		if _, err := os.Stat(path); err == nil {
			w.skipped = append(w.skipped, path)
			w.log.Debug("kept existing file", zap.String("path", path))
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	w.written[path] = true
	w.log.Debug("created", zap.String("path", path))
	return nil
}

// AppendFile appends content, separated from what is already there by a
// blank line. Safe mode does not apply: appending never destroys data.
func (w *Writer) AppendFile(path, content string) error {
	if w.DryRun {
		w.planned = append(w.planned, path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n\n" + strings.TrimSpace(content) + "\n"); err != nil {
		return fmt.Errorf("cannot append to %s: %w", path, err)
	}
	w.written[path] = true
	w.log.Debug("appended", zap.String("path", path))
	return nil
}

// CreateFolder creates path and drops a .gitkeep in it so git tracks it.
func (w *Writer) CreateFolder(path string) error {
	keep := filepath.Join(path, ".gitkeep")
	if w.DryRun {
		w.planned = append(w.planned, path+string(filepath.Separator))
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("cannot create folder %s: %w", path, err)
	}
	if _, err := os.Stat(keep); err == nil {
		return nil
	}
	if err := os.WriteFile(keep, nil, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", keep, err)
	}
	w.log.Debug("dir created", zap.String("path", path))
	return nil
}

// Written returns the files created or appended to, sorted.
func (w *Writer) Written() []string {
	out := make([]string, 0, len(w.written))
	for p := range w.written {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Skipped returns the files Safe mode left untouched.
func (w *Writer) Skipped() []string { return w.skipped }

// Planned returns the paths a dry run would have touched, in call order.
func (w *Writer) Planned() []string { return w.planned }
