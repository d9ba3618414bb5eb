package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Overrides are user-supplied templates that replace or extend the built-in
// agent files. Keys are paths relative to the category directory.
type Overrides struct {
	Rules     map[string]string
	Workflows map[string]string
	Skills    map[string]string
}

func emptyOverrides() *Overrides {
	return &Overrides{Rules: map[string]string{}, Workflows: map[string]string{}, Skills: map[string]string{}}
}

// LoadCustomTemplates reads dir/rules, dir/workflows and dir/skills. A
// missing dir or subdirectory contributes nothing. Files matching any of
// excludes, by relative path or base name, are skipped.
func LoadCustomTemplates(dir string, excludes []string) (*Overrides, error) {
	o := emptyOverrides()
	if dir == "" {
		return o, nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return o, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot stat templates %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path is not a directory: %s", dir)
	}

	for sub, dst := range map[string]map[string]string{"rules": o.Rules, "workflows": o.Workflows, "skills": o.Skills} {
		if err := loadTree(filepath.Join(dir, sub), dst, excludes); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func loadTree(root string, dst map[string]string, excludes []string) error {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchesExclude(rel, excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read template %s: %w", path, err)
		}
		dst[rel] = string(b)
		return nil
	})
}

// matchesExclude reports whether rel matches any pattern, against the full
// relative path or just the base name.
func matchesExclude(rel string, patterns []string) bool {
	name := filepath.Base(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
