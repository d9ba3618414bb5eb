// Package preset stores named sets of `architect new` flag values as JSON
// files.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by Load for a preset that does not exist.
var ErrNotFound = errors.New("preset not found")

// operational flags never make it into a preset.
var operational = map[string]bool{"save_preset": true, "dry_run": true, "preset": true}

// Store is a directory of presets.
type Store struct {
	Dir string
}

func (s Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid preset name %q", name)
	}
	return filepath.Join(s.Dir, name+".json"), nil
}

// Save writes values under name, dropping operational keys.
func (s Store) Save(name string, values map[string]string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	clean := make(map[string]string, len(values))
	for k, v := range values {
		if !operational[k] {
			clean[k] = v
		}
	}
	data, err := json.MarshalIndent(clean, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal preset: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("cannot create presets dir %s: %w", s.Dir, err)
	}
	if err := os.WriteFile(p, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("cannot write preset %s: %w", p, err)
	}
	return nil
}

// Load reads the named preset.
func (s Store) Load(name string) (map[string]string, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read preset %s: %w", p, err)
	}
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", p, err)
	}
	return out, nil
}

// List returns the names of all presets, sorted. A missing directory holds
// no presets.
func (s Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot list presets in %s: %w", s.Dir, err)
	}
	out := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(out)
	return out, nil
}
