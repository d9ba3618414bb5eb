package scaffold

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ManifestName is the manifest file inside the agent directory.
const ManifestName = "manifest.json"

// Manifest records one generation run and a fingerprint of every file it
// wrote, so later doctor runs can spot drift.
type Manifest struct {
	RunID       string            `json:"run_id"`
	Version     string            `json:"version"`
	Project     string            `json:"project"`
	GeneratedAt string            `json:"generated_at"`
	Stack       []string          `json:"stack"`
	Files       map[string]string `json:"files"`
}

// NewRunID returns a monotonic ULID string.
func NewRunID(now time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

// BuildManifest fingerprints paths, recording them relative to projectDir.
// Paths outside the project are ignored.
func BuildManifest(projectDir, project, version string, stack, paths []string, now time.Time) (*Manifest, error) {
	m := &Manifest{
		RunID:       NewRunID(now),
		Version:     version,
		Project:     project,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Stack:       stack,
		Files:       map[string]string{},
	}
	for _, p := range paths {
		rel, err := filepath.Rel(projectDir, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		sum, err := FileSHA256(p)
		if err != nil {
			return nil, err
		}
		m.Files[filepath.ToSlash(rel)] = sum
	}
	return m, nil
}

// Marshal renders the manifest as indented JSON.
func (m *Manifest) Marshal() (string, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal manifest: %w", err)
	}
	return string(b) + "\n", nil
}

// ReadManifest loads a manifest from disk.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

// Drift lists manifest entries whose file is gone or whose content changed,
// sorted by path.
func (m *Manifest) Drift(projectDir string) (changed, missing []string) {
	for rel, want := range m.Files {
		got, err := FileSHA256(filepath.Join(projectDir, filepath.FromSlash(rel)))
		switch {
		case os.IsNotExist(err):
			missing = append(missing, rel)
		case err != nil || got != want:
			changed = append(changed, rel)
		}
	}
	sort.Strings(changed)
	sort.Strings(missing)
	return changed, missing
}

// FileSHA256 returns the hex-encoded SHA-256 digest of the file at path.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
