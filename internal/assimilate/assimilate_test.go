package assimilate_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pkeffect/antigravity-architect/internal/assimilate"
	"github.com/pkeffect/antigravity-architect/internal/writer"
)

func writeDump(t *testing.T, dir, content string) string {
	t.Helper()
	p := filepath.Join(dir, "dump.md")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write dump: %v", err)
	}
	return p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func newAssimilator(base string, log *zap.Logger) *assimilate.Assimilator {
	return assimilate.New(writer.New(log), assimilate.Options{BaseDir: base, Logger: log})
}

func TestRun_RulesSection(t *testing.T) {
	base := t.TempDir()
	src := writeDump(t, t.TempDir(), "# Rules\n\nAlways validate input. Never skip checks.\n")

	res, err := newAssimilator(base, nil).Run(src)
	require.NoError(t, err)
	require.Len(t, res.Placements, 1)

	want := filepath.Join(base, ".agent", "rules", "imported_rules.md")
	assert.Equal(t, assimilate.Rules, res.Placements[0].Category)
	assert.Equal(t, want, res.Placements[0].Path)

	got := readFile(t, want)
	assert.Equal(t, "\n\n"+assimilate.Marker+"\n\n# Rules\n\nAlways validate input. Never skip checks.\n", got)
}

func TestRun_NoHeadingsStillDetectsAndArchives(t *testing.T) {
	base := t.TempDir()
	src := writeDump(t, t.TempDir(), "just plain text about python")

	res, err := newAssimilator(base, nil).Run(src)
	require.NoError(t, err)
	assert.Empty(t, res.Placements)
	assert.Equal(t, []string{"python"}, res.Keywords)
	assert.Equal(t, "just plain text about python", readFile(t, res.Archive))

	_, err = os.Stat(filepath.Join(base, ".agent"))
	assert.True(t, os.IsNotExist(err), "no agent files expected")
}

func TestRun_DuplicateHeadersAppendInOrder(t *testing.T) {
	base := t.TempDir()
	src := writeDump(t, t.TempDir(), "# Setup\n\nInstall deps.\n\n# Setup\n\nRun tests.\n")

	res, err := newAssimilator(base, nil).Run(src)
	require.NoError(t, err)
	require.Len(t, res.Placements, 2)
	assert.Equal(t, res.Placements[0].Path, res.Placements[1].Path)

	dest := filepath.Join(base, ".agent", "workflows", "imported_setup.md")
	got := readFile(t, dest)
	first := strings.Index(got, "Install deps.")
	second := strings.Index(got, "Run tests.")
	require.True(t, first >= 0 && second >= 0, got)
	assert.Less(t, first, second)
	assert.Equal(t, 2, strings.Count(got, assimilate.Marker))
}

func TestRun_UnsluggableHeaderFallsBackToUntitled(t *testing.T) {
	base := t.TempDir()
	src := writeDump(t, t.TempDir(), "# ???\n\nSome notes.\n")

	res, err := newAssimilator(base, nil).Run(src)
	require.NoError(t, err)
	require.Len(t, res.Placements, 1)
	assert.Equal(t, filepath.Join(base, "docs", "imported", "untitled.md"), res.Placements[0].Path)
}

func TestRun_InvalidPathWarnsAndWritesNothing(t *testing.T) {
	base := t.TempDir()
	core, logs := observer.New(zapcore.WarnLevel)

	res, err := newAssimilator(base, zap.New(core)).Run("/nonexistent/file.md")

	var ve *assimilate.ValidationError
	require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
	require.NotNil(t, res)
	assert.Empty(t, res.Keywords)
	assert.Empty(t, res.Placements)
	assert.Equal(t, 1, logs.FilterMessage("skipping brain dump").Len())

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_DirectoryIsRejected(t *testing.T) {
	_, err := newAssimilator(t.TempDir(), nil).Run(t.TempDir())
	var ve *assimilate.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "not a regular file", ve.Reason)
}

func TestRun_InvalidUTF8IsReplaced(t *testing.T) {
	base := t.TempDir()
	src := writeDump(t, t.TempDir(), "# Notes\n\nbad \xff byte, uses docker\n")

	res, err := newAssimilator(base, nil).Run(src)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "�")
	assert.Contains(t, readFile(t, res.Archive), "bad � byte")
	assert.Equal(t, []string{"docker"}, res.Keywords)
}

func TestRun_ArchiveIsVerbatim(t *testing.T) {
	base := t.TempDir()
	content := "preamble kept in archive\n\n# Overview\n\nbody\n\n\n"
	src := writeDump(t, t.TempDir(), content)

	res, err := newAssimilator(base, nil).Run(src)
	require.NoError(t, err)
	assert.Equal(t, content, readFile(t, res.Archive))
}

func TestRun_SafeModeKeepsExistingArchive(t *testing.T) {
	base := t.TempDir()
	archive := filepath.Join(base, "context", "raw", "master_brain_dump.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(archive), 0o755))
	require.NoError(t, os.WriteFile(archive, []byte("older dump"), 0o644))

	w := writer.New(nil)
	w.Safe = true
	a := assimilate.New(w, assimilate.Options{BaseDir: base})
	_, err := a.Run(writeDump(t, t.TempDir(), "# Overview\n\nnew\n"))
	require.NoError(t, err)
	assert.Equal(t, "older dump", readFile(t, archive))
}

func TestRun_RerunDuplicatesContent(t *testing.T) {
	base := t.TempDir()
	src := writeDump(t, t.TempDir(), "# Rules\n\nAlways lint.\n")
	a := newAssimilator(base, nil)

	_, err := a.Run(src)
	require.NoError(t, err)
	_, err = a.Run(src)
	require.NoError(t, err)

	got := readFile(t, filepath.Join(base, ".agent", "rules", "imported_rules.md"))
	assert.Equal(t, 2, strings.Count(got, "Always lint."))
}

func TestRun_WriteFailureDoesNotAbort(t *testing.T) {
	base := t.TempDir()
	// A regular file where the agent directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(base, ".agent"), []byte("x"), 0o644))
	src := writeDump(t, t.TempDir(), "# Rules\n\nAlways lint.\n\n# Overview\n\nSome background.\n")

	res, err := newAssimilator(base, nil).Run(src)
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Error(t, res.Err())
	require.Len(t, res.Placements, 1)
	assert.Equal(t, assimilate.Docs, res.Placements[0].Category)
}

func TestRun_CustomAgentDir(t *testing.T) {
	base := t.TempDir()
	a := assimilate.New(writer.New(nil), assimilate.Options{BaseDir: base, AgentDir: ".brain"})
	res, err := a.Run(writeDump(t, t.TempDir(), "# CLI\n\ncommand usage and flags\n"))
	require.NoError(t, err)
	require.Len(t, res.Placements, 1)
	want := filepath.Join(base, ".brain", "skills", "imported_cli", "SKILL.md")
	if diff := cmp.Diff(want, res.Placements[0].Path); diff != "" {
		t.Errorf("destination mismatch (-want +got):\n%s", diff)
	}
}
