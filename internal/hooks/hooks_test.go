package hooks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall_FreshHook(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	p, err := Install(dir, ".agent")
	require.NoError(t, err)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "#!/bin/sh\n"))
	assert.Contains(t, s, "Antigravity")
	assert.Contains(t, s, ".agent/memory/scratchpad.md")

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestInstall_IsIdempotentAndKeepsUserLines(t *testing.T) {
	dir := t.TempDir()
	hook := HookPath(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(hook), 0o755))
	require.NoError(t, os.WriteFile(hook, []byte("#!/bin/sh\necho user-hook\n"), 0o644))

	_, err := Install(dir, ".agent")
	require.NoError(t, err)
	_, err = Install(dir, ".agent")
	require.NoError(t, err)

	b, err := os.ReadFile(hook)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "echo user-hook")
	assert.Equal(t, 1, strings.Count(s, blockStart))
	assert.Equal(t, 1, strings.Count(s, blockEnd))
}

func TestInstall_NoRepo(t *testing.T) {
	_, err := Install(t.TempDir(), ".agent")
	assert.ErrorIs(t, err, ErrNoRepo)
}

func TestUpsert_AddsShebang(t *testing.T) {
	got := upsert("echo hi", "BLOCK")
	assert.Equal(t, "#!/bin/sh\necho hi\n\nBLOCK\n", got)
}
