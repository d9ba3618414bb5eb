// Package hooks installs the git hook that mirrors each commit into the
// agent's scratchpad.
package hooks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	blockStart = "# >>> Antigravity memory hook >>>"
	blockEnd   = "# <<< Antigravity memory hook <<<"
)

// ErrNoRepo is returned when the project has no .git directory.
var ErrNoRepo = errors.New("not a git repository")

// HookPath returns the post-commit hook of projectDir.
func HookPath(projectDir string) string {
	return filepath.Join(projectDir, ".git", "hooks", "post-commit")
}

// InitRepo runs `git init` in projectDir unless it already has a .git.
func InitRepo(projectDir string) error {
	if _, err := os.Stat(filepath.Join(projectDir, ".git")); err == nil {
		return nil
	}
	out, err := exec.Command("git", "-C", projectDir, "init", "--quiet").CombinedOutput()
	if err != nil {
		return fmt.Errorf("git init: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Install writes or refreshes the managed block in the post-commit hook.
// Anything else in the hook is preserved.
func Install(projectDir, agentDir string) (string, error) {
	info, err := os.Stat(filepath.Join(projectDir, ".git"))
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoRepo, projectDir)
	}
	hookPath := HookPath(projectDir)
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return "", fmt.Errorf("cannot create hook directory: %w", err)
	}

	existing := ""
	if data, err := os.ReadFile(hookPath); err == nil {
		existing = string(data)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("cannot read existing hook: %w", err)
	}

	updated := upsert(existing, block(agentDir))
	if err := os.WriteFile(hookPath, []byte(updated), 0o755); err != nil {
		return "", fmt.Errorf("cannot write hook: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(hookPath, 0o755); err != nil {
		return "", fmt.Errorf("cannot chmod hook: %w", err)
	}
	return hookPath, nil
}

func block(agentDir string) string {
	return fmt.Sprintf(`%s
scratchpad="$(git rev-parse --show-toplevel)/%s/memory/scratchpad.md"
if [ -f "$scratchpad" ]; then
  printf -- '- %%s: %%s\n' "$(date -u +%%Y-%%m-%%dT%%H:%%M:%%SZ)" "$(git log -1 --pretty=%%s)" >> "$scratchpad"
fi
%s`, blockStart, filepath.ToSlash(agentDir), blockEnd)
}

func upsert(existing, managed string) string {
	if existing == "" {
		return "#!/bin/sh\n\n" + managed + "\n"
	}
	start := strings.Index(existing, blockStart)
	end := strings.Index(existing, blockEnd)
	if start >= 0 && end >= start {
		end += len(blockEnd)
		return ensureTrailingNewline(existing[:start] + managed + existing[end:])
	}
	base := ensureTrailingNewline(existing)
	if !strings.HasPrefix(base, "#!") {
		base = "#!/bin/sh\n" + base
	}
	return base + "\n" + managed + "\n"
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
