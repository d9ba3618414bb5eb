package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGitignore(t *testing.T) {
	base := BuildGitignore(nil)
	assert.Contains(t, base, ".DS_Store")
	assert.NotContains(t, base, "__pycache__")

	py := BuildGitignore([]string{"python"})
	assert.Contains(t, py, "__pycache__/")
	assert.Contains(t, py, "venv/")

	for _, alias := range []string{"node", "javascript", "js"} {
		assert.Contains(t, BuildGitignore([]string{alias}), "node_modules/", alias)
	}

	both := BuildGitignore([]string{"python", "node", "js"})
	assert.Contains(t, both, "__pycache__/")
	assert.Equal(t, 1, strings.Count(both, "# --- Node/JS ---"))
}

func TestBuildNixConfig(t *testing.T) {
	base := BuildNixConfig(nil)
	for _, p := range []string{"pkgs.git", "pkgs.curl", "pkgs.jq"} {
		assert.Contains(t, base, p)
	}
	assert.Contains(t, BuildNixConfig([]string{"python"}), "pkgs.python312")
	assert.Contains(t, BuildNixConfig([]string{"django"}), "pkgs.python312")
	assert.Contains(t, BuildNixConfig([]string{"fastapi"}), "pkgs.python312")
	assert.Contains(t, BuildNixConfig([]string{"react"}), "pkgs.nodejs_20")
	assert.Contains(t, BuildNixConfig([]string{"postgres"}), "pkgs.postgresql")
}

func TestBuildTechStackRule(t *testing.T) {
	got := BuildTechStackRule([]string{"python"})
	assert.Contains(t, got, "Keywords Detected: python")
	assert.Contains(t, got, "Directives")
	assert.Contains(t, got, "Inference")
	assert.Contains(t, got, "Tooling")

	assert.Contains(t, BuildTechStackRule([]string{"python", "react"}), "python, react")
}

func TestBuildScratchpad(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := BuildScratchpad([]string{"go"}, true, now)
	assert.Contains(t, got, "2026-01-02T03:04:05Z")
	assert.Contains(t, got, "Tech Stack: go.")
	assert.Contains(t, got, "Imported Knowledge: Yes.")
}

func TestBuildTechDeepDive(t *testing.T) {
	got := BuildTechDeepDive([]string{"python", "docker", "react"},
		"This project uses FastAPI for the backend and React for the frontend.")
	assert.Contains(t, got, "### Python")
	assert.Contains(t, got, "### Docker")
	assert.Contains(t, got, "### React")
	assert.Contains(t, got, "API")

	assert.Contains(t, BuildTechDeepDive(nil, "Just some text."), "Standard project structure")
}

func TestBuildLinks(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "sibling-1", ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "sibling-2", ".agent"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "plain"), 0o755))
	project := filepath.Join(ws, "current-project")
	require.NoError(t, os.MkdirAll(project, 0o755))

	got := BuildLinks(project, ".agent")
	assert.Contains(t, got, "sibling-1")
	assert.Contains(t, got, "sibling-2")
	assert.Contains(t, got, "Git Repository")
	assert.Contains(t, got, "Antigravity Project")
	assert.NotContains(t, got, "plain")
	assert.NotContains(t, got, "current-project")
}

func TestForgeFiles(t *testing.T) {
	gh := forgeFiles([]string{"python"})
	assert.Contains(t, gh, filepath.Join(".github", "FUNDING.yml"))
	assert.Contains(t, gh, filepath.Join(".github", "ISSUE_TEMPLATE", "bug_report.md"))
	assert.Contains(t, gh[filepath.Join(".github", "workflows", "ci.yml")], "python -m pytest")

	gt := forgeFiles([]string{"gitea", "go"})
	assert.Contains(t, gt, filepath.Join(".gitea", "workflows", "ci.yml"))
	assert.Contains(t, gt, filepath.Join(".gitea", "issue_template", "bug_report.md"))
	assert.NotContains(t, gt, filepath.Join(".github", "FUNDING.yml"))
}

func TestAgentFiles_OverridesWin(t *testing.T) {
	o := emptyOverrides()
	o.Rules["00_identity.md"] = "# Custom identity"
	o.Skills["deploy/SKILL.md"] = "---\nname: deploy\n---\n# Deploy"

	files := AgentFiles(".agent", []string{"go"}, o)
	assert.Equal(t, "# Custom identity", files[filepath.Join(".agent", "rules", "00_identity.md")])
	assert.Contains(t, files, filepath.Join(".agent", "skills", "deploy", "SKILL.md"))
	assert.Contains(t, files[filepath.Join(".agent", "rules", "01_tech_stack.md")], "Keywords Detected: go")
	assert.Contains(t, files, filepath.Join(".agent", "workflows", "evolve.md"))
}

func TestLoadCustomTemplates(t *testing.T) {
	o, err := LoadCustomTemplates(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)
	assert.Empty(t, o.Rules)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rules"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "skills", "deploy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules", "test_rule.md"), []byte("content"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules", "junk.tmp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills", "deploy", "SKILL.md"), []byte("skill"), 0o644))

	o, err = LoadCustomTemplates(dir, []string{"*.tmp"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"test_rule.md": "content"}, o.Rules)
	assert.Equal(t, map[string]string{"deploy/SKILL.md": "skill"}, o.Skills)
	assert.Empty(t, o.Workflows)
}

func TestManifestDrift(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "sub", "b.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(b), 0o755))
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))

	m, err := BuildManifest(dir, "p", "test", []string{"go"}, []string{a, b, "/elsewhere/c.md"}, time.Now())
	require.NoError(t, err)
	assert.Len(t, m.Files, 2)
	assert.Len(t, m.RunID, 26)

	require.NoError(t, os.WriteFile(a, []byte("changed"), 0o644))
	require.NoError(t, os.Remove(b))

	changed, missing := m.Drift(dir)
	assert.Equal(t, []string{"a.md"}, changed)
	assert.Equal(t, []string{"sub/b.md"}, missing)
}
