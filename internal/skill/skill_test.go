package skill

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	agent := t.TempDir()
	writeFile(t, agent, "skills/git_automation/SKILL.md", "---\nname: git_automation\ndescription: Safe git operations.\n---\n# Git Skill\n")
	writeFile(t, agent, "skills/imported_cli/SKILL.md", "\n\n<!-- Auto-Assimilated Source -->\n\n# CLI\n\nRun the tool with flags.\n")
	writeFile(t, agent, "skills/notes.md", "not a skill")

	docs, err := Discover(agent)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("want 2 skills, got %d: %+v", len(docs), docs)
	}

	git := docs[0]
	if git.ID != "git_automation" || git.Name != "git_automation" || !git.Declared {
		t.Errorf("unexpected git skill: %+v", git)
	}
	if git.Path != "skills/git_automation" {
		t.Errorf("path = %q", git.Path)
	}
	if git.Description != "Safe git operations." {
		t.Errorf("description = %q", git.Description)
	}

	imp := docs[1]
	if imp.Declared || imp.Name != "imported_cli" {
		t.Errorf("unexpected imported skill: %+v", imp)
	}
	if imp.Description != "Run the tool with flags." {
		t.Errorf("inferred description = %q", imp.Description)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	docs, err := Discover(filepath.Join(t.TempDir(), ".agent"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("want none, got %v", docs)
	}
}

func TestParseHeader(t *testing.T) {
	h, body := ParseHeader("\ufeff---\nName: x\ncount: 3\n---\nbody\n")
	if h.Name != "x" || !h.Declared() {
		t.Errorf("name = %q", h.Name)
	}
	if body != "body\n" {
		t.Errorf("body = %q", body)
	}

	h, body = ParseHeader("# plain")
	if h.Declared() || body != "# plain" {
		t.Errorf("plain doc mangled: %v %q", h, body)
	}
}

func TestParseHeader_CRLFAndInlineFence(t *testing.T) {
	h, body := ParseHeader("---\r\nname: deploy\r\ndescription: ship it --- fast\r\n---\r\n# Deploy\r\n")
	if h.Name != "deploy" {
		t.Errorf("name = %q", h.Name)
	}
	if h.Description != "ship it --- fast" {
		t.Errorf("description = %q", h.Description)
	}
	if body != "# Deploy\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseHeader_UnclosedOrBlankName(t *testing.T) {
	src := "---\nname: x\n# never closed\n"
	h, body := ParseHeader(src)
	if h.Declared() || body != src {
		t.Errorf("unclosed block parsed: %v %q", h, body)
	}

	h, _ = ParseHeader("---\nname: \"  \"\ndescription: d\n---\n")
	if h.Declared() {
		t.Errorf("blank name counted as declared")
	}
	if h.Description != "d" {
		t.Errorf("description = %q", h.Description)
	}
}

func TestSearch(t *testing.T) {
	docs := []Doc{
		{ID: "secrets_manager", Name: "secrets_manager", Description: "Keep API keys in .env"},
		{ID: "git_automation", Name: "git_automation", Description: "Safe git operations"},
		{ID: "deploy", Name: "Deploy", Description: "Ship with git tags"},
	}

	got := Search(docs, "GIT")
	if len(got) != 2 || got[0].ID != "deploy" || got[1].ID != "git_automation" {
		t.Errorf("Search(GIT) = %+v", got)
	}
	if got := Search(docs, "git safe"); len(got) != 1 || got[0].ID != "git_automation" {
		t.Errorf("AND semantics broken: %+v", got)
	}
	if got := Search(docs, "   "); len(got) != 0 {
		t.Errorf("blank query should match nothing, got %+v", got)
	}
}
