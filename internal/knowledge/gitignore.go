// Package knowledge holds the static tables the scaffolder, assimilator and
// doctor draw from: ignore blocks, Nix packages, keyword aliases, agent
// templates, licenses and technology descriptions. Nothing here is mutated
// at runtime.
package knowledge

import "sort"

// BaseGitignore is emitted at the top of every generated .gitignore.
const BaseGitignore = `
# --- Universal ---
.DS_Store
Thumbs.db
*~
*.swp
*.swo
.env
.env.*
!.env.example
# --- Agent / AI ---
.agent/logs/
.agent/tmp/
.agent/memory/history/
.agent/.architect.lock
agent_setup.log
`

// GitignoreBlocks maps a canonical keyword to its ignore block. The key set
// doubles as the detection dictionary for brain dumps.
var GitignoreBlocks = map[string]string{
	"python":   "\n# --- Python ---\n__pycache__/\n*.pyc\nvenv/\n.venv/\n.pytest_cache/\n.mypy_cache/\n.ruff_cache/\n*.egg-info/\n",
	"node":     "\n# --- Node/JS ---\nnode_modules/\ndist/\nbuild/\ncoverage/\n.npm/\n.eslintcache\n.yarn-integrity\n",
	"rust":     "\n# --- Rust ---\n/target\nCargo.lock\n**/*.rs.bk\n",
	"go":       "\n# --- Go ---\n/bin/\n/pkg/\n/dist/\n",
	"java":     "\n# --- Java ---\n*.class\n*.jar\n*.war\nbuild/\n.gradle/\n",
	"php":      "\n# --- PHP ---\n/vendor/\n.phpunit.result.cache\n",
	"ruby":     "\n# --- Ruby ---\n/.bundle/\n/vendor/bundle/\n",
	"docker":   "\n# --- Docker ---\n.docker/\n",
	"postgres": "",
	"react":    "\n# --- React ---\nbuild/\n.env.local\n",
	"nextjs":   "\n# --- NextJS ---\n.next/\nout/\n",
	"django":   "\n# --- Django ---\n*.log\nlocal_settings.py\ndb.sqlite3\nmedia/\nstaticfiles/\n",
	"flask":    "\n# --- Flask ---\ninstance/\n.webassets-cache\n",
	"macos":    "\n# --- macOS ---\n.DS_Store\n.AppleDouble\n",
	"windows":  "\n# --- Windows ---\nThumbs.db\nehthumbs.db\n*.exe\n*.dll\n",
	"linux":    "\n# --- Linux ---\n*~\n.fuse_hidden*\n",
	"vscode":   "\n# --- VS Code ---\n.vscode/*\n!.vscode/settings.json\n!.vscode/extensions.json\n",
	"idea":     "\n# --- JetBrains ---\n.idea/\n*.iml\n",
	"gitea":    "",
}

// Aliases maps alias tokens to the canonical keyword they imply.
var Aliases = map[string]string{
	"js":         "node",
	"javascript": "node",
	"typescript": "node",
	"svelte":     "node",
	"sveltekit":  "node",
	"vue":        "node",
	"angular":    "node",
	"express":    "node",
	"fastapi":    "python",
	"golang":     "go",
	"postgresql": "postgres",
	"kotlin":     "java",
	"rails":      "ruby",
	"laravel":    "php",
	"cargo":      "rust",
}

// OperatingSystems are the keywords that count as a platform choice.
var OperatingSystems = []string{"macos", "windows", "linux"}

// DefaultStack is used when neither the user nor a brain dump named anything.
const DefaultStack = "linux"

// Dictionary returns the canonical detection keywords in sorted order.
func Dictionary() []string {
	out := make([]string, 0, len(GitignoreBlocks))
	for k := range GitignoreBlocks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Canonical resolves an alias to its canonical keyword. Unknown keywords are
// returned unchanged.
func Canonical(keyword string) string {
	if c, ok := Aliases[keyword]; ok {
		return c
	}
	return keyword
}

// Known reports whether keyword is in the dictionary or the alias table.
func Known(keyword string) bool {
	if _, ok := GitignoreBlocks[keyword]; ok {
		return true
	}
	_, ok := Aliases[keyword]
	return ok
}
