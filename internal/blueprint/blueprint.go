// Package blueprint describes project starting points: a stack, extra
// directories and extra agent rules. Blueprints come from the built-in
// table, a local JSON or YAML file, or a git repository.
package blueprint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RemoteFile is the blueprint file looked up at the root of a cloned repo.
const RemoteFile = "antigravity_blueprint.json"

// ErrUnknown is returned when a reference names no blueprint.
var ErrUnknown = errors.New("unknown blueprint")

// Rule is an extra file written to <agent>/rules.
type Rule struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// Blueprint is a reusable project shape.
type Blueprint struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Stack       []string `json:"stack" yaml:"stack"`
	Dirs        []string `json:"dirs" yaml:"dirs"`
	Rules       []Rule   `json:"rules" yaml:"rules"`
}

var builtin = map[string]Blueprint{
	"nextjs": {
		Name:        "nextjs",
		Description: "Next.js app router frontend with TypeScript",
		Stack:       []string{"node", "react", "nextjs", "typescript"},
		Dirs:        []string{"app", "components", "lib", "public"},
		Rules: []Rule{{"20_nextjs.md", `# Next.js Conventions
- Use the app router. Server components by default.
- Mark client components with "use client" only when needed.
- Keep data fetching in server components or route handlers.
`}},
	},
	"fastapi": {
		Name:        "fastapi",
		Description: "FastAPI service with pydantic models",
		Stack:       []string{"python", "fastapi", "docker"},
		Dirs:        []string{"app", "app/routers", "app/models", "tests"},
		Rules: []Rule{{"20_fastapi.md", `# FastAPI Conventions
- Declare request and response models with pydantic.
- Group endpoints in routers under app/routers.
- Use dependency injection for database sessions.
`}},
	},
	"go-fiber": {
		Name:        "go-fiber",
		Description: "Go HTTP service on Fiber",
		Stack:       []string{"go", "docker"},
		Dirs:        []string{"cmd", "internal", "internal/handlers", "pkg"},
		Rules: []Rule{{"20_go_fiber.md", `# Go Fiber Conventions
- Keep main packages under cmd/ and private code under internal/.
- Return errors, never panic in handlers.
- Run gofmt and go vet before committing.
`}},
	},
	"rust-axum": {
		Name:        "rust-axum",
		Description: "Rust HTTP service on Axum and Tokio",
		Stack:       []string{"rust", "docker"},
		Dirs:        []string{"src/routes", "src/models", "tests"},
		Rules: []Rule{{"20_rust_axum.md", `# Rust Axum Conventions
- Use extractors for request parsing.
- Propagate errors with a typed error implementing IntoResponse.
- Run cargo clippy and cargo fmt before committing.
`}},
	},
}

// Builtin returns a copy of the named built-in blueprint.
func Builtin(name string) (*Blueprint, bool) {
	bp, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return &bp, true
}

// Names returns the built-in blueprint names, sorted.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for k := range builtin {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Resolve turns ref into a blueprint. ref may be a built-in name, a path to
// a .json, .yaml or .yml file, or a git URL.
func Resolve(ctx context.Context, ref string) (*Blueprint, error) {
	if bp, ok := Builtin(ref); ok {
		return bp, nil
	}
	if isRemote(ref) {
		return FetchRemote(ctx, ref)
	}
	if _, err := os.Stat(ref); err == nil {
		return LoadFile(ref)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknown, ref)
}

func isRemote(ref string) bool {
	for _, p := range []string{"https://", "http://", "git@", "ssh://", "git://"} {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

// LoadFile reads a blueprint from a JSON or YAML file.
func LoadFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read blueprint %s: %w", path, err)
	}
	var bp Blueprint
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bp)
	default:
		err = json.Unmarshal(data, &bp)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid blueprint %s: %w", path, err)
	}
	if bp.Name == "" {
		bp.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &bp, nil
}

// gitClone is swapped in tests.
var gitClone = func(ctx context.Context, url, dir string) error {
	out, err := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, dir).CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone %s: %w\n%s", url, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// FetchRemote shallow-clones url into a temporary directory and reads its
// antigravity_blueprint.json.
func FetchRemote(ctx context.Context, url string) (*Blueprint, error) {
	tmp, err := os.MkdirTemp("", "architect-blueprint-*")
	if err != nil {
		return nil, fmt.Errorf("cannot create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	dir := filepath.Join(tmp, "repo")
	if err := gitClone(ctx, url, dir); err != nil {
		return nil, err
	}
	bp, err := LoadFile(filepath.Join(dir, RemoteFile))
	if err != nil {
		return nil, fmt.Errorf("remote blueprint %s: %w", url, err)
	}
	return bp, nil
}
