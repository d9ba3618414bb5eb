package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
)

// forge is the hosting flavour CI and issue templates are written for.
type forge struct {
	dir string
	ci  string
}

var (
	github = forge{dir: ".github", ci: "ci.yml"}
	gitea  = forge{dir: ".gitea", ci: "ci.yml"}
)

func forgeFor(stack []string) forge {
	for _, k := range stack {
		if k == "gitea" {
			return gitea
		}
	}
	return github
}

func ciWorkflow(stack []string) string {
	var steps []string
	for _, k := range stack {
		switch k {
		case "python":
			steps = append(steps, "      - run: pip install -r requirements.txt || true", "      - run: python -m pytest")
		case "node":
			steps = append(steps, "      - run: npm ci", "      - run: npm test")
		case "go":
			steps = append(steps, "      - run: go vet ./...", "      - run: go test ./...")
		case "rust":
			steps = append(steps, "      - run: cargo test")
		}
	}
	if len(steps) == 0 {
		steps = append(steps, "      - run: echo \"no test command configured\"")
	}
	return `name: CI
on:
  push:
    branches: [main]
  pull_request:
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
` + strings.Join(steps, "\n") + "\n"
}

const bugReport = `---
name: Bug report
about: Report something that does not work
labels: bug
---
## What happened

## What you expected

## Steps to reproduce
1.
`

const featureRequest = `---
name: Feature request
about: Suggest an idea
labels: enhancement
---
## Problem

## Proposed solution
`

const pullRequest = `## Summary

## Checklist
- Tests pass locally
- Docs updated where behaviour changed
`

// forgeFiles returns the CI and issue template files keyed by path
// relative to the project root.
func forgeFiles(stack []string) map[string]string {
	f := forgeFor(stack)
	files := map[string]string{}
	files[filepath.Join(f.dir, "workflows", f.ci)] = ciWorkflow(stack)
	files[filepath.Join(f.dir, "ISSUE_TEMPLATE", "bug_report.md")] = bugReport
	files[filepath.Join(f.dir, "ISSUE_TEMPLATE", "feature_request.md")] = featureRequest
	files[filepath.Join(f.dir, "PULL_REQUEST_TEMPLATE.md")] = pullRequest
	if f == github {
		files[filepath.Join(".github", "FUNDING.yml")] = "# github: [your-handle]\n"
	}
	// Gitea uses lowercase template directories.
	if f == gitea {
		for k, v := range files {
			if strings.Contains(k, "ISSUE_TEMPLATE") {
				delete(files, k)
				files[strings.Replace(k, "ISSUE_TEMPLATE", "issue_template", 1)] = v
			}
		}
	}
	return files
}

// communityFiles returns CHANGELOG, CONTRIBUTING, AUDIT and SECURITY.
func communityFiles(name string, date string) map[string]string {
	return map[string]string{
		"CHANGELOG.md": fmt.Sprintf(`# Changelog
All notable changes to %s are documented here.

## [Unreleased]
- Project scaffolded on %s.
`, name, date),
		"CONTRIBUTING.md": `# Contributing
1. Fork and create a feature branch.
2. Follow the rules in ` + "`.agent/rules/`" + `.
3. Use Conventional Commits.
4. Open a pull request with a clear summary.
`,
		"AUDIT.md": fmt.Sprintf(`# Audit Log
| Date | Action | Actor |
|------|--------|-------|
| %s | Project scaffolded | architect |
`, date),
		"SECURITY.md": `# Security Policy
Report vulnerabilities privately to the maintainers. Do not open public issues
for security problems. Secrets belong in ` + "`.env`" + `, never in the repository.
`,
	}
}

// vscodeFiles returns .vscode/settings.json and extensions.json.
func vscodeFiles(stack []string) map[string]string {
	exts := []string{`"google.gemini-code-assist"`}
	for _, k := range stack {
		switch k {
		case "python", "django", "flask", "fastapi":
			exts = append(exts, `"ms-python.python"`)
		case "go":
			exts = append(exts, `"golang.go"`)
		case "rust":
			exts = append(exts, `"rust-lang.rust-analyzer"`)
		case "node", "react", "nextjs":
			exts = append(exts, `"dbaeumer.vscode-eslint"`)
		case "docker":
			exts = append(exts, `"ms-azuretools.vscode-docker"`)
		}
	}
	return map[string]string{
		filepath.Join(".vscode", "settings.json"): `{
  "editor.formatOnSave": true,
  "files.exclude": { "**/.agent/tmp": true },
  "search.exclude": { "context/raw": true }
}
`,
		filepath.Join(".vscode", "extensions.json"): "{\n  \"recommendations\": [" + strings.Join(dedupe(exts), ", ") + "]\n}\n",
	}
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
