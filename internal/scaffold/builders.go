package scaffold

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkeffect/antigravity-architect/internal/knowledge"
)

// BuildGitignore assembles .gitignore from the base block and one block per
// known keyword. Aliases contribute their canonical block once.
func BuildGitignore(keywords []string) string {
	var b strings.Builder
	b.WriteString(knowledge.BaseGitignore)
	done := map[string]bool{}
	for _, k := range keywords {
		c := knowledge.Canonical(k)
		if done[c] {
			continue
		}
		if block, ok := knowledge.GitignoreBlocks[c]; ok {
			b.WriteString(block)
			done[c] = true
		}
	}
	return b.String()
}

// BuildNixConfig renders .idx/dev.nix for Project IDX.
func BuildNixConfig(keywords []string) string {
	set := map[string]bool{}
	for _, p := range knowledge.NixBasePackages {
		set[p] = true
	}
	for _, k := range keywords {
		key := knowledge.Canonical(k)
		if a, ok := knowledge.NixAliases[key]; ok {
			key = a
		}
		for _, p := range knowledge.NixPackages[key] {
			set[p] = true
		}
	}
	pkgs := make([]string, 0, len(set))
	for p := range set {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)

	return fmt.Sprintf(`# Google Project IDX Environment Configuration
{ pkgs, ... }: {
  channel = "stable-23.11";
  packages = [
    %s
  ];
  env = {};
  idx = {
    extensions = ["google.gemini-code-assist"];
    workspace = {
      onCreate = {
        setup = "echo 'Antigravity Environment Ready'";
      };
    };
  };
}
`, strings.Join(pkgs, "\n    "))
}

// BuildTechStackRule renders <agent>/rules/01_tech_stack.md.
func BuildTechStackRule(keywords []string) string {
	return fmt.Sprintf(`# Technology Stack
Keywords Detected: %s

## Directives
1. **Inference:** Assume standard frameworks for these keywords (e.g., React implies standard hooks/components).
2. **Tooling:** Use the standard CLI tools (pip, npm, cargo, go mod).
3. **Files:** Look for `+"`pyproject.toml`, `package.json`"+`, or similar to confirm versions.
`, strings.Join(keywords, ", "))
}

// BuildScratchpad renders the initial memory file.
func BuildScratchpad(keywords []string, hasBrainDump bool, now time.Time) string {
	imported := "No"
	if hasBrainDump {
		imported = "Yes"
	}
	return fmt.Sprintf(`# Project Scratchpad
*Last Updated: %s*

## Status
- Project initialized.
- Tech Stack: %s.
- Imported Knowledge: %s.
`, now.Format(time.RFC3339), strings.Join(keywords, ", "), imported)
}

// BuildReadme renders README.md.
func BuildReadme(name string, keywords []string, license string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nStack: %s\n\n", name, strings.Join(keywords, ", "))
	b.WriteString("## Getting Started\n\nOpen the project in your agent-enabled editor and read `BOOTSTRAP_INSTRUCTIONS.md`.\n")
	if license != "" && license != knowledge.LicenseNone {
		fmt.Fprintf(&b, "\n## License\n\n%s. See `LICENSE`.\n", strings.ToUpper(license))
	}
	return b.String()
}

// BuildCopilotInstructions renders .github/copilot-instructions.md.
func BuildCopilotInstructions(name string, keywords []string, agentDir string) string {
	return fmt.Sprintf(`# GitHub Copilot Instructions
Project: %s
Tech Stack: %s

## Context
- Rules live in `+"`%s/rules/`"+`. Follow them before suggesting code.
- Assimilated knowledge lives in `+"`docs/imported/`"+`.

## Development Workflow
1. Read `+"`%s/memory/scratchpad.md`"+` for current status.
2. Keep changes small and tested.
3. Use Conventional Commits.
`, name, strings.Join(keywords, ", "), agentDir, agentDir)
}

// BuildCursorRules renders .cursorrules.
func BuildCursorRules(name string, keywords []string, agentDir string) string {
	return fmt.Sprintf(`# Cursor IDE Rules
Project: %s
Tech Stack: %s

- Load every file in `+"`%s/rules/`"+` as binding instructions.
- Check `+"`docs/imported/`"+` before answering architecture questions.
- Never write secrets to source files.
`, name, strings.Join(keywords, ", "), agentDir)
}

// BuildWindsurfRules renders .windsurfrules.
func BuildWindsurfRules(name string, keywords []string, agentDir string) string {
	return fmt.Sprintf(`# Windsurf IDE Rules
Project: %s
Tech Stack: %s

- Cascade must read `+"`%s/rules/`"+` before planning.
- Workflows in `+"`%s/workflows/`"+` are available as slash commands.
- Record progress in `+"`%s/memory/scratchpad.md`"+`.
`, name, strings.Join(keywords, ", "), agentDir, agentDir, agentDir)
}
