package knowledge

// Template is a generated file, addressed relative to its category directory.
type Template struct {
	Path    string
	Content string
}

// TechStackRule is the file name of the generated stack rule. It is built
// from the final stack rather than stored here.
const TechStackRule = "01_tech_stack.md"

// SecurityRule is watched by the sentinel.
const SecurityRule = "02_security.md"

// Rules are written to <agent>/rules.
var Rules = []Template{
	{"00_identity.md", `# System Identity
You are a Senior Polyglot Software Engineer and Product Architect.
- **Safety:** Never delete data without asking. Never leak secrets.
- **Context:** Always check ` + "`docs/imported`" + ` and ` + "`context/raw`" + ` before coding.
`},
	{SecurityRule, `# Security Protocols
1. **Secrets:** Never output API keys. Use ` + "`.env`" + `.
2. **Inputs:** Validate all inputs.
3. **Dependencies:** Warn if using deprecated libraries.
`},
	{"03_git.md", `# Git Conventions
- Use Conventional Commits (` + "`feat:`, `fix:`, `docs:`" + `).
- Never commit to main without testing.
`},
	{"04_reasoning.md", `# Reasoning Protocol
1. **Pause:** Analyze the request.
2. **Plan:** Break it down step-by-step.
3. **Check:** Verify against ` + "`docs/`" + ` constraints.
4. **Execute:** Write code.
`},
	{"08_boundaries.md", `# Operational Boundaries
- Stay inside the project root. Never touch files outside it.
- Never modify ` + "`.git/`" + ` internals directly.
- Ask before installing system packages or running destructive commands.
- Treat ` + "`context/raw/`" + ` as read-only source material.
`},
	{"10_evolution.md", `# Evolution Protocol
1. When a rule proves wrong or incomplete, propose an amendment.
2. Record accepted amendments in ` + "`.agent/memory/evolution.md`" + `.
3. Run ` + "`/evolve`" + ` to apply them to ` + "`.agent/rules/`" + `.
`},
}

// Workflows are written to <agent>/workflows.
var Workflows = []Template{
	{"plan.md", `---
trigger: /plan
---
# Plan Workflow
1. Read ` + "`docs/imported/`" + ` and ` + "`context/raw/`" + `.
2. Break request into atomic tasks.
3. Check against ` + "`.agent/rules/`" + `.
4. Output plan and update ` + "`scratchpad.md`" + `.
`},
	{"bootstrap.md", `---
trigger: /bootstrap
---
# Bootstrap Workflow
1. Read ` + "`.agent/rules/01_tech_stack.md`" + `.
2. Generate boilerplate code for the detected stack.
3. Ensure ` + "`.gitignore`" + ` is respected.
`},
	{"commit.md", `---
trigger: /commit
---
# Smart Commit
1. Run ` + "`git status`" + `.
2. Analyze diffs.
3. Generate Conventional Commit message.
4. Ask for approval.
`},
	{"review.md", `---
trigger: /review
---
# Code Review
1. Check for Security risks (Rule 02).
2. Check for Code Style (Rule 01).
3. Report issues sorted by severity.
`},
	{"save.md", `---
trigger: /save
---
# Save Memory
1. Summarize recent actions.
2. Update ` + "`.agent/memory/scratchpad.md`" + `.
`},
	{"evolve.md", `---
trigger: /evolve
---
# Evolve Rules
1. Read ` + "`.agent/memory/evolution.md`" + `.
2. Apply accepted amendments to ` + "`.agent/rules/`" + `.
3. Log the change with today's date.
`},
}

// Skills are written to <agent>/skills.
var Skills = []Template{
	{"git_automation/SKILL.md", `---
name: git_automation
description: Safe git operations.
---
# Git Skill
**Commands:** ` + "`git status`, `git diff`, `git add`, `git commit`" + `.
**Rule:** Always verify status before adding.
`},
	{"secrets_manager/SKILL.md", `---
name: secrets_manager
description: Handle API keys.
---
# Secrets Skill
**Action:** Detect secrets in code. Move them to ` + "`.env`" + `. Replace with environment lookups.
`},
}

// EvolutionLog seeds <agent>/memory/evolution.md.
const EvolutionLog = `# Evolution Log
Accepted rule amendments, newest first.
`

// BootstrapInstructions is written to the project root.
const BootstrapInstructions = `# Agent Start Guide
1. **Context:** Read ` + "`.agent/memory/scratchpad.md`" + `.
2. **Knowledge:** Check ` + "`docs/imported/`" + ` for assimilated rules.
3. **Action:** Run ` + "`/bootstrap`" + ` to generate the application skeleton.
`

// Devcontainer is written to .devcontainer/devcontainer.json.
const Devcontainer = `{
  "name": "Antigravity Universal",
  "image": "mcr.microsoft.com/devcontainers/base:ubuntu",
  "features": { "ghcr.io/devcontainers/features/common-utils:2": {} }
}
`

// EnvExample is written to .env.example.
const EnvExample = "API_KEY=\nDB_URL=\n"
