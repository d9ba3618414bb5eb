// Package scaffold builds an agent-first project tree: ignore rules, editor
// and CI config, community docs, and the .agent directory of rules,
// workflows, skills and memory. A brain dump, when given, is assimilated
// into the same tree and its detected keywords join the stack.
package scaffold

import (
	"errors"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pkeffect/antigravity-architect/internal/assimilate"
	"github.com/pkeffect/antigravity-architect/internal/blueprint"
	"github.com/pkeffect/antigravity-architect/internal/knowledge"
	"github.com/pkeffect/antigravity-architect/internal/writer"
)

// Directories are created, with a .gitkeep, at the project root.
var Directories = []string{
	"src",
	"tests",
	"docs/imported",
	"context/raw",
	".idx",
	".devcontainer",
	"scripts",
}

// AgentDirs returns the directories created inside the agent directory.
func AgentDirs(agentDir string) []string {
	out := []string{}
	for _, d := range []string{"rules", "workflows", "skills", "memory"} {
		out = append(out, filepath.Join(agentDir, d))
	}
	for _, s := range knowledge.Skills {
		out = append(out, filepath.Join(agentDir, "skills", filepath.Dir(s.Path)))
	}
	return out
}

// Options controls one Generate run.
type Options struct {
	// Name is sanitized before use.
	Name      string
	ParentDir string
	Keywords  []string
	BrainDump string
	Safe      bool
	DryRun    bool
	License   string
	Author    string
	Blueprint *blueprint.Blueprint
	Templates *Overrides
	AgentDir  string
	Version   string
	Logger    *zap.Logger
	Now       func() time.Time
}

// Report describes what a Generate run did, or would do in a dry run.
type Report struct {
	Name         string
	Dir          string
	Stack        []string
	Assimilation *assimilate.Result
	Manifest     *Manifest
	Written      []string
	Skipped      []string
	Planned      []string
	Failures     []error
}

// Err combines the per-file failures, or nil.
func (r *Report) Err() error { return multierr.Combine(r.Failures...) }

// Generate scaffolds the project. Individual write failures are collected
// in the report rather than aborting the run.
func Generate(opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	agentDir := opts.AgentDir
	if agentDir == "" {
		agentDir = assimilate.DefaultAgentDir
	}
	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	parent, err := filepath.Abs(parent)
	if err != nil {
		return nil, err
	}

	name := SanitizeName(opts.Name)
	dir := filepath.Join(parent, name)
	rep := &Report{Name: name, Dir: dir}
	log.Info("constructing project", zap.String("name", name), zap.String("dir", dir))

	w := writer.New(log)
	w.Safe = opts.Safe
	w.DryRun = opts.DryRun
	fail := func(err error) {
		if err != nil {
			log.Error("write failed", zap.Error(err))
			rep.Failures = append(rep.Failures, err)
		}
	}
	put := func(rel, content string) { fail(w.WriteFile(filepath.Join(dir, rel), content)) }

	// ── Directories ──────────────────────────────────────────────────────────
	dirs := append(append([]string{}, Directories...), AgentDirs(agentDir)...)
	if opts.Blueprint != nil {
		dirs = append(dirs, opts.Blueprint.Dirs...)
	}
	for _, d := range dirs {
		fail(w.CreateFolder(filepath.Join(dir, d)))
	}

	// ── Brain dump ───────────────────────────────────────────────────────────
	var detected []string
	rawText := ""
	if opts.BrainDump != "" {
		a := assimilate.New(w, assimilate.Options{BaseDir: dir, AgentDir: agentDir, Logger: log})
		res, err := a.Run(opts.BrainDump)
		var ve *assimilate.ValidationError
		switch {
		case errors.As(err, &ve):
			// Non-fatal: the warning is already logged.
		case err != nil:
			rep.Failures = append(rep.Failures, err)
		}
		rep.Assimilation = res
		detected = res.Keywords
		rawText = res.Text
		rep.Failures = append(rep.Failures, res.Failures...)
	}

	var bpStack []string
	if opts.Blueprint != nil {
		bpStack = opts.Blueprint.Stack
	}
	stack := MergeStack(opts.Keywords, detected, bpStack)
	rep.Stack = stack
	log.Info("final tech stack", zap.Strings("stack", stack))

	// ── Core config ──────────────────────────────────────────────────────────
	put(".gitignore", BuildGitignore(stack))
	put(filepath.Join(".idx", "dev.nix"), BuildNixConfig(stack))
	put(filepath.Join(".devcontainer", "devcontainer.json"), knowledge.Devcontainer)
	put("README.md", BuildReadme(name, stack, opts.License))
	put(".env.example", knowledge.EnvExample)
	put("BOOTSTRAP_INSTRUCTIONS.md", knowledge.BootstrapInstructions)

	// ── Agent files ──────────────────────────────────────────────────────────
	files := AgentFiles(agentDir, stack, opts.Templates)
	for _, rel := range sortedKeys(files) {
		put(rel, files[rel])
	}
	if opts.Blueprint != nil {
		for _, r := range opts.Blueprint.Rules {
			put(filepath.Join(agentDir, "rules", r.Name), r.Content)
		}
	}
	put(filepath.Join(agentDir, "memory", "scratchpad.md"), BuildScratchpad(stack, opts.BrainDump != "", now()))
	put(filepath.Join(agentDir, "memory", "links.md"), BuildLinks(dir, agentDir))

	// ── IDE, forge and community ─────────────────────────────────────────────
	put(filepath.Join(".github", "copilot-instructions.md"), BuildCopilotInstructions(name, stack, agentDir))
	put(".cursorrules", BuildCursorRules(name, stack, agentDir))
	put(".windsurfrules", BuildWindsurfRules(name, stack, agentDir))
	for _, m := range []map[string]string{forgeFiles(stack), communityFiles(name, now().Format("2006-01-02")), vscodeFiles(stack)} {
		for _, rel := range sortedKeys(m) {
			put(rel, m[rel])
		}
	}
	if opts.License != "" && opts.License != knowledge.LicenseNone {
		if text, ok := knowledge.License(opts.License, now().Year(), opts.Author); ok {
			put("LICENSE", text)
		} else {
			log.Warn("unknown license, skipping LICENSE", zap.String("license", opts.License))
		}
	}
	put(filepath.Join("docs", "TECH_STACK.md"), BuildTechDeepDive(stack, rawText))
	fail(w.WriteExecutable(filepath.Join(dir, "scripts", "sentinel.sh"), sentinelScript(agentDir)))

	// ── Manifest ─────────────────────────────────────────────────────────────
	manifestPath := filepath.Join(dir, agentDir, ManifestName)
	if opts.DryRun {
		fail(w.WriteFile(manifestPath, "{}"))
	} else {
		m, err := BuildManifest(dir, name, opts.Version, stack, w.Written(), now())
		if err != nil {
			fail(err)
		} else {
			body, err := m.Marshal()
			fail(err)
			if err == nil {
				// The manifest always reflects the latest run, even in safe mode.
				w.Safe = false
				fail(w.WriteFile(manifestPath, body))
				rep.Manifest = m
			}
		}
	}

	rep.Written = w.Written()
	rep.Skipped = w.Skipped()
	rep.Planned = w.Planned()
	log.Info("project ready", zap.String("dir", dir), zap.Int("files", len(rep.Written)), zap.Int("failures", len(rep.Failures)))
	return rep, nil
}

// AgentFiles returns the built-in agent files for stack, keyed by path
// relative to the project root, with overrides applied on top.
func AgentFiles(agentDir string, stack []string, o *Overrides) map[string]string {
	out := map[string]string{}
	add := func(category string, ts []knowledge.Template, extra map[string]string) {
		for _, t := range ts {
			out[filepath.Join(agentDir, category, filepath.FromSlash(t.Path))] = t.Content
		}
		for rel, content := range extra {
			out[filepath.Join(agentDir, category, filepath.FromSlash(rel))] = content
		}
	}
	if o == nil {
		o = emptyOverrides()
	}
	add("rules", knowledge.Rules, o.Rules)
	add("workflows", knowledge.Workflows, o.Workflows)
	add("skills", knowledge.Skills, o.Skills)

	techRule := filepath.Join(agentDir, "rules", knowledge.TechStackRule)
	if _, overridden := o.Rules[knowledge.TechStackRule]; !overridden {
		out[techRule] = BuildTechStackRule(stack)
	}
	out[filepath.Join(agentDir, "memory", "evolution.md")] = knowledge.EvolutionLog
	return out
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
