// Package doctor checks a generated project against the expected agent
// layout and can regenerate what is missing.
package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"github.com/pkeffect/antigravity-architect/internal/knowledge"
	"github.com/pkeffect/antigravity-architect/internal/scaffold"
	"github.com/pkeffect/antigravity-architect/internal/skill"
	"github.com/pkeffect/antigravity-architect/internal/writer"
)

// ErrNoProject is returned when the project directory does not exist.
var ErrNoProject = errors.New("project directory does not exist")

// Status is the outcome of one check.
type Status int

const (
	Pass Status = iota
	Warn
	Issue
	Fixed
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warning"
	case Issue:
		return "issue"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// Check is one line of the doctor report.
type Check struct {
	Section string
	Target  string
	Status  Status
	Detail  string
}

// Report collects every check of a run.
type Report struct {
	Checks []Check
}

func (r *Report) add(section, target string, s Status, detail string) {
	r.Checks = append(r.Checks, Check{Section: section, Target: target, Status: s, Detail: detail})
}

// Count returns how many checks ended with s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == s {
			n++
		}
	}
	return n
}

// Healthy reports whether no issue is left unresolved.
func (r *Report) Healthy() bool { return r.Count(Issue) == 0 }

// Summary renders the closing line of a report. Fixed checks count as
// passed.
func (r *Report) Summary() string {
	return fmt.Sprintf("Summary: %d passed, %d warnings, %d issues",
		r.Count(Pass)+r.Count(Fixed), r.Count(Warn), r.Count(Issue))
}

// Options controls a doctor run.
type Options struct {
	AgentDir string
	Fix      bool
	Logger   *zap.Logger
	Now      func() time.Time
}

// RequiredDirs are checked relative to the agent directory.
var RequiredDirs = []string{"rules", "workflows", "skills", "memory"}

// RequiredFiles are checked relative to the agent directory.
var RequiredFiles = []string{
	"rules/00_identity.md",
	"rules/" + knowledge.TechStackRule,
	"rules/" + knowledge.SecurityRule,
	"workflows/plan.md",
	"workflows/bootstrap.md",
	"workflows/commit.md",
	"skills/git_automation/SKILL.md",
	"skills/secrets_manager/SKILL.md",
	"memory/scratchpad.md",
}

// Run checks projectDir. With Fix set, missing directories and files are
// recreated from the built-in templates.
func Run(projectDir string, opts Options) (*Report, error) {
	info, err := os.Stat(projectDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoProject, projectDir)
	}
	d := &doctor{
		root:  projectDir,
		agent: opts.AgentDir,
		fix:   opts.Fix,
		log:   opts.Logger,
		now:   opts.Now,
		rep:   &Report{},
	}
	if d.agent == "" {
		d.agent = ".agent"
	}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	if d.now == nil {
		d.now = time.Now
	}
	d.w = writer.New(d.log)
	d.manifest, _ = scaffold.ReadManifest(filepath.Join(projectDir, d.agent, scaffold.ManifestName))

	d.checkDirs()
	d.checkFiles()
	d.saveManifest()
	d.checkSkills()
	d.checkRuleHeadings()
	d.checkManifest()

	d.log.Info("doctor finished", zap.String("project", projectDir),
		zap.Int("issues", d.rep.Count(Issue)), zap.Int("warnings", d.rep.Count(Warn)), zap.Int("fixed", d.rep.Count(Fixed)))
	return d.rep, nil
}

type doctor struct {
	root     string
	agent    string
	fix      bool
	log      *zap.Logger
	now      func() time.Time
	w        *writer.Writer
	rep      *Report
	manifest *scaffold.Manifest
	// refreshed is set when a regenerated file changed a manifest entry.
	refreshed bool
}

func (d *doctor) agentPath(rel string) string {
	return filepath.Join(d.root, d.agent, filepath.FromSlash(rel))
}

func (d *doctor) stack() []string {
	if d.manifest != nil && len(d.manifest.Stack) > 0 {
		return d.manifest.Stack
	}
	return []string{knowledge.DefaultStack}
}

// ── Structure ────────────────────────────────────────────────────────────────

func (d *doctor) checkDirs() {
	const section = "Directories"
	for _, rel := range RequiredDirs {
		target := filepath.ToSlash(filepath.Join(d.agent, rel))
		p := d.agentPath(rel)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			d.rep.add(section, target, Pass, "exists")
			continue
		}
		if !d.fix {
			d.rep.add(section, target, Issue, "missing directory")
			continue
		}
		if err := os.MkdirAll(p, 0o755); err != nil {
			d.rep.add(section, target, Issue, fmt.Sprintf("cannot create: %v", err))
			continue
		}
		d.rep.add(section, target, Fixed, "created")
	}
}

func (d *doctor) checkFiles() {
	const section = "Required files"
	templates := scaffold.AgentFiles(d.agent, d.stack(), nil)
	for _, rel := range RequiredFiles {
		target := filepath.ToSlash(filepath.Join(d.agent, rel))
		p := d.agentPath(rel)
		info, err := os.Stat(p)
		switch {
		case err == nil && info.Size() == 0:
			d.rep.add(section, target, Warn, "file is empty")
			continue
		case err == nil:
			d.rep.add(section, target, Pass, "exists")
			continue
		}
		if !d.fix {
			d.rep.add(section, target, Issue, "missing file")
			continue
		}

		content, ok := templates[filepath.Join(d.agent, filepath.FromSlash(rel))]
		if rel == "memory/scratchpad.md" {
			content, ok = scaffold.BuildScratchpad(d.stack(), false, d.now()), true
		}
		if !ok {
			d.rep.add(section, target, Issue, "missing file, no template to restore it")
			continue
		}
		if err := d.w.WriteFile(p, content); err != nil {
			d.rep.add(section, target, Issue, fmt.Sprintf("cannot restore: %v", err))
			continue
		}
		d.rep.add(section, target, Fixed, "regenerated")
		d.refreshFingerprint(p)
	}
}

// refreshFingerprint records the new digest of a regenerated file that the
// manifest tracks.
func (d *doctor) refreshFingerprint(path string) {
	if d.manifest == nil {
		return
	}
	rel, err := filepath.Rel(d.root, path)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)
	old, tracked := d.manifest.Files[rel]
	if !tracked {
		return
	}
	sum, err := scaffold.FileSHA256(path)
	if err != nil || sum == old {
		return
	}
	d.manifest.Files[rel] = sum
	d.refreshed = true
}

func (d *doctor) saveManifest() {
	if !d.refreshed {
		return
	}
	body, err := d.manifest.Marshal()
	if err == nil {
		err = d.w.WriteVerbatim(filepath.Join(d.root, d.agent, scaffold.ManifestName), body)
	}
	if err != nil {
		d.log.Warn("cannot update manifest", zap.Error(err))
		return
	}
	d.log.Debug("manifest updated for regenerated files", zap.String("run_id", d.manifest.RunID))
}

// ── Content ──────────────────────────────────────────────────────────────────

func (d *doctor) checkSkills() {
	const section = "Skills"
	docs, err := skill.Discover(filepath.Join(d.root, d.agent))
	if err != nil {
		d.rep.add(section, d.agent+"/skills", Warn, err.Error())
		return
	}
	for _, s := range docs {
		if s.Declared {
			d.rep.add(section, s.Path, Pass, "frontmatter declares "+s.Name)
		} else {
			d.rep.add(section, s.Path, Warn, "SKILL.md has no name in frontmatter")
		}
	}
}

func (d *doctor) checkRuleHeadings() {
	const section = "Rule headings"
	pattern := filepath.Join(d.root, d.agent, "rules", "*.md")
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		d.rep.add(section, d.agent+"/rules", Warn, err.Error())
		return
	}
	md := goldmark.New()
	for _, p := range matches {
		b, err := os.ReadFile(p)
		if err != nil || len(strings.TrimSpace(string(b))) == 0 {
			// Empty or unreadable files are reported by checkFiles.
			continue
		}
		rel, _ := filepath.Rel(d.root, p)
		if hasHeading(md, b) {
			d.rep.add(section, filepath.ToSlash(rel), Pass, "has a heading")
		} else {
			d.rep.add(section, filepath.ToSlash(rel), Warn, "no markdown heading")
		}
	}
}

func hasHeading(md goldmark.Markdown, src []byte) bool {
	doc := md.Parser().Parse(text.NewReader(src))
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Heading); ok {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

func (d *doctor) checkManifest() {
	const section = "Manifest"
	target := filepath.ToSlash(filepath.Join(d.agent, scaffold.ManifestName))
	if d.manifest == nil {
		d.rep.add(section, target, Warn, "no manifest; drift cannot be checked")
		return
	}
	changed, missing := d.manifest.Drift(d.root)
	for _, rel := range changed {
		d.rep.add(section, rel, Warn, "changed since generation")
	}
	for _, rel := range missing {
		d.rep.add(section, rel, Warn, "removed since generation")
	}
	if len(changed)+len(missing) == 0 {
		d.rep.add(section, target, Pass, fmt.Sprintf("%d files match run %s", len(d.manifest.Files), d.manifest.RunID))
	}
}
