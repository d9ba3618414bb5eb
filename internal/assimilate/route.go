package assimilate

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultAgentDir is the agent directory relative to the project root.
const DefaultAgentDir = ".agent"

const maxSlug = 50

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a section header into a file-safe name.
func Slugify(header string) string {
	s := strings.ToLower(strings.TrimLeft(strings.TrimSpace(header), "#"))
	s = strings.Trim(nonSlug.ReplaceAllString(s, "_"), "_")
	if len(s) > maxSlug {
		s = strings.TrimRight(s[:maxSlug], "_")
	}
	if s == "" {
		return "untitled"
	}
	return s
}

// Router maps categories to destination files under a project.
type Router struct {
	BaseDir  string
	AgentDir string
}

// Destination returns the file a section of category cat with the given slug
// is appended to. Unknown categories route like Docs.
func (r Router) Destination(cat Category, slug string) string {
	agent := r.AgentDir
	if agent == "" {
		agent = DefaultAgentDir
	}
	switch cat {
	case Rules:
		return filepath.Join(r.BaseDir, agent, "rules", "imported_"+slug+".md")
	case Workflows:
		return filepath.Join(r.BaseDir, agent, "workflows", "imported_"+slug+".md")
	case Skills:
		return filepath.Join(r.BaseDir, agent, "skills", "imported_"+slug, "SKILL.md")
	default:
		return filepath.Join(r.BaseDir, "docs", "imported", slug+".md")
	}
}

// ArchivePath is where the raw brain dump is kept.
func (r Router) ArchivePath() string {
	return filepath.Join(r.BaseDir, "context", "raw", "master_brain_dump.md")
}
