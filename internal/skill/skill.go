// Package skill discovers the SKILL.md files of an agent directory.
package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Doc is the metadata of one skill.
type Doc struct {
	ID          string
	Path        string
	Name        string
	Description string
	// Declared is false when the frontmatter carries no name.
	Declared bool
}

// Discover returns every skills/**/SKILL.md under agentDir, sorted by path.
// A missing skills directory yields no skills.
func Discover(agentDir string) ([]Doc, error) {
	skillsDir := filepath.Join(agentDir, "skills")
	info, err := os.Stat(skillsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Doc{}, nil
		}
		return nil, fmt.Errorf("cannot stat skills directory %s: %w", skillsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("skills path is not a directory: %s", skillsDir)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(skillsDir, "**", "SKILL.md"))
	if err != nil {
		return nil, fmt.Errorf("cannot scan skills: %w", err)
	}
	sort.Strings(matches)

	out := make([]Doc, 0, len(matches))
	for _, path := range matches {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", path, err)
		}
		h, body := ParseHeader(string(b))

		rel, err := filepath.Rel(agentDir, filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		id := filepath.Base(filepath.Dir(path))
		d := Doc{ID: id, Path: filepath.ToSlash(rel), Name: h.Name, Description: h.Description, Declared: h.Declared()}
		if d.Name == "" {
			d.Name = id
		}
		if d.Description == "" {
			d.Description = inferDescriptionFromBody(body)
		}
		out = append(out, d)
	}
	return out, nil
}

func inferDescriptionFromBody(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") || strings.HasPrefix(ln, "<!--") {
			continue
		}
		return ln
	}
	return ""
}
