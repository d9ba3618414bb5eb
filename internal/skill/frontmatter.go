package skill

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Header is what a SKILL.md declares in its YAML frontmatter.
type Header struct {
	Name        string
	Description string
}

// Declared reports whether the skill names itself.
func (h Header) Declared() bool { return h.Name != "" }

// ParseHeader reads the frontmatter of a SKILL.md and returns it with the
// markdown body. The block must open on the first line and close on a line
// of its own. CRLF line endings and a leading BOM are accepted. Content
// without a parseable block yields an empty Header and the content whole.
func ParseHeader(content string) (Header, string) {
	s := strings.ReplaceAll(strings.TrimPrefix(content, "\ufeff"), "\r\n", "\n")
	first, rest, ok := strings.Cut(s, "\n")
	if !ok || strings.TrimSpace(first) != fence {
		return Header{}, content
	}

	var block []string
	lines := strings.Split(rest, "\n")
	for i, ln := range lines {
		if strings.TrimSpace(ln) != fence {
			continue
		}
		block = lines[:i]
		rest = strings.Join(lines[i+1:], "\n")
		break
	}
	if block == nil {
		return Header{}, content
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(block, "\n")), &raw); err != nil {
		return Header{}, content
	}
	var h Header
	for k, v := range raw {
		sv, ok := v.(string)
		if !ok {
			continue
		}
		switch strings.ToLower(k) {
		case "name":
			h.Name = strings.TrimSpace(sv)
		case "description":
			h.Description = strings.TrimSpace(sv)
		}
	}
	return h, rest
}
