package scaffold

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pkeffect/antigravity-architect/internal/knowledge"
)

// DefaultName replaces project names that sanitize to nothing.
const DefaultName = "antigravity-project"

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)
	keywordSep  = regexp.MustCompile(`[,\s]+`)
)

// SanitizeName makes a project name safe to use as a directory name.
// Separators and dots are dropped, so traversal attempts collapse into a
// plain name.
func SanitizeName(name string) string {
	clean := spaceRun.ReplaceAllString(strings.TrimSpace(name), "_")
	clean = unsafeChars.ReplaceAllString(clean, "")
	if clean == "" {
		return DefaultName
	}
	return clean
}

// ParseKeywords splits a comma or space separated list into lowercase
// keywords.
func ParseKeywords(s string) []string {
	var out []string
	for _, w := range keywordSep.Split(s, -1) {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// MergeStack unions keyword lists into a sorted, de-duplicated stack. An
// empty result becomes the default platform.
func MergeStack(lists ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range lists {
		for _, k := range l {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return []string{knowledge.DefaultStack}
	}
	sort.Strings(out)
	return out
}

// HasOS reports whether the stack names an operating system.
func HasOS(stack []string) bool {
	for _, k := range stack {
		for _, p := range knowledge.OperatingSystems {
			if k == p {
				return true
			}
		}
	}
	return false
}
