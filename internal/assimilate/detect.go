package assimilate

import (
	"regexp"
	"sort"
	"strings"
)

// Detector finds technology keywords in free text.
//
// Matching is case-insensitive and anchored on word boundaries. Go's \b is
// ASCII-only, so a keyword glued to a non-ASCII letter still matches.
type Detector struct {
	terms []term
}

type term struct {
	re        *regexp.Regexp
	canonical string
}

// NewDetector compiles a detector for the canonical dictionary plus an
// alias to canonical table.
func NewDetector(dictionary []string, aliases map[string]string) *Detector {
	d := &Detector{}
	for _, k := range dictionary {
		d.terms = append(d.terms, term{re: wordPattern(k), canonical: k})
	}
	for alias, canonical := range aliases {
		d.terms = append(d.terms, term{re: wordPattern(alias), canonical: canonical})
	}
	return d
}

// Detect returns the sorted set of canonical keywords found in text.
func (d *Detector) Detect(text string) []string {
	lower := strings.ToLower(text)
	seen := map[string]bool{}
	for _, t := range d.terms {
		if seen[t.canonical] {
			continue
		}
		if t.re.MatchString(lower) {
			seen[t.canonical] = true
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(word)) + `\b`)
}
