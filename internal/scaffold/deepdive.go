package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkeffect/antigravity-architect/internal/knowledge"
)

var observationRes = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(knowledge.Observations))
	for i, o := range knowledge.Observations {
		out[i] = regexp.MustCompile(o.Pattern)
	}
	return out
}()

// BuildTechDeepDive renders docs/TECH_STACK.md from the stack and whatever
// the brain dump says about it.
func BuildTechDeepDive(keywords []string, rawText string) string {
	title := cases.Title(language.English)
	var b strings.Builder
	b.WriteString("# Tech Stack Deep Dive\n")

	var described int
	for _, k := range keywords {
		desc, ok := knowledge.TechDescriptions[knowledge.Canonical(k)]
		if !ok {
			continue
		}
		if described == 0 {
			b.WriteString("\n## Technologies\n")
		}
		described++
		fmt.Fprintf(&b, "\n### %s\n%s\n", title.String(k), desc)
	}

	lower := strings.ToLower(rawText)
	var notes []string
	for i, re := range observationRes {
		if re.MatchString(lower) {
			notes = append(notes, "- "+knowledge.Observations[i].Note)
		}
	}
	if len(notes) > 0 {
		b.WriteString("\n## Observations\n")
		b.WriteString(strings.Join(notes, "\n"))
		b.WriteString("\n")
	}

	if described == 0 && len(notes) == 0 {
		b.WriteString("\nStandard project structure. No specific technologies or patterns were detected.\n")
	}
	return b.String()
}
