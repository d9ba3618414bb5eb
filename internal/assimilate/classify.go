package assimilate

import (
	"regexp"
	"strings"
)

// Category is where an assimilated section ends up.
type Category string

const (
	Rules     Category = "rules"
	Workflows Category = "workflows"
	Skills    Category = "skills"
	Docs      Category = "docs"
)

// Rule lists the keywords that vote for a category.
type Rule struct {
	Category Category
	Keywords []string
}

// DefaultRules is the built-in keyword table. Order matters: on a tie the
// earlier category wins.
var DefaultRules = []Rule{
	{Rules, []string{"always", "never", "must", "style", "convention", "standard", "protocol", "policy", "lint", "formatting", "security"}},
	{Workflows, []string{"step", "guide", "process", "workflow", "how-to", "deploy", "setup", "run", "execution", "plan", "roadmap"}},
	{Skills, []string{"command", "cli", "tool", "usage", "utility", "script", "automation", "flags", "arguments", "terminal"}},
	{Docs, []string{"overview", "architecture", "introduction", "background", "context", "diagram", "concept", "summary"}},
}

// Classifier scores text against keyword rules.
type Classifier struct {
	rules []compiledRule
}

type compiledRule struct {
	category Category
	patterns []*regexp.Regexp
}

// NewClassifier compiles rules, keeping their order.
func NewClassifier(rules []Rule) *Classifier {
	c := &Classifier{}
	for _, r := range rules {
		cr := compiledRule{category: r.Category}
		for _, k := range r.Keywords {
			cr.patterns = append(cr.patterns, wordPattern(k))
		}
		c.rules = append(c.rules, cr)
	}
	return c
}

// Scores returns the match count per category.
func (c *Classifier) Scores(text string) map[Category]int {
	lower := strings.ToLower(text)
	out := make(map[Category]int, len(c.rules))
	for _, r := range c.rules {
		n := 0
		for _, p := range r.patterns {
			n += len(p.FindAllStringIndex(lower, -1))
		}
		out[r.category] += n
	}
	return out
}

// Classify returns the highest scoring category. Ties go to the category
// declared first; no matches at all yields Docs.
func (c *Classifier) Classify(text string) Category {
	scores := c.Scores(text)
	best, bestScore := Docs, 0
	for _, r := range c.rules {
		if s := scores[r.category]; s > bestScore {
			best, bestScore = r.category, s
		}
	}
	return best
}
