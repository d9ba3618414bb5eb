package assimilate

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	aliases := map[string]string{"sveltekit": "node", "fastapi": "python"}
	d := NewDetector([]string{"python", "node", "docker", "go"}, aliases)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"literal", "We use Python here.", []string{"python"}},
		{"aliases", "This is a sveltekit application with fastapi endpoint.", []string{"node", "python"}},
		{"no match", "This project uses alien-technology-x.", []string{}},
		{"word boundary", "a goat and a pythonic mongoose", []string{}},
		{"mixed", "Docker, GO and Node", []string{"docker", "go", "node"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, d.Detect(tt.text)); diff != "" {
				t.Errorf("Detect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetect_OrderIndependent(t *testing.T) {
	dict := []string{"python", "node", "rust", "go", "java", "docker", "linux"}
	text := "Rust services in docker on linux, with a python CLI."
	want := NewDetector(dict, nil).Detect(text)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), dict...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, NewDetector(shuffled, nil).Detect(text))
	}
}

func TestSplit(t *testing.T) {
	text := "preamble\n# One\nbody one\n## Two\n\n   \n### Three\nbody three\n"
	got := Split(text)
	want := []Section{
		{Header: "# One", Body: "body one"},
		{Header: "### Three", Body: "body three"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Split mismatch (-want +got):\n%s", diff)
	}
	headings := len(headingRe.FindAllString(text, -1))
	assert.Less(t, len(got), headings)
}

func TestSplit_HashWithoutSpaceIsNotHeading(t *testing.T) {
	got := Split("#tag line\n# Real\ncontent\n")
	assert.Equal(t, []Section{{Header: "# Real", Body: "content"}}, got)
}

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultRules)
	tests := []struct {
		text string
		want Category
	}{
		{"You must always follow the style convention.", Rules},
		{"Step 1: setup. Step 2: deploy. Follow the guide.", Workflows},
		{"Command usage: the cli tool takes flags and arguments.", Skills},
		{"Architecture overview and background context.", Docs},
		{"Random unrelated text about cats.", Docs},
		{"ALWAYS NEVER MUST", Rules},
		// one rules hit and one workflows hit: declaration order wins
		{"security plan", Rules},
		{"a tool for the process", Workflows},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.text), tt.text)
	}
}

func TestClassify_CountsEveryOccurrence(t *testing.T) {
	c := NewClassifier(DefaultRules)
	s := c.Scores("run run run and always")
	assert.Equal(t, 3, s[Workflows])
	assert.Equal(t, 1, s[Rules])
	assert.Equal(t, Workflows, c.Classify("run run run and always"))
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"# Rules", "rules"},
		{"## Deploy  Steps!", "deploy_steps"},
		{"# ???", "untitled"},
		{"#", "untitled"},
		{"### C++ / Go: Notes", "c_go_notes"},
		{"# " + strings.Repeat("ab ", 30), strings.TrimRight(strings.Repeat("ab_", 17), "_")[:50]},
	}
	for _, tt := range tests {
		got := Slugify(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.LessOrEqual(t, len(got), 50)
	}
}

func TestRouterDestination(t *testing.T) {
	r := Router{BaseDir: "/base"}
	assert.Equal(t, filepath.Join("/base", ".agent", "rules", "imported_x.md"), r.Destination(Rules, "x"))
	assert.Equal(t, filepath.Join("/base", ".agent", "workflows", "imported_x.md"), r.Destination(Workflows, "x"))
	assert.Equal(t, filepath.Join("/base", ".agent", "skills", "imported_x", "SKILL.md"), r.Destination(Skills, "x"))
	assert.Equal(t, filepath.Join("/base", "docs", "imported", "x.md"), r.Destination(Docs, "x"))
	assert.Equal(t, filepath.Join("/base", "docs", "imported", "x.md"), r.Destination(Category("bogus"), "x"))
}
