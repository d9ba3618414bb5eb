package assimilate

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`(?m)^#+\s+.*$`)

// Section is one heading of a brain dump and the text under it.
type Section struct {
	Header string
	Body   string
}

// Split cuts text at markdown headings. Text before the first heading is
// dropped, and headings with nothing under them produce no section.
func Split(text string) []Section {
	locs := headingRe.FindAllStringIndex(text, -1)
	var out []Section
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(text[loc[1]:end])
		if body == "" {
			continue
		}
		out = append(out, Section{
			Header: strings.TrimSpace(text[loc[0]:loc[1]]),
			Body:   body,
		})
	}
	return out
}
