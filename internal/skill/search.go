package skill

import (
	"sort"
	"strings"
)

// Search returns the skills whose ID, name or description contain every
// whitespace-separated token of query, case-insensitively, sorted by ID.
func Search(docs []Doc, query string) []Doc {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return []Doc{}
	}

	out := []Doc{}
	for _, d := range docs {
		blob := strings.ToLower(strings.Join([]string{d.ID, d.Name, d.Description}, "\n"))
		ok := true
		for _, tok := range tokens {
			if !strings.Contains(blob, tok) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
