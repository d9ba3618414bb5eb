package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BuildLinks lists the sibling directories of projectDir that look like
// repositories or agent projects, for <agent>/memory/links.md.
func BuildLinks(projectDir, agentDir string) string {
	parent := filepath.Dir(projectDir)
	self := filepath.Base(projectDir)

	var lines []string
	entries, err := os.ReadDir(parent)
	if err == nil {
		for _, e := range entries {
			if !e.IsDir() || e.Name() == self || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			dir := filepath.Join(parent, e.Name())
			switch {
			case exists(filepath.Join(dir, agentDir)):
				lines = append(lines, fmt.Sprintf("- [%s](../../../%s) - Antigravity Project", e.Name(), e.Name()))
			case exists(filepath.Join(dir, ".git")):
				lines = append(lines, fmt.Sprintf("- [%s](../../../%s) - Git Repository", e.Name(), e.Name()))
			}
		}
	}
	sort.Strings(lines)

	var b strings.Builder
	b.WriteString("# Context Bridge\nRelated projects next to this one.\n\n")
	if len(lines) == 0 {
		b.WriteString("No sibling projects found.\n")
	} else {
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
