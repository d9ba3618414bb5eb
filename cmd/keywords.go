package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkeffect/antigravity-architect/internal/knowledge"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the technology keywords architect understands",
	Args:  cobra.NoArgs,
	RunE:  runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	printSection("Keywords")
	for _, k := range knowledge.Dictionary() {
		desc := knowledge.TechDescriptions[k]
		if desc == "" {
			desc = "ignore rules only"
		}
		fmt.Fprintf(out, "  %-12s %s\n", k, desc)
	}

	printGroup("Aliases")
	aliases := make([]string, 0, len(knowledge.Aliases))
	for a := range knowledge.Aliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	for _, a := range aliases {
		fmt.Fprintf(out, "  %-12s → %s\n", a, knowledge.Aliases[a])
	}

	printGroup("Licenses")
	printInfo("", strings.Join(knowledge.Licenses(), ", "))
	return nil
}
