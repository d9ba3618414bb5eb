package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkeffect/antigravity-architect/internal/skill"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skills of a project",
	Long: `List every .agent/skills/**/SKILL.md of a project with its declared
name and description.

Example:
  architect skills --dir ./my-api
  architect skills search git
  architect skills inspect git`,
	Args: cobra.NoArgs,
	RunE: runSkills,
}

var skillsInspectCmd = &cobra.Command{
	Use:   "inspect <skill>",
	Short: "Show the metadata and files of a skill",
	Long: `Show one skill in detail. An exact folder name wins; otherwise every
skill whose folder contains the argument (case-insensitive) is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillsInspect,
}

var skillsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find skills by keyword",
	Long: `Match every word of the query against skill folder names, declared
names and descriptions (case-insensitive).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSkillsSearch,
}

var flagSkillsDir string

func init() {
	skillsCmd.PersistentFlags().StringVar(&flagSkillsDir, "dir", ".", "Project directory")
	skillsCmd.AddCommand(skillsInspectCmd, skillsSearchCmd)
	rootCmd.AddCommand(skillsCmd)
}

func projectSkills() (string, []skill.Doc, error) {
	dir, err := filepath.Abs(flagSkillsDir)
	if err != nil {
		return "", nil, err
	}
	agent := filepath.Join(dir, cfg.AgentDir)
	docs, err := skill.Discover(agent)
	return agent, docs, err
}

func runSkills(_ *cobra.Command, _ []string) error {
	_, docs, err := projectSkills()
	if err != nil {
		return err
	}
	printSection("Skills")
	if len(docs) == 0 {
		printSkip("", "no skills found")
		return nil
	}
	for _, d := range docs {
		if d.Declared {
			printOK(d.Name, d.Description)
		} else {
			printWarn(d.ID, "no name in frontmatter")
		}
	}
	return nil
}

func runSkillsSearch(_ *cobra.Command, args []string) error {
	_, docs, err := projectSkills()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	hits := skill.Search(docs, query)
	printSection(fmt.Sprintf("Skills matching %q", query))
	if len(hits) == 0 {
		printSkip("", "no matches")
		return nil
	}
	for _, d := range hits {
		printOK(d.ID, d.Description)
	}
	return nil
}

func runSkillsInspect(_ *cobra.Command, args []string) error {
	agent, docs, err := projectSkills()
	if err != nil {
		return err
	}
	matches := matchSkills(docs, args[0])
	if len(matches) == 0 {
		return fmt.Errorf("skill %q not found.\nTip: run 'architect skills' to see available skills.", args[0])
	}
	for i, d := range matches {
		if i > 0 {
			fmt.Fprintln(out, strings.Repeat("─", 50))
		}
		printSkillDetail(agent, d)
	}
	return nil
}

// matchSkills returns the exact ID match, or every substring match.
func matchSkills(docs []skill.Doc, arg string) []skill.Doc {
	for _, d := range docs {
		if d.ID == arg {
			return []skill.Doc{d}
		}
	}
	lower := strings.ToLower(arg)
	var found []skill.Doc
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.ID), lower) || strings.Contains(strings.ToLower(d.Name), lower) {
			found = append(found, d)
		}
	}
	return found
}

func printSkillDetail(agent string, d skill.Doc) {
	dir := filepath.Join(agent, filepath.FromSlash(d.Path))
	fmt.Fprintf(out, "📦 Skill: %s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(out, "Summary:  %s\n", strings.ReplaceAll(d.Description, "\n", " "))
	}
	if !d.Declared {
		fmt.Fprintln(out, "  (frontmatter declares no name)")
	}
	if files := listSkillFiles(dir); len(files) > 0 {
		fmt.Fprintln(out, "\nFiles:")
		for _, f := range files {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
	fmt.Fprintf(out, "\nPath: %s\n", dir)
}

// listSkillFiles returns a human-readable list of the top-level entries of
// skillDir.
func listSkillFiles(skillDir string) []string {
	entries, err := os.ReadDir(skillDir)
	if err != nil {
		return nil
	}
	var labels []string
	for _, e := range entries {
		name := e.Name()
		label := name
		switch {
		case name == "SKILL.md":
			label = "SKILL.md (Instructions)"
		case name == ".gitkeep":
			continue
		case e.IsDir() && name == "scripts":
			label = "scripts/ (Scripts directory)"
		case e.IsDir() && name == "examples":
			label = "examples/ (Examples)"
		case e.IsDir():
			label = name + "/"
		}
		labels = append(labels, label)
	}
	return labels
}
