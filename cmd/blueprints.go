package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkeffect/antigravity-architect/internal/blueprint"
)

var blueprintsCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "List the built-in blueprints",
	Long: `List the built-in blueprints usable with 'architect new --blueprint'.

A blueprint can also be a local .json/.yaml file or a git URL whose
repository root holds ` + blueprint.RemoteFile + `.`,
	Args: cobra.NoArgs,
	RunE: runBlueprints,
}

func init() {
	rootCmd.AddCommand(blueprintsCmd)
}

func runBlueprints(_ *cobra.Command, _ []string) error {
	printSection("Blueprints")
	for _, name := range blueprint.Names() {
		bp, _ := blueprint.Builtin(name)
		printOK(bp.Name, bp.Description)
		fmt.Fprintf(out, "       stack: %s\n", strings.Join(bp.Stack, ", "))
	}
	return nil
}
