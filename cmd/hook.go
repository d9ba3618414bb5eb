package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pkeffect/antigravity-architect/internal/hooks"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the git hook that feeds the agent scratchpad",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install [path]",
	Short: "Install the post-commit hook",
	Long: `Add a managed block to .git/hooks/post-commit that appends each commit
subject to .agent/memory/scratchpad.md. Re-running replaces the block;
the rest of the hook is left alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHookInstall,
}

var flagHookInit bool

func init() {
	hookInstallCmd.Flags().BoolVar(&flagHookInit, "init", false, "Run 'git init' first when the project is not a repository")
	hookCmd.AddCommand(hookInstallCmd)
	rootCmd.AddCommand(hookCmd)
}

func runHookInstall(_ *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if flagHookInit {
		if err := checkGitAvailable(); err != nil {
			return err
		}
		if err := hooks.InitRepo(dir); err != nil {
			return err
		}
	}
	hookPath, err := hooks.Install(dir, cfg.AgentDir)
	if err != nil {
		return err
	}
	printOK("", "post-commit hook ready: "+hookPath)
	return nil
}
