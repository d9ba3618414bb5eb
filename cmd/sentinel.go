package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pkeffect/antigravity-architect/internal/doctor"
	"github.com/pkeffect/antigravity-architect/internal/sentinel"
)

var sentinelCmd = &cobra.Command{
	Use:   "sentinel [path]",
	Short: "Watch a project and repair its agent layout",
	Long: `Watch the .agent/ tree and the configured critical files. After each
burst of changes the doctor runs with --fix, so deleted rules, workflows
and skills come back. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSentinel,
}

func init() {
	rootCmd.AddCommand(sentinelCmd)
}

func runSentinel(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", doctor.ErrNoProject, dir)
	}

	s, err := sentinel.New(dir, sentinel.Options{
		AgentDir:      cfg.AgentDir,
		CriticalFiles: cfg.CriticalFiles,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := s.Start(ctx); err != nil {
		return err
	}
	printSection("Sentinel")
	printInfo("", "watching "+dir)
	for _, f := range s.Stats().Missing {
		printWarn(f, "critical file missing")
	}

	<-ctx.Done()
	s.Stop()
	st := s.Stats()
	printOK("", "stopped")
	printInfo("", fmt.Sprintf("%d events, %d heals, %d files restored", st.Events, st.Heals, st.Fixed))
	return nil
}
