package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pkeffect/antigravity-architect/internal/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [path]",
	Short: "Check a project's agent layout",
	Long: `Check that a project has the expected .agent/ directories and files,
that skills declare a name, that rules start with a heading, and that
generated files still match the manifest.

With --fix (or 'architect doctor fix') missing directories and files are
recreated from the built-in templates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

var doctorFixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Recreate missing directories and files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorProject(args, true)
	},
}

var flagDoctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&flagDoctorFix, "fix", false, "Recreate missing directories and files")
	doctorCmd.AddCommand(doctorFixCmd)
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, args []string) error {
	return doctorProject(args, flagDoctorFix)
}

func doctorProject(args []string, fix bool) error {
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
	if fix {
		release, err := lockProject(dir)
		defer release()
		if err != nil {
			return err
		}
	}

	rep, err := doctor.Run(dir, doctor.Options{AgentDir: cfg.AgentDir, Fix: fix, Logger: logger})
	if err != nil {
		return err
	}

	printSection("architect doctor")
	printInfo("", dir)
	printDoctorReport(rep)

	fmt.Fprintln(out, "\n===================")
	fmt.Fprintln(out, rep.Summary())
	if !rep.Healthy() {
		fmt.Fprintln(errOut, "✗  One or more checks failed. Run 'architect doctor --fix' to repair.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

func printDoctorReport(rep *doctor.Report) {
	section := ""
	for _, c := range rep.Checks {
		if c.Section != section {
			section = c.Section
			printGroup(section)
		}
		switch c.Status {
		case doctor.Pass:
			printOK(c.Target, c.Detail)
		case doctor.Fixed:
			printInfo(c.Target, c.Detail)
		case doctor.Warn:
			printWarn(c.Target, c.Detail)
		default:
			printErr(c.Target, c.Detail)
		}
	}
}
