package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pkeffect/antigravity-architect/internal/assimilate"
	"github.com/pkeffect/antigravity-architect/internal/writer"
)

var assimilateCmd = &cobra.Command{
	Use:   "assimilate <file>",
	Short: "Distribute a markdown brain dump into an existing project",
	Long: `Split a markdown brain dump into sections and append each one to the
matching rules/, workflows/, skills/ or docs/ file under .agent/.
The raw text is archived in context/raw/master_brain_dump.md.

Sections are appended, so running the same dump twice duplicates them.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssimilate,
}

var (
	flagAssimilateDir  string
	flagAssimilateSafe bool
)

func init() {
	assimilateCmd.Flags().StringVar(&flagAssimilateDir, "dir", ".", "Project directory")
	assimilateCmd.Flags().BoolVar(&flagAssimilateSafe, "safe", false, "Keep an existing brain dump archive")
	rootCmd.AddCommand(assimilateCmd)
}

func runAssimilate(_ *cobra.Command, args []string) error {
	dir, err := filepath.Abs(flagAssimilateDir)
	if err != nil {
		return err
	}

	printSection("Assimilate")
	// Nothing is written for an unusable brain dump, not even the setup log.
	var ve *assimilate.ValidationError
	if err := assimilate.Validate(args[0]); errors.As(err, &ve) {
		logger.Warn("skipping brain dump", zap.String("path", args[0]), zap.String("reason", ve.Reason))
		printSkippedDump(ve)
		return nil
	}

	if err := attachProjectLog(dir); err != nil {
		return err
	}
	release, err := lockProject(dir)
	defer release()
	if err != nil {
		return err
	}

	w := writer.New(logger)
	w.Safe = flagAssimilateSafe
	a := assimilate.New(w, assimilate.Options{BaseDir: dir, AgentDir: cfg.AgentDir, Logger: logger})

	res, err := a.Run(args[0])
	switch {
	case errors.As(err, &ve):
		printSkippedDump(ve)
		return nil
	case err != nil:
		return err
	}
	printOK("", "archived to "+relTo(dir, res.Archive))
	printAssimilation(dir, res.Keywords, res.Placements)
	if err := res.Err(); err != nil {
		for _, f := range res.Failures {
			printErr("", f.Error())
		}
		return fmt.Errorf("%d section(s) could not be written", len(res.Failures))
	}
	return nil
}

func printSkippedDump(ve *assimilate.ValidationError) {
	printWarn("", fmt.Sprintf("%s: %s, nothing assimilated", ve.Path, ve.Reason))
}

func printAssimilation(dir string, keywords []string, placements []assimilate.Placement) {
	if len(keywords) > 0 {
		printInfo("detected", strings.Join(keywords, ", "))
	} else {
		printSkip("detected", "no known technologies")
	}
	for _, p := range placements {
		printOK(string(p.Category), fmt.Sprintf("%s → %s", strings.TrimSpace(strings.TrimLeft(p.Header, "#")), relTo(dir, p.Path)))
	}
}
