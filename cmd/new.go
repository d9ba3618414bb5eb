package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pkeffect/antigravity-architect/internal/blueprint"
	"github.com/pkeffect/antigravity-architect/internal/knowledge"
	"github.com/pkeffect/antigravity-architect/internal/preset"
	"github.com/pkeffect/antigravity-architect/internal/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new agent-ready project",
	Long: `Create a project directory with the .agent/ layout, ignore files,
CI templates, community docs, license and editor settings.

Without a name, architect asks for one interactively. If the target
directory already exists you can overwrite it, update it safely (existing
files are kept) or abort.

Examples:
  architect new my-api --stack python,fastapi,docker
  architect new --name shop --blueprint nextjs --license apache
  architect new notes --brain-dump ./ideas.md --dry-run
  architect new --preset work --name billing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

var (
	flagNewName       string
	flagNewDir        string
	flagNewStack      string
	flagNewBrainDump  string
	flagNewTemplates  string
	flagNewLicense    string
	flagNewBlueprint  string
	flagNewSavePreset string
	flagNewPreset     string
	flagNewSafe       bool
	flagNewDryRun     bool
	flagNewYes        bool
)

// presetFlags maps preset keys to the flags they fill.
var presetFlags = map[string]string{
	"name":       "name",
	"dir":        "dir",
	"stack":      "stack",
	"brain_dump": "brain-dump",
	"templates":  "templates",
	"license":    "license",
	"blueprint":  "blueprint",
	"safe":       "safe",
}

func init() {
	f := newCmd.Flags()
	f.StringVarP(&flagNewName, "name", "n", "", "Project name")
	f.StringVar(&flagNewDir, "dir", ".", "Parent directory for the project")
	f.StringVarP(&flagNewStack, "stack", "s", "", "Comma separated tech keywords (e.g. python,docker)")
	f.StringVar(&flagNewBrainDump, "brain-dump", "", "Markdown file to assimilate into .agent/")
	f.StringVar(&flagNewTemplates, "templates", "", "Directory of custom rules/, workflows/ and skills/ templates")
	f.StringVar(&flagNewLicense, "license", "", "License: mit, apache, gpl or none (default from config)")
	f.StringVar(&flagNewBlueprint, "blueprint", "", "Blueprint name, file or git URL")
	f.StringVar(&flagNewSavePreset, "save-preset", "", "Save these options as a named preset")
	f.StringVar(&flagNewPreset, "preset", "", "Load options from a named preset")
	f.BoolVar(&flagNewSafe, "safe", false, "Keep existing files")
	f.BoolVar(&flagNewDryRun, "dry-run", false, "Show what would be generated without writing")
	f.BoolVarP(&flagNewYes, "yes", "y", false, "Never prompt; existing directories get a safe update")
	rootCmd.AddCommand(newCmd)
}

func presetStore() preset.Store {
	return preset.Store{Dir: cfg.PresetsDir}
}

// applyPreset fills flags from a preset. Flags given on the command line win.
func applyPreset(cmd *cobra.Command, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		flag, ok := presetFlags[key]
		if !ok {
			logger.Debug("ignoring unknown preset key", zap.String("key", key))
			continue
		}
		if cmd.Flags().Changed(flag) {
			continue
		}
		if err := cmd.Flags().Set(flag, values[key]); err != nil {
			return fmt.Errorf("invalid preset value for %s: %w", key, err)
		}
	}
	return nil
}

func currentPresetValues() map[string]string {
	return map[string]string{
		"name":       flagNewName,
		"dir":        flagNewDir,
		"stack":      flagNewStack,
		"brain_dump": flagNewBrainDump,
		"templates":  flagNewTemplates,
		"license":    flagNewLicense,
		"blueprint":  flagNewBlueprint,
		"safe":       strconv.FormatBool(flagNewSafe),
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	// ── 1. Resolve options ────────────────────────────────────────────────────
	if flagNewPreset != "" {
		values, err := presetStore().Load(flagNewPreset)
		if err != nil {
			return err
		}
		if err := applyPreset(cmd, values); err != nil {
			return err
		}
		printInfo("", fmt.Sprintf("Loaded preset %q", flagNewPreset))
	}
	if flagNewName == "" && len(args) == 1 {
		flagNewName = args[0]
	}
	if flagNewName == "" && !flagNewYes {
		printBanner("Antigravity Architect")
		flagNewName = prompt("Project name", scaffold.DefaultName)
		if flagNewStack == "" {
			flagNewStack = prompt("Tech stack (e.g. python, react, docker)", "")
		}
		if flagNewBrainDump == "" {
			flagNewBrainDump = prompt("Brain dump file (optional)", "")
		}
	}

	name := scaffold.SanitizeName(flagNewName)
	license := flagNewLicense
	if license == "" {
		license = cfg.DefaultLicense
	}
	stack := scaffold.ParseKeywords(flagNewStack)
	if !scaffold.HasOS(stack) {
		stack = append(stack, knowledge.DefaultStack)
		logger.Debug("no operating system in stack, defaulting", zap.String("os", knowledge.DefaultStack))
	}
	for _, k := range stack {
		if !knowledge.Known(k) {
			printWarn(k, "no built-in template for this keyword")
		}
	}

	var bp *blueprint.Blueprint
	if flagNewBlueprint != "" {
		var err error
		bp, err = blueprint.Resolve(cmd.Context(), flagNewBlueprint)
		if err != nil {
			return err
		}
		printInfo("blueprint", bp.Name)
	}

	var templates *scaffold.Overrides
	if flagNewTemplates != "" {
		var err error
		templates, err = scaffold.LoadCustomTemplates(flagNewTemplates, cfg.TemplateExcludes)
		if err != nil {
			return err
		}
	}

	parent, err := filepath.Abs(flagNewDir)
	if err != nil {
		return err
	}
	dir := filepath.Join(parent, name)

	// ── 2. Existing directory ─────────────────────────────────────────────────
	safe := flagNewSafe
	if info, err := os.Stat(dir); err == nil && info.IsDir() && !safe && !flagNewDryRun {
		choice := "u"
		if !flagNewYes {
			choice = strings.ToLower(prompt(fmt.Sprintf("%s already exists. Overwrite [y], safe update [u] or abort [n]?", dir), "n"))
		}
		switch choice {
		case "y", "yes":
			printWarn("", "Overwriting existing files")
		case "u", "update":
			safe = true
			printInfo("", "Safe update: existing files are kept")
		default:
			printSkip("", "Aborted, nothing written")
			return nil
		}
	}

	// ── 3. Generate ───────────────────────────────────────────────────────────
	if !flagNewDryRun {
		if err := attachProjectLog(dir); err != nil {
			return err
		}
		release, err := lockProject(dir)
		defer release()
		if err != nil {
			return err
		}
	}

	rep, err := scaffold.Generate(scaffold.Options{
		Name:      name,
		ParentDir: parent,
		Keywords:  stack,
		BrainDump: flagNewBrainDump,
		Safe:      safe,
		DryRun:    flagNewDryRun,
		License:   license,
		Author:    cfg.Author,
		Blueprint: bp,
		Templates: templates,
		AgentDir:  cfg.AgentDir,
		Version:   version,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if flagNewSavePreset != "" {
		if err := presetStore().Save(flagNewSavePreset, currentPresetValues()); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Preset %q saved", flagNewSavePreset))
	}

	// ── 4. Report ─────────────────────────────────────────────────────────────
	if flagNewDryRun {
		printDryRun(rep)
		return nil
	}
	printNewReport(rep)
	if err := rep.Err(); err != nil {
		for _, f := range rep.Failures {
			printErr("", f.Error())
		}
		return fmt.Errorf("%d file(s) could not be written", len(rep.Failures))
	}
	return nil
}

func printDryRun(rep *scaffold.Report) {
	printSection("DRY RUN MODE")
	printInfo("", fmt.Sprintf("Project: %s", rep.Dir))
	printInfo("", fmt.Sprintf("Stack:   %s", strings.Join(rep.Stack, ", ")))
	printGroup(fmt.Sprintf("%d paths would be written", len(rep.Planned)))
	for _, p := range rep.Planned {
		printSkip("", relTo(rep.Dir, p))
	}
	printMuted("Nothing was written.")
}

func printNewReport(rep *scaffold.Report) {
	printSection("Project ready")
	printOK("", fmt.Sprintf("%s (%d files written)", rep.Dir, len(rep.Written)))
	if n := len(rep.Skipped); n > 0 {
		printSkip("", fmt.Sprintf("%d existing file(s) kept", n))
	}
	printInfo("stack", strings.Join(rep.Stack, ", "))
	if a := rep.Assimilation; a != nil {
		printAssimilation(rep.Dir, a.Keywords, a.Placements)
	}
	if rep.Manifest != nil {
		printInfo("manifest", "run "+rep.Manifest.RunID)
	}
	fmt.Fprintln(out)
	printMuted("Next: open BOOTSTRAP_INSTRUCTIONS.md and let your agent take it from there.")
}

func relTo(base, p string) string {
	if rel, err := filepath.Rel(base, p); err == nil {
		return filepath.ToSlash(rel)
	}
	return p
}
