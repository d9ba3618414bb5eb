package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pkeffect/antigravity-architect/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ~/.architect/config.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config, .env template and presets directory",
	Long: `Create ~/.architect/ (or $ARCHITECT_HOME) with config.yaml, an .env
template for ARCHITECT_* overrides, and the presets directory.
Existing files are left alone.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.architect ───────────────────────────────────────────────
	home, err := config.HomeDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", home, err)
	}
	printOK("", fmt.Sprintf("Architect directory ready: %s", home))

	// ── 2. Write config.yaml if missing ───────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		def, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(def); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 3. .env template and presets ──────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, _ := config.DotEnvPath()
	printOK("", fmt.Sprintf("Env overrides: %s", envPath))

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(loaded.PresetsDir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", loaded.PresetsDir, err)
	}
	printOK("", fmt.Sprintf("Presets directory: %s", loaded.PresetsDir))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	fmt.Fprintf(out, "# %s\n%s", cfgPath, data)
	return nil
}
