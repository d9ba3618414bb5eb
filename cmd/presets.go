package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [name]",
	Short: "List saved presets, or show one",
	Long: `Presets are saved with 'architect new --save-preset <name>' and
loaded with 'architect new --preset <name>'. Flags given on the command
line override preset values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, args []string) error {
	store := presetStore()
	if len(args) == 1 {
		values, err := store.Load(args[0])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	names, err := store.List()
	if err != nil {
		return err
	}
	printSection("Presets")
	if len(names) == 0 {
		printSkip("", "no presets saved in "+store.Dir)
		return nil
	}
	for _, n := range names {
		printOK("", n)
	}
	return nil
}
