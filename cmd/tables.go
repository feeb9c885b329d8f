package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-scales/theme"
	"go-scales/widgets"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the seven diatonic modes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := theme.Load(cfg.Palette)
		if err != nil {
			return fmt.Errorf("loading palette: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), widgets.RenderModeTable(th))
		return nil
	},
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List the 12 pitch classes with sharp and flat spellings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := theme.Load(cfg.Palette)
		if err != nil {
			return fmt.Errorf("loading palette: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), widgets.RenderPitchTable(th))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(notesCmd)
}
