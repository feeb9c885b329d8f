package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"go-scales/config"
	"go-scales/debug"
	"go-scales/midi"
	"go-scales/theme"
	"go-scales/tui"
)

var (
	cfgFile   string
	debugFlag bool
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "go-scales",
	Short: "Diatonic scale and mode calculator",
	Long: `go-scales derives the seven notes of a diatonic scale from a root note
and a mode (1 Ionian ... 7 Locrian), with the interval numeral and chord
quality of every degree.

Running without a subcommand launches the interactive shell. Play a key on a
connected MIDI keyboard to pick the root.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { debug.Disable() },
	RunE:              runShell,
}

// Execute runs the root command and exits 1 on error
func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/go-scales/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log to ~/.config/go-scales/debug.log")
}

// loaded config, set by setup
var cfg *config.Config

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = c

	if debugFlag || cfg.Debug {
		if err := debug.Enable(""); err != nil {
			return fmt.Errorf("enabling debug log: %w", err)
		}
		debug.Log("config", "loaded %q spelling=%s format=%s", cfgFile, cfg.Spelling, cfg.Format)
	}
	return nil
}

func runShell(cmd *cobra.Command, args []string) error {
	th, err := theme.Load(cfg.Palette)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	var deviceMgr *midi.DeviceManager
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.MIDI.Enabled {
		deviceMgr = midi.NewDeviceManager(cfg.MIDI.PortFilter)
		go deviceMgr.Run(ctx)
	}

	m := tui.NewModel(cfg, deviceMgr, th)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}

	if err := cfg.Save(cfgFile); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	debug.Log("config", "saved last scale %s/%d", cfg.UI.LastRoot, cfg.UI.LastMode)
	return nil
}
