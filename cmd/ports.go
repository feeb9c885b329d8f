package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-scales/midi"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI input ports usable as root pickers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "=== MIDI Input Ports ===")
		fmt.Fprintln(out, "(waiting up to 3 seconds...)")

		names, ok := midi.InPortNames()
		if !ok {
			fmt.Fprintln(out, "\nTIMEOUT! CoreMIDI is hung.")
			fmt.Fprintln(out, "Fix: sudo killall coreaudiod midiserver")
			return fmt.Errorf("midi port scan timed out")
		}
		if len(names) == 0 {
			fmt.Fprintln(out, "  (none)")
			return nil
		}

		dm := midi.NewDeviceManager(cfg.MIDI.PortFilter)
		for i, name := range names {
			mark := " "
			if dm.Accepts(name) {
				mark = "*"
			}
			fmt.Fprintf(out, "  %s %d: %s\n", mark, i, name)
		}
		fmt.Fprintln(out, "\n* = opened as a keyboard by the shell")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
