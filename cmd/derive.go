package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go-scales/config"
	"go-scales/debug"
	"go-scales/theme"
	"go-scales/theory"
	"go-scales/widgets"
)

var (
	deriveFlats  bool
	deriveFormat string
)

var deriveCmd = &cobra.Command{
	Use:   "derive ROOT MODE",
	Short: "Print the scale for a root note and mode",
	Long: `Print the seven notes of ROOT in MODE.

ROOT is a note name such as C, F#, Bb (or the ASCII forms Fs, Bf).
MODE is 1-7 (1 Ionian, 2 Dorian, ... 6 Aeolian, 7 Locrian) or a mode name.`,
	Example: "  go-scales derive a 6\n  go-scales derive Eb dorian --flats --format inline",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp := cfg.Spelling
		if cmd.Flags().Changed("flats") {
			sp = theory.Sharps
			if deriveFlats {
				sp = theory.Flats
			}
		}

		format := cfg.Format
		if cmd.Flags().Changed("format") {
			f, err := config.ParseFormat(deriveFormat)
			if err != nil {
				return err
			}
			format = f
		}

		th, err := theme.Load(cfg.Palette)
		if err != nil {
			return fmt.Errorf("loading palette: %w", err)
		}

		return derive(cmd.OutOrStdout(), args[0], args[1], sp, format, th)
	},
}

func init() {
	deriveCmd.Flags().BoolVar(&deriveFlats, "flats", false, "spell black keys with flats")
	deriveCmd.Flags().StringVar(&deriveFormat, "format", "table", "output format (table, inline, yaml)")
	rootCmd.AddCommand(deriveCmd)
}

// scaleDoc is the yaml shape of a derived scale
type scaleDoc struct {
	Root  string       `yaml:"root"`
	Mode  string       `yaml:"mode"`
	Scale theory.Scale `yaml:",inline"`
	Notes []string     `yaml:"notes,flow"`
}

func derive(w io.Writer, rootArg, modeArg string, sp theory.Spelling, format config.Format, th *theme.Theme) error {
	name, err := theory.NormalizeName(rootArg)
	if err != nil {
		return err
	}
	root, err := theory.ParsePitchClass(name)
	if err != nil {
		return err
	}
	mode, err := theory.ParseMode(modeArg)
	if err != nil {
		return err
	}

	s, err := theory.DeriveFrom(root, mode, sp)
	if err != nil {
		return err
	}
	debug.Log("derive", "%s", s)

	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		doc := scaleDoc{
			Root:  root.Name(sp),
			Mode:  mode.String(),
			Scale: s,
			Notes: s.Notes(),
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding scale: %w", err)
		}
		return enc.Close()

	case config.FormatInline:
		_, err = fmt.Fprintln(w, widgets.RenderScaleInline(s, th))
		return err

	default:
		table, err := widgets.RenderScaleTable(s, th)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, table)
		return err
	}
}
