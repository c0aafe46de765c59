package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// cliFlags holds command-line overrides. Only flags the user actually set
// replace the values from the rc file and the environment.
type cliFlags struct {
	lines   int
	points  int
	spacing int
	debug   bool
}

func (f *cliFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&f.lines, "lines", defaultNumLines, "number of parallel lines")
	cmd.PersistentFlags().IntVar(&f.points, "points", defaultNumPoints, "control points per line (at least 2)")
	cmd.PersistentFlags().IntVar(&f.spacing, "spacing", defaultSpacing, "pixels between neighbouring lines when dragging")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "enable debug logging")
}

func (f *cliFlags) apply(cmd *cobra.Command, config *Config) {
	flags := cmd.Flags()
	if flags.Changed("lines") {
		config.NumLines = f.lines
	}
	if flags.Changed("points") {
		config.NumPoints = f.points
	}
	if flags.Changed("spacing") {
		config.Spacing = f.spacing
	}
}

func (f *cliFlags) load(cmd *cobra.Command) (*Config, func(), error) {
	config, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	f.apply(cmd, config)

	cleanup := func() {}
	if closeLog, lerr := setupLogger(stateDir(), f.debug); lerr == nil {
		cleanup = func() { _ = closeLog() }
	}
	return config, cleanup, nil
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:          "parallines",
		Short:        "Draw smoothed parallel lines in the terminal and export them as SVG",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, cleanup, err := flags.load(cmd)
			if err != nil {
				return err
			}
			defer cleanup()
			return runEditor(config)
		},
	}
	flags.register(cmd)
	cmd.AddCommand(newExportCmd(&flags))
	return cmd
}

func newExportCmd(flags *cliFlags) *cobra.Command {
	var (
		width  float64
		height float64
		drags  []string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a grid without the editor, applying scripted drags",
		Example: `  parallines export --width 800 --height 400 --drag 4:2:120 -o wave.svg
  parallines export --format png --points 7 --drag 0:3:40 --drag 9:1:300`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, cleanup, err := flags.load(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			editor, err := NewEditor(config.NumLines, config.NumPoints, config.Spacing, config.HitRadius)
			if err != nil {
				return err
			}
			editor.Resize(width, height)

			for _, d := range drags {
				sel, y, err := parseDrag(d)
				if err != nil {
					return err
				}
				if err := editor.DragPoint(sel, y); err != nil {
					return err
				}
			}

			if output == "" {
				output = config.GetSavePath(exportFilenameSVG)
				if format == "png" {
					output = config.GetSavePath(exportFilenamePNG)
				}
			}

			switch format {
			case "svg":
				err = editor.SaveSVG(output)
			case "png":
				err = editor.ExportToPNG(output, config.PNGCaption)
			default:
				return fmt.Errorf("unknown format %q: want svg or png", format)
			}
			if err != nil {
				return err
			}
			L().Info("export.cli", "path", output, "format", format, "drags", len(drags))
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 800, "canvas width in pixels")
	cmd.Flags().Float64Var(&height, "height", 600, "canvas height in pixels")
	cmd.Flags().StringArrayVar(&drags, "drag", nil, "drag line:point to y, applied in order (repeatable)")
	cmd.Flags().StringVar(&format, "format", "svg", "output format: svg or png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default parallel-lines.<format> in the save directory)")
	return cmd
}

// parseDrag reads "line:point:y".
func parseDrag(s string) (Selection, float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Selection{}, 0, fmt.Errorf("drag %q: want line:point:y", s)
	}
	line, err := strconv.Atoi(parts[0])
	if err != nil {
		return Selection{}, 0, fmt.Errorf("drag %q: line: %w", s, err)
	}
	point, err := strconv.Atoi(parts[1])
	if err != nil {
		return Selection{}, 0, fmt.Errorf("drag %q: point: %w", s, err)
	}
	y, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Selection{}, 0, fmt.Errorf("drag %q: y: %w", s, err)
	}
	return Selection{Line: line, Point: point}, y, nil
}
