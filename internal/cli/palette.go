package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
	"github.com/matzehuels/canvas2svg/pkg/render/sink"
)

// paletteCommand creates the palette command.
func (c *CLI) paletteCommand() *cobra.Command {
	var (
		output string
		style  string
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the color palette, or export it as an SVG swatch",
		Long: `Show the color palette used for text cards and edges.

Canvas nodes and edges select a color with "color": "0" through "6"; any
other value uses the default. With --output, an SVG swatch is written instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := scene.Palette()
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), paletteTable(entries))
				return nil
			}

			st, err := scene.StyleByName(style)
			if err != nil {
				return err
			}
			if output == "-" {
				return sink.RenderSwatch(cmd.OutOrStdout(), entries, st)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := sink.RenderSwatch(f, entries, st); err != nil {
				f.Close()
				_ = os.Remove(output)
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
			}
			printSuccess("Wrote palette swatch")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write an SVG swatch to this file (- for stdout)")
	cmd.Flags().StringVar(&style, "style", scene.StyleRounded, "swatch style: rounded (default), square")

	return cmd
}
