package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/components"
)

var (
	renderPosition float64
	renderVertical bool
	renderWidth    int
	renderCompact  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [definition]",
	Short: "Draw a stepper once and exit",
	Long: `Render the stepper described by a definition file to stdout.

Position is 0-based and fractional: 1.5 means step 2 is current and
its outgoing connector is half filled. -1 is not started and the step
count is complete.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loadDefinition(args)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("position") {
			def.Position = renderPosition
		}
		if renderVertical {
			def.Orientation = stepper.Vertical.String()
		}

		if renderCompact {
			if err := config.ValidateErr(def); err != nil {
				return err
			}
			titles := make([]string, len(def.Steps))
			for i, st := range def.Descriptors() {
				titles[i] = st.Title
				if titles[i] == "" {
					titles[i] = string(st.Key)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), components.CompactStepper{
				Steps:              titles,
				Position:           def.Position,
				IgnoreCurrentState: def.IgnoreCurrentState,
			}.Render())
			return nil
		}

		width := renderWidth
		if width <= 0 {
			width = terminalWidth()
		}
		s, err := layoutDefinition(def, width)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Render())
		return nil
	},
}

func init() {
	renderCmd.Flags().Float64VarP(&renderPosition, "position", "p", 0, "position to draw (default is the definition's)")
	renderCmd.Flags().BoolVar(&renderVertical, "vertical", false, "force vertical orientation")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "wrap width for step content (default is the terminal width)")
	renderCmd.Flags().BoolVar(&renderCompact, "compact", false, "draw a one-line summary instead of the full stepper")
	rootCmd.AddCommand(renderCmd)
}
