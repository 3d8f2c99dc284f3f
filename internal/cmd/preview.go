package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/tui/views"
)

var previewWatch bool

var previewCmd = &cobra.Command{
	Use:   "preview [definition]",
	Short: "Preview a stepper interactively",
	Long: `Launch the interactive preview TUI.

Step through the sequence with the arrow keys, switch flavors and
orientation live, and run timed mode when the definition lists
durations.

Flags:
  --watch   reload the definition whenever the file changes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loadDefinition(args)
		if err != nil {
			return err
		}
		return views.RunStepper(def, config.Get(), previewWatch)
	},
}

func init() {
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "reload the definition on change")
	rootCmd.AddCommand(previewCmd)
}
