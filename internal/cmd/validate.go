package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

var validateCmd = &cobra.Command{
	Use:   "validate [definition]",
	Short: "Check a definition for errors",
	Long: `Validate a definition file and report every problem found: an empty
step list, a position outside [-1, step count], auxiliary lists that do
not match the step count, duplicate keys and unknown style names.

Exits non-zero when any problem is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loadDefinition(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		issues := config.Validate(def)

		fmt.Fprintln(out, styles.Title.Render("Validate "+def.Name))
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Label.Render("FILE")+"      "+styles.Value.Render(def.Path()))
		fmt.Fprintln(out, styles.Label.Render("STEPS")+"     "+styles.Value.Render(fmt.Sprintf("%d", len(def.Steps))))
		fmt.Fprintln(out, styles.Label.Render("POSITION")+"  "+styles.Value.Render(fmt.Sprintf("%g", def.Position)))
		fmt.Fprintln(out)

		if len(issues) == 0 {
			fmt.Fprintln(out, styles.StateGlyph(stepper.Done)+" "+styles.StateText(stepper.Done, "definition is valid"))
			return nil
		}

		for _, iss := range issues {
			fmt.Fprintf(out, "  %s %s %s\n", styles.ErrorText("✗"), styles.Bold(iss.Field), styles.Dim(iss.Message))
		}
		fmt.Fprintln(out)
		return fmt.Errorf("%d problem(s) found in %s", len(issues), def.Path())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
