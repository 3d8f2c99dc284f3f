package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

var (
	planFormat   string
	planPosition float64
)

// planOutput is the document printed by the plan command.
type planOutput struct {
	Name        string                      `json:"name" yaml:"name"`
	Position    float64                     `json:"position" yaml:"position"`
	Orientation stepper.Orientation         `json:"orientation" yaml:"orientation"`
	Steps       []stepper.RenderInstruction `json:"steps" yaml:"steps"`
}

var planCmd = &cobra.Command{
	Use:   "plan [definition]",
	Short: "Print the computed layout plan",
	Long: `Print the per-step render instructions for a definition: state,
connector fill fraction, effective connector length and slot size.

Flags:
  --format   json (default), yaml or table`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loadDefinition(args)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("position") {
			def.Position = planPosition
		}

		s, err := layoutDefinition(def, terminalWidth())
		if err != nil {
			return err
		}
		doc := planOutput{
			Name:        def.Name,
			Position:    def.Position,
			Orientation: s.Style.Orientation,
			Steps:       s.Plan,
		}

		out := cmd.OutOrStdout()
		switch planFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(doc)
		case "table":
			printPlanTable(out, doc)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want json, yaml or table)", planFormat)
		}
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format: json, yaml or table")
	planCmd.Flags().Float64VarP(&planPosition, "position", "p", 0, "position to plan (default is the definition's)")
	rootCmd.AddCommand(planCmd)
}

func printPlanTable(w io.Writer, doc planOutput) {
	fmt.Fprintf(w, "%s  %s\n\n",
		styles.Title.Render(doc.Name),
		styles.Label.Render(fmt.Sprintf("position %g, %s", doc.Position, doc.Orientation)))
	fmt.Fprintf(w, "  %-4s %-16s %-12s %-6s %-6s %s\n",
		styles.TableHeader.Render("#"),
		styles.TableHeader.Render("KEY"),
		styles.TableHeader.Render("STATE"),
		styles.TableHeader.Render("FILL"),
		styles.TableHeader.Render("LINE"),
		styles.TableHeader.Render("SLOT"))
	for _, ins := range doc.Steps {
		line := "-"
		if !ins.IsLastStep {
			line = fmt.Sprintf("%d", ins.EffectiveLineLength)
		}
		fmt.Fprintf(w, "  %-4d %-16s %-12s %-6s %-6s %d\n",
			ins.Index+1,
			styles.Truncate(string(ins.Key), 16),
			styles.StateBadge(ins.State),
			fmt.Sprintf("%.2f", ins.LineFillFraction),
			line,
			ins.SlotSize)
	}
}
