package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings",
	Long: `Display the settings in effect after merging the settings file,
STEPLINE_* environment variables and command flags.

Subcommands:
  flavors   List the built-in stepper flavors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := config.Get()
		out := cmd.OutOrStdout()

		file := viper.ConfigFileUsed()
		if file == "" {
			file = "(none)"
		}
		flavor := s.Flavor
		if flavor == "" {
			flavor = "(from definition)"
		}
		level := s.LogLevel
		if level == "" {
			level = "off"
		}

		fmt.Fprintln(out, styles.Title.Render("Configuration"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Label.Render("FILE")+"      "+styles.Value.Render(file))
		fmt.Fprintln(out, styles.Label.Render("FLAVOR")+"    "+styles.Value.Render(flavor))
		fmt.Fprintln(out, styles.Label.Render("MARKDOWN")+"  "+styles.Value.Render(s.MarkdownStyle))
		fmt.Fprintln(out, styles.Label.Render("LOG")+"       "+styles.Value.Render(level+" → "+s.LogFile))
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Divider(50))
		fmt.Fprintln(out)

		fmt.Fprintln(out, styles.Subtitle.Render("Animation"))
		fmt.Fprintf(out, "  frequency=%g damping=%g debounce=%s\n", s.SpringFrequency, s.SpringDamping, s.Debounce)
		fmt.Fprintln(out)

		if path, err := config.FindDefinition(""); err == nil {
			fmt.Fprintln(out, styles.Subtitle.Render("Definition"))
			fmt.Fprintln(out, "  "+styles.Dim(path))
		}
		return nil
	},
}

// --- config flavors ---

var configFlavorsCmd = &cobra.Command{
	Use:   "flavors",
	Short: "List the built-in stepper flavors",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.Title.Render("Flavors"))
		fmt.Fprintln(out)

		fmt.Fprintf(out, "  %s  %s  %s  %s\n",
			styles.TableHeader.Width(10).Render("NAME"),
			styles.TableHeader.Width(8).Render("KEY"),
			styles.TableHeader.Width(12).Render("CURRENT"),
			styles.TableHeader.Width(16).Render("CONNECTOR"),
		)
		fmt.Fprintln(out, styles.Divider(54))

		active := config.Get().Flavor
		for i, f := range styles.AllFlavors() {
			p := styles.Preset(f)
			mark := ""
			if f.String() == active {
				mark = " " + styles.Fg(styles.AccentPrimary, "*")
			}
			fmt.Fprintf(out, "  %s%s  %s  %s  %s\n",
				styles.Bold(fmt.Sprintf("%-10s", f)),
				mark,
				styles.Dim(fmt.Sprintf("%-8d", i+1)),
				styles.Dim(fmt.Sprintf("%-12s", fmt.Sprintf("%s/%d", p.StepStyle.OnCurrent.Shape, p.StepStyle.OnCurrent.Size))),
				styles.Dim(p.LineStyle.OnCurrent.ProgressType.String()),
			)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configFlavorsCmd)
	rootCmd.AddCommand(configCmd)
}
