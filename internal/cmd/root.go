package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "stepline",
	Short: "Render and preview progress steppers in the terminal",
	Long: `Stepline: progress steppers for the terminal

Describe a sequence of steps in a YAML, JSON or TOML definition and
render it as a horizontal or vertical stepper, inspect its layout plan,
or preview it interactively with animated transitions.

Commands that take a [definition] argument fall back to the nearest
stepline.yaml above the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(viper.GetViper())
		if err != nil {
			return err
		}

		level := settings.LogLevel
		if verbose {
			level = "debug"
		}
		if err := logging.Initialize(level, settings.LogFile); err != nil {
			return err
		}

		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
			settings.MarkdownStyle = "notty"
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is $XDG_CONFIG_HOME/stepline/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to the log file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().String("flavor", "", "override the definition's flavor (classic, numbered, icon, dashed, tab)")
	_ = viper.BindPFlag("flavor", rootCmd.PersistentFlags().Lookup("flavor"))
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "stepline"))
		}
	}
	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading settings:", err)
		}
	}
}
