package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

var (
	initSteps int
	initForce bool
)

// starterStep and starterDefinition shape the file init writes.
type starterStep struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	Label string `yaml:"label,omitempty"`
}

type starterDefinition struct {
	Name        string        `yaml:"name"`
	Flavor      string        `yaml:"flavor"`
	Orientation string        `yaml:"orientation"`
	Position    float64       `yaml:"position"`
	Steps       []starterStep `yaml:"steps"`
	Durations   []string      `yaml:"durations"`
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter definition",
	Long: `Create a stepline.yaml in the current directory (or at path) with a
few placeholder steps to edit.

The global --flavor flag picks the starter flavor. Existing files are
left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "stepline.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if initSteps < 1 {
			return fmt.Errorf("--steps must be at least 1 (got %d)", initSteps)
		}
		flavor, err := styles.ParseFlavor(config.Get().Flavor)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		doc := starterDefinition{
			Name:        "my-stepper",
			Flavor:      flavor.String(),
			Orientation: "horizontal",
			Position:    0,
		}
		for i := 0; i < initSteps; i++ {
			doc.Steps = append(doc.Steps, starterStep{
				Key:   fmt.Sprintf("step-%d", i+1),
				Title: fmt.Sprintf("Step %d", i+1),
			})
			doc.Durations = append(doc.Durations, "2s")
		}
		doc.Steps[0].Label = "start here"

		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding definition: %w", err)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), styles.StateText(stepper.Done, "Created")+" "+styles.Value.Render(path))
		return nil
	},
}

func init() {
	initCmd.Flags().IntVar(&initSteps, "steps", 4, "number of placeholder steps")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
