package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/logging"
	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/components"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// loadDefinition reads the definition named by args, or the nearest one
// above the working directory. A flavor set in the settings or with --flavor
// replaces the file's.
func loadDefinition(args []string) (*config.Definition, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	path, err := config.ResolveDefinition(path)
	if err != nil {
		return nil, err
	}

	def, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if f := config.Get().Flavor; f != "" {
		def.Flavor = f
	}
	logging.Debug("Loaded definition")
	return def, nil
}

// terminalWidth returns the configured width, the width of stdout when it
// is a terminal, or defaultWidth.
func terminalWidth() int {
	if w := config.Get().Width; w > 0 {
		return w
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// layoutDefinition validates def and runs a full layout pass over it at its
// position, measuring labels so connector lengths are final.
func layoutDefinition(def *config.Definition, width int) (components.Stepper, error) {
	if err := config.ValidateErr(def); err != nil {
		return components.Stepper{}, fmt.Errorf("invalid definition: %w", err)
	}
	style, err := def.StepperStyle()
	if err != nil {
		return components.Stepper{}, err
	}
	flavor, err := def.FlavorValue()
	if err != nil {
		return components.Stepper{}, err
	}

	cache := stepper.NewLabelCache()
	s, err := components.Layout(components.Stepper{
		Steps:        def.Descriptors(),
		Style:        style,
		Flavor:       flavor,
		Icons:        def.Icons,
		Descriptions: def.Descriptions,
		Markdown:     components.NewMarkdownRenderer(config.Get().MarkdownStyle),
		Width:        width,
	}, def.Position, cache, def.AuxLists()...)
	if err != nil {
		return components.Stepper{}, err
	}
	logging.LogPlan(len(s.Plan), def.Position, style.Orientation.String(), cache.Len() > 0)
	return s, nil
}
