package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/logging"
	"github.com/Dallionking/stepline/internal/tui/anim"
	"github.com/Dallionking/stepline/internal/tui/models"
)

// RunStepper launches the interactive stepper preview. It blocks until the
// user quits. When watch is true the definition file is reloaded on change.
func RunStepper(def *config.Definition, settings *config.Settings, watch bool) error {
	opts := models.Options{
		Spring:        anim.NewSpring(settings.SpringFrequency, settings.SpringDamping),
		MarkdownStyle: settings.MarkdownStyle,
		Flavor:        settings.Flavor,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if watch && def.Path() != "" {
		w, err := config.NewWatcher(def.Path(), settings.Debounce)
		if err != nil {
			return fmt.Errorf("watching definition: %w", err)
		}
		defer w.Close()
		opts.Reloads = w.Watch(ctx)
		logging.Info("Watching definition")
	}

	model, err := models.NewStepperModel(def, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running preview: %w", err)
	}

	// let completion callbacks finish before the process exits
	if m, ok := finalModel.(models.StepperModel); ok {
		m.Wait()
	}
	return nil
}
