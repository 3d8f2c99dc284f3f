package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown step content with glamour, keeping one
// term renderer per wrap width.
type MarkdownRenderer struct {
	style string // glamour standard style name, "auto" to detect

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer returns a renderer using the named glamour style.
// An empty style means "auto".
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	if style == "" {
		style = "auto"
	}
	return &MarkdownRenderer{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

func (m *MarkdownRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.renderers[width]; ok {
		return r, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if m.style != "auto" {
		styleOpt = glamour.WithStandardStyle(m.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	m.renderers[width] = r
	return r, nil
}

// Render renders body wrapped to width. On failure the raw body is returned
// so a bad document never blanks the stepper.
func (m *MarkdownRenderer) Render(body string, width int) string {
	if width <= 0 {
		width = 60
	}
	r, err := m.renderer(width)
	if err != nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return strings.Trim(out, "\n")
}
