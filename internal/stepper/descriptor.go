package stepper

import (
	"github.com/google/uuid"
)

// Visual names which field of a descriptor is drawn as the indicator.
type Visual int

const (
	VisualBullet Visual = iota
	VisualTitle
	VisualIcon
	VisualContent
)

func (v Visual) String() string {
	switch v {
	case VisualTitle:
		return "title"
	case VisualIcon:
		return "icon"
	case VisualContent:
		return "content"
	default:
		return "bullet"
	}
}

// MarshalText lets visuals appear by name in plan output.
func (v Visual) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Content is custom step content. Markdown content is rendered through
// glamour by the TUI layer.
type Content struct {
	Body     string
	Markdown bool
}

// StepDescriptor is the caller-owned description of one step. It carries no
// state; state is derived from the position on every pass.
type StepDescriptor struct {
	Key         StepKey
	Title       string
	Icon        string
	Content     *Content
	Label       string // trailing label drawn beside the connector
	Description string // secondary text measured with the label
	Collapsible bool
	OnComplete  func()
	OnClick     func()
}

// PrimaryVisual picks the indicator visual: title, then icon, then content,
// then a plain bullet.
func (d StepDescriptor) PrimaryVisual() Visual {
	switch {
	case d.Title != "":
		return VisualTitle
	case d.Icon != "":
		return VisualIcon
	case d.Content != nil:
		return VisualContent
	default:
		return VisualBullet
	}
}

// HasLabel reports whether the step has a trailing label to measure.
func (d StepDescriptor) HasLabel() bool {
	return d.Label != ""
}

// labelNamespace scopes content identities produced by ContentID.
var labelNamespace = uuid.MustParse("6f1b7c52-6a0e-4d1e-9f3c-2b8f1d0c7a45")

// ContentID is a stable identity for the label composition. A measured
// label extent is only reused while this value is unchanged.
func (d StepDescriptor) ContentID() string {
	data := d.Title + "\x00" + d.Label + "\x00" + d.Description
	if d.Content != nil {
		data += "\x00" + d.Content.Body
	}
	return uuid.NewSHA1(labelNamespace, []byte(data)).String()
}

// StepOption customises a step added through Builder.
type StepOption func(*StepDescriptor)

// WithKey sets a stable key. Steps without one get a random key.
func WithKey(key string) StepOption {
	return func(d *StepDescriptor) { d.Key = StepKey(key) }
}

// WithIcon sets the icon glyph.
func WithIcon(icon string) StepOption {
	return func(d *StepDescriptor) { d.Icon = icon }
}

// WithContent sets plain custom content.
func WithContent(body string) StepOption {
	return func(d *StepDescriptor) { d.Content = &Content{Body: body} }
}

// WithMarkdown sets markdown custom content.
func WithMarkdown(body string) StepOption {
	return func(d *StepDescriptor) { d.Content = &Content{Body: body, Markdown: true} }
}

// WithLabel sets the trailing label.
func WithLabel(label string) StepOption {
	return func(d *StepDescriptor) { d.Label = label }
}

// Collapsible marks the step's content as collapsible when not current.
func Collapsible() StepOption {
	return func(d *StepDescriptor) { d.Collapsible = true }
}

// OnComplete registers a callback fired when the step becomes Done.
func OnComplete(fn func()) StepOption {
	return func(d *StepDescriptor) { d.OnComplete = fn }
}

// OnClick registers a callback fired when the step is activated.
func OnClick(fn func()) StepOption {
	return func(d *StepDescriptor) { d.OnClick = fn }
}

// Builder assembles a step list fluently.
//
//	steps := stepper.NewBuilder().
//		Step("Plan").
//		Step("", stepper.WithIcon("✎"), stepper.WithLabel("drafting")).
//		Build()
type Builder struct {
	steps []StepDescriptor
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Step appends a step with the given title and options.
func (b *Builder) Step(title string, opts ...StepOption) *Builder {
	d := StepDescriptor{Title: title}
	for _, opt := range opts {
		opt(&d)
	}
	if d.Key == "" {
		d.Key = StepKey(uuid.NewString())
	}
	b.steps = append(b.steps, d)
	return b
}

// Build returns a copy of the assembled steps.
func (b *Builder) Build() []StepDescriptor {
	out := make([]StepDescriptor, len(b.steps))
	copy(out, b.steps)
	return out
}
