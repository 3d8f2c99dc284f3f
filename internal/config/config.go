package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// Definition is a stepper definition file (yaml, json or toml).
type Definition struct {
	Name                string          `json:"name" mapstructure:"name"`
	Flavor              string          `json:"flavor" mapstructure:"flavor"`
	Orientation         string          `json:"orientation" mapstructure:"orientation"`
	Position            float64         `json:"position" mapstructure:"position"`
	ItemPadding         int             `json:"itemPadding" mapstructure:"itemPadding"`
	ShowCheckMarkOnDone *bool           `json:"showCheckMarkOnDone" mapstructure:"showCheckMarkOnDone"`
	IgnoreCurrentState  bool            `json:"ignoreCurrentState" mapstructure:"ignoreCurrentState"`
	Steps               []StepDef       `json:"steps" mapstructure:"steps"`
	Icons               []string        `json:"icons" mapstructure:"icons"`
	Descriptions        []string        `json:"descriptions" mapstructure:"descriptions"`
	Durations           []time.Duration `json:"durations" mapstructure:"durations"`
	Style               StyleDef        `json:"style" mapstructure:"style"`

	path string
}

// StepDef is one step in a definition file.
type StepDef struct {
	Key         string `json:"key" mapstructure:"key"`
	Title       string `json:"title" mapstructure:"title"`
	Icon        string `json:"icon" mapstructure:"icon"`
	Label       string `json:"label" mapstructure:"label"`
	Content     string `json:"content" mapstructure:"content"`
	Markdown    bool   `json:"markdown" mapstructure:"markdown"`
	Collapsible bool   `json:"collapsible" mapstructure:"collapsible"`
}

// StyleDef overrides the flavor preset per state. Unset fields keep the
// preset value.
type StyleDef struct {
	Step StepStyleSetDef `json:"step" mapstructure:"step"`
	Line LineStyleSetDef `json:"line" mapstructure:"line"`
}

// StepStyleSetDef holds indicator overrides keyed by state.
type StepStyleSetDef struct {
	Todo    StepStyleDef `json:"todo" mapstructure:"todo"`
	Current StepStyleDef `json:"current" mapstructure:"current"`
	Done    StepStyleDef `json:"done" mapstructure:"done"`
}

// StepStyleDef overrides one state's indicator style.
type StepStyleDef struct {
	Color       string `json:"color" mapstructure:"color"`
	Size        int    `json:"size" mapstructure:"size"`
	Shape       string `json:"shape" mapstructure:"shape"`
	TextColor   string `json:"textColor" mapstructure:"textColor"`
	Bold        *bool  `json:"bold" mapstructure:"bold"`
	IconTint    string `json:"iconTint" mapstructure:"iconTint"`
	IconSize    int    `json:"iconSize" mapstructure:"iconSize"`
	BorderWidth *int   `json:"borderWidth" mapstructure:"borderWidth"`
	BorderColor string `json:"borderColor" mapstructure:"borderColor"`
}

// LineStyleSetDef holds connector overrides keyed by state.
type LineStyleSetDef struct {
	Todo    LineStyleDef `json:"todo" mapstructure:"todo"`
	Current LineStyleDef `json:"current" mapstructure:"current"`
	Done    LineStyleDef `json:"done" mapstructure:"done"`
}

// LineStyleDef overrides one state's connector style.
type LineStyleDef struct {
	TrackColor    string `json:"trackColor" mapstructure:"trackColor"`
	ProgressColor string `json:"progressColor" mapstructure:"progressColor"`
	Length        int    `json:"length" mapstructure:"length"`
	Thickness     int    `json:"thickness" mapstructure:"thickness"`
	Padding       *int   `json:"padding" mapstructure:"padding"`
	TrackCap      string `json:"trackCap" mapstructure:"trackCap"`
	ProgressCap   string `json:"progressCap" mapstructure:"progressCap"`
	TrackType     string `json:"trackType" mapstructure:"trackType"`
	ProgressType  string `json:"progressType" mapstructure:"progressType"`
}

// Load reads a definition file. The format follows the file extension.
func Load(path string) (*Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}

	def, err := FromViper(v)
	if err != nil {
		return nil, fmt.Errorf("parsing definition %s: %w", path, err)
	}
	def.path = path
	return def, nil
}

// FromViper decodes a definition from an already loaded viper instance.
func FromViper(v *viper.Viper) (*Definition, error) {
	var def Definition
	if err := v.Unmarshal(&def); err != nil {
		return nil, err
	}
	if def.Name == "" && v.ConfigFileUsed() != "" {
		base := filepath.Base(v.ConfigFileUsed())
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &def, nil
}

// Path returns the file the definition was loaded from, if any.
func (d *Definition) Path() string {
	return d.path
}

// Descriptors converts the step list into stepper descriptors. Steps without
// a key get a stable positional key so label measurements survive reloads
// of an unchanged file.
func (d *Definition) Descriptors() []stepper.StepDescriptor {
	b := stepper.NewBuilder()
	for i, s := range d.Steps {
		key := s.Key
		if key == "" {
			key = fmt.Sprintf("step-%d", i)
		}
		opts := []stepper.StepOption{stepper.WithKey(key)}
		if s.Icon != "" {
			opts = append(opts, stepper.WithIcon(s.Icon))
		}
		if s.Label != "" {
			opts = append(opts, stepper.WithLabel(s.Label))
		}
		if s.Content != "" {
			if s.Markdown {
				opts = append(opts, stepper.WithMarkdown(s.Content))
			} else {
				opts = append(opts, stepper.WithContent(s.Content))
			}
		}
		if s.Collapsible {
			opts = append(opts, stepper.Collapsible())
		}
		b.Step(s.Title, opts...)
	}
	return b.Build()
}

// AuxLists describes the optional per-step lists for sequence validation.
func (d *Definition) AuxLists() []stepper.AuxList {
	var aux []stepper.AuxList
	if len(d.Icons) > 0 {
		aux = append(aux, stepper.IconList(len(d.Icons)))
	}
	if len(d.Descriptions) > 0 {
		aux = append(aux, stepper.DescriptionList(len(d.Descriptions)))
	}
	if len(d.Durations) > 0 {
		aux = append(aux, stepper.DurationList(len(d.Durations)))
	}
	return aux
}

// FlavorValue parses the flavor name.
func (d *Definition) FlavorValue() (styles.Flavor, error) {
	return styles.ParseFlavor(d.Flavor)
}

// StepperStyle builds the stepper style: the flavor preset with the file's
// overrides applied.
func (d *Definition) StepperStyle() (stepper.StepperStyle, error) {
	flavor, err := d.FlavorValue()
	if err != nil {
		return stepper.StepperStyle{}, err
	}
	style := styles.Preset(flavor)

	if style.Orientation, err = stepper.ParseOrientation(d.Orientation); err != nil {
		return stepper.StepperStyle{}, err
	}
	if d.ItemPadding > 0 {
		style.ItemPadding = stepper.Length(d.ItemPadding)
	}
	style.IgnoreCurrentState = d.IgnoreCurrentState
	if d.ShowCheckMarkOnDone != nil {
		style.ShowCheckMarkOnDone = *d.ShowCheckMarkOnDone
	}

	steps := map[stepper.StepState]StepStyleDef{
		stepper.Todo:    d.Style.Step.Todo,
		stepper.Current: d.Style.Step.Current,
		stepper.Done:    d.Style.Step.Done,
	}
	lines := map[stepper.StepState]LineStyleDef{
		stepper.Todo:    d.Style.Line.Todo,
		stepper.Current: d.Style.Line.Current,
		stepper.Done:    d.Style.Line.Done,
	}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	style.StepStyle = style.StepStyle.Update(func(s stepper.StepState, v stepper.StepVisualStyle) stepper.StepVisualStyle {
		out, err := steps[s].apply(v)
		keep(err)
		return out
	})
	style.LineStyle = style.LineStyle.Update(func(s stepper.StepState, v stepper.LineVisualStyle) stepper.LineVisualStyle {
		out, err := lines[s].apply(v)
		keep(err)
		return out
	})
	if firstErr != nil {
		return stepper.StepperStyle{}, firstErr
	}
	return style, nil
}

func (o StepStyleDef) apply(v stepper.StepVisualStyle) (stepper.StepVisualStyle, error) {
	if o.Color != "" {
		v.Color = stepper.Color(o.Color)
		v.Icon.Tint = v.Color
	}
	if o.Size > 0 {
		v.Size = stepper.Length(o.Size)
	}
	if o.Shape != "" {
		shape, err := stepper.ParseShape(o.Shape)
		if err != nil {
			return v, err
		}
		v.Shape = shape
	}
	if o.TextColor != "" {
		v.Text.Color = stepper.Color(o.TextColor)
	}
	if o.Bold != nil {
		v.Text.Bold = *o.Bold
	}
	if o.IconTint != "" {
		v.Icon.Tint = stepper.Color(o.IconTint)
	}
	if o.IconSize > 0 {
		v.Icon.Size = stepper.Length(o.IconSize)
	}
	if o.BorderWidth != nil {
		v.Border.Width = stepper.Length(*o.BorderWidth)
		v.Border.Shape = v.Shape
	}
	if o.BorderColor != "" {
		v.Border.Color = stepper.Color(o.BorderColor)
	}
	return v, nil
}

func (o LineStyleDef) apply(v stepper.LineVisualStyle) (stepper.LineVisualStyle, error) {
	if o.TrackColor != "" {
		v.TrackColor = stepper.Color(o.TrackColor)
	}
	if o.ProgressColor != "" {
		v.ProgressColor = stepper.Color(o.ProgressColor)
	}
	if o.Length > 0 {
		v.Length = stepper.Length(o.Length)
	}
	if o.Thickness > 0 {
		v.Thickness = stepper.Length(o.Thickness)
	}
	if o.Padding != nil {
		v.Padding = stepper.Length(*o.Padding)
	}

	var err error
	if o.TrackCap != "" {
		if v.TrackCap, err = stepper.ParseStrokeCap(o.TrackCap); err != nil {
			return v, err
		}
	}
	if o.ProgressCap != "" {
		if v.ProgressCap, err = stepper.ParseStrokeCap(o.ProgressCap); err != nil {
			return v, err
		}
	}
	if o.TrackType != "" {
		if v.TrackType, err = stepper.ParseLineType(o.TrackType); err != nil {
			return v, err
		}
	}
	if o.ProgressType != "" {
		if v.ProgressType, err = stepper.ParseLineType(o.ProgressType); err != nil {
			return v, err
		}
	}
	return v, nil
}
