package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

const releaseYAML = `
name: release
flavor: dashed
orientation: vertical
position: 1.5
itemPadding: 2
showCheckMarkOnDone: false
steps:
  - key: plan
    title: Plan
    label: kickoff
  - title: Build
    content: "## Notes\nrun the build"
    markdown: true
    collapsible: true
  - title: Ship
    icon: "λ"
durations: [2s, 1500ms, 3s]
style:
  step:
    current:
      color: "#FF0000"
      size: 5
      shape: square
  line:
    done:
      trackType: "dashed:3:1"
      padding: 0
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefinition(t *testing.T) {
	path := writeFile(t, t.TempDir(), "release.yaml", releaseYAML)

	def, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "release", def.Name)
	assert.Equal(t, path, def.Path())
	assert.Equal(t, 1.5, def.Position)
	require.Len(t, def.Steps, 3)
	assert.Equal(t, []time.Duration{2 * time.Second, 1500 * time.Millisecond, 3 * time.Second}, def.Durations)
	assert.Empty(t, Validate(def))
}

func TestLoadDefaultsNameFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "onboarding.json", `{"steps":[{"title":"Hi"}]}`)
	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "onboarding", def.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDescriptors(t *testing.T) {
	def, err := Load(writeFile(t, t.TempDir(), "release.yaml", releaseYAML))
	require.NoError(t, err)

	steps := def.Descriptors()
	require.Len(t, steps, 3)
	assert.Equal(t, stepper.StepKey("plan"), steps[0].Key)
	assert.Equal(t, stepper.StepKey("step-1"), steps[1].Key, "missing keys are positional")
	assert.True(t, steps[0].HasLabel())

	require.NotNil(t, steps[1].Content)
	assert.True(t, steps[1].Content.Markdown)
	assert.True(t, steps[1].Collapsible)
	assert.Equal(t, "λ", steps[2].Icon)

	again := def.Descriptors()
	assert.Equal(t, steps[1].Key, again[1].Key, "keys are stable across conversions")
}

func TestStepperStyleOverrides(t *testing.T) {
	def, err := Load(writeFile(t, t.TempDir(), "release.yaml", releaseYAML))
	require.NoError(t, err)

	style, err := def.StepperStyle()
	require.NoError(t, err)
	preset := styles.Preset(styles.FlavorDashed)

	assert.Equal(t, stepper.Vertical, style.Orientation)
	assert.Equal(t, stepper.Length(2), style.ItemPadding)
	assert.False(t, style.ShowCheckMarkOnDone)

	assert.Equal(t, stepper.Color("#FF0000"), style.StepStyle.OnCurrent.Color)
	assert.Equal(t, stepper.Length(5), style.StepStyle.OnCurrent.Size)
	assert.Equal(t, stepper.ShapeSquare, style.StepStyle.OnCurrent.Shape)
	assert.Equal(t, preset.StepStyle.OnTodo, style.StepStyle.OnTodo, "untouched states keep the preset")

	assert.Equal(t, stepper.Dashed(3, 1), style.LineStyle.OnDone.TrackType)
	assert.Equal(t, stepper.Length(0), style.LineStyle.OnDone.Padding)
	assert.Equal(t, preset.LineStyle.OnDone.Length, style.LineStyle.OnDone.Length)
}

func TestStepperStyleRejectsBadOverride(t *testing.T) {
	def := &Definition{
		Steps: []StepDef{{Title: "A"}},
		Style: StyleDef{Line: LineStyleSetDef{Todo: LineStyleDef{TrackCap: "pointy"}}},
	}
	_, err := def.StepperStyle()
	assert.Error(t, err)

	def = &Definition{Flavor: "neon"}
	_, err = def.StepperStyle()
	assert.Error(t, err)
}

func TestAuxLists(t *testing.T) {
	def := &Definition{Icons: []string{"a", "b"}, Durations: []time.Duration{time.Second}}
	assert.Equal(t, []stepper.AuxList{stepper.IconList(2), stepper.DurationList(1)}, def.AuxLists())
	assert.Nil(t, (&Definition{}).AuxLists())
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("steps", []map[string]any{{"title": "One"}, {"title": "Two"}})
	v.Set("position", 1)

	def, err := FromViper(v)
	require.NoError(t, err)
	assert.Len(t, def.Steps, 2)
	assert.Equal(t, 1.0, def.Position)
	assert.Equal(t, "", def.Path())
}
