package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Dallionking/stepline/internal/config"
)

const demoYAML = `
name: demo
steps:
  - key: plan
    title: Plan
  - key: build
    title: Build
    label: ci
  - key: ship
    title: Ship
`

func writeDemo(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// run executes the root command with args and returns its plain output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STEPLINE_LOG_LEVEL", "")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return ansi.Strip(buf.String()), err
}

func TestRender(t *testing.T) {
	path := writeDemo(t, demoYAML)

	out, err := run(t, "render", path, "--position", "1", "--vertical=false", "--compact=false")
	require.NoError(t, err)
	assert.Contains(t, out, "✓")
	for _, title := range []string{"Plan", "Build", "Ship", "ci"} {
		assert.Contains(t, out, title)
	}

	out, err = run(t, "render", path, "--position", "0", "--vertical", "--compact=false")
	require.NoError(t, err)
	assert.Contains(t, out, "│")
}

func TestRenderCompact(t *testing.T) {
	path := writeDemo(t, demoYAML)

	out, err := run(t, "render", path, "--position", "2", "--vertical=false", "--compact")
	require.NoError(t, err)
	assert.Contains(t, out, "● Plan  ● Build  ● Ship")
	assert.NotContains(t, out, "ci")
}

func TestRenderRejectsBadPosition(t *testing.T) {
	path := writeDemo(t, demoYAML)
	_, err := run(t, "render", path, "--position", "9", "--vertical=false", "--compact=false")
	assert.ErrorContains(t, err, "position out of range")
}

func TestPlanJSON(t *testing.T) {
	path := writeDemo(t, demoYAML)

	out, err := run(t, "plan", path, "--position", "1.5", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Name        string `json:"name"`
		Orientation string `json:"orientation"`
		Steps       []struct {
			Key              string  `json:"key"`
			State            string  `json:"state"`
			Visual           string  `json:"visual"`
			LineFillFraction float64 `json:"lineFillFraction"`
			IsLastStep       bool    `json:"isLastStep"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "demo", doc.Name)
	assert.Equal(t, "horizontal", doc.Orientation)
	require.Len(t, doc.Steps, 3)
	assert.Equal(t, "done", doc.Steps[0].State)
	assert.Equal(t, "current", doc.Steps[1].State)
	assert.Equal(t, "todo", doc.Steps[2].State)
	assert.Equal(t, 0.5, doc.Steps[1].LineFillFraction)
	assert.Equal(t, "title", doc.Steps[0].Visual)
	assert.True(t, doc.Steps[2].IsLastStep)
}

func TestPlanYAML(t *testing.T) {
	path := writeDemo(t, demoYAML)

	out, err := run(t, "plan", path, "--position", "0", "--format", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	steps, ok := doc["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, 3)

	_, err = run(t, "plan", path, "--position", "0", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestPlanTable(t *testing.T) {
	path := writeDemo(t, demoYAML)

	out, err := run(t, "plan", path, "--position", "1", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "● DONE")
	assert.Contains(t, out, "● CURRENT")
	assert.Contains(t, out, "● TODO")
	assert.Contains(t, out, "build")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", writeDemo(t, demoYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "definition is valid")

	out, err = run(t, "validate", writeDemo(t, demoYAML+"position: 9\nicons: [a]\n"))
	assert.ErrorContains(t, err, "2 problem(s)")
	assert.Contains(t, out, "position")
	assert.Contains(t, out, "icons")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stepline.yaml")

	out, err := run(t, "init", path, "--steps", "3", "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	def, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, def.Steps, 3)
	assert.Len(t, def.Durations, 3)
	assert.Empty(t, config.Validate(def))

	_, err = run(t, "init", path, "--steps", "3", "--force=false")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", path, "--steps", "2", "--force")
	assert.NoError(t, err)
}

func TestVersionAndConfig(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "VERSION")

	out, err = run(t, "config", "flavors")
	require.NoError(t, err)
	for _, f := range []string{"classic", "numbered", "icon", "dashed", "tab"} {
		assert.Contains(t, out, f)
	}

	out, err = run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Animation")
}
