package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, events <-chan ReloadEvent) ReloadEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event channel closed early")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return ReloadEvent{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stepline.yaml", "steps:\n  - title: One\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	// unrelated files in the same directory are ignored
	writeFile(t, dir, "other.yaml", "steps: []\n")
	writeFile(t, dir, "stepline.yaml", "steps:\n  - title: One\n  - title: Two\n")

	ev := nextEvent(t, events)
	require.NoError(t, ev.Err)
	require.NotNil(t, ev.Definition)
	assert.Len(t, ev.Definition.Steps, 2)
	assert.False(t, ev.Time.IsZero())
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stepline.yaml", "steps:\n  - title: One\n")

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	writeFile(t, dir, "stepline.yaml", "steps: [\n")
	ev := nextEvent(t, events)
	assert.Error(t, ev.Err)
	assert.Nil(t, ev.Definition)
}

func TestWatcherClosesOnCancel(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepline.yaml", "steps: []\n")
	w, err := NewWatcher(path, 0)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events := w.Watch(ctx)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "gone", "stepline.yaml"), 0)
	assert.Error(t, err)
}

func TestFindDefinition(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, "stepline.yml", "steps: []\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindDefinition(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ResolveDefinition(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ResolveDefinition(filepath.Join(root, "missing.yaml"))
	assert.Error(t, err)
}

func TestSettings(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	t.Setenv("STEPLINE_FLAVOR", "tab")
	t.Setenv("STEPLINE_SPRING_DAMPING", "0.5")
	BindEnv(v)

	s, err := LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "tab", s.Flavor)
	assert.Equal(t, 0.5, s.SpringDamping)
	assert.Equal(t, 6.0, s.SpringFrequency)
	assert.Equal(t, 100*time.Millisecond, s.Debounce)
	assert.Same(t, s, Get())

	v.Set("spring_frequency", 0)
	_, err = LoadSettings(v)
	assert.Error(t, err)
}
