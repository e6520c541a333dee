package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/errors"
	"github.com/go-drift/dxmotion/pkg/widgets"
)

const presets = `
version: v1.2.0
reducedMotion: always
defaults:
  duration: 250ms
  ease: easeOut
transitions:
  pop:
    type: spring
    stiffness: 400
    damping: 20
  list:
    delay: 100ms
    stagger: 50ms
  curve:
    bezier: [0.2, 0, 0, 1]
`

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	r, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", r.Version)
	assert.Equal(t, widgets.ReducedMotionUser, r.ReducedMotion)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(presets), 0o644))

	r, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), r.Path)
	assert.Equal(t, "v1.2.0", r.Version)
	assert.Equal(t, widgets.ReducedMotionAlways, r.ReducedMotion)
	assert.Equal(t, 250*time.Millisecond, r.Defaults.Duration)

	pop, ok := r.Transition("pop")
	require.True(t, ok)
	assert.Equal(t, animation.TypeSpring, pop.Type)
	assert.Equal(t, 400.0, pop.Stiffness)
	assert.Equal(t, "easeOut", pop.EaseName, "defaults fill unset fields")

	list, ok := r.Transition("list")
	require.True(t, ok)
	require.NotNil(t, list.DelayFunc)
	assert.Equal(t, 100*time.Millisecond, list.DelayFor(0, 4))
	assert.Equal(t, 250*time.Millisecond, list.DelayFor(3, 4))

	curve, _ := r.Transition("curve")
	require.NotNil(t, curve.Bezier)
	assert.Equal(t, animation.Bezier{X1: 0.2, Y1: 0, X2: 0, Y2: 1}, *curve.Bezier)
	assert.Empty(t, curve.EaseName, "a bezier replaces the default ease")

	missing, ok := r.Transition("nope")
	assert.False(t, ok)
	assert.Equal(t, r.Defaults.Duration, missing.Duration)

	wc := r.WidgetConfig()
	assert.Equal(t, widgets.ReducedMotionAlways, wc.ReducedMotion)
	assert.Equal(t, 250*time.Millisecond, wc.Defaults.Transition.Duration)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"bad version", "version: one", errors.ErrInvalidValue},
		{"major version", "version: v2.0.0", ErrUnsupportedVersion},
		{"policy", "reducedMotion: sometimes", errors.ErrInvalidValue},
		{"easing", "defaults: {ease: wobbly}", errors.ErrUnknownEasing},
		{"duration", "defaults: {duration: soon}", errors.ErrInvalidValue},
		{"negative", "transitions: {a: {delay: -1s}}", errors.ErrInvalidValue},
		{"type", "transitions: {a: {type: teleport}}", errors.ErrInvalidValue},
		{"bezier", "transitions: {a: {bezier: [1, 2]}}", errors.ErrInvalidValue},
		{"stiffness", "transitions: {a: {stiffness: -5}}", errors.ErrInvalidValue},
		{"stagger origin", "transitions: {a: {stagger: 10ms, staggerFrom: middle}}", errors.ErrInvalidValue},
		{"origin only", "transitions: {a: {staggerFrom: last}}", errors.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = cfg.Resolve()
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.want), "got %v", err)

			var me *errors.MotionError
			require.True(t, stderrors.As(err, &me))
			assert.Equal(t, errors.KindConfig, me.Kind)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("defaults: {duraton: 1s}"))
	assert.Error(t, err)

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Names())
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/app\n\ngo 1.24\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, path, err := FindProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
	assert.Equal(t, "example.com/app", path)
}
