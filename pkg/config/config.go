// Package config loads motion presets from an optional motion.yaml file.
//
// A presets file looks like:
//
//	version: v1.0.0
//	reducedMotion: user
//	defaults:
//	  duration: 250ms
//	  ease: easeOut
//	transitions:
//	  pop:
//	    type: spring
//	    stiffness: 400
//	    damping: 20
//	  list:
//	    duration: 400ms
//	    stagger: 50ms
//	    staggerFrom: center
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/errors"
	"github.com/go-drift/dxmotion/pkg/widgets"
)

// FileName is the presets file looked up by [LoadOptional].
const FileName = "motion.yaml"

// SupportedMajor is the only presets major version understood.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for presets files from another major
// version.
var ErrUnsupportedVersion = stderrors.New("unsupported presets version")

// Config represents a motion.yaml file.
type Config struct {
	Version       string                `yaml:"version,omitempty"`
	ReducedMotion string                `yaml:"reducedMotion,omitempty"`
	Defaults      Transition            `yaml:"defaults,omitempty"`
	Transitions   map[string]Transition `yaml:"transitions,omitempty"`
}

// Transition is the YAML form of [animation.Transition]. Durations use Go
// duration syntax ("250ms", "1.5s").
type Transition struct {
	Type     string    `yaml:"type,omitempty"`
	Duration string    `yaml:"duration,omitempty"`
	Delay    string    `yaml:"delay,omitempty"`
	Ease     string    `yaml:"ease,omitempty"`
	Bezier   []float64 `yaml:"bezier,omitempty"`

	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	Mass      float64 `yaml:"mass,omitempty"`

	Power        float64 `yaml:"power,omitempty"`
	TimeConstant string  `yaml:"timeConstant,omitempty"`

	Acceleration float64 `yaml:"acceleration,omitempty"`
	Friction     float64 `yaml:"friction,omitempty"`

	// Stagger spreads sibling start times; Delay becomes the start offset.
	Stagger     string `yaml:"stagger,omitempty"`
	StaggerFrom string `yaml:"staggerFrom,omitempty"`
}

// Resolved is a validated presets file.
type Resolved struct {
	Path          string
	Version       string
	ReducedMotion widgets.ReducedMotionPolicy
	Defaults      animation.Transition
	Transitions   map[string]animation.Transition
}

// LoadOptional reads motion.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes a presets file. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Load reads and resolves the presets file in dir.
func Load(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Path = filepath.Join(dir, FileName)
	return r, nil
}

// Resolve validates the file and converts every transition.
func (c *Config) Resolve() (*Resolved, error) {
	const op = "config.Resolve"

	version := strings.TrimSpace(c.Version)
	if version == "" {
		version = SupportedMajor + ".0.0"
	}
	if !semver.IsValid(version) {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("%w: version %q", errors.ErrInvalidValue, c.Version))
	}
	if semver.Major(version) != SupportedMajor {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("%w: %s", ErrUnsupportedVersion, version))
	}

	policy, err := parsePolicy(c.ReducedMotion)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	defaults, err := c.Defaults.Convert()
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, fmt.Errorf("defaults: %w", err))
	}

	out := &Resolved{
		Version:       semver.Canonical(version),
		ReducedMotion: policy,
		Defaults:      defaults,
		Transitions:   make(map[string]animation.Transition, len(c.Transitions)),
	}
	for _, name := range c.Names() {
		t, err := c.Transitions[name].Convert()
		if err != nil {
			return nil, errors.New(op, errors.KindConfig, fmt.Errorf("transition %q: %w", name, err))
		}
		out.Transitions[name] = defaults.Merge(t)
	}
	return out, nil
}

// Names returns the named transitions in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Transitions))
	for name := range c.Transitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parsePolicy(s string) (widgets.ReducedMotionPolicy, error) {
	switch p := widgets.ReducedMotionPolicy(strings.TrimSpace(s)); p {
	case "":
		return widgets.ReducedMotionUser, nil
	case widgets.ReducedMotionUser, widgets.ReducedMotionAlways, widgets.ReducedMotionNever:
		return p, nil
	default:
		return "", fmt.Errorf("%w: reducedMotion %q", errors.ErrInvalidValue, s)
	}
}

// Convert validates t and returns the equivalent animation transition.
func (t Transition) Convert() (animation.Transition, error) {
	var out animation.Transition

	switch typ := animation.TransitionType(t.Type); typ {
	case "":
	case animation.TypeTween, animation.TypeSpring, animation.TypeInertia, animation.TypePhysics:
		out.Type = typ
	default:
		return out, fmt.Errorf("%w: type %q", errors.ErrInvalidValue, t.Type)
	}

	var err error
	if out.Duration, err = duration("duration", t.Duration); err != nil {
		return out, err
	}
	if out.Delay, err = duration("delay", t.Delay); err != nil {
		return out, err
	}
	if out.TimeConstant, err = duration("timeConstant", t.TimeConstant); err != nil {
		return out, err
	}

	if t.Ease != "" {
		if _, err := animation.EasingByName(t.Ease); err != nil {
			return out, err
		}
		out.EaseName = t.Ease
	}
	if len(t.Bezier) > 0 {
		if len(t.Bezier) != 4 {
			return out, fmt.Errorf("%w: bezier needs 4 control values, got %d", errors.ErrInvalidValue, len(t.Bezier))
		}
		out.Bezier = &animation.Bezier{X1: t.Bezier[0], Y1: t.Bezier[1], X2: t.Bezier[2], Y2: t.Bezier[3]}
	}

	for name, v := range map[string]float64{
		"stiffness": t.Stiffness,
		"damping":   t.Damping,
		"mass":      t.Mass,
		"power":     t.Power,
		"friction":  t.Friction,
	} {
		if v < 0 {
			return out, fmt.Errorf("%w: %s must not be negative", errors.ErrInvalidValue, name)
		}
	}
	out.Stiffness, out.Damping, out.Mass = t.Stiffness, t.Damping, t.Mass
	out.Power = t.Power
	out.Acceleration, out.Friction = t.Acceleration, t.Friction

	if t.Stagger != "" {
		each, err := duration("stagger", t.Stagger)
		if err != nil {
			return out, err
		}
		from := animation.StaggerOrigin(t.StaggerFrom)
		switch from {
		case "", animation.StaggerFirst, animation.StaggerLast, animation.StaggerCenter:
		default:
			return out, fmt.Errorf("%w: staggerFrom %q", errors.ErrInvalidValue, t.StaggerFrom)
		}
		out.DelayFunc = staggerEach(each, animation.StaggerOptions{Start: out.Delay, From: from})
	} else if t.StaggerFrom != "" {
		return out, fmt.Errorf("%w: staggerFrom without stagger", errors.ErrInvalidValue)
	}
	return out, nil
}

// staggerEach delays each sibling by each per step of distance from the
// origin.
func staggerEach(each time.Duration, opts animation.StaggerOptions) animation.DelayFunc {
	return func(index, total int) time.Duration {
		spread := each * time.Duration(max(total-1, 0))
		return animation.Stagger(spread, opts)(index, total)
	}
}

func duration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", errors.ErrInvalidValue, field, s)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", errors.ErrInvalidValue, field)
	}
	return d, nil
}

// Transition returns the named preset merged over the defaults. Unknown
// names return the defaults and false.
func (r *Resolved) Transition(name string) (animation.Transition, bool) {
	t, ok := r.Transitions[name]
	if !ok {
		return r.Defaults, false
	}
	return t, true
}

// Names returns the named transitions in sorted order.
func (r *Resolved) Names() []string {
	names := make([]string, 0, len(r.Transitions))
	for name := range r.Transitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WidgetConfig returns a factory configuration using the presets.
func (r *Resolved) WidgetConfig() widgets.Config {
	return widgets.Config{
		Defaults:      widgets.Props{Transition: r.Defaults},
		ReducedMotion: r.ReducedMotion,
	}
}

// FindProjectRoot walks up from dir to the directory holding go.mod and
// returns it with the module path.
func FindProjectRoot(dir string) (root, modulePath string, err error) {
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			path := modfile.ModulePath(data)
			if path == "" {
				return "", "", fmt.Errorf("could not determine module path from %s", filepath.Join(dir, "go.mod"))
			}
			return dir, path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}
