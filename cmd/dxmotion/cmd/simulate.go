package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/config"
	motiontest "github.com/go-drift/dxmotion/pkg/testing"
)

// maxSimulation bounds simulations that never settle.
const maxSimulation = time.Minute

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Run an animation on a fake clock",
		Long: `Run an animation on a fake clock and print every frame.

Values may be numbers, colors or strings with embedded numbers. A preset
from motion.yaml in the current directory can supply the transition;
flags override individual fields.

Flags:
  --from VALUE         Start value (default 0)
  --to VALUE           Target value (default 1)
  --velocity N         Initial velocity, for spring, inertia and physics
  --preset NAME        Start from a named motion.yaml transition
  --type TYPE          tween, spring, inertia or physics
  --duration D         Tween duration, such as 300ms
  --ease NAME          Easing curve name
  --frame D            Frame interval (default 16ms)`,
		Usage: "dxmotion simulate [flags]",
		Run:   runSimulate,
	})
}

type simulateOptions struct {
	from, to   any
	velocity   float64
	preset     string
	transition animation.Transition
	frame      time.Duration
}

func parseSimulateArgs(args []string) (simulateOptions, error) {
	opts := simulateOptions{from: 0.0, to: 1.0, frame: motiontest.FrameDuration}
	for i := 0; i < len(args); i++ {
		flag := args[i]
		v, err := flagValue(args, i)
		if err != nil {
			return opts, err
		}
		i++
		switch flag {
		case "--from":
			opts.from = parseValue(v)
		case "--to":
			opts.to = parseValue(v)
		case "--velocity":
			if opts.velocity, err = strconv.ParseFloat(v, 64); err != nil {
				return opts, fmt.Errorf("--velocity: %w", err)
			}
		case "--preset":
			opts.preset = v
		case "--type":
			opts.transition.Type = animation.TransitionType(v)
		case "--duration":
			if opts.transition.Duration, err = time.ParseDuration(v); err != nil {
				return opts, fmt.Errorf("--duration: %w", err)
			}
		case "--ease":
			opts.transition.EaseName = v
		case "--frame":
			if opts.frame, err = time.ParseDuration(v); err != nil || opts.frame <= 0 {
				return opts, fmt.Errorf("--frame must be a positive duration, got %q", v)
			}
		default:
			return opts, fmt.Errorf("unknown flag %q", flag)
		}
	}
	return opts, nil
}

func parseValue(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func runSimulate(args []string) error {
	opts, err := parseSimulateArgs(args)
	if err != nil {
		return err
	}

	transition := opts.transition
	if opts.preset != "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		presets, err := config.Load(wd)
		if err != nil {
			return err
		}
		base, ok := presets.Transition(opts.preset)
		if !ok {
			return fmt.Errorf("unknown preset %q", opts.preset)
		}
		transition = base.Merge(transition)
	}

	tester := motiontest.NewTester()
	start := tester.Now()
	ctrl, err := animation.Animate(tester.Scheduler(), animation.Options{
		From:       opts.from,
		To:         opts.to,
		Velocity:   opts.velocity,
		Transition: transition,
		OnUpdate: func(v any) {
			ms := tester.Now().Sub(start).Milliseconds()
			fmt.Fprintf(stdout, "%6dms  %v\n", ms, format(v))
		},
	})
	if err != nil {
		return err
	}

	tester.Pump()
	for !ctrl.Status().Terminal() {
		if tester.Now().Sub(start) > maxSimulation {
			ctrl.Stop()
			return fmt.Errorf("animation did not settle within %s", maxSimulation)
		}
		tester.PumpFor(opts.frame)
	}
	fmt.Fprintf(stdout, "%s after %s\n", ctrl.Status(), tester.Now().Sub(start))
	return nil
}

func format(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 3, 64)
	}
	return fmt.Sprint(v)
}
