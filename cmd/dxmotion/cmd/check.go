package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/config"
	motiontest "github.com/go-drift/dxmotion/pkg/testing"
	"github.com/go-drift/dxmotion/pkg/widgets"
)

// previewTimeout bounds the component preview run by check.
const previewTimeout = 10 * time.Second

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate motion.yaml presets",
		Long: `Validate the motion.yaml presets file.

Without a directory the project root is found by walking up to go.mod.
Every named transition is resolved against the defaults and printed.
A component built from the presets then fades a fake element in on a
fake clock to show how long an entrance takes.`,
		Usage: "dxmotion check [dir]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root, modulePath, err := config.FindProjectRoot(wd)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Module: %s\n", modulePath)
		dir = root
	}

	r, err := config.Load(dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Presets: %s (%s)\n", r.Path, r.Version)
	fmt.Fprintf(stdout, "Reduced motion: %s\n", r.ReducedMotion)
	fmt.Fprintf(stdout, "  %-12s %s\n", "defaults", describe(r.Defaults))
	for _, name := range r.Names() {
		t, _ := r.Transition(name)
		fmt.Fprintf(stdout, "  %-12s %s\n", name, describe(t))
	}
	return preview(r)
}

// preview mounts a div configured by the presets and settles its entrance.
func preview(r *config.Resolved) error {
	tester := motiontest.NewTester()
	comp, err := widgets.NewFactory(r.WidgetConfig()).New(motiontest.NewFakeElement("div"), widgets.Props{
		Initial: widgets.Values{"opacity": 0},
		Animate: widgets.Values{"opacity": 1},
	}, widgets.Env{Scheduler: tester.Scheduler(), Store: tester.Store()})
	if err != nil {
		return err
	}
	start := tester.Now()
	comp.Mount()
	defer comp.Unmount()
	if err := tester.PumpAndSettle(previewTimeout); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	fmt.Fprintf(stdout, "Preview: settled after %s\n", tester.Now().Sub(start))
	return nil
}

func describe(t animation.Transition) string {
	r, err := t.Resolve()
	if err != nil {
		return "invalid: " + err.Error()
	}
	switch r.Type {
	case animation.TypeSpring:
		return fmt.Sprintf("spring stiffness=%g damping=%g mass=%g", r.Stiffness, r.Damping, r.Mass)
	case animation.TypeInertia:
		return fmt.Sprintf("inertia power=%g timeConstant=%s", r.Power, r.TimeConstant)
	case animation.TypePhysics:
		return fmt.Sprintf("physics acceleration=%g friction=%g", r.Acceleration, r.Friction)
	}
	// Same precedence as Transition.Resolve.
	var ease string
	switch {
	case t.Ease != nil:
		ease = "custom"
	case t.EaseName != "":
		ease = t.EaseName
	case t.Bezier != nil:
		ease = fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", t.Bezier.X1, t.Bezier.Y1, t.Bezier.X2, t.Bezier.Y2)
	default:
		ease = "easeInOut"
	}
	s := fmt.Sprintf("tween %s %s", r.Duration, ease)
	if t.DelayFunc != nil {
		s += fmt.Sprintf(" stagger=%s", t.DelayFor(1, 2)-t.DelayFor(0, 2))
	}
	if r.Delay > 0 {
		s += fmt.Sprintf(" delay=%s", r.Delay)
	}
	return s
}
