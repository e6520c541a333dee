package animation_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
	"github.com/go-drift/dxmotion/pkg/errors"
	motiontest "github.com/go-drift/dxmotion/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linear(d time.Duration) animation.Transition {
	return animation.Transition{Duration: d, Ease: animation.LinearCurve}
}

func TestAnimateTweenCompletesOnce(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var updates []float64
	completions := 0

	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From:       0.0,
		To:         100.0,
		Transition: animation.Transition{Duration: 100 * time.Millisecond},
		OnUpdate:   func(v any) { updates = append(updates, v.(float64)) },
		OnComplete: func() { completions++ },
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(time.Second))

	require.NotEmpty(t, updates)
	assert.Equal(t, 0.0, updates[0])
	assert.Equal(t, 100.0, updates[len(updates)-1])
	assert.Equal(t, 1, completions)
	assert.Equal(t, animation.StatusCompleted, c.Status())

	tester.PumpFrames(5, motiontest.FrameDuration)
	assert.Equal(t, 1, completions)
	select {
	case <-c.Done():
	default:
		t.Error("Done not closed")
	}
}

func TestAnimateTransitionOnComplete(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var order []string
	tr := linear(50 * time.Millisecond)
	tr.OnComplete = func() { order = append(order, "transition") }

	_, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 1, Transition: tr,
		OnComplete: func() { order = append(order, "options") },
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, []string{"options", "transition"}, order)
}

func TestAnimateStopDeliversNoMoreUpdates(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	updates := 0
	completed := false
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 100, Transition: linear(time.Second),
		OnUpdate:   func(any) { updates++ },
		OnComplete: func() { completed = true },
	})
	require.NoError(t, err)
	tester.Pump()
	c.Stop()
	before := updates
	tester.PumpFrames(10, motiontest.FrameDuration)

	assert.Equal(t, before, updates)
	assert.False(t, completed)
	assert.Equal(t, animation.StatusStopped, c.Status())
	assert.False(t, tester.Scheduler().HasPending())
}

func TestAnimatePauseAndPlay(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last float64
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 100, Transition: linear(time.Second),
		OnUpdate: func(v any) { last = v.(float64) },
	})
	require.NoError(t, err)
	tester.Pump()
	tester.PumpFor(200 * time.Millisecond)
	assert.InDelta(t, 20, last, 1e-9)

	c.Pause()
	assert.False(t, c.IsPlaying())
	tester.PumpFor(500 * time.Millisecond)
	assert.InDelta(t, 20, last, 1e-9)

	c.Play()
	tester.Pump()
	tester.PumpFor(100 * time.Millisecond)
	assert.InDelta(t, 30, last, 1e-9)
}

func TestAnimateReverse(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last float64
	completed := false
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 100, Transition: linear(time.Second),
		OnUpdate:   func(v any) { last = v.(float64) },
		OnComplete: func() { completed = true },
	})
	require.NoError(t, err)
	tester.Pump()
	tester.PumpFor(500 * time.Millisecond)

	c.Reverse()
	assert.True(t, c.IsReversed())
	tester.PumpFor(200 * time.Millisecond)
	assert.InDelta(t, 30, last, 1e-9)

	tester.PumpFor(400 * time.Millisecond)
	assert.Equal(t, 0.0, last)
	assert.True(t, completed)
}

func TestAnimateSeekAndTimeScale(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last float64
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 100, Transition: linear(time.Second),
		OnUpdate: func(v any) { last = v.(float64) },
	})
	require.NoError(t, err)
	tester.Pump()

	c.Seek(750 * time.Millisecond)
	tester.Pump()
	assert.InDelta(t, 75, last, 1e-9)

	c.Seek(-time.Second)
	c.SetTimeScale(2)
	c.SetTimeScale(-1)
	c.SetTimeScale(math.NaN())
	tester.PumpFor(100 * time.Millisecond)
	assert.InDelta(t, 20, last, 1e-9)
}

func TestAnimateDelay(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	updates := 0
	tr := linear(100 * time.Millisecond)
	tr.Delay = 200 * time.Millisecond
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 1, Transition: tr,
		OnUpdate: func(any) { updates++ },
	})
	require.NoError(t, err)

	tester.Pump()
	tester.PumpFor(100 * time.Millisecond)
	assert.Equal(t, 0, updates)
	assert.Equal(t, animation.StatusIdle, c.Status())

	tester.PumpFor(100 * time.Millisecond)
	tester.Pump()
	assert.Equal(t, 1, updates)
	assert.True(t, c.IsPlaying())
}

func TestAnimateStopDuringDelay(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	updates := 0
	tr := linear(100 * time.Millisecond)
	tr.Delay = 100 * time.Millisecond
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 1, Transition: tr,
		OnUpdate: func(any) { updates++ },
	})
	require.NoError(t, err)
	c.Stop()
	tester.PumpFrames(20, motiontest.FrameDuration)
	assert.Equal(t, 0, updates)
	assert.False(t, tester.Scheduler().HasPending())
}

func TestAnimateStatusListener(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var seen []animation.Status
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 1, Transition: linear(50 * time.Millisecond),
	})
	require.NoError(t, err)
	c.AddStatusListener(func(s animation.Status) { seen = append(seen, s) })
	c.Pause()
	c.Play()
	require.NoError(t, tester.PumpAndSettle(time.Second))

	assert.Equal(t, []animation.Status{
		animation.StatusPaused,
		animation.StatusPlaying,
		animation.StatusCompleted,
	}, seen)
	assert.Equal(t, "completed", animation.StatusCompleted.String())
}

func TestAnimateSpringSettlesOnTarget(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last any
	overshoot := false
	_, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0.0, To: 100.0,
		Transition: animation.Transition{Type: animation.TypeSpring, Stiffness: 100, Damping: 10, Mass: 1},
		OnUpdate: func(v any) {
			last = v
			if v.(float64) > 100 {
				overshoot = true
			}
		},
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(10*time.Second))
	assert.Equal(t, 100.0, last)
	assert.True(t, overshoot, "an underdamped spring should overshoot")
}

func TestAnimateSpringColors(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last any
	_, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: "#000000", To: "#ffffff",
		Transition: animation.Transition{Type: animation.TypeSpring, Damping: 30},
		OnUpdate:   func(v any) { last = v },
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(10*time.Second))
	assert.Equal(t, "rgba(255, 255, 255, 1)", last)
}

func TestAnimateInertiaModifyTarget(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last float64
	_, err := animation.Animate(tester.Scheduler(), animation.Options{
		From:     0.0,
		Velocity: 1000,
		Transition: animation.Transition{
			Type:         animation.TypeInertia,
			ModifyTarget: func(v float64) float64 { return math.Round(v/500) * 500 },
		},
		OnUpdate: func(v any) { last = v.(float64) },
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(10*time.Second))
	assert.Equal(t, 1000.0, last)
}

func TestAnimateInertiaDefaultTarget(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last float64
	_, err := animation.Animate(tester.Scheduler(), animation.Options{
		From:       10.0,
		Velocity:   -100,
		Transition: animation.Transition{Type: animation.TypeInertia},
		OnUpdate:   func(v any) { last = v.(float64) },
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(10*time.Second))
	assert.InDelta(t, 10-animation.DefaultPower*100, last, 1e-9)
}

func TestAnimatePhysicsComesToRest(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var last float64
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From:       0.0,
		Velocity:   100,
		Transition: animation.Transition{Type: animation.TypePhysics, Friction: 0.1},
		OnUpdate:   func(v any) { last = v.(float64) },
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(10*time.Second))
	assert.Greater(t, last, 0.0)
	assert.Equal(t, animation.StatusCompleted, c.Status())
}

func TestAnimateErrors(t *testing.T) {
	tests := []struct {
		name   string
		sched  bool
		opts   animation.Options
		target error
	}{
		{
			name:   "nil scheduler",
			opts:   animation.Options{From: 0, To: 1},
			target: errors.ErrNoTarget,
		},
		{
			name:   "unknown easing",
			sched:  true,
			opts:   animation.Options{From: 0, To: 1, Transition: animation.Transition{EaseName: "wobble"}},
			target: errors.ErrUnknownEasing,
		},
		{
			name:   "infinite target",
			sched:  true,
			opts:   animation.Options{From: 0.0, To: math.Inf(1)},
			target: errors.ErrInvalidValue,
		},
		{
			name:   "NaN start string",
			sched:  true,
			opts:   animation.Options{From: "NaN", To: 1.0, Transition: animation.Transition{Type: animation.TypeSpring}},
			target: errors.ErrInvalidValue,
		},
		{
			name:   "inertia from string",
			sched:  true,
			opts:   animation.Options{From: "auto", Transition: animation.Transition{Type: animation.TypeInertia}},
			target: errors.ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := motiontest.NewTesterWithT(t)
			var s *animation.Scheduler
			if tt.sched {
				s = tester.Scheduler()
			}
			c, err := animation.Animate(s, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			require.NotNil(t, c)
			assert.Equal(t, animation.StatusStopped, c.Status())
			c.Play()
			c.Stop()
		})
	}
}

func TestAnimatePanicInUpdateStops(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 1, Transition: linear(time.Second),
		OnUpdate: func(any) { panic("boom") },
	})
	require.NoError(t, err)
	tester.Pump()

	assert.Equal(t, animation.StatusStopped, c.Status())
	assert.Len(t, tester.Errors().Panics(), 1)
	assert.False(t, tester.Scheduler().HasPending())
}

func TestAnimateIncompatibleValuesSnap(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	var seen []any
	_, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: "auto", To: "#fff", Transition: linear(50 * time.Millisecond),
		OnUpdate: func(v any) { seen = append(seen, v) },
	})
	require.NoError(t, err)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	for _, v := range seen {
		assert.Equal(t, "#fff", v)
	}
}

func FuzzAnimate(f *testing.F) {
	f.Add(0.0, 100.0, "0px", "10px", uint8(0), uint8(0), int16(100), "linear", 0.0)
	f.Add(-1.0, 1.0, "#000", "rgba(255, 0, 0, 0.5)", uint8(1), uint8(1), int16(0), "", 500.0)
	f.Add(math.MaxFloat64, -math.MaxFloat64, "translateX(1px)", "auto", uint8(2), uint8(2), int16(-5), "backOut", 1e300)
	f.Add(math.NaN(), math.Inf(1), "NaN", "Inf", uint8(3), uint8(3), int16(30000), "wobble", math.Inf(-1))
	f.Fuzz(func(t *testing.T, from, to float64, fromStr, toStr string, shape, kind uint8, ms int16, ease string, velocity float64) {
		opts := animation.Options{Velocity: velocity}
		switch shape % 4 {
		case 0:
			opts.From, opts.To = from, to
		case 1:
			opts.From, opts.To = fromStr, toStr
		case 2:
			opts.From, opts.To = from, toStr
		default:
			opts.From, opts.To = fromStr, to
		}
		types := []animation.TransitionType{animation.TypeTween, animation.TypeSpring, animation.TypeInertia, animation.TypePhysics}
		opts.Transition = animation.Transition{
			Type:     types[int(kind)%len(types)],
			Duration: time.Duration(ms) * time.Millisecond,
			EaseName: ease,
		}
		input := fromStr + toStr
		opts.OnUpdate = func(v any) {
			switch v := v.(type) {
			case float64:
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("non-finite update %v", v)
				}
			case string:
				for _, bad := range []string{"Inf", "NaN"} {
					if strings.Contains(v, bad) && !strings.Contains(input, bad) {
						t.Fatalf("update %q contains %s", v, bad)
					}
				}
			}
		}

		tester := motiontest.NewTesterWithT(t)
		c, err := animation.Animate(tester.Scheduler(), opts)
		require.NotNil(t, c)
		if err != nil {
			assert.Equal(t, animation.StatusStopped, c.Status())
			return
		}
		tester.Pump()
		for i := 0; i < 200 && !c.Status().Terminal(); i++ {
			tester.PumpFor(50 * time.Millisecond)
		}
		c.Stop()
		assert.Empty(t, tester.Errors().Panics())
		assert.False(t, tester.Scheduler().HasPending())
	})
}
