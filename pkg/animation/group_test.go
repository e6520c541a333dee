package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
	motiontest "github.com/go-drift/dxmotion/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFiresAfterAllMembers(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	fired := 0
	g := animation.NewGroup(func() { fired++ })

	for _, d := range []time.Duration{50 * time.Millisecond, 150 * time.Millisecond} {
		c, err := animation.Animate(tester.Scheduler(), animation.Options{
			From: 0, To: 1, Transition: linear(d),
		})
		require.NoError(t, err)
		g.Track(c)
	}
	g.Seal()
	assert.Equal(t, 2, g.Pending())

	tester.Pump()
	tester.PumpFor(100 * time.Millisecond)
	assert.Equal(t, 1, g.Pending())
	assert.Equal(t, 0, fired)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, 1, fired)
	<-g.Done()
}

func TestGroupEmptyFiresOnSeal(t *testing.T) {
	fired := 0
	g := animation.NewGroup(func() { fired++ })
	assert.Equal(t, 0, fired)
	g.Seal()
	g.Seal()
	assert.Equal(t, 1, fired)
}

func TestGroupAddAndTrackFinished(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	fired := false
	g := animation.NewGroup(func() { fired = true })

	stopped, err := animation.Animate(tester.Scheduler(), animation.Options{From: 0, To: 1})
	require.NoError(t, err)
	stopped.Stop()
	g.Track(stopped)
	g.Track(nil)

	finished := g.Add()
	g.Seal()
	assert.False(t, fired)

	finished()
	finished()
	assert.True(t, fired)
	assert.Equal(t, 0, g.Pending())
}

func TestGroupCancelStopsMembers(t *testing.T) {
	tester := motiontest.NewTesterWithT(t)
	fired := false
	g := animation.NewGroup(func() { fired = true })
	c, err := animation.Animate(tester.Scheduler(), animation.Options{
		From: 0, To: 1, Transition: linear(time.Second),
	})
	require.NoError(t, err)
	g.Track(c)
	g.Seal()

	g.Cancel()
	assert.Equal(t, animation.StatusStopped, c.Status())
	assert.True(t, fired)
}
