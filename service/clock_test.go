package service_test

import (
	"testing"
	"time"

	"github.com/Gthulhu/scenario-controller/service"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestVirtualClockScalesElapsedTime(t *testing.T) {
	clk := clockwork.NewFakeClock()
	vc := service.NewVirtualClock(clk, 60)
	start := vc.Start()

	clk.Advance(time.Second)
	assert.Equal(t, time.Second, vc.ElapsedReal())
	assert.Equal(t, 60*time.Second, vc.ElapsedSimulated())
	assert.Equal(t, start.Add(time.Minute), vc.CurrentSimulatedTime())
	assert.Equal(t, time.Second, vc.ToReal(time.Minute))
}

func TestVirtualClockIsComplete(t *testing.T) {
	clk := clockwork.NewFakeClock()
	vc := service.NewVirtualClock(clk, 3600)

	clk.Advance(999 * time.Millisecond)
	assert.False(t, vc.IsComplete(time.Hour))

	clk.Advance(time.Millisecond)
	assert.True(t, vc.IsComplete(time.Hour), "complete exactly when simulated elapsed reaches the duration")

	clk.Advance(time.Minute)
	assert.True(t, vc.IsComplete(time.Hour))
}

func TestVirtualClockWithRealClock(t *testing.T) {
	vc := service.NewVirtualClock(clockwork.NewRealClock(), 60)
	time.Sleep(time.Second)
	assert.InDelta(t, 60.0, vc.ElapsedSimulated().Seconds(), 6.0)
}
