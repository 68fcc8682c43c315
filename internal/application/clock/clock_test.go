package clock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClock_Tick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := New(ft.now)

	assert.Equal(t, 0.0, c.Tick(), "first tick has no previous time")

	ft.advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Tick(), eps)

	ft.advance(-time.Second)
	assert.Equal(t, 0.0, c.Tick(), "backwards time is clamped")

	ft.advance(50 * time.Millisecond)
	assert.InDelta(t, 0.05, c.Tick(), eps)

	c.Reset()
	ft.advance(time.Second)
	assert.Equal(t, 0.0, c.Tick())
}

func TestAccumulator_BelowOneStep(t *testing.T) {
	a := NewAccumulator(0.01, 10)
	calls := 0

	n := a.Advance(0.004, func(float64) { calls++ })
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, calls)
	assert.InDelta(t, 0.004, a.Remainder(), eps)

	n = a.Advance(0.007, func(float64) { calls++ })
	assert.Equal(t, 1, n, "banked time carries into the next frame")
	assert.InDelta(t, 0.001, a.Remainder(), eps)
}

func TestAccumulator_Conservation(t *testing.T) {
	frames := []float64{0.016, 0.017, 0.001, 0.033, 0.0, 0.05, 0.2, 0.0166666, 0.009}

	tests := []struct {
		name     string
		maxSteps int
	}{
		{"uncapped", 0},
		{"capped", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := DefaultStep
			a := NewAccumulator(step, tt.maxSteps)
			total := 0.0
			simulated := 0.0

			for _, elapsed := range frames {
				total += elapsed
				a.Advance(elapsed, func(dt float64) {
					assert.Equal(t, step, dt, "every update gets the fixed step")
					simulated += dt
				})
				assert.GreaterOrEqual(t, a.Remainder(), 0.0)
				assert.Less(t, a.Remainder(), step)
			}

			assert.InDelta(t, total, simulated+a.Remainder()+a.Dropped(), 1e-9)
			assert.InDelta(t, float64(a.Steps())*step, simulated, 1e-9)
		})
	}
}

func TestAccumulator_CapDropsWholeSteps(t *testing.T) {
	a := NewAccumulator(0.01, 4)

	n := a.Advance(0.105, func(float64) {})

	assert.Equal(t, 4, n)
	assert.InDelta(t, 0.06, a.Dropped(), eps)
	assert.InDelta(t, 0.005, a.Remainder(), eps)
}

func TestAccumulator_HugeElapsed(t *testing.T) {
	tests := []struct {
		name     string
		maxSteps int
		elapsed  float64
		want     int
	}{
		{"capped 1e18", 10, 1e18, 10},
		{"capped 1e30", 10, 1e30, 10},
		{"uncapped 1e30", 0, 1e30, 0},
		{"infinite", 10, math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccumulator(DefaultStep, tt.maxSteps)

			n := a.Advance(tt.elapsed, func(float64) {})

			assert.Equal(t, tt.want, n)
			assert.GreaterOrEqual(t, a.Remainder(), 0.0)
			assert.Less(t, a.Remainder(), a.Step())
			assert.False(t, math.IsNaN(a.Dropped()))

			// the next frame is back to normal
			n = a.Advance(a.Step(), func(float64) {})
			assert.Equal(t, 1, n)
		})
	}
}

func TestAccumulator_NegativeElapsed(t *testing.T) {
	a := NewAccumulator(0.01, 4)
	a.Advance(0.005, func(float64) {})

	n := a.Advance(-1, func(float64) {})

	assert.Equal(t, 0, n)
	assert.InDelta(t, 0.005, a.Remainder(), eps)
}

func TestAccumulator_AlphaAndReset(t *testing.T) {
	a := NewAccumulator(0.02, 0)
	a.Advance(0.05, func(float64) {})

	assert.InDelta(t, 0.5, a.Alpha(), 1e-6)
	assert.Equal(t, uint64(2), a.Steps())

	a.Reset()
	assert.Equal(t, 0.0, a.Remainder())
	assert.Equal(t, 0.0, a.Dropped())
	assert.Equal(t, uint64(0), a.Steps())
}

func TestNewAccumulator_DefaultsStep(t *testing.T) {
	a := NewAccumulator(0, 1)
	assert.Equal(t, DefaultStep, a.Step())
}
