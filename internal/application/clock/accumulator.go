// Package clock turns wall-clock frame time into fixed simulation steps.
package clock

import "math"

// DefaultStep is the fixed simulation step in seconds
const DefaultStep = 0.0166666

// DefaultMaxSteps caps how many steps a single frame may run
const DefaultMaxSteps = 10

// Accumulator banks elapsed time and pays it out in fixed steps.
// Time below one step is carried to the next frame. When a frame owes
// more than maxSteps steps the surplus whole steps are dropped, so a long
// stall cannot trigger a burst of catch-up work.
type Accumulator struct {
	step     float64
	maxSteps int

	remainder float64
	dropped   float64
	steps     uint64
}

// NewAccumulator creates an accumulator. maxSteps <= 0 disables the cap.
func NewAccumulator(step float64, maxSteps int) *Accumulator {
	if step <= 0 {
		step = DefaultStep
	}
	return &Accumulator{step: step, maxSteps: maxSteps}
}

// Advance adds elapsed seconds and calls update once per whole step owed.
// Negative or infinite elapsed counts as zero. Returns the number of steps run.
func (a *Accumulator) Advance(elapsed float64, update func(dt float64)) int {
	if elapsed > 0 && !math.IsInf(elapsed, 1) {
		a.remainder += elapsed
	}

	if a.maxSteps > 0 {
		if limit := float64(a.maxSteps+1) * a.step; a.remainder >= limit {
			a.dropWholeSteps()
			a.remainder += float64(a.maxSteps) * a.step
			a.dropped -= float64(a.maxSteps) * a.step
		}
	} else if a.remainder-a.step == a.remainder {
		// step is below the precision of remainder
		a.dropWholeSteps()
	}

	n := 0
	for a.remainder >= a.step {
		if a.maxSteps > 0 && n >= a.maxSteps {
			a.dropWholeSteps()
			break
		}
		update(a.step)
		a.remainder -= a.step
		n++
	}
	if a.remainder < 0 {
		a.dropped += a.remainder
		a.remainder = 0
	}

	a.steps += uint64(n)
	return n
}

// dropWholeSteps discards every whole step owed, keeping only the fraction
func (a *Accumulator) dropWholeSteps() {
	frac := math.Mod(a.remainder, a.step)
	a.dropped += a.remainder - frac
	a.remainder = frac
}

// Step returns the fixed step length
func (a *Accumulator) Step() float64 {
	return a.step
}

// Remainder returns the banked time not yet simulated
func (a *Accumulator) Remainder() float64 {
	return a.remainder
}

// Dropped returns the total time discarded by the step cap
func (a *Accumulator) Dropped() float64 {
	return a.dropped
}

// Steps returns the total number of steps run
func (a *Accumulator) Steps() uint64 {
	return a.steps
}

// Alpha returns how far the banked time is into the next step, in [0,1)
func (a *Accumulator) Alpha() float64 {
	return a.remainder / a.step
}

// Reset clears banked and dropped time
func (a *Accumulator) Reset() {
	a.remainder = 0
	a.dropped = 0
	a.steps = 0
}
