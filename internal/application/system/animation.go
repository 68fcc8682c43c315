package system

// Animator cycles a frame index at a fixed rate
type Animator struct {
	fps     float64
	frames  int
	elapsed float64
	index   int
}

// NewAnimator creates an animator over frames frames
func NewAnimator(fps float64, frames int) *Animator {
	if frames < 1 {
		frames = 1
	}
	return &Animator{fps: fps, frames: frames}
}

// Advance adds dt and moves to the next frame once a frame's time has
// passed. At most one frame is advanced per call.
func (a *Animator) Advance(dt float64) {
	if a.fps <= 0 {
		return
	}
	a.elapsed += dt
	if a.elapsed > 1.0/a.fps {
		a.elapsed = 0
		a.index = (a.index + 1) % a.frames
	}
}

// Frame returns the current frame index
func (a *Animator) Frame() int {
	return a.index
}

// Reset rewinds to the first frame
func (a *Animator) Reset() {
	a.elapsed = 0
	a.index = 0
}
