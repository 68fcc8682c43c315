package replay

import (
	"github.com/younwookim/spaceboy/internal/application/state"
	"github.com/younwookim/spaceboy/internal/application/world"
)

// Result summarizes a headless run
type Result struct {
	Frames int
	Steps  uint64
	State  state.GameState
	Level  int
	Score  int
}

// Run feeds every recorded frame to w. It stops early when the world
// asks to quit or returns an error.
func Run(w *world.World, r *Replayer) (Result, error) {
	var res Result
	for {
		in, dt, ok := r.GetInput()
		if !ok {
			break
		}
		res.Frames++
		_, err := w.Frame(dt, in)
		w.DrainEvents()
		if err != nil {
			return res, err
		}
		if w.Quit() {
			break
		}
	}

	res.Steps = w.Steps()
	res.State = w.State()
	res.Level = w.LevelIndex()
	res.Score = w.Score()
	return res, nil
}
