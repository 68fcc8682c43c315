package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/younwookim/spaceboy/internal/application/system"
)

// ErrVersion is returned for a recording written by an unknown format version
var ErrVersion = errors.New("unsupported replay version")

// ErrFrameTime is returned for a recorded frame time outside [0, MaxFrameDT]
var ErrFrameTime = errors.New("invalid replay frame time")

// MaxFrameDT bounds the wall time a single recorded frame may carry
const MaxFrameDT = 60.0

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return decode(file)
}

// LoadReplayFS loads replay data from a file in fsys
func LoadReplayFS(fsys fs.FS, filename string) (*ReplayData, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return decode(file)
}

func decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrVersion, data.Version)
	}
	for _, fi := range data.Frames {
		if fi.DT < 0 || fi.DT > MaxFrameDT {
			return nil, fmt.Errorf("%w: frame %d dt %g", ErrFrameTime, fi.F, fi.DT)
		}
	}

	return &data, nil
}

// GetInput returns the input and elapsed time for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:               fi.L,
		Right:              fi.R,
		Jump:               fi.J,
		HorizontalReleased: fi.HR,
		Confirm:            fi.C,
		Pause:              fi.P,
		Instructions:       fi.I,
	}, fi.DT, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level index the recording started on
func (r *Replayer) Level() int {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: one confirm to
// start play followed by idle frames of dt seconds.
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}
	if frames > 0 {
		data.Frames[0].C = true
	}

	return data
}
