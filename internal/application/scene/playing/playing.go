// Package playing provides the gameplay scene: it feeds keyboard input to
// the world, turns world events into sound, music and saved progress, and
// draws whatever mode the world is in.
package playing

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/spaceboy/internal/application/replay"
	"github.com/younwookim/spaceboy/internal/application/scene"
	"github.com/younwookim/spaceboy/internal/application/system"
	"github.com/younwookim/spaceboy/internal/application/world"
	"github.com/younwookim/spaceboy/internal/infrastructure/audio"
	"github.com/younwookim/spaceboy/internal/infrastructure/config"
)

const menuTrack = "menu"

// Audio plays cues and music
type Audio interface {
	PlayCue(c audio.Cue)
	PlayTrack(name string) error
	PauseTrack()
	ResumeTrack()
}

// ProgressStore records progress between runs
type ProgressStore interface {
	RecordLevel(index int)
	RecordRun(score int, won bool)
}

// InputSource reads the player's keys once per frame
type InputSource interface {
	GetInput() system.InputState
}

// Options are the scene's optional collaborators. Nil fields fall back
// to silent or no-op versions; Input falls back to the keyboard.
type Options struct {
	Audio      Audio
	Progress   ProgressStore
	Input      InputSource
	Logger     *log.Logger
	RecordPath string
	// LevelOffset is the position of the world's first level in the full
	// level list, stored in recordings
	LevelOffset int
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	world  *world.World

	audio    Audio
	progress ProgressStore
	input    InputSource
	logger   *log.Logger

	camera *system.Camera
	banner *gween.Tween
	// bannerValue runs 0..1 while the level title is shown
	bannerValue float32

	screenW int
	screenH int
	ppu     float64
	fonts   *fonts

	recorder    *replay.Recorder
	recordPath  string
	levelOffset int
}

// New creates a new Playing scene over w
func New(cfg *config.GameConfig, w *world.World, opts Options) (*Playing, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	display := cfg.Physics.Display
	ppu := float64(display.TilePixels)

	p := &Playing{
		config:      cfg,
		world:       w,
		audio:       opts.Audio,
		progress:    opts.Progress,
		input:       opts.Input,
		logger:      opts.Logger,
		camera:      system.NewCamera(float64(display.ScreenWidth)/2/ppu, cfg.Physics.Camera.OffsetY),
		screenW:     display.ScreenWidth,
		screenH:     display.ScreenHeight,
		ppu:         ppu,
		fonts:       f,
		recordPath:  opts.RecordPath,
		levelOffset: opts.LevelOffset,
	}
	if p.audio == nil {
		p.audio = silent{}
	}
	if p.progress == nil {
		p.progress = noProgress{}
	}
	if p.input == nil {
		p.input = system.NewInputSystem()
	}
	if p.logger == nil {
		p.logger = log.Default()
	}

	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(p.levelIndex())
		p.logger.Info("recording enabled", "path", p.recordPath)
	}

	return p, nil
}

// Update reads input and runs one frame of the world (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(in, dt)
	}

	if _, err := p.world.Frame(dt, in); err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	for _, e := range p.world.DrainEvents() {
		p.handleEvent(e)
	}

	if p.banner != nil {
		v, done := p.banner.Update(float32(dt))
		p.bannerValue = v
		if done {
			p.banner = nil
		}
	}

	if player, ok := p.world.Player(); ok {
		p.camera.Follow(player.Transform, p.world.Grid().WorldWidth())
	}

	if p.world.Quit() {
		p.saveRecording()
		return nil, ebiten.Termination
	}
	return nil, nil
}

func (p *Playing) handleEvent(e world.Event) {
	p.logger.Debug("event", "event", e, "level", p.world.LevelIndex(), "state", p.world.State())

	switch e {
	case world.EventJump:
		p.audio.PlayCue(audio.CueJump)
	case world.EventCollect:
		p.audio.PlayCue(audio.CueCollect)
	case world.EventSelect:
		p.audio.PlayCue(audio.CueSelect)
	case world.EventLevelStart:
		idx := p.levelIndex()
		p.playTrack(p.levelTrack(idx))
		p.banner = gween.New(0, 1, float32(p.config.Physics.Banner.Seconds), ease.OutQuad)
		p.bannerValue = 0
		p.progress.RecordLevel(idx)
	case world.EventWin:
		p.audio.PlayCue(audio.CueWin)
		p.playTrack(menuTrack)
		p.progress.RecordRun(p.world.Score(), true)
		p.saveRecording()
	case world.EventLose:
		p.audio.PlayCue(audio.CueLose)
		p.progress.RecordRun(p.world.Score(), false)
		p.saveRecording()
	case world.EventMenu:
		p.banner = nil
		p.playTrack(menuTrack)
	case world.EventPause:
		p.audio.PauseTrack()
	case world.EventResume:
		p.audio.ResumeTrack()
	}
}

func (p *Playing) playTrack(name string) {
	if err := p.audio.PlayTrack(name); err != nil {
		p.logger.Warn("could not play music", "track", name, "error", err)
	}
}

// levelTrack returns the music for level idx, defaulting to "level<n>"
func (p *Playing) levelTrack(idx int) string {
	levels := p.config.Levels.Levels
	if idx < len(levels) && levels[idx].Track != "" {
		return levels[idx].Track
	}
	return fmt.Sprintf("level%d", idx+1)
}

// levelIndex is the current level's position in the full level list
func (p *Playing) levelIndex() int {
	return p.levelOffset + p.world.LevelIndex()
}

// levelTitle returns the display name of level idx
func (p *Playing) levelTitle(idx int) string {
	levels := p.config.Levels.Levels
	if idx < len(levels) && levels[idx].Title != "" {
		return levels[idx].Title
	}
	return p.world.LevelName()
}

// saveRecording writes the recording once; later calls are no-ops
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "error", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// OnEnter starts the menu music
func (p *Playing) OnEnter() {
	p.playTrack(menuTrack)
}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// IsTermination reports whether err is the scene's normal quit signal
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}

type silent struct{}

func (silent) PlayCue(audio.Cue)      {}
func (silent) PlayTrack(string) error { return nil }
func (silent) PauseTrack()            {}
func (silent) ResumeTrack()           {}

type noProgress struct{}

func (noProgress) RecordLevel(int)     {}
func (noProgress) RecordRun(int, bool) {}
