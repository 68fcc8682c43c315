package audio

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/spaceboy/internal/infrastructure/config"
)

// ErrUnknownTrack is returned for a music name with no melody
var ErrUnknownTrack = errors.New("unknown track")

const cueGain = 0.5

// Mixer plays cues and one looping music track. Cue PCM is rendered once
// up front; tracks are rendered on first use and kept.
type Mixer struct {
	ctx   *audio.Context
	cfg   config.AudioConfig
	synth synth

	cues   map[Cue][]byte
	tracks map[string][]byte

	music    *audio.Player
	musicKey string
}

// NewMixer creates a mixer on ctx. ebiten allows one audio context per
// process, so the caller owns it.
func NewMixer(ctx *audio.Context, cfg config.AudioConfig) *Mixer {
	m := &Mixer{
		ctx:    ctx,
		cfg:    cfg,
		synth:  synth{rate: ctx.SampleRate()},
		cues:   make(map[Cue][]byte),
		tracks: make(map[string][]byte),
	}
	for _, c := range []Cue{CueJump, CueCollect, CueSelect, CueWin, CueLose} {
		m.cues[c] = pcm(m.synth.cue(c), cueGain)
	}
	return m
}

// PlayCue starts a one-shot sound effect
func (m *Mixer) PlayCue(c Cue) {
	if m.cfg.Muted || m.cfg.SFXVolume <= 0 {
		return
	}
	data, ok := m.cues[c]
	if !ok {
		return
	}
	p := m.ctx.NewPlayerFromBytes(data)
	p.SetVolume(m.cfg.SFXVolume)
	p.Play()
}

// PlayTrack switches the looping music to name. Asking for the track
// already playing is a no-op.
func (m *Mixer) PlayTrack(name string) error {
	if m.musicKey == name && m.music != nil {
		if !m.music.IsPlaying() {
			m.music.Play()
		}
		return nil
	}

	data, err := m.track(name)
	if err != nil {
		return err
	}

	m.StopTrack()
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	p, err := m.ctx.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("track %s: %w", name, err)
	}

	vol := m.cfg.MusicVolume
	if m.cfg.Muted {
		vol = 0
	}
	p.SetVolume(vol)
	p.Play()

	m.music = p
	m.musicKey = name
	return nil
}

// PauseTrack pauses the music
func (m *Mixer) PauseTrack() {
	if m.music != nil {
		m.music.Pause()
	}
}

// ResumeTrack resumes paused music
func (m *Mixer) ResumeTrack() {
	if m.music != nil {
		m.music.Play()
	}
}

// StopTrack stops and releases the music player
func (m *Mixer) StopTrack() {
	if m.music != nil {
		_ = m.music.Close()
		m.music = nil
		m.musicKey = ""
	}
}

// Track returns the name of the current music, or "" when none is loaded
func (m *Mixer) Track() string {
	return m.musicKey
}

func (m *Mixer) track(name string) ([]byte, error) {
	if data, ok := m.tracks[name]; ok {
		return data, nil
	}
	data, err := renderTrack(m.synth, name)
	if err != nil {
		return nil, err
	}
	m.tracks[name] = data
	return data, nil
}

func renderTrack(s synth, name string) ([]byte, error) {
	t, ok := tracks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	return pcm(s.melody(t.wave, t.notes, t.noteSec), 1), nil
}
