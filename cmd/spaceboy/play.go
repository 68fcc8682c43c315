package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/spaceboy/internal/application/clock"
	"github.com/younwookim/spaceboy/internal/application/game"
	"github.com/younwookim/spaceboy/internal/application/scene/playing"
	"github.com/younwookim/spaceboy/internal/application/world"
	"github.com/younwookim/spaceboy/internal/infrastructure/audio"
	"github.com/younwookim/spaceboy/internal/infrastructure/storage"
)

var (
	flagLevel  int
	flagRecord string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window.

Controls:
  A/D or Left/Right  - Move
  W or Up            - Jump
  Space              - Start / confirm
  I                  - Instructions (from the menu)
  Esc                - Pause, back, quit

Examples:
  spaceboy play
  spaceboy play --level 3
  spaceboy play --record run.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	data, err := loadGame(loader, flagLevel, logger)
	if err != nil {
		return err
	}
	cfg := data.config

	w, err := world.New(cfg, data.levels)
	if err != nil {
		return err
	}

	audioCfg := cfg.Physics.Audio
	if flagMute {
		audioCfg.Muted = true
	}
	opts := playing.Options{
		Audio:       audio.NewMixer(ebaudio.NewContext(audioCfg.SampleRate), audioCfg),
		Logger:      logger,
		RecordPath:  flagRecord,
		LevelOffset: flagLevel - 1,
	}
	if store, err := storage.Open("spaceboy", logger); err != nil {
		logger.Warn("progress will not be saved", "error", err)
	} else {
		p := store.Load()
		logger.Info("progress", "bestLevel", p.BestLevel+1, "bestScore", p.BestScore, "wins", p.Wins)
		opts.Progress = store
	}

	scene, err := playing.New(cfg, w, opts)
	if err != nil {
		return err
	}

	display := cfg.Physics.Display
	g := game.NewWithClock(scene, display.ScreenWidth, display.ScreenHeight, clock.New(nil))
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)

	logger.Info("starting", "levels", len(data.levels))
	return ebiten.RunGame(g)
}
