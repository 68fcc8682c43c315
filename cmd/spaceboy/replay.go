package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/spaceboy/internal/application/replay"
	"github.com/younwookim/spaceboy/internal/application/world"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session without a window",
	Long: `Feed a recording made with 'play --record' back through the
simulation and print where it ended. The same recording always ends in
the same place.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	game, err := loadGame(loader, data.Level+1, logger)
	if err != nil {
		return err
	}

	res, err := playback(game, data)
	if err != nil {
		return err
	}

	logger.Info("replay finished", "file", args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "frames=%d steps=%d state=%s level=%d score=%d\n",
		res.Frames, res.Steps, res.State, data.Level+res.Level+1, res.Score)
	return nil
}

func playback(game *gameData, data *replay.ReplayData) (replay.Result, error) {
	w, err := world.New(game.config, game.levels)
	if err != nil {
		return replay.Result{}, err
	}
	return replay.Run(w, replay.NewReplayer(*data))
}
