package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/younwookim/spaceboy/internal/domain/entity"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	data, err := loadGame(loader, 1, logger)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tFILE\tSIZE\tCOINS\tENEMIES\tTRACK")
	for i, ref := range data.config.Levels.Levels {
		lv := data.levels[i]
		counts := map[entity.Kind]int{}
		for _, obj := range lv.Objects {
			if kind, err := entity.ParseKind(obj.Type); err == nil {
				counts[kind]++
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%dx%d\t%d\t%d\t%s\n",
			i+1, ref.Title, ref.File, lv.Width, lv.Height,
			counts[entity.KindCollectible], counts[entity.KindEnemy], ref.Track)
	}
	return tw.Flush()
}
