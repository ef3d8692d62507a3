package cmd

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/app"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent play sessions and the best score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withEnv(cmd, func(ctx context.Context, env *app.Env) error {
			repo := env.Store.SessionRepo()
			st, err := repo.Stats(ctx)
			if err != nil {
				return err
			}
			recent, err := repo.Recent(ctx, limit)
			if err != nil {
				return err
			}

			p := env.Printer
			p.Logf("Sessions played: %d", st.Played)
			p.Logf("Completed:       %d", st.Completed)
			p.Logf("Best score:      %s", p.Key(strconv.Itoa(st.BestScore)))
			if len(recent) == 0 {
				return nil
			}

			p.Log("")
			p.Log(p.Style("Recent sessions", theme.Hint))
			for _, s := range recent {
				p.Logf("  %s  %-12s %d/%d  %s",
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					s.Outcome, s.Score, s.Total, s.Duration().Round(time.Second))
			}
			return nil
		})
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent sessions to list")
}
