package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ermek/bilim/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		learner, err := st.Profiles().Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		history, err := st.Results().LoadResults(ctx, learner.ID)
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}

		rollup := stats.Compute(history, time.Now())
		fmt.Printf("Learner:          %s (grade %d)\n", learner.Name, learner.Grade)
		fmt.Printf("Exercises done:   %d\n", rollup.TotalExercises)
		fmt.Printf("Average score:    %d%%\n", rollup.AverageScore)
		fmt.Printf("Favorite subject: %s\n", rollup.FavoriteSubject)
		fmt.Printf("Streak:           %d day(s)\n", rollup.Streak)
		if !rollup.LastActive.IsZero() {
			fmt.Printf("Last active:      %s\n", rollup.LastActive.Format("2006-01-02"))
		}

		for subject, sub := range rollup.PerSubject {
			if sub.TotalCompleted == 0 {
				continue
			}
			fmt.Printf("\n%s: %d done, avg %d%%, best topic %s\n",
				subject, sub.TotalCompleted, sub.AverageScore, sub.BestTopic)
		}
		return nil
	},
}
