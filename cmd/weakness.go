package cmd

import (
	"fmt"

	"github.com/prajwalk/mathsprint/internal/analytics"
	"github.com/prajwalk/mathsprint/internal/engine"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/spf13/cobra"
)

var weaknessCmd = &cobra.Command{
	Use:   "weakness",
	Short: "List the number pairs you struggle with",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		analyzer := analytics.NewAnalyzer(eventRepo)
		weaknesses, err := analyzer.Analyze(ctx, engine.OpMixed, 0)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		if len(weaknesses) == 0 {
			fmt.Println("No weak spots found. Keep it up!")
			return nil
		}

		for i, w := range weaknesses {
			pair := fmt.Sprintf("%d %s %d", w.Entry.Num1, w.Entry.Op.Symbol(), w.Entry.Num2)
			switch w.Reason {
			case "accuracy":
				fmt.Printf("%2d. %-12s %.0f%% over %d tries\n", i+1, pair, w.Accuracy*100, w.Attempts)
			default:
				fmt.Printf("%2d. %-12s slow, %.1fs average\n", i+1, pair, w.AvgTime)
			}
		}
		return nil
	},
}
