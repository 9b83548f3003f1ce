package cmd

import (
	"fmt"

	"github.com/prajwalk/mathsprint/internal/analytics"
	"github.com/prajwalk/mathsprint/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print practice statistics",
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

		total, err := eventRepo.TotalAttempts(ctx)
		if err != nil {
			return fmt.Errorf("total attempts: %w", err)
		}
		if total == 0 {
			fmt.Println("No attempts yet. Run `mathsprint play` to start practicing.")
			return nil
		}
		fmt.Printf("Attempts on record: %d\n\n", total)

		coach := analytics.NewCoach(eventRepo, nil)
		cells, err := coach.Grid(ctx)
		if err != nil {
			return fmt.Errorf("skill grid: %w", err)
		}

		fmt.Printf("%-15s %-7s %9s %9s %8s  %s\n",
			"OPERATION", "DIGITS", "ATTEMPTS", "ACCURACY", "AVGTIME", "LEVEL")
		for _, cell := range cells {
			if cell.Count == 0 {
				continue
			}
			fmt.Printf("%-15s %-7d %9d %8.1f%% %7.1fs  %s\n",
				cell.Operation, cell.Digits, cell.Count, cell.Accuracy, cell.AvgTime, cell.Level)
		}

		rec, err := coach.Recommend(ctx)
		if err != nil {
			return fmt.Errorf("recommendation: %w", err)
		}
		fmt.Printf("\nCoach: practice %s with %d digits (%s)\n", rec.Operation, rec.Digits, rec.Reason)
		return nil
	},
}
