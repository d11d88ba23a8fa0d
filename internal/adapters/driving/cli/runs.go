package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect extraction run history",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent extraction runs",
	RunE:  runRunsList,
}

func init() {
	runsListCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to show")
	runsCmd.AddCommand(runsListCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("getting limit flag: %w", err)
	}

	if err := initStores(); err != nil {
		return err
	}
	defer closeStores()

	runs, err := store.RunStore().List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println(styleMuted.Render("No extraction runs recorded yet."))
		return nil
	}

	cmd.Println(styleHeader.Render(fmt.Sprintf("%-20s %-10s %-8s %-10s %s",
		"STARTED", "SERVICE", "ITEMS", "DURATION", "RESULT")))

	for _, run := range runs {
		result := styleSuccess.Render("ok")
		if !run.Succeeded() {
			result = styleError.Render(run.Error)
		}
		cmd.Println(fmt.Sprintf("%-20s %-10s %-8d %-10s %s",
			run.StartedAt.Local().Format(time.DateTime),
			run.Service,
			run.ItemCount,
			run.Duration.Round(time.Millisecond),
			result))
	}
	return nil
}
