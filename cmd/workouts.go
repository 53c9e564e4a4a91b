package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kylep/otf/models"
)

// workoutsCmd lists workout performance summaries
var workoutsCmd = &cobra.Command{
	Use:   "workouts [summary-id]",
	Short: "Show workout performance summaries",
	RunE:  runWorkouts,
}

var workoutLimit int

func init() {
	workoutsCmd.Flags().IntVar(&workoutLimit, "limit", 10, "number of summaries to fetch")
	workoutsCmd.Flags().StringVar(&columns, "columns", "", "comma-separated column paths")
}

func runWorkouts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		summary, err := client.GetPerformanceSummary(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Print(renderDetail(summary.Display()))
		return nil
	}

	summaries, err := client.GetPerformanceSummaries(ctx, workoutLimit)
	if err != nil {
		return err
	}
	if summaries.Len() == 0 {
		fmt.Println("No workouts found.")
		return nil
	}
	fmt.Print(renderTable(summaries.ToTable(columnsOrDefault(models.PerformanceColumns()))))
	return nil
}

// maxHRCmd shows the member's max heart rate
var maxHRCmd = &cobra.Command{
	Use:   "maxhr",
	Short: "Show your max heart rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		maxHR, err := client.GetMaxHR(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Max HR: %d (%s)\n", maxHR.Value(), maxHR.String("max_hr.type"))
		return nil
	},
}
