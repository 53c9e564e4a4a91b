package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kylep/otf/models"
)

// classesCmd lists upcoming classes
var classesCmd = &cobra.Command{
	Use:   "classes [studio-uuid...]",
	Short: "List upcoming classes",
	Long: `List upcoming classes at the given studios (home studio when none are
given), optionally narrowed by a filter expression:

  otf classes --filter 'contains(name, "tread") and is_available'`,
	RunE: runClasses,
}

func init() {
	classesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	classesCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	classesCmd.Flags().StringVar(&columns, "columns", "", "comma-separated column paths")
}

func runClasses(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := getFilter()
	if err != nil {
		return err
	}

	classes, err := client.GetClasses(ctx, args...)
	if err != nil {
		return err
	}

	classes, err = applyFilter(classes, f)
	if err != nil {
		return err
	}

	if classes.Len() == 0 {
		fmt.Println("No classes found.")
		return nil
	}

	fmt.Print(renderTable(classes.ToTable(columnsOrDefault(models.ClassColumns()))))
	return nil
}
