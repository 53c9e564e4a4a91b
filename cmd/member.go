package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kylep/otf/models"
)

// memberCmd shows account information
var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Show your account details",
	RunE:  runMember,
}

var (
	showPurchases bool
	showStats     bool
)

func init() {
	memberCmd.Flags().BoolVar(&showPurchases, "purchases", false, "show purchase history")
	memberCmd.Flags().BoolVar(&showStats, "stats", false, "show attendance counters")
}

func runMember(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if showPurchases {
		purchases, err := client.GetMemberPurchases(ctx)
		if err != nil {
			return err
		}
		if purchases.Len() == 0 {
			fmt.Println("No purchases found.")
			return nil
		}
		fmt.Print(renderTable(purchases.ToTable(models.PurchaseColumns())))
		return nil
	}

	if showStats {
		totals, err := client.GetTotalClasses(ctx)
		if err != nil {
			return err
		}
		fmt.Print(renderDetail(totals.Display()))
		return nil
	}

	member := client.Member()
	fmt.Print(renderDetail(member.Display()))
	fmt.Printf("\nHome studio: %s (%s)\n", client.HomeStudio().Name(), client.HomeStudio().TimeZone())
	return nil
}
