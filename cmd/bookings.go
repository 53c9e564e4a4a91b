package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kylep/otf/models"
)

// bookingsCmd lists upcoming bookings
var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your bookings",
	Long: `List your class bookings in a date window, optionally narrowed to a
status or a filter expression, e.g.:

  otf bookings --days 14 --status Booked
  otf bookings --filter 'is_home_studio and status != "Cancelled"'`,
	RunE: runBookings,
}

var (
	bookingDays   int
	bookingStatus string
)

func init() {
	bookingsCmd.Flags().IntVar(&bookingDays, "days", 30, "how many days ahead to list")
	bookingsCmd.Flags().StringVar(&bookingStatus, "status", "", "only show bookings with this status")
	bookingsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	bookingsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	bookingsCmd.Flags().StringVar(&columns, "columns", "", "comma-separated column paths")
}

func runBookings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var status models.BookingStatus
	if bookingStatus != "" {
		var err error
		status, err = models.ParseBookingStatus(bookingStatus)
		if err != nil {
			return err
		}
	}

	f, err := getFilter()
	if err != nil {
		return err
	}

	start := time.Now()
	end := start.AddDate(0, 0, bookingDays)
	bookings, err := client.GetBookings(ctx, start, end, status)
	if err != nil {
		return err
	}

	bookings, err = applyFilter(bookings, f)
	if err != nil {
		return err
	}

	if bookings.Len() == 0 {
		fmt.Println("No bookings found.")
		return nil
	}

	fmt.Print(renderTable(bookings.ToTable(columnsOrDefault(models.BookingColumns()))))
	return nil
}
