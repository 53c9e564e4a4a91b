package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kylep/otf/models"
)

// studiosCmd groups studio lookups
var studiosCmd = &cobra.Command{
	Use:   "studios",
	Short: "Look up studios",
}

var (
	searchLat      float64
	searchLon      float64
	searchDistance float64
)

var studiosSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search studios near a coordinate",
	RunE:  runStudiosSearch,
}

var studiosDetailCmd = &cobra.Command{
	Use:   "detail <studio-uuid>...",
	Short: "Show studio details",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStudiosDetail,
}

var studiosFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite studios",
	RunE:  runStudiosFavorites,
}

func init() {
	studiosSearchCmd.Flags().Float64Var(&searchLat, "lat", 0, "latitude")
	studiosSearchCmd.Flags().Float64Var(&searchLon, "lon", 0, "longitude")
	studiosSearchCmd.Flags().Float64Var(&searchDistance, "distance", 50, "search radius in miles")
	_ = studiosSearchCmd.MarkFlagRequired("lat")
	_ = studiosSearchCmd.MarkFlagRequired("lon")

	studiosCmd.AddCommand(studiosSearchCmd)
	studiosCmd.AddCommand(studiosDetailCmd)
	studiosCmd.AddCommand(studiosFavoritesCmd)
}

func runStudiosSearch(cmd *cobra.Command, args []string) error {
	studios, err := client.SearchStudios(cmd.Context(), searchLat, searchLon, searchDistance)
	if err != nil {
		return err
	}
	if studios.Len() == 0 {
		fmt.Println("No studios found.")
		return nil
	}
	fmt.Print(renderTable(studios.ToTable(models.StudioColumns())))
	return nil
}

func runStudiosDetail(cmd *cobra.Command, args []string) error {
	studios, err := client.GetStudioDetails(cmd.Context(), args...)
	if err != nil {
		return err
	}
	for i, rec := range studios.Records {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(renderDetail(rec.Display()))
	}
	return nil
}

func runStudiosFavorites(cmd *cobra.Command, args []string) error {
	studios, err := client.GetFavoriteStudios(cmd.Context())
	if err != nil {
		return err
	}
	if studios.Len() == 0 {
		fmt.Println("No favorite studios.")
		return nil
	}
	fmt.Print(renderTable(studios.ToTable(models.StudioColumns())))
	return nil
}
