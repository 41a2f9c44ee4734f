package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"trip-planner/internal/app"
)

var (
	lat    float64
	lng    float64
	query  string
	radius int
)

func init() {
	reverseCmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	reverseCmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	reverseCmd.MarkFlagRequired("lat")
	reverseCmd.MarkFlagRequired("lng")

	nearbyCmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	nearbyCmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	nearbyCmd.Flags().StringVarP(&query, "query", "q", "", "search keyword")
	nearbyCmd.Flags().IntVarP(&radius, "radius", "r", 0, "radius in meters, 0 for no limit")
	nearbyCmd.MarkFlagRequired("lat")
	nearbyCmd.MarkFlagRequired("lng")
	nearbyCmd.MarkFlagRequired("query")

	Cmd.AddCommand(reverseCmd)
	Cmd.AddCommand(nearbyCmd)
	Cmd.AddCommand(routeCmd)
}

// Cmd represents the geocode command
var Cmd = &cobra.Command{
	Use:   "geocode [address]",
	Short: "Resolve an address to coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitMapsAdapter()
		result, err := adapter.Geocode(context.Background(), args[0])
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("no match")
			return nil
		}
		return printJSON(result)
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Resolve coordinates to an address",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitMapsAdapter()
		result, err := adapter.ReverseGeocode(context.Background(), lat, lng)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("no match")
			return nil
		}
		return printJSON(result)
	},
}

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Search places around a coordinate",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitMapsAdapter()
		places, err := adapter.SearchNearby(context.Background(), lat, lng, query, radius)
		if err != nil {
			return err
		}
		return printJSON(places)
	},
}

var routeArgs struct {
	fromLat, fromLng float64
	toLat, toLng     float64
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Compute driving distance and duration between two points",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitMapsAdapter()
		summary, err := adapter.Distance(context.Background(),
			routeArgs.fromLat, routeArgs.fromLng, routeArgs.toLat, routeArgs.toLng)
		if err != nil {
			return err
		}
		if summary == nil {
			fmt.Println("no route")
			return nil
		}
		return printJSON(summary)
	},
}

func init() {
	routeCmd.Flags().Float64Var(&routeArgs.fromLat, "from-lat", 0, "origin latitude")
	routeCmd.Flags().Float64Var(&routeArgs.fromLng, "from-lng", 0, "origin longitude")
	routeCmd.Flags().Float64Var(&routeArgs.toLat, "to-lat", 0, "destination latitude")
	routeCmd.Flags().Float64Var(&routeArgs.toLng, "to-lng", 0, "destination longitude")
	routeCmd.MarkFlagRequired("from-lat")
	routeCmd.MarkFlagRequired("from-lng")
	routeCmd.MarkFlagRequired("to-lat")
	routeCmd.MarkFlagRequired("to-lng")
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
