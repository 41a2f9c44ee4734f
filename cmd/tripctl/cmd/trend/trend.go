package trend

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"trip-planner/internal/app"
	"trip-planner/internal/app/naver/datalab"
)

var (
	startDate string
	endDate   string
	timeUnit  string
	months    int
)

func init() {
	defaultEnd := time.Now().Format("2006-01-02")
	defaultStart := time.Now().AddDate(-1, 0, 0).Format("2006-01-02")

	Cmd.PersistentFlags().StringVar(&startDate, "start", defaultStart, "start date (yyyy-mm-dd)")
	Cmd.PersistentFlags().StringVar(&endDate, "end", defaultEnd, "end date (yyyy-mm-dd)")
	Cmd.PersistentFlags().StringVar(&timeUnit, "unit", "month", "time unit (date, week, month)")

	seasonalCmd.Flags().IntVarP(&months, "months", "m", 24, "months of history to analyze")

	Cmd.AddCommand(popularityCmd)
	Cmd.AddCommand(seasonalCmd)
}

// Cmd represents the trend command
var Cmd = &cobra.Command{
	Use:   "trend [keyword...]",
	Short: "Query NAVER DataLab search trends",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitDatalabAdapter()
		report, err := adapter.KeywordTrends(context.Background(), args, startDate, endDate, timeUnit, datalab.TrendFilters{})
		if err != nil {
			return err
		}
		if report == nil {
			fmt.Println("trends service is not configured")
			return nil
		}
		return printJSON(report)
	},
}

var popularityCmd = &cobra.Command{
	Use:   "popularity [destination]",
	Short: "Analyze a destination's search popularity and peak period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitDatalabAdapter()
		result, err := adapter.AnalyzeDestinationPopularity(context.Background(), args[0], startDate, endDate, timeUnit)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("no popularity data")
			return nil
		}
		return printJSON(result)
	},
}

var seasonalCmd = &cobra.Command{
	Use:   "seasonal [destination]",
	Short: "Summer and winter interest peaks for a destination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := app.InitDatalabAdapter()
		result, err := adapter.GetSeasonalInsights(context.Background(), args[0], months)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("no seasonal data")
			return nil
		}
		return printJSON(result)
	},
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
