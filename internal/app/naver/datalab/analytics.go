package datalab

import (
	"context"
	"fmt"
)

// summer and winter month-of-year sets for seasonal peak detection
var (
	summerMonths = map[string]bool{"06": true, "07": true, "08": true}
	winterMonths = map[string]bool{"12": true, "01": true, "02": true}
)

// DestinationPopularity summarizes one destination's search trend with
// its peak period.
type DestinationPopularity struct {
	Keyword         string      `json:"keyword"`
	StartDate       string      `json:"start_date"`
	EndDate         string      `json:"end_date"`
	TimeUnit        string      `json:"time_unit"`
	Trends          []DataPoint `json:"trends"`
	PeakPeriod      string      `json:"peak_period"`
	PeakRatio       float64     `json:"peak_ratio"`
	TotalDataPoints int         `json:"total_data_points"`
}

// SeasonPeak is the strongest data point within one season's months.
// Period is empty when no point fell inside the season.
type SeasonPeak struct {
	Period string  `json:"period"`
	Ratio  float64 `json:"ratio"`
}

// SeasonalInsights contrasts a keyword's summer and winter search peaks
// over a trailing window of months.
type SeasonalInsights struct {
	Keyword        string      `json:"keyword"`
	AnalysisPeriod string      `json:"analysis_period"`
	Trends         []DataPoint `json:"trends"`
	SummerPeak     SeasonPeak  `json:"summer_peak"`
	WinterPeak     SeasonPeak  `json:"winter_peak"`
	MonthsAnalyzed int         `json:"months_analyzed"`
}

// AnalyzeDestinationPopularity fetches the trend series for a single
// destination keyword and scans it for the peak period. The scan keeps
// the first occurrence of the maximum ratio (strict greater-than). A
// series with no data points yields nil.
func (a *Adapter) AnalyzeDestinationPopularity(ctx context.Context, destination, startDate, endDate, timeUnit string) (*DestinationPopularity, error) {
	if timeUnit == "" {
		timeUnit = "month"
	}

	report, err := a.KeywordTrends(ctx, []string{destination}, startDate, endDate, timeUnit, TrendFilters{})
	if err != nil {
		return nil, err
	}
	if report == nil || len(report.Results) == 0 || len(report.Results[0].Data) == 0 {
		return nil, nil
	}

	points := report.Results[0].Data
	peakPeriod := ""
	peakRatio := -1.0
	for _, p := range points {
		if p.Ratio > peakRatio {
			peakRatio = p.Ratio
			peakPeriod = p.Period
		}
	}

	return &DestinationPopularity{
		Keyword:         destination,
		StartDate:       startDate,
		EndDate:         endDate,
		TimeUnit:        timeUnit,
		Trends:          points,
		PeakPeriod:      peakPeriod,
		PeakRatio:       peakRatio,
		TotalDataPoints: len(points),
	}, nil
}

// GetSeasonalInsights fetches a trailing months-long monthly series for
// keyword and independently tracks the strongest summer (Jun-Aug) and
// winter (Dec-Feb) data points. Either peak stays at its zero value when
// no point falls in that season.
func (a *Adapter) GetSeasonalInsights(ctx context.Context, keyword string, months int) (*SeasonalInsights, error) {
	if months <= 0 {
		months = 12
	}

	end := a.now()
	start := end.AddDate(0, -months, 0)
	startDate := start.Format("2006-01-02")
	endDate := end.Format("2006-01-02")

	report, err := a.KeywordTrends(ctx, []string{keyword}, startDate, endDate, "month", TrendFilters{})
	if err != nil {
		return nil, err
	}
	if report == nil || len(report.Results) == 0 || len(report.Results[0].Data) == 0 {
		return nil, nil
	}

	points := report.Results[0].Data
	var summer, winter SeasonPeak
	for _, p := range points {
		month := monthOfPeriod(p.Period)
		if summerMonths[month] && p.Ratio > summer.Ratio {
			summer = SeasonPeak{Period: p.Period, Ratio: p.Ratio}
		}
		if winterMonths[month] && p.Ratio > winter.Ratio {
			winter = SeasonPeak{Period: p.Period, Ratio: p.Ratio}
		}
	}

	return &SeasonalInsights{
		Keyword:        keyword,
		AnalysisPeriod: fmt.Sprintf("%s ~ %s", startDate, endDate),
		Trends:         points,
		SummerPeak:     summer,
		WinterPeak:     winter,
		MonthsAnalyzed: months,
	}, nil
}

// monthOfPeriod extracts the two-digit month from an upstream period
// string ("2025-08" or "2025-08-01").
func monthOfPeriod(period string) string {
	if len(period) < 7 {
		return ""
	}
	return period[5:7]
}
