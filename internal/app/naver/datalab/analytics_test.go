package datalab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendServer(t *testing.T, data []DataPoint, capture *trendRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]interface{}{
			"startDate": "2025-01-01",
			"endDate":   "2025-08-01",
			"timeUnit":  "month",
			"results": []map[string]interface{}{
				{"title": "kw", "keywords": []string{"kw"}, "data": data},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestAnalyzeDestinationPopularity(t *testing.T) {
	data := []DataPoint{
		{Period: "2025-06", Ratio: 70.0},
		{Period: "2025-07", Ratio: 98.5},
		{Period: "2025-08", Ratio: 98.5},
		{Period: "2025-09", Ratio: 40.0},
	}
	server := trendServer(t, data, nil)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	result, err := adapter.AnalyzeDestinationPopularity(context.Background(), "제주도", "2025-01-01", "2025-08-01", "")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "제주도", result.Keyword)
	assert.Equal(t, "month", result.TimeUnit, "time unit defaults to month for popularity analysis")
	// Ties keep the first occurrence of the maximum
	assert.Equal(t, "2025-07", result.PeakPeriod)
	assert.InDelta(t, 98.5, result.PeakRatio, 1e-9)
	assert.Equal(t, 4, result.TotalDataPoints)
	assert.Len(t, result.Trends, 4)
}

func TestAnalyzeDestinationPopularityZeroRatios(t *testing.T) {
	data := []DataPoint{
		{Period: "2025-01", Ratio: 0},
		{Period: "2025-02", Ratio: 0},
	}
	server := trendServer(t, data, nil)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	result, err := adapter.AnalyzeDestinationPopularity(context.Background(), "kw", "2025-01-01", "2025-08-01", "month")
	require.NoError(t, err)
	require.NotNil(t, result)

	// An all-zero series still has a peak: the first point
	assert.Equal(t, "2025-01", result.PeakPeriod)
	assert.Zero(t, result.PeakRatio)
}

func TestAnalyzeDestinationPopularityNoData(t *testing.T) {
	server := trendServer(t, []DataPoint{}, nil)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	result, err := adapter.AnalyzeDestinationPopularity(context.Background(), "kw", "2025-01-01", "2025-08-01", "month")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetSeasonalInsights(t *testing.T) {
	data := []DataPoint{
		{Period: "2024-12", Ratio: 80.0},
		{Period: "2025-01", Ratio: 85.0},
		{Period: "2025-02", Ratio: 75.0},
		{Period: "2025-04", Ratio: 50.0},
		{Period: "2025-06", Ratio: 91.0},
		{Period: "2025-07", Ratio: 95.0},
		{Period: "2025-08", Ratio: 88.0},
	}

	var captured trendRequest
	server := trendServer(t, data, &captured)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	adapter.now = func() time.Time {
		return time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	}

	insights, err := adapter.GetSeasonalInsights(context.Background(), "스키장", 24)
	require.NoError(t, err)
	require.NotNil(t, insights)

	// Trailing window: 24 months back from the injected clock
	assert.Equal(t, "2023-08-15", captured.StartDate)
	assert.Equal(t, "2025-08-15", captured.EndDate)
	assert.Equal(t, "month", captured.TimeUnit)

	assert.Equal(t, "스키장", insights.Keyword)
	assert.Equal(t, "2023-08-15 ~ 2025-08-15", insights.AnalysisPeriod)
	assert.Equal(t, 24, insights.MonthsAnalyzed)

	assert.Equal(t, "2025-07", insights.SummerPeak.Period)
	assert.InDelta(t, 95.0, insights.SummerPeak.Ratio, 1e-9)
	assert.Equal(t, "2025-01", insights.WinterPeak.Period)
	assert.InDelta(t, 85.0, insights.WinterPeak.Ratio, 1e-9)
}

func TestGetSeasonalInsightsMissingSeason(t *testing.T) {
	// Only spring data: both seasonal peaks stay at their zero values
	data := []DataPoint{
		{Period: "2025-03", Ratio: 60.0},
		{Period: "2025-04", Ratio: 65.0},
		{Period: "2025-05", Ratio: 70.0},
	}
	server := trendServer(t, data, nil)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	insights, err := adapter.GetSeasonalInsights(context.Background(), "벚꽃", 12)
	require.NoError(t, err)
	require.NotNil(t, insights)

	assert.Empty(t, insights.SummerPeak.Period)
	assert.Zero(t, insights.SummerPeak.Ratio)
	assert.Empty(t, insights.WinterPeak.Period)
	assert.Zero(t, insights.WinterPeak.Ratio)
}

func TestGetSeasonalInsightsDefaultMonths(t *testing.T) {
	var captured trendRequest
	server := trendServer(t, []DataPoint{{Period: "2025-06", Ratio: 10}}, &captured)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	adapter.now = func() time.Time {
		return time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)
	}

	insights, err := adapter.GetSeasonalInsights(context.Background(), "kw", 0)
	require.NoError(t, err)
	require.NotNil(t, insights)
	assert.Equal(t, 12, insights.MonthsAnalyzed)
	assert.Equal(t, "2024-08-29", captured.StartDate)
}

func TestMonthOfPeriod(t *testing.T) {
	assert.Equal(t, "08", monthOfPeriod("2025-08"))
	assert.Equal(t, "08", monthOfPeriod("2025-08-01"))
	assert.Equal(t, "", monthOfPeriod("2025"))
	assert.Equal(t, "", monthOfPeriod(""))
}
