package datalab

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"trip-planner/internal/app/naver"
)

const (
	defaultBaseURL = "https://naveropenapi.apigw.ntruss.com"

	// DefaultTimeUnit is the trend granularity used when none is given
	DefaultTimeUnit = "date"

	// keyword-group comparison is capped by the upstream API
	maxKeywordGroups = 5
)

// Config configures the DataLab search-trend adapter
type Config struct {
	Enabled      bool
	ClientID     string
	ClientSecret string
	BaseURL      string
	Timeout      time.Duration
	Retry        naver.RetryConfig
	Debug        bool
	Logger       *zap.Logger
}

// DataPoint is one period's search ratio within a series
type DataPoint struct {
	Period string  `json:"period"`
	Ratio  float64 `json:"ratio"`
	Group  string  `json:"group,omitempty"`
}

// TrendSeries is one named keyword group's chronological data. The order
// is whatever upstream returned; it is not re-sorted locally.
type TrendSeries struct {
	Title    string      `json:"title"`
	Keywords []string    `json:"keywords"`
	Data     []DataPoint `json:"data"`
}

// TrendReport is the full response for one trend query
type TrendReport struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	TimeUnit  string        `json:"time_unit"`
	Results   []TrendSeries `json:"results"`
}

// TrendFilters narrows a trend query by device, gender and age bands.
// Zero values mean no filtering.
type TrendFilters struct {
	Device string
	Gender string
	Ages   []string
}

// Adapter wraps the DataLab search-trend API and derives peak-period and
// seasonal analytics on top of the raw series.
type Adapter struct {
	config Config
	client *naver.Client
	now    func() time.Time
}

// NewAdapter creates a DataLab adapter from config
func NewAdapter(cfg Config) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	client := naver.NewClient(naver.ClientConfig{
		Service: "datalab",
		Auth:    naver.AuthScheme{Kind: naver.AuthNCPGateway, KeyID: cfg.ClientID, Key: cfg.ClientSecret},
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry,
		Debug:   cfg.Debug,
		Logger:  cfg.Logger,
	})

	return &Adapter{config: cfg, client: client, now: time.Now}
}

// Enabled reports whether the adapter has credentials and is switched on
func (a *Adapter) Enabled() bool {
	return a.config.Enabled && a.client.Auth().Configured()
}

type keywordGroup struct {
	GroupName string   `json:"groupName"`
	Keywords  []string `json:"keywords"`
}

type trendRequest struct {
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	TimeUnit      string         `json:"timeUnit"`
	KeywordGroups []keywordGroup `json:"keywordGroups"`
	Device        string         `json:"device,omitempty"`
	Gender        string         `json:"gender,omitempty"`
	Ages          []string       `json:"ages,omitempty"`
}

type trendResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TimeUnit  string `json:"timeUnit"`
	Results   []struct {
		Title    string   `json:"title"`
		Keywords []string `json:"keywords"`
		Data     []struct {
			Period string  `json:"period"`
			Ratio  float64 `json:"ratio"`
			Group  string  `json:"group"`
		} `json:"data"`
	} `json:"results"`
}

// KeywordTrends fetches the search-volume series for each keyword (one
// series per keyword). Keywords and both dates are required; violations
// are ConfigErrors raised before any network call.
func (a *Adapter) KeywordTrends(ctx context.Context, keywords []string, startDate, endDate, timeUnit string, filters TrendFilters) (*TrendReport, error) {
	if !a.Enabled() {
		return nil, nil
	}

	if len(keywords) == 0 {
		return nil, naver.NewConfigError("keywords", "at least one keyword is required")
	}
	if startDate == "" || endDate == "" {
		return nil, naver.NewConfigError("dates", "start_date and end_date are required")
	}
	if timeUnit == "" {
		timeUnit = DefaultTimeUnit
	}

	groups := lo.Map(keywords, func(kw string, _ int) keywordGroup {
		return keywordGroup{GroupName: kw, Keywords: []string{kw}}
	})

	return a.fetch(ctx, trendRequest{
		StartDate:     startDate,
		EndDate:       endDate,
		TimeUnit:      timeUnit,
		KeywordGroups: groups,
		Device:        filters.Device,
		Gender:        filters.Gender,
		Ages:          filters.Ages,
	}, "keyword_trends")
}

// CompareKeywords fetches one named series per keyword group. Between one
// and five groups are accepted; the series name is the group's keywords
// comma-joined.
func (a *Adapter) CompareKeywords(ctx context.Context, keywordGroups [][]string, startDate, endDate, timeUnit string) (*TrendReport, error) {
	if !a.Enabled() {
		return nil, nil
	}

	if len(keywordGroups) == 0 || len(keywordGroups) > maxKeywordGroups {
		return nil, naver.NewConfigError("keyword_groups", "between 1 and %d keyword groups are required, got %d", maxKeywordGroups, len(keywordGroups))
	}
	if startDate == "" || endDate == "" {
		return nil, naver.NewConfigError("dates", "start_date and end_date are required")
	}
	if timeUnit == "" {
		timeUnit = DefaultTimeUnit
	}

	groups := lo.Map(keywordGroups, func(group []string, _ int) keywordGroup {
		return keywordGroup{GroupName: strings.Join(group, ","), Keywords: group}
	})

	return a.fetch(ctx, trendRequest{
		StartDate:     startDate,
		EndDate:       endDate,
		TimeUnit:      timeUnit,
		KeywordGroups: groups,
	}, "compare_keywords")
}

// AgeGenderTrends is KeywordTrends narrowed to a gender and age bands
func (a *Adapter) AgeGenderTrends(ctx context.Context, keywords []string, startDate, endDate, timeUnit, gender string, ages []string) (*TrendReport, error) {
	return a.KeywordTrends(ctx, keywords, startDate, endDate, timeUnit, TrendFilters{Gender: gender, Ages: ages})
}

// DeviceTrends is KeywordTrends narrowed to one device class (pc/mo)
func (a *Adapter) DeviceTrends(ctx context.Context, keywords []string, startDate, endDate, timeUnit, device string) (*TrendReport, error) {
	return a.KeywordTrends(ctx, keywords, startDate, endDate, timeUnit, TrendFilters{Device: device})
}

// fetch posts the trend request and maps the upstream response
func (a *Adapter) fetch(ctx context.Context, req trendRequest, operation string) (*TrendReport, error) {
	var resp trendResponse
	err := a.client.DoJSON(ctx, naver.Request{
		Method:    "POST",
		URL:       a.config.BaseURL + "/datalab/v1/search",
		Body:      req,
		Operation: operation,
	}, &resp)
	if err != nil {
		return nil, err
	}

	report := &TrendReport{
		StartDate: resp.StartDate,
		EndDate:   resp.EndDate,
		TimeUnit:  resp.TimeUnit,
		Results:   make([]TrendSeries, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		series := TrendSeries{
			Title:    r.Title,
			Keywords: r.Keywords,
			Data:     make([]DataPoint, 0, len(r.Data)),
		}
		for _, d := range r.Data {
			series.Data = append(series.Data, DataPoint{Period: d.Period, Ratio: d.Ratio, Group: d.Group})
		}
		report.Results = append(report.Results, series)
	}
	return report, nil
}
