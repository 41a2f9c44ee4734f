package services

import (
	"context"

	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/app/naver/datalab"
)

// trendsService implements TrendsService over the DataLab adapter
type trendsService struct {
	datalab *datalab.Adapter
}

// NewTrendsService creates a trends service
func NewTrendsService(adapter *datalab.Adapter) TrendsService {
	return &trendsService{datalab: adapter}
}

func (s *trendsService) KeywordTrends(ctx context.Context, req *dto.KeywordTrendsRequest) (*datalab.TrendReport, error) {
	report, err := s.datalab.KeywordTrends(ctx, req.Keywords, req.StartDate, req.EndDate, req.TimeUnit, datalab.TrendFilters{
		Device: req.Device,
		Gender: req.Gender,
		Ages:   req.Ages,
	})
	if err != nil {
		return nil, translateError(err)
	}
	if report == nil {
		return nil, disabledError("datalab")
	}
	return report, nil
}

func (s *trendsService) CompareKeywords(ctx context.Context, req *dto.CompareKeywordsRequest) (*datalab.TrendReport, error) {
	report, err := s.datalab.CompareKeywords(ctx, req.KeywordGroups, req.StartDate, req.EndDate, req.TimeUnit)
	if err != nil {
		return nil, translateError(err)
	}
	if report == nil {
		return nil, disabledError("datalab")
	}
	return report, nil
}

func (s *trendsService) AgeGenderTrends(ctx context.Context, req *dto.AgeGenderTrendsRequest) (*datalab.TrendReport, error) {
	report, err := s.datalab.AgeGenderTrends(ctx, req.Keywords, req.StartDate, req.EndDate, req.TimeUnit, req.Gender, req.Ages)
	if err != nil {
		return nil, translateError(err)
	}
	if report == nil {
		return nil, disabledError("datalab")
	}
	return report, nil
}

func (s *trendsService) DeviceTrends(ctx context.Context, req *dto.DeviceTrendsRequest) (*datalab.TrendReport, error) {
	report, err := s.datalab.DeviceTrends(ctx, req.Keywords, req.StartDate, req.EndDate, req.TimeUnit, req.Device)
	if err != nil {
		return nil, translateError(err)
	}
	if report == nil {
		return nil, disabledError("datalab")
	}
	return report, nil
}

func (s *trendsService) DestinationPopularity(ctx context.Context, destination string, query *dto.PopularityQuery) (*datalab.DestinationPopularity, error) {
	result, err := s.datalab.AnalyzeDestinationPopularity(ctx, destination, query.StartDate, query.EndDate, query.TimeUnit)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil {
		if !s.datalab.Enabled() {
			return nil, disabledError("datalab")
		}
		// Enabled but no data points for the period
		return nil, nil
	}
	return result, nil
}

func (s *trendsService) SeasonalInsights(ctx context.Context, keyword string, months int) (*datalab.SeasonalInsights, error) {
	result, err := s.datalab.GetSeasonalInsights(ctx, keyword, months)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil {
		if !s.datalab.Enabled() {
			return nil, disabledError("datalab")
		}
		return nil, nil
	}
	return result, nil
}
