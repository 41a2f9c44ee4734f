package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trip-planner/internal/app/cache"
	"trip-planner/internal/app/naver/maps"
)

// geocodeCacheTTL bounds staleness for cached geocode lookups; addresses
// move rarely.
const geocodeCacheTTL = 24 * time.Hour

// geoService implements GeoService over the maps adapter with a
// cache-aside layer for geocoding.
type geoService struct {
	maps  *maps.Adapter
	cache cache.Cache
}

// NewGeoService creates a geo service. A nil cache disables caching.
func NewGeoService(adapter *maps.Adapter, c cache.Cache) GeoService {
	if c == nil {
		c = cache.NewNoopCache()
	}
	return &geoService{maps: adapter, cache: c}
}

func (s *geoService) Geocode(ctx context.Context, query string) (*maps.GeocodeResult, error) {
	key := "geocode:" + query
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result maps.GeocodeResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	result, err := s.maps.Geocode(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil {
		if !s.maps.Enabled() {
			return nil, disabledError("maps")
		}
		return nil, nil
	}

	if data, err := json.Marshal(result); err == nil {
		s.cache.Set(ctx, key, string(data), geocodeCacheTTL)
	}
	return result, nil
}

func (s *geoService) ReverseGeocode(ctx context.Context, lat, lng float64) (*maps.ReverseGeocodeResult, error) {
	result, err := s.maps.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil && !s.maps.Enabled() {
		return nil, disabledError("maps")
	}
	return result, nil
}

func (s *geoService) Distance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (*maps.RouteSummary, error) {
	result, err := s.maps.Distance(ctx, fromLat, fromLng, toLat, toLng)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil && !s.maps.Enabled() {
		return nil, disabledError("maps")
	}
	return result, nil
}

func (s *geoService) Nearby(ctx context.Context, lat, lng float64, query string, radiusMeters int) ([]maps.Place, error) {
	key := fmt.Sprintf("nearby:%s:%.4f:%.4f:%d", query, lat, lng, radiusMeters)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var places []maps.Place
		if err := json.Unmarshal([]byte(cached), &places); err == nil {
			return places, nil
		}
	}

	places, err := s.maps.SearchNearby(ctx, lat, lng, query, radiusMeters)
	if err != nil {
		return nil, translateError(err)
	}

	if data, err := json.Marshal(places); err == nil {
		s.cache.Set(ctx, key, string(data), geocodeCacheTTL)
	}
	return places, nil
}
