package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/app/naver"
)

func testConfig(baseURL, searchURL string) Config {
	return Config{
		Enabled:            true,
		ClientID:           "maps-id",
		ClientSecret:       "maps-secret",
		SearchClientID:     "search-id",
		SearchClientSecret: "search-secret",
		BaseURL:            baseURL,
		SearchURL:          searchURL,
		Timeout:            5 * time.Second,
		Retry:              naver.RetryConfig{MaxAttempts: 1, Delay: time.Millisecond},
	}
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/map-geocode/v2/geocode", r.URL.Path)
		assert.Equal(t, "불정로 6", r.URL.Query().Get("query"))
		assert.Equal(t, "maps-id", r.Header.Get("X-NCP-APIGW-API-KEY-ID"))
		w.Write([]byte(`{
			"addresses": [{
				"roadAddress": "경기도 성남시 분당구 불정로 6 NAVER그린팩토리",
				"jibunAddress": "경기도 성남시 분당구 정자동 178-1",
				"x": "127.10522081658463",
				"y": "37.35951219616309"
			}]
		}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL, ""))
	result, err := adapter.Geocode(context.Background(), "불정로 6")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "경기도 성남시 분당구 정자동 178-1", result.Address)
	assert.Equal(t, "경기도 성남시 분당구 불정로 6 NAVER그린팩토리", result.RoadAddress)
	assert.InDelta(t, 37.35951219616309, result.Latitude, 1e-12)
	assert.InDelta(t, 127.10522081658463, result.Longitude, 1e-12)
}

func TestGeocodeNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"addresses": []}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL, ""))
	result, err := adapter.Geocode(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGeocodeDisabled(t *testing.T) {
	cfg := testConfig("http://unused", "")
	cfg.Enabled = false
	adapter := NewAdapter(cfg)

	result, err := adapter.Geocode(context.Background(), "anywhere")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGeocodeMissingCredentialsDisables(t *testing.T) {
	cfg := testConfig("http://unused", "")
	cfg.ClientSecret = ""
	adapter := NewAdapter(cfg)

	result, err := adapter.Geocode(context.Background(), "anywhere")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGeocodeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errorMessage":"Authentication failed"}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL, ""))
	_, err := adapter.Geocode(context.Background(), "somewhere")

	var serviceErr *naver.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, http.StatusUnauthorized, serviceErr.HTTPStatus)
	assert.Equal(t, "Authentication failed", serviceErr.Message)
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/map-reversegeocode/v2/gc", r.URL.Path)
		// Upstream wants longitude first
		assert.Equal(t, "127.1054328,37.3595963", r.URL.Query().Get("coords"))
		assert.Equal(t, "addr,roadaddr", r.URL.Query().Get("orders"))
		w.Write([]byte(`{
			"results": [
				{
					"name": "addr",
					"region": {
						"area1": {"name": "경기도"},
						"area2": {"name": "성남시 분당구"},
						"area3": {"name": "정자동"},
						"area4": {"name": ""}
					},
					"land": {"number1": "178", "number2": "1"}
				},
				{
					"name": "roadaddr",
					"region": {
						"area1": {"name": "경기도"},
						"area2": {"name": "성남시 분당구"},
						"area3": {"name": "정자동"},
						"area4": {"name": ""}
					},
					"land": {"name": "불정로", "number1": "6"}
				}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL, ""))
	result, err := adapter.ReverseGeocode(context.Background(), 37.3595963, 127.1054328)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "경기도 성남시 분당구 정자동 178-1", result.Address)
	assert.Equal(t, "경기도 성남시 분당구 불정로 6", result.RoadAddress)
	assert.Equal(t, "경기도", result.Area.Level1)
	assert.Equal(t, "정자동", result.Area.Level3)
}

func TestReverseGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL, ""))
	result, err := adapter.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/map-direction/v1/driving", r.URL.Path)
		assert.Equal(t, "trafast", r.URL.Query().Get("option"))
		assert.Equal(t, "127.1,37.4", r.URL.Query().Get("start"))
		assert.Equal(t, "129.0756,35.1796", r.URL.Query().Get("goal"))
		w.Write([]byte(`{
			"route": {
				"trafast": [{"summary": {"distance": 390210, "duration": 14400000}}]
			}
		}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL, ""))
	summary, err := adapter.Distance(context.Background(), 37.4, 127.1, 35.1796, 129.0756)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 390210, summary.DistanceMeters)
	assert.Equal(t, 14400000, summary.DurationMillis)
}

func TestDistanceNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"route": {"trafast": []}}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL, ""))
	summary, err := adapter.Distance(context.Background(), 0, 0, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestSearchNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "search-id", r.Header.Get("X-Naver-Client-Id"))
		assert.Equal(t, "search-secret", r.Header.Get("X-Naver-Client-Secret"))
		assert.Empty(t, r.Header.Get("X-NCP-APIGW-API-KEY-ID"))
		assert.Equal(t, "맛집", r.URL.Query().Get("query"))
		// Scaled integer coordinates: divide by 1e7 for WGS-84
		w.Write([]byte(`{
			"items": [
				{
					"title": "<b>강남</b> 식당",
					"link": "http://example.com/a",
					"category": "음식점>한식",
					"telephone": "02-123-4567",
					"address": "서울특별시 강남구",
					"roadAddress": "서울특별시 강남구 테헤란로 1",
					"mapx": "1270276000",
					"mapy": "375172000"
				},
				{
					"title": "부산 식당",
					"link": "http://example.com/b",
					"category": "음식점>한식",
					"telephone": "",
					"address": "부산광역시",
					"roadAddress": "",
					"mapx": "1290756000",
					"mapy": "351796000"
				}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig("", server.URL))
	places, err := adapter.SearchNearby(context.Background(), 37.5172, 127.0276, "맛집", 5000)
	require.NoError(t, err)

	// The Busan hit is far outside the 5km radius and must be dropped
	require.Len(t, places, 1)
	assert.Equal(t, "강남 식당", places[0].Title, "markup must be stripped from titles")
	assert.InDelta(t, 37.5172, places[0].Latitude, 1e-6)
	assert.InDelta(t, 127.0276, places[0].Longitude, 1e-6)
}

func TestSearchNearbySortsByDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{"title": "far", "mapx": "1270376000", "mapy": "375272000"},
				{"title": "near", "mapx": "1270276000", "mapy": "375172000"}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig("", server.URL))
	places, err := adapter.SearchNearby(context.Background(), 37.5172, 127.0276, "cafe", 0)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "near", places[0].Title)
	assert.Equal(t, "far", places[1].Title)
}

func TestSearchNearbyDisabledReturnsEmptySlice(t *testing.T) {
	cfg := testConfig("", "")
	cfg.SearchClientID = ""
	adapter := NewAdapter(cfg)

	places, err := adapter.SearchNearby(context.Background(), 0, 0, "cafe", 0)
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestFormatCoordsLongitudeFirst(t *testing.T) {
	assert.Equal(t, "127.1054328,37.3595963", formatCoords(37.3595963, 127.1054328))
	assert.Equal(t, "127,37", formatCoords(37, 127))
}

func TestHaversineMeters(t *testing.T) {
	// Seoul to Busan is roughly 325km great-circle
	d := haversineMeters(37.5665, 126.9780, 35.1796, 129.0756)
	assert.InDelta(t, 325000, d, 5000)

	assert.Zero(t, haversineMeters(37.5, 127.0, 37.5, 127.0))
}
