package maps

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"trip-planner/internal/app/naver"
)

const (
	defaultBaseURL   = "https://naveropenapi.apigw.ntruss.com"
	defaultSearchURL = "https://openapi.naver.com/v1/search/local.json"

	// Local search returns WGS-84 coordinates scaled by 1e7
	coordinateScale = 10000000.0
)

// Config configures the maps adapter. The NCP gateway pair covers
// geocoding and routing; SearchClientID/Secret is the separate
// openapi.naver.com developer pair required by local POI search.
type Config struct {
	Enabled            bool
	ClientID           string
	ClientSecret       string
	SearchClientID     string
	SearchClientSecret string
	BaseURL            string
	SearchURL          string
	Timeout            time.Duration
	Retry              naver.RetryConfig
	Debug              bool
	Logger             *zap.Logger
}

// GeocodeResult is a resolved address with WGS-84 coordinates
type GeocodeResult struct {
	Address     string  `json:"address"`
	RoadAddress string  `json:"road_address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Area holds the four administrative region levels of a reverse-geocoded
// point (province, city/district, neighborhood, sub-division).
type Area struct {
	Level1 string `json:"level1"`
	Level2 string `json:"level2"`
	Level3 string `json:"level3"`
	Level4 string `json:"level4"`
}

// ReverseGeocodeResult is the address information for a coordinate
type ReverseGeocodeResult struct {
	Address     string `json:"address"`
	RoadAddress string `json:"road_address"`
	Area        Area   `json:"area"`
}

// RouteSummary is the driving distance and duration between two points
type RouteSummary struct {
	DistanceMeters int `json:"distance_meters"`
	DurationMillis int `json:"duration_millis"`
}

// Place is one local-search hit near a coordinate
type Place struct {
	Title       string  `json:"title"`
	Address     string  `json:"address"`
	RoadAddress string  `json:"road_address"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Phone       string  `json:"phone"`
	Link        string  `json:"link"`
}

// Adapter wraps the NAVER Maps APIs: geocoding, reverse geocoding,
// driving distance and nearby POI search. Every method returns nil (or an
// empty slice for SearchNearby) when the adapter is disabled; disablement
// is never an error.
type Adapter struct {
	config Config
	ncp    *naver.Client
	search *naver.Client
}

// NewAdapter creates a maps adapter from config
func NewAdapter(cfg Config) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = defaultSearchURL
	}

	ncp := naver.NewClient(naver.ClientConfig{
		Service: "maps",
		Auth:    naver.AuthScheme{Kind: naver.AuthNCPGateway, KeyID: cfg.ClientID, Key: cfg.ClientSecret},
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry,
		Debug:   cfg.Debug,
		Logger:  cfg.Logger,
	})
	search := naver.NewClient(naver.ClientConfig{
		Service: "maps_search",
		Auth:    naver.AuthScheme{Kind: naver.AuthClientPair, KeyID: cfg.SearchClientID, Key: cfg.SearchClientSecret},
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry,
		Debug:   cfg.Debug,
		Logger:  cfg.Logger,
	})

	return &Adapter{config: cfg, ncp: ncp, search: search}
}

// Enabled reports whether the gateway-backed operations are usable
func (a *Adapter) Enabled() bool {
	return a.config.Enabled && a.ncp.Auth().Configured()
}

// searchEnabled gates local POI search, which uses its own credential pair
func (a *Adapter) searchEnabled() bool {
	return a.config.Enabled && a.search.Auth().Configured()
}

type geocodeResponse struct {
	Addresses []struct {
		RoadAddress  string `json:"roadAddress"`
		JibunAddress string `json:"jibunAddress"`
		X            string `json:"x"`
		Y            string `json:"y"`
	} `json:"addresses"`
}

// Geocode resolves a free-form query to an address and coordinates.
// An empty upstream result set yields nil, not an error.
func (a *Adapter) Geocode(ctx context.Context, query string) (*GeocodeResult, error) {
	if !a.Enabled() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)

	var resp geocodeResponse
	err := a.ncp.DoJSON(ctx, naver.Request{
		Method:    "GET",
		URL:       a.config.BaseURL + "/map-geocode/v2/geocode",
		Query:     params,
		Operation: "geocode",
	}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Addresses) == 0 {
		return nil, nil
	}

	first := resp.Addresses[0]
	lng, err := strconv.ParseFloat(first.X, 64)
	if err != nil {
		return nil, &naver.ServiceError{Message: fmt.Sprintf("invalid longitude %q in response", first.X), Context: "geocode"}
	}
	lat, err := strconv.ParseFloat(first.Y, 64)
	if err != nil {
		return nil, &naver.ServiceError{Message: fmt.Sprintf("invalid latitude %q in response", first.Y), Context: "geocode"}
	}

	return &GeocodeResult{
		Address:     first.JibunAddress,
		RoadAddress: first.RoadAddress,
		Latitude:    lat,
		Longitude:   lng,
	}, nil
}

type reverseGeocodeResponse struct {
	Results []struct {
		Name   string `json:"name"`
		Region struct {
			Area1 struct {
				Name string `json:"name"`
			} `json:"area1"`
			Area2 struct {
				Name string `json:"name"`
			} `json:"area2"`
			Area3 struct {
				Name string `json:"name"`
			} `json:"area3"`
			Area4 struct {
				Name string `json:"name"`
			} `json:"area4"`
		} `json:"region"`
		Land struct {
			Name    string `json:"name"`
			Number1 string `json:"number1"`
			Number2 string `json:"number2"`
		} `json:"land"`
	} `json:"results"`
}

// ReverseGeocode resolves a coordinate to region and address information.
// The upstream coords parameter is longitude-first ("lng,lat"); that
// ordering is an upstream convention and must not be flipped.
func (a *Adapter) ReverseGeocode(ctx context.Context, lat, lng float64) (*ReverseGeocodeResult, error) {
	if !a.Enabled() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("coords", formatCoords(lat, lng))
	params.Set("output", "json")
	params.Set("orders", "addr,roadaddr")

	var resp reverseGeocodeResponse
	err := a.ncp.DoJSON(ctx, naver.Request{
		Method:    "GET",
		URL:       a.config.BaseURL + "/map-reversegeocode/v2/gc",
		Query:     params,
		Operation: "reverse_geocode",
	}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}

	result := &ReverseGeocodeResult{}
	for _, r := range resp.Results {
		area := Area{
			Level1: r.Region.Area1.Name,
			Level2: r.Region.Area2.Name,
			Level3: r.Region.Area3.Name,
			Level4: r.Region.Area4.Name,
		}
		address := joinNonEmpty(area.Level1, area.Level2, area.Level3, area.Level4)
		if r.Land.Number1 != "" {
			number := r.Land.Number1
			if r.Land.Number2 != "" {
				number = number + "-" + r.Land.Number2
			}
			address = joinNonEmpty(address, number)
		}

		switch r.Name {
		case "roadaddr":
			result.RoadAddress = joinNonEmpty(area.Level1, area.Level2, r.Land.Name, r.Land.Number1)
		default:
			result.Address = address
			result.Area = area
		}
	}
	if result.Address == "" && result.RoadAddress != "" {
		result.Address = result.RoadAddress
	}

	return result, nil
}

type directionResponse struct {
	Route struct {
		Trafast []struct {
			Summary struct {
				Distance int `json:"distance"`
				Duration int `json:"duration"`
			} `json:"summary"`
		} `json:"trafast"`
	} `json:"route"`
}

// Distance returns the traffic-optimized-fastest driving route summary
// between two points, or nil when no route exists.
func (a *Adapter) Distance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (*RouteSummary, error) {
	if !a.Enabled() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("start", formatCoords(fromLat, fromLng))
	params.Set("goal", formatCoords(toLat, toLng))
	params.Set("option", "trafast")

	var resp directionResponse
	err := a.ncp.DoJSON(ctx, naver.Request{
		Method:    "GET",
		URL:       a.config.BaseURL + "/map-direction/v1/driving",
		Query:     params,
		Operation: "distance",
	}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Route.Trafast) == 0 {
		return nil, nil
	}

	summary := resp.Route.Trafast[0].Summary
	return &RouteSummary{
		DistanceMeters: summary.Distance,
		DurationMillis: summary.Duration,
	}, nil
}

type localSearchResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Category    string `json:"category"`
		Telephone   string `json:"telephone"`
		Address     string `json:"address"`
		RoadAddress string `json:"roadAddress"`
		MapX        string `json:"mapx"`
		MapY        string `json:"mapy"`
	} `json:"items"`
}

// SearchNearby looks up POIs matching query around a coordinate using the
// openapi.naver.com local search API. Results beyond radiusMeters are
// dropped (radius <= 0 keeps everything) and the remainder is ordered by
// distance from the center. Disabled yields an empty slice, never nil.
func (a *Adapter) SearchNearby(ctx context.Context, lat, lng float64, query string, radiusMeters int) ([]Place, error) {
	if !a.searchEnabled() {
		return []Place{}, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", "10")
	params.Set("start", "1")
	params.Set("sort", "random")

	var resp localSearchResponse
	err := a.search.DoJSON(ctx, naver.Request{
		Method:    "GET",
		URL:       a.config.SearchURL,
		Query:     params,
		Operation: "search_nearby",
	}, &resp)
	if err != nil {
		return nil, err
	}

	type placeWithDistance struct {
		place    Place
		distance float64
	}

	candidates := make([]placeWithDistance, 0, len(resp.Items))
	for _, item := range resp.Items {
		x, errX := strconv.ParseFloat(item.MapX, 64)
		y, errY := strconv.ParseFloat(item.MapY, 64)
		if errX != nil || errY != nil {
			continue
		}
		place := Place{
			Title:       stripHTML(item.Title),
			Address:     item.Address,
			RoadAddress: item.RoadAddress,
			Category:    item.Category,
			Latitude:    y / coordinateScale,
			Longitude:   x / coordinateScale,
			Phone:       item.Telephone,
			Link:        item.Link,
		}
		distance := haversineMeters(lat, lng, place.Latitude, place.Longitude)
		if radiusMeters > 0 && distance > float64(radiusMeters) {
			continue
		}
		candidates = append(candidates, placeWithDistance{place: place, distance: distance})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	places := make([]Place, 0, len(candidates))
	for _, c := range candidates {
		places = append(places, c.place)
	}
	return places, nil
}

// formatCoords renders a coordinate pair longitude-first, the ordering
// every Maps endpoint expects.
func formatCoords(lat, lng float64) string {
	return strconv.FormatFloat(lng, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
}

// stripHTML removes the markup local search embeds in titles (<b> around
// matched terms).
func stripHTML(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

// joinNonEmpty joins the non-empty parts with single spaces
func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// haversineMeters computes the great-circle distance between two WGS-84
// points.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371000.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadius * math.Asin(math.Sqrt(h))
}
