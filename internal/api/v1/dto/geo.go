package dto

// GeocodeQuery is the query for GET /geo/geocode
type GeocodeQuery struct {
	Query string `form:"query" binding:"required"`
}

// ReverseGeocodeQuery is the query for GET /geo/reverse
type ReverseGeocodeQuery struct {
	Lat float64 `form:"lat" binding:"required"`
	Lng float64 `form:"lng" binding:"required"`
}

// DistanceQuery is the query for GET /geo/distance
type DistanceQuery struct {
	FromLat float64 `form:"from_lat" binding:"required"`
	FromLng float64 `form:"from_lng" binding:"required"`
	ToLat   float64 `form:"to_lat" binding:"required"`
	ToLng   float64 `form:"to_lng" binding:"required"`
}

// NearbyQuery is the query for GET /geo/nearby
type NearbyQuery struct {
	Lat    float64 `form:"lat" binding:"required"`
	Lng    float64 `form:"lng" binding:"required"`
	Query  string  `form:"query" binding:"required"`
	Radius int     `form:"radius"`
}
