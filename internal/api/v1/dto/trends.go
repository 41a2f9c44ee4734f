package dto

// KeywordTrendsRequest is the body for POST /trends/keywords
type KeywordTrendsRequest struct {
	Keywords  []string `json:"keywords" binding:"required,min=1"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	TimeUnit  string   `json:"time_unit,omitempty" binding:"omitempty,oneof=date week month"`
	Device    string   `json:"device,omitempty" binding:"omitempty,oneof=pc mo"`
	Gender    string   `json:"gender,omitempty" binding:"omitempty,oneof=m f"`
	Ages      []string `json:"ages,omitempty"`
}

// CompareKeywordsRequest is the body for POST /trends/compare
type CompareKeywordsRequest struct {
	KeywordGroups [][]string `json:"keyword_groups" binding:"required"`
	StartDate     string     `json:"start_date" binding:"required"`
	EndDate       string     `json:"end_date" binding:"required"`
	TimeUnit      string     `json:"time_unit,omitempty" binding:"omitempty,oneof=date week month"`
}

// AgeGenderTrendsRequest is the body for POST /trends/age-gender
type AgeGenderTrendsRequest struct {
	Keywords  []string `json:"keywords" binding:"required,min=1"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	TimeUnit  string   `json:"time_unit,omitempty" binding:"omitempty,oneof=date week month"`
	Gender    string   `json:"gender,omitempty" binding:"omitempty,oneof=m f"`
	Ages      []string `json:"ages,omitempty"`
}

// DeviceTrendsRequest is the body for POST /trends/device
type DeviceTrendsRequest struct {
	Keywords  []string `json:"keywords" binding:"required,min=1"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	TimeUnit  string   `json:"time_unit,omitempty" binding:"omitempty,oneof=date week month"`
	Device    string   `json:"device" binding:"required,oneof=pc mo"`
}

// PopularityQuery is the query for GET /trends/destinations/:name/popularity
type PopularityQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
	TimeUnit  string `form:"time_unit"`
}

// SeasonalQuery is the query for GET /trends/destinations/:name/seasonal
type SeasonalQuery struct {
	Months int `form:"months"`
}
