package dto

// ============================
// Request DTO
// ============================

type TrackRequest struct {
	Path string `json:"path"`
}

// ============================
// Response DTO
// ============================

type PageStatDTO struct {
	Path       string `json:"path"`
	TotalViews int64  `json:"totalViews"`
	TodayViews int64  `json:"todayViews"`
}

type DailyStatDTO struct {
	Date  string `json:"date"` // "YYYY-MM-DD"
	Count int64  `json:"count"`
}

type SummaryDTO struct {
	PageStats  []PageStatDTO  `json:"pageStats"`
	DailyStats []DailyStatDTO `json:"dailyStats"`
	TotalViews int64          `json:"totalViews"`
	TodayViews int64          `json:"todayViews"`
}
