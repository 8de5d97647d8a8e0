package service

import (
	"time"

	"virgimotor_backend/internals/features/analytics/dto"
)

// Jendela tren harian di ringkasan admin.
const DailyStatsWindowDays = 30

const dateLayout = "2006-01-02"

// Today mengembalikan tanggal kalender lokal server dalam ISO
// "YYYY-MM-DD". Track dan ringkasan memakai aturan yang sama supaya
// todayViews konsisten.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}

// DailyWindowStart: batas bawah (inklusif) jendela tren harian.
func DailyWindowStart(now time.Time) string {
	return now.AddDate(0, 0, -(DailyStatsWindowDays - 1)).Format(dateLayout)
}

// BuildSummary merakit ringkasan dari hasil agregasi store-side.
// Grand total diturunkan dari pageStats (sudah SUM per path), jadi
// tidak perlu query ketiga.
func BuildSummary(pageStats []dto.PageStatDTO, dailyStats []dto.DailyStatDTO) dto.SummaryDTO {
	var totalViews, todayViews int64
	for _, p := range pageStats {
		totalViews += p.TotalViews
		todayViews += p.TodayViews
	}
	if pageStats == nil {
		pageStats = []dto.PageStatDTO{}
	}
	if dailyStats == nil {
		dailyStats = []dto.DailyStatDTO{}
	}
	return dto.SummaryDTO{
		PageStats:  pageStats,
		DailyStats: dailyStats,
		TotalViews: totalViews,
		TodayViews: todayViews,
	}
}
