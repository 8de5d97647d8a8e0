package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"virgimotor_backend/internals/features/analytics/dto"
)

func TestBuildSummaryTotals(t *testing.T) {
	pageStats := []dto.PageStatDTO{
		{Path: "/", TotalViews: 120, TodayViews: 10},
		{Path: "/products", TotalViews: 80, TodayViews: 5},
	}
	dailyStats := []dto.DailyStatDTO{
		{Date: "2026-08-31", Count: 15},
		{Date: "2026-08-30", Count: 40},
	}

	out := BuildSummary(pageStats, dailyStats)
	assert.Equal(t, int64(200), out.TotalViews)
	assert.Equal(t, int64(15), out.TodayViews)
	assert.Equal(t, pageStats, out.PageStats)
	assert.Equal(t, dailyStats, out.DailyStats)
}

func TestBuildSummaryEmpty(t *testing.T) {
	out := BuildSummary(nil, nil)
	assert.Equal(t, int64(0), out.TotalViews)
	assert.Equal(t, int64(0), out.TodayViews)
	// slice kosong, bukan nil: JSON harus [] bukan null
	assert.NotNil(t, out.PageStats)
	assert.NotNil(t, out.DailyStats)
	assert.Empty(t, out.PageStats)
	assert.Empty(t, out.DailyStats)
}

func TestDateHelpers(t *testing.T) {
	now := time.Date(2026, 8, 31, 13, 45, 0, 0, time.Local)
	assert.Equal(t, "2026-08-31", Today(now))
	// Jendela 30 hari inklusif: hari ini + 29 hari ke belakang.
	assert.Equal(t, "2026-08-02", DailyWindowStart(now))
}
