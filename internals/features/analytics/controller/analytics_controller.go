package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"virgimotor_backend/internals/features/analytics/dto"
	"virgimotor_backend/internals/features/analytics/model"
	"virgimotor_backend/internals/features/analytics/service"
	helper "virgimotor_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// =============================
// 📈 Track (upsert-increment atomik)
// =============================
// Dua hit bersamaan untuk (path, hari ini) tidak boleh kehilangan
// increment; ON CONFLICT ... count = count + 1 yang menjamin itu,
// bukan locking aplikasi.
func (ctrl *AnalyticsController) TrackView(c *fiber.Ctx) error {
	var body dto.TrackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	path := body.Path
	if path == "" {
		path = "/"
	}

	row := model.PageViewModel{
		Path:     path,
		ViewDate: datatypes.Date(time.Now()),
		Count:    1,
	}
	err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "path"}, {Name: "view_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("page_views.count + 1"),
		}),
	}).Create(&row).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat kunjungan")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

// =============================
// 📊 Summary (agregasi store-side)
// =============================
// pageStats: total & hari-ini per path, urut total desc.
// dailyStats: total per tanggal 30 hari terakhir, terbaru dulu.
func (ctrl *AnalyticsController) GetSummary(c *fiber.Ctx) error {
	now := time.Now()
	today := service.Today(now)
	windowStart := service.DailyWindowStart(now)

	var pageStats []dto.PageStatDTO
	err := ctrl.DB.Model(&model.PageViewModel{}).
		Select(
			"path, SUM(count) AS total_views, COALESCE(SUM(count) FILTER (WHERE view_date = ?), 0) AS today_views",
			today,
		).
		Group("path").
		Order("total_views DESC").
		Scan(&pageStats).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil analytics")
	}

	var dailyStats []dto.DailyStatDTO
	err = ctrl.DB.Model(&model.PageViewModel{}).
		Select("to_char(view_date, 'YYYY-MM-DD') AS date, SUM(count) AS count").
		Where("view_date >= ?", windowStart).
		Group("view_date").
		Order("view_date DESC").
		Scan(&dailyStats).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil analytics")
	}

	return helper.JsonOK(c, "ok", service.BuildSummary(pageStats, dailyStats))
}
