package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/analytics/controller"
)

func AnalyticsAdminRoutes(api fiber.Router, db *gorm.DB) {
	analyticsCtrl := controller.NewAnalyticsController(db)

	api.Get("/analytics", analyticsCtrl.GetSummary) // 📊 Ringkasan kunjungan
}

func AnalyticsPublicRoutes(api fiber.Router, db *gorm.DB) {
	analyticsCtrl := controller.NewAnalyticsController(db)

	api.Post("/track", analyticsCtrl.TrackView) // 📈 Catat page view
}
