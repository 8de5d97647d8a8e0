package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/settings/controller"
)

func SettingAdminRoutes(api fiber.Router, db *gorm.DB) {
	settingCtrl := controller.NewSettingController(db)

	settings := api.Group("/settings")
	settings.Get("/", settingCtrl.GetAllSettings)  // 📄 Semua setting (baris mentah)
	settings.Put("/", settingCtrl.UpsertSettings)  // 🔄 Bulk upsert (transaksional)
}

func SettingPublicRoutes(api fiber.Router, db *gorm.DB) {
	settingCtrl := controller.NewSettingController(db)

	api.Get("/settings", settingCtrl.GetPublicSettings) // ⚙️ Map key→value
}
