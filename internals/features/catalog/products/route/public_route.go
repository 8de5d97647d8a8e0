package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/catalog/products/controller"
)

func ProductPublicRoutes(api fiber.Router, db *gorm.DB) {
	productCtrl := controller.NewProductController(db)

	api.Get("/products", productCtrl.GetPublicProducts) // 🏍️ Katalog publik
}
