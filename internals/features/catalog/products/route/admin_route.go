package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/catalog/products/controller"
)

func ProductAdminRoutes(api fiber.Router, db *gorm.DB) {
	productCtrl := controller.NewProductController(db)

	product := api.Group("/products")
	product.Get("/", productCtrl.GetAllProducts)             // 📄 Semua produk (termasuk non-aktif promo)
	product.Post("/", productCtrl.CreateProduct)             // ➕ Buat produk baru
	product.Get("/:id", productCtrl.GetProductByID)          // 🔍 Detail produk
	product.Put("/:id", productCtrl.UpdateProduct)           // 🔄 Perbarui produk (full-replace)
	product.Delete("/:id", productCtrl.DeleteProduct)        // 🗑️ Hapus produk
	product.Post("/:id/toggle-promo", productCtrl.TogglePromo) // 🏷️ Flip flag promo
}
