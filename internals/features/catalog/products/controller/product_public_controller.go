package controller

import (
	"github.com/gofiber/fiber/v2"

	"virgimotor_backend/internals/features/catalog/products/dto"
	"virgimotor_backend/internals/features/catalog/products/model"
)

// =============================
// 🏍️ Public Products (katalog)
// =============================
// ?promo=1   → hanya produk dengan promo aktif
// ?category= → filter kategori exact ("All" = tanpa filter)
//
// Soft-fail: error query → array kosong 200, halaman publik tidak
// boleh rusak gara-gara fetch konten gagal.
func (ctrl *ProductController) GetPublicProducts(c *fiber.Ctx) error {
	q := ctrl.DB.Order(`"order" ASC`)

	if c.Query("promo") == "1" {
		q = q.Where("promo_active = TRUE")
	}
	if category := c.Query("category"); category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}

	var products []model.ProductModel
	if err := q.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON([]dto.PublicProductDTO{})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToPublicProductDTOs(products))
}
