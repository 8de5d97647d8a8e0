package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/catalog/products/dto"
	"virgimotor_backend/internals/features/catalog/products/model"
	helper "virgimotor_backend/internals/helpers"
)

const defaultProductImage = "/all_bike/placeholder.webp"

var validateProduct = validator.New()

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// =============================
// 📄 Get All Products (admin: termasuk non-promo, semua kategori)
// =============================
func (ctrl *ProductController) GetAllProducts(c *fiber.Ctx) error {
	var products []model.ProductModel
	if err := ctrl.DB.Order(`"order" ASC`).Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}
	return helper.JsonList(c, "ok", products)
}

// =============================
// 🔍 Get Product By ID
// =============================
func (ctrl *ProductController) GetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")
	// id bukan UUID tidak mungkin ada di tabel; jangan sampai cast
	// uuid di Postgres meledak jadi 500.
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}
	return helper.JsonOK(c, "ok", product)
}

// =============================
// ➕ Create Product (slug diturunkan dari nama, dijamin unik)
// =============================
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var body dto.CreateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	promoEndsAt, err := dto.ParsePromoEndsAt(body.PromoEndsAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "promoEndsAt harus berformat YYYY-MM-DD")
	}

	baseSlug := helper.Slugify(body.Name, 100)
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "products", "slug", baseSlug, "", 100)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	image := body.Image
	if image == "" {
		image = defaultProductImage
	}

	product := model.ProductModel{
		Name:               body.Name,
		Slug:               slug,
		Category:           body.Category,
		Price:              body.Price,
		DpMin:              body.DpMin,
		CC:                 body.CC,
		Image:              image,
		Features:           pq.StringArray(body.Features),
		Order:              body.Order,
		PromoActive:        body.PromoActive,
		PromoBadgeText:     body.PromoBadgeText,
		PromoHighlights:    pq.StringArray(body.PromoHighlights),
		PromoCardBgColor:   body.PromoCardBgColor,
		PromoCardTextColor: body.PromoCardTextColor,
		PromoEndsAt:        promoEndsAt,
	}
	if product.Features == nil {
		product.Features = pq.StringArray{}
	}
	if product.PromoHighlights == nil {
		product.PromoHighlights = pq.StringArray{}
	}

	if err := ctrl.DB.Create(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat produk")
	}
	return helper.JsonCreated(c, "Produk berhasil dibuat", product)
}

// =============================
// 🔄 Update Product (full-replace: seluruh field editable ditimpa)
// =============================
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var body dto.UpdateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProduct.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	promoEndsAt, err := dto.ParsePromoEndsAt(body.PromoEndsAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "promoEndsAt harus berformat YYYY-MM-DD")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	// Slug TIDAK diregenerasi saat update: slug adalah id publik produk,
	// link yang sudah tersebar tidak boleh putus karena rename.
	product.Name = body.Name
	product.Category = body.Category
	product.Price = body.Price
	product.DpMin = body.DpMin
	product.CC = body.CC
	product.Image = body.Image
	product.Features = pq.StringArray(body.Features)
	product.Order = body.Order
	product.PromoActive = body.PromoActive
	product.PromoBadgeText = body.PromoBadgeText
	product.PromoHighlights = pq.StringArray(body.PromoHighlights)
	product.PromoCardBgColor = body.PromoCardBgColor
	product.PromoCardTextColor = body.PromoCardTextColor
	product.PromoEndsAt = promoEndsAt
	if product.Features == nil {
		product.Features = pq.StringArray{}
	}
	if product.PromoHighlights == nil {
		product.PromoHighlights = pq.StringArray{}
	}

	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui produk")
	}
	return helper.JsonUpdated(c, "Produk berhasil diperbarui", product)
}

// =============================
// 🏷️ Toggle Promo (hanya flag promoActive)
// =============================
func (ctrl *ProductController) TogglePromo(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var body dto.TogglePromoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	if err := ctrl.DB.Model(&product).Update("promo_active", body.PromoActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status promo")
	}
	product.PromoActive = body.PromoActive
	return helper.JsonUpdated(c, "Status promo diperbarui", product)
}

// =============================
// 🗑️ Delete Product (hard delete)
// =============================
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	res := ctrl.DB.Delete(&model.ProductModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Produk tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Produk berhasil dihapus", nil)
}
