package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/gallery/dto"
	"virgimotor_backend/internals/features/content/gallery/model"
	helper "virgimotor_backend/internals/helpers"
)

var validateGallery = validator.New()

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// =============================
// 🖼️ Public Gallery (hanya aktif)
// =============================
// ?category= → exact match; tanpa category = semua kategori.
// Soft-fail: error query → array kosong 200.
func (ctrl *GalleryController) GetPublicGallery(c *fiber.Ctx) error {
	q := ctrl.DB.Where("is_active = TRUE").Order(`"order" ASC`)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var images []model.GalleryImageModel
	if err := q.Find(&images).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON([]dto.PublicGalleryImageDTO{})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToPublicGalleryImageDTOs(images))
}

// =============================
// 📄 Get All (admin: termasuk non-aktif)
// =============================
func (ctrl *GalleryController) GetAllGalleryImages(c *fiber.Ctx) error {
	var images []model.GalleryImageModel
	if err := ctrl.DB.Order(`"order" ASC`).Find(&images).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil galeri")
	}
	return helper.JsonList(c, "ok", images)
}

// =============================
// 🔍 Get By ID
// =============================
func (ctrl *GalleryController) GetGalleryImageByID(c *fiber.Ctx) error {
	id := c.Params("id")
	// id bukan UUID tidak mungkin ada di tabel; jangan sampai cast
	// uuid di Postgres meledak jadi 500.
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	var image model.GalleryImageModel
	if err := ctrl.DB.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil foto")
	}
	return helper.JsonOK(c, "ok", image)
}

// =============================
// ➕ Create
// =============================
func (ctrl *GalleryController) CreateGalleryImage(c *fiber.Ctx) error {
	var body dto.CreateGalleryImageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	image := model.GalleryImageModel{
		Image:    body.Image,
		Label:    body.Label,
		Category: body.Category,
		IsActive: true,
		Order:    body.Order,
	}
	if err := ctrl.DB.Create(&image).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah foto")
	}
	return helper.JsonCreated(c, "Foto berhasil ditambahkan", image)
}

// =============================
// 🔄 Update (full-replace)
// =============================
func (ctrl *GalleryController) UpdateGalleryImage(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	var body dto.UpdateGalleryImageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var image model.GalleryImageModel
	if err := ctrl.DB.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil foto")
	}

	image.Image = body.Image
	image.Label = body.Label
	image.Category = body.Category
	image.Order = body.Order
	if body.IsActive != nil {
		image.IsActive = *body.IsActive
	} else {
		image.IsActive = true
	}

	if err := ctrl.DB.Save(&image).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui foto")
	}
	return helper.JsonUpdated(c, "Foto berhasil diperbarui", image)
}

// =============================
// 🗑️ Delete (hard delete)
// =============================
func (ctrl *GalleryController) DeleteGalleryImage(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	res := ctrl.DB.Delete(&model.GalleryImageModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus foto")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Foto berhasil dihapus", nil)
}
