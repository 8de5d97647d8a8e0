package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/hero_slides/dto"
	"virgimotor_backend/internals/features/content/hero_slides/model"
	helper "virgimotor_backend/internals/helpers"
)

var validateHeroSlide = validator.New()

type HeroSlideController struct {
	DB *gorm.DB
}

func NewHeroSlideController(db *gorm.DB) *HeroSlideController {
	return &HeroSlideController{DB: db}
}

// =============================
// 🎡 Public Hero Slides (hanya aktif, urut "order")
// =============================
// Soft-fail: error query → array kosong 200.
func (ctrl *HeroSlideController) GetPublicHeroSlides(c *fiber.Ctx) error {
	var slides []model.HeroSlideModel
	if err := ctrl.DB.Where("is_active = TRUE").Order(`"order" ASC`).Find(&slides).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON([]dto.PublicHeroSlideDTO{})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToPublicHeroSlideDTOs(slides))
}

// =============================
// 📄 Get All (admin)
// =============================
func (ctrl *HeroSlideController) GetAllHeroSlides(c *fiber.Ctx) error {
	var slides []model.HeroSlideModel
	if err := ctrl.DB.Order(`"order" ASC`).Find(&slides).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide")
	}
	return helper.JsonList(c, "ok", slides)
}

// =============================
// 🔍 Get By ID
// =============================
func (ctrl *HeroSlideController) GetHeroSlideByID(c *fiber.Ctx) error {
	id := c.Params("id")
	// id bukan UUID tidak mungkin ada di tabel; jangan sampai cast
	// uuid di Postgres meledak jadi 500.
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
	}

	var slide model.HeroSlideModel
	if err := ctrl.DB.First(&slide, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide")
	}
	return helper.JsonOK(c, "ok", slide)
}

// =============================
// ➕ Create
// =============================
func (ctrl *HeroSlideController) CreateHeroSlide(c *fiber.Ctx) error {
	var body dto.CreateHeroSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHeroSlide.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slide := model.HeroSlideModel{
		Image:    body.Image,
		Title:    body.Title,
		IsActive: true,
		Order:    body.Order,
	}
	if err := ctrl.DB.Create(&slide).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slide")
	}
	return helper.JsonCreated(c, "Slide berhasil dibuat", slide)
}

// =============================
// 🔄 Update (full-replace)
// =============================
func (ctrl *HeroSlideController) UpdateHeroSlide(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
	}

	var body dto.UpdateHeroSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHeroSlide.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var slide model.HeroSlideModel
	if err := ctrl.DB.First(&slide, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide")
	}

	slide.Image = body.Image
	slide.Title = body.Title
	slide.Order = body.Order
	if body.IsActive != nil {
		slide.IsActive = *body.IsActive
	} else {
		slide.IsActive = true
	}

	if err := ctrl.DB.Save(&slide).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui slide")
	}
	return helper.JsonUpdated(c, "Slide berhasil diperbarui", slide)
}

// =============================
// 🗑️ Delete (hard delete)
// =============================
func (ctrl *HeroSlideController) DeleteHeroSlide(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
	}

	res := ctrl.DB.Delete(&model.HeroSlideModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus slide")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Slide berhasil dihapus", nil)
}
