package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/testimonials/dto"
	"virgimotor_backend/internals/features/content/testimonials/model"
	helper "virgimotor_backend/internals/helpers"
)

var validateTestimonial = validator.New()

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// =============================
// ⭐ Public Testimonials (hanya aktif)
// =============================
// Soft-fail: error query → array kosong 200.
func (ctrl *TestimonialController) GetPublicTestimonials(c *fiber.Ctx) error {
	var testimonials []model.TestimonialModel
	if err := ctrl.DB.Where("is_active = TRUE").Order(`"order" ASC`).Find(&testimonials).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON([]dto.PublicTestimonialDTO{})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToPublicTestimonialDTOs(testimonials))
}

// =============================
// 📄 Get All (admin)
// =============================
func (ctrl *TestimonialController) GetAllTestimonials(c *fiber.Ctx) error {
	var testimonials []model.TestimonialModel
	if err := ctrl.DB.Order(`"order" ASC`).Find(&testimonials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}
	return helper.JsonList(c, "ok", testimonials)
}

// =============================
// 🔍 Get By ID
// =============================
func (ctrl *TestimonialController) GetTestimonialByID(c *fiber.Ctx) error {
	id := c.Params("id")
	// id bukan UUID tidak mungkin ada di tabel; jangan sampai cast
	// uuid di Postgres meledak jadi 500.
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
	}

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}
	return helper.JsonOK(c, "ok", testimonial)
}

// =============================
// ➕ Create (rating kosong → 5)
// =============================
func (ctrl *TestimonialController) CreateTestimonial(c *fiber.Ctx) error {
	var body dto.CreateTestimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTestimonial.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	rating := body.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := model.TestimonialModel{
		Name:     body.Name,
		Photo:    body.Photo,
		Motor:    body.Motor,
		Rating:   rating,
		Message:  body.Message,
		IsActive: true,
		Order:    body.Order,
	}
	if body.IsActive != nil {
		testimonial.IsActive = *body.IsActive
	}

	if err := ctrl.DB.Create(&testimonial).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah testimoni")
	}
	return helper.JsonCreated(c, "Testimoni berhasil ditambahkan", testimonial)
}

// =============================
// 🔄 Update (full-replace)
// =============================
func (ctrl *TestimonialController) UpdateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
	}

	var body dto.UpdateTestimonialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTestimonial.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var testimonial model.TestimonialModel
	if err := ctrl.DB.First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil testimoni")
	}

	testimonial.Name = body.Name
	testimonial.Photo = body.Photo
	testimonial.Motor = body.Motor
	testimonial.Rating = body.Rating
	testimonial.Message = body.Message
	testimonial.Order = body.Order
	if body.IsActive != nil {
		testimonial.IsActive = *body.IsActive
	} else {
		testimonial.IsActive = true
	}

	if err := ctrl.DB.Save(&testimonial).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui testimoni")
	}
	return helper.JsonUpdated(c, "Testimoni berhasil diperbarui", testimonial)
}

// =============================
// 🗑️ Delete (hard delete)
// =============================
func (ctrl *TestimonialController) DeleteTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
	}

	res := ctrl.DB.Delete(&model.TestimonialModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus testimoni")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Testimoni tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Testimoni berhasil dihapus", nil)
}
