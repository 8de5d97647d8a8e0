package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/team/dto"
	"virgimotor_backend/internals/features/content/team/model"
	helper "virgimotor_backend/internals/helpers"
)

var validateTeam = validator.New()

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// =============================
// 👥 Public Team (hanya aktif)
// =============================
// Soft-fail: error query → array kosong 200.
func (ctrl *TeamController) GetPublicTeam(c *fiber.Ctx) error {
	var members []model.TeamMemberModel
	if err := ctrl.DB.Where("is_active = TRUE").Order(`"order" ASC`).Find(&members).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON([]dto.PublicTeamMemberDTO{})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToPublicTeamMemberDTOs(members))
}

// =============================
// 📄 Get All (admin)
// =============================
func (ctrl *TeamController) GetAllTeamMembers(c *fiber.Ctx) error {
	var members []model.TeamMemberModel
	if err := ctrl.DB.Order(`"order" ASC`).Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota tim")
	}
	return helper.JsonList(c, "ok", members)
}

// =============================
// 🔍 Get By ID
// =============================
func (ctrl *TeamController) GetTeamMemberByID(c *fiber.Ctx) error {
	id := c.Params("id")
	// id bukan UUID tidak mungkin ada di tabel; jangan sampai cast
	// uuid di Postgres meledak jadi 500.
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tim tidak ditemukan")
	}

	var member model.TeamMemberModel
	if err := ctrl.DB.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tim tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota tim")
	}
	return helper.JsonOK(c, "ok", member)
}

// =============================
// ➕ Create
// =============================
func (ctrl *TeamController) CreateTeamMember(c *fiber.Ctx) error {
	var body dto.CreateTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeam.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	member := model.TeamMemberModel{
		Name:     body.Name,
		Role:     body.Role,
		Photo:    body.Photo,
		Whatsapp: body.Whatsapp,
		IsActive: true,
		Order:    body.Order,
	}
	if body.IsActive != nil {
		member.IsActive = *body.IsActive
	}

	if err := ctrl.DB.Create(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota tim")
	}
	return helper.JsonCreated(c, "Anggota tim berhasil ditambahkan", member)
}

// =============================
// 🔄 Update (full-replace)
// =============================
func (ctrl *TeamController) UpdateTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tim tidak ditemukan")
	}

	var body dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeam.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var member model.TeamMemberModel
	if err := ctrl.DB.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tim tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota tim")
	}

	member.Name = body.Name
	member.Role = body.Role
	member.Photo = body.Photo
	member.Whatsapp = body.Whatsapp
	member.Order = body.Order
	if body.IsActive != nil {
		member.IsActive = *body.IsActive
	} else {
		member.IsActive = true
	}

	if err := ctrl.DB.Save(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui anggota tim")
	}
	return helper.JsonUpdated(c, "Anggota tim berhasil diperbarui", member)
}

// =============================
// 🗑️ Delete (hard delete; toggle aktif tidak menghapus)
// =============================
func (ctrl *TeamController) DeleteTeamMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tim tidak ditemukan")
	}

	res := ctrl.DB.Delete(&model.TeamMemberModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota tim")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tim tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Anggota tim berhasil dihapus", nil)
}
