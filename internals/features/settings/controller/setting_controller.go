package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"virgimotor_backend/internals/features/settings/dto"
	"virgimotor_backend/internals/features/settings/model"
	helper "virgimotor_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// =============================
// ⚙️ Public Settings (map key→value)
// =============================
// Soft-fail: error query → map kosong 200.
func (ctrl *SettingController) GetPublicSettings(c *fiber.Ctx) error {
	var rows []model.SettingModel
	if err := ctrl.DB.Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON(map[string]string{})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToSettingsMap(rows))
}

// =============================
// 📄 Get All (admin: baris mentah termasuk type)
// =============================
func (ctrl *SettingController) GetAllSettings(c *fiber.Ctx) error {
	var rows []model.SettingModel
	if err := ctrl.DB.Order("key ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil settings")
	}
	return helper.JsonList(c, "ok", rows)
}

// =============================
// 🔄 Bulk Upsert (satu transaksi)
// =============================
// Semua key di-apply atau tidak sama sekali; key yang belum ada
// dibuat dengan type default "text".
func (ctrl *SettingController) UpsertSettings(c *fiber.Ctx) error {
	var body dto.UpsertSettingsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(body) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada setting yang dikirim")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range body {
			if key == "" {
				return errors.New("empty setting key")
			}
			row := model.SettingModel{Key: key, Value: value, Type: "text"}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"value":      value,
					"updated_at": time.Now(),
				}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan settings")
	}
	return helper.JsonUpdated(c, "Settings berhasil disimpan", nil)
}
