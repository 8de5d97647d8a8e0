package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"virgimotor_backend/internals/features/settings/model"
)

// defaultSettings adalah key yang selalu tersedia untuk halaman publik.
var defaultSettings = []model.SettingModel{
	{Key: "whatsapp_number", Value: "6281234567890", Type: "text"},
	{Key: "phone", Value: "(021) 8900-8888", Type: "text"},
	{Key: "address", Value: "Jl. Cikarang Baru No. 88, Cikarang Utara, Bekasi, Jawa Barat 17530", Type: "textarea"},
	{Key: "operating_hours_weekday", Value: "Senin - Sabtu: 08:00 - 17:00 WIB", Type: "text"},
	{Key: "operating_hours_weekend", Value: "Minggu: 08:00 - 14:00 WIB", Type: "text"},
	{Key: "instagram_url", Value: "", Type: "text"},
	{Key: "facebook_url", Value: "", Type: "text"},
}

// EnsureDefaultSettings membuat key default yang belum ada;
// key yang sudah ada tidak disentuh (DoNothing).
func EnsureDefaultSettings(db *gorm.DB) error {
	for _, s := range defaultSettings {
		row := s
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
