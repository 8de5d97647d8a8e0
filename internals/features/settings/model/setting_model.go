package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel merepresentasikan tabel settings (key-value konfigurasi situs).
// Key adalah identitas natural; penulisan selalu upsert idempoten.
type SettingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Type      string    `gorm:"size:20;not null;default:'text'" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SettingModel) TableName() string {
	return "settings"
}
