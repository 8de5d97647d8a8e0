package model

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlideModel merepresentasikan tabel hero_slides (carousel homepage).
type HeroSlideModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Image     string    `gorm:"type:text;not null" json:"image"`
	Title     *string   `gorm:"size:255" json:"title"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Order     int       `gorm:"column:\"order\";not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (HeroSlideModel) TableName() string {
	return "hero_slides"
}
