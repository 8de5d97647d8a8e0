package model

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImageModel merepresentasikan tabel gallery_images.
// Category adalah tag string bebas (bukan relasi); dipakai untuk
// mengelompokkan foto per section halaman, mis. "tentang-kami".
type GalleryImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Image     string    `gorm:"type:text;not null" json:"image"`
	Label     *string   `gorm:"size:255" json:"label"`
	Category  *string   `gorm:"size:100;index" json:"category"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Order     int       `gorm:"column:\"order\";not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (GalleryImageModel) TableName() string {
	return "gallery_images"
}
