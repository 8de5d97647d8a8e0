package model

import (
	"time"

	"github.com/google/uuid"
)

// TestimonialModel merepresentasikan tabel testimonials (ulasan pembeli).
type TestimonialModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Photo     *string   `gorm:"type:text" json:"photo"`
	Motor     *string   `gorm:"size:100" json:"motor"`
	Rating    int       `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5" json:"rating"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Order     int       `gorm:"column:\"order\";not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}
