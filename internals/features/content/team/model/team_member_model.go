package model

import (
	"time"

	"github.com/google/uuid"
)

// TeamMemberModel merepresentasikan tabel team_members (konsultan penjualan).
type TeamMemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Role      string    `gorm:"size:100;not null" json:"role"`
	Photo     *string   `gorm:"type:text" json:"photo"`
	Whatsapp  *string   `gorm:"size:30" json:"whatsapp"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Order     int       `gorm:"column:\"order\";not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}
