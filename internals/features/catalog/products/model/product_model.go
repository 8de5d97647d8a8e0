package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductModel merepresentasikan tabel products (listing motor).
// Field promo co-located di tabel yang sama, bukan tabel terpisah.
type ProductModel struct {
	ID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string         `gorm:"size:255;not null" json:"name"`
	Slug     string         `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Category string         `gorm:"type:varchar(20);not null" json:"category"`
	Price    int64          `gorm:"not null" json:"price"`
	DpMin    int64          `gorm:"column:dp_min;not null" json:"dpMin"`
	CC       string         `gorm:"column:cc;size:20;not null" json:"cc"`
	Image    string         `gorm:"type:text;not null" json:"image"`
	Features pq.StringArray `gorm:"type:text[]" json:"features"`
	Order    int            `gorm:"column:\"order\";not null;default:0" json:"order"`

	PromoActive        bool           `gorm:"not null;default:false" json:"promoActive"`
	PromoBadgeText     *string        `gorm:"size:100" json:"promoBadgeText"`
	PromoHighlights    pq.StringArray `gorm:"type:text[]" json:"promoHighlights"`
	PromoCardBgColor   *string        `gorm:"size:50" json:"promoCardBgColor"`
	PromoCardTextColor *string        `gorm:"size:50" json:"promoCardTextColor"`
	PromoEndsAt        *time.Time     `gorm:"type:date" json:"promoEndsAt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ProductModel) TableName() string {
	return "products"
}
